package service_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"biocat/internal/domain"
	"biocat/internal/notify"
	"biocat/internal/repository"
	"biocat/internal/repository/kvstore"
	"biocat/internal/service"
	"biocat/internal/store/memory"
)

func newProductService(t *testing.T) (service.ProductService, repository.ProductRepository) {
	t.Helper()
	repo := kvstore.NewProductRepository(memory.New(), logrus.New())
	require.NoError(t, repo.Load(context.Background()))
	return service.NewProductService(repo, notify.NewFeed(10, nil)), repo
}

func arenaInput() domain.ProductInput {
	return domain.ProductInput{
		Name:      "Arena 5kg",
		Location:  "Oruro",
		Quantity:  10,
		Cost:      20,
		SalePrice: 35,
	}
}

func TestCreateAppendsExactlyOneEntity(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, arenaInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	items := svc.List(ctx)
	require.Len(t, items, 1)
	require.Equal(t, "Arena 5kg", items[0].Name)
	require.Equal(t, "Oruro", items[0].Location)
	require.Equal(t, 10, items[0].Quantity)
	require.Equal(t, 20.0, items[0].Cost)
	require.Equal(t, 35.0, items[0].SalePrice)
}

func TestCreateMintsUniqueIDs(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		created, err := svc.Create(ctx, arenaInput())
		require.NoError(t, err)
		_, dup := seen[created.ID]
		require.False(t, dup, "duplicate id %s", created.ID)
		seen[created.ID] = struct{}{}
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name  string
		input domain.ProductInput
		field string
	}{
		{"blank name", domain.ProductInput{Name: "   ", Location: "Oruro"}, "name"},
		{"blank location", domain.ProductInput{Name: "Arena", Location: ""}, "location"},
		{"negative quantity", domain.ProductInput{Name: "Arena", Location: "Oruro", Quantity: -1}, "quantity"},
		{"negative cost", domain.ProductInput{Name: "Arena", Location: "Oruro", Cost: -0.5}, "cost"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}

	// aborted creates leave no partial write
	require.Empty(t, svc.List(ctx))
}

func TestUpdateMergesFieldsAndBumpsUpdatedAt(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, arenaInput())
	require.NoError(t, err)
	other, err := svc.Create(ctx, domain.ProductInput{Name: "Arena 10kg", Location: "La Paz", Quantity: 3, Cost: 38, SalePrice: 60})
	require.NoError(t, err)

	input := arenaInput()
	input.Quantity = 25
	updated, err := svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	require.Equal(t, 25, updated.Quantity)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// the other entity is untouched
	items := svc.List(ctx)
	require.Len(t, items, 2)
	require.Equal(t, *other, items[1])
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	svc, _ := newProductService(t)
	_, err := svc.Update(context.Background(), "ghost", arenaInput())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteTwiceEqualsDeleteOnce(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, arenaInput())
	require.NoError(t, err)
	keep, err := svc.Create(ctx, domain.ProductInput{Name: "Keep", Location: "Oruro"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	once := svc.List(ctx)
	require.NoError(t, svc.Delete(ctx, created.ID))
	twice := svc.List(ctx)

	require.Equal(t, once, twice)
	require.Len(t, twice, 1)
	require.Equal(t, keep.ID, twice[0].ID)
}

func TestClearEmptiesCollection(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, arenaInput())
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))
	require.Empty(t, svc.List(ctx))
}

func TestImportSkipsInvalidRowsAndAppends(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, arenaInput())
	require.NoError(t, err)

	imported, err := svc.Import(ctx, []domain.ProductInput{
		{Name: "Arena 10kg", Location: "La Paz", Quantity: 5, Cost: 38, SalePrice: 60},
		{Name: "", Location: "La Paz"}, // invalid, skipped
		{Name: "Arena 20kg", Location: "Cochabamba", Quantity: 2, Cost: 70, SalePrice: 110},
	})
	require.NoError(t, err)
	require.Equal(t, 2, imported)

	// additive: the pre-existing row is still first
	items := svc.List(ctx)
	require.Len(t, items, 3)
	require.Equal(t, "Arena 5kg", items[0].Name)
}
