package kvstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"biocat/internal/domain"
	"biocat/internal/repository"
	"biocat/internal/repository/kvstore"
	"biocat/internal/store"
	"biocat/internal/store/memory"
)

func newProductRepo(t *testing.T, kv store.Store) repository.ProductRepository {
	t.Helper()
	repo := kvstore.NewProductRepository(kv, logrus.New())
	require.NoError(t, repo.Load(context.Background()))
	return repo
}

func product(id, name string) domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ID:        id,
		Name:      name,
		Location:  "Oruro",
		Quantity:  10,
		Cost:      20,
		SalePrice: 35,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestLoadEmptyStore(t *testing.T) {
	repo := newProductRepo(t, memory.New())
	require.Empty(t, repo.List(context.Background()))
}

func TestAppendWritesThrough(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	repo := newProductRepo(t, kv)
	require.NoError(t, repo.Append(ctx, product("a", "Arena 5kg")))

	// a fresh repository loading from the same store sees the row
	reloaded := newProductRepo(t, kv)
	items := reloaded.List(ctx)
	require.Len(t, items, 1)
	require.Equal(t, "Arena 5kg", items[0].Name)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	repo := newProductRepo(t, kv)

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, repo.Append(ctx, product(id, "p"+id)))
	}

	// editing the middle row must not resequence
	edited := product("2", "edited")
	require.NoError(t, repo.Replace(ctx, edited))

	items := repo.List(ctx)
	require.Equal(t, []string{"1", "2", "3"}, []string{items[0].ID, items[1].ID, items[2].ID})
	require.Equal(t, "edited", items[1].Name)
}

func TestReplaceMissingReturnsNotFound(t *testing.T) {
	repo := newProductRepo(t, memory.New())
	err := repo.Replace(context.Background(), product("ghost", "x"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	repo := newProductRepo(t, kv)

	require.NoError(t, repo.Append(ctx, product("a", "x")))
	require.NoError(t, repo.Delete(ctx, "a"))
	require.NoError(t, repo.Delete(ctx, "a"))
	require.Empty(t, repo.List(ctx))
}

func TestClear(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	repo := newProductRepo(t, kv)

	require.NoError(t, repo.Append(ctx, product("a", "x")))
	require.NoError(t, repo.Clear(ctx))
	require.Empty(t, repo.List(ctx))

	reloaded := newProductRepo(t, kv)
	require.Empty(t, reloaded.List(ctx))
}

func TestMalformedPersistedListLoadsEmpty(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.KeyProducts, []byte("{broken")))

	repo := newProductRepo(t, kv)
	require.Empty(t, repo.List(ctx))
}

func TestClientRepositoryRoundTrip(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	repo := kvstore.NewClientRepository(kv, logrus.New())
	require.NoError(t, repo.Load(ctx))

	now := time.Now().UTC()
	client := domain.Client{
		ID:               "c1",
		Name:             "Maria",
		Contact:          "777-1234",
		ShippingLocation: "La Paz",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, repo.Append(ctx, client))

	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "Maria", got.Name)

	_, err = repo.Get(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
