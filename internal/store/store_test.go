package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"biocat/internal/domain"
	"biocat/internal/store"
	"biocat/internal/store/memory"
)

func TestGetJSONAbsentKey(t *testing.T) {
	kv := memory.New()

	var v []string
	ok, err := store.GetJSON(context.Background(), kv, "missing", &v, logrus.New())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetJSONMalformedTreatedAsAbsent(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "k", []byte("{not json")))

	var v map[string]string
	ok, err := store.GetJSON(ctx, kv, "k", &v, logrus.New())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSetJSONRoundTrip(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	in := domain.Session{IsAuthenticated: true, User: &domain.User{Username: "Anahi"}}
	require.NoError(t, store.SetJSON(ctx, kv, store.KeyAuth, in))

	var out domain.Session
	ok, err := store.GetJSON(ctx, kv, store.KeyAuth, &out, logrus.New())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, in, out)
}

type failingStore struct {
	store.Store
}

func (failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func TestSetJSONWrapsWriteFailure(t *testing.T) {
	err := store.SetJSON(context.Background(), failingStore{}, "k", "v")
	require.Error(t, err)

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "k", storageErr.Key)
}
