package kvstore

import (
	"context"

	"github.com/sirupsen/logrus"

	"biocat/internal/domain"
	"biocat/internal/repository"
	"biocat/internal/store"
)

type ClientRepository struct {
	coll *collection[domain.Client]
}

func NewClientRepository(kv store.Store, logger logrus.FieldLogger) repository.ClientRepository {
	return &ClientRepository{
		coll: newCollection(kv, store.KeyClients, func(c domain.Client) string { return c.ID }, logger),
	}
}

func (r *ClientRepository) Load(ctx context.Context) error {
	return r.coll.load(ctx)
}

func (r *ClientRepository) List(ctx context.Context) []domain.Client {
	return r.coll.list()
}

func (r *ClientRepository) Get(ctx context.Context, id string) (*domain.Client, error) {
	client, ok := r.coll.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &client, nil
}

func (r *ClientRepository) Append(ctx context.Context, client domain.Client) error {
	r.coll.append(ctx, client)
	return nil
}

func (r *ClientRepository) Replace(ctx context.Context, client domain.Client) error {
	return r.coll.replace(ctx, client)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	r.coll.delete(ctx, id)
	return nil
}

func (r *ClientRepository) Clear(ctx context.Context) error {
	r.coll.clear(ctx)
	return nil
}
