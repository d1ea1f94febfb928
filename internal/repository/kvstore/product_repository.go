package kvstore

import (
	"context"

	"github.com/sirupsen/logrus"

	"biocat/internal/domain"
	"biocat/internal/repository"
	"biocat/internal/store"
)

type ProductRepository struct {
	coll *collection[domain.Product]
}

func NewProductRepository(kv store.Store, logger logrus.FieldLogger) repository.ProductRepository {
	return &ProductRepository{
		coll: newCollection(kv, store.KeyProducts, func(p domain.Product) string { return p.ID }, logger),
	}
}

func (r *ProductRepository) Load(ctx context.Context) error {
	return r.coll.load(ctx)
}

func (r *ProductRepository) List(ctx context.Context) []domain.Product {
	return r.coll.list()
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := r.coll.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &product, nil
}

func (r *ProductRepository) Append(ctx context.Context, product domain.Product) error {
	r.coll.append(ctx, product)
	return nil
}

func (r *ProductRepository) Replace(ctx context.Context, product domain.Product) error {
	return r.coll.replace(ctx, product)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.coll.delete(ctx, id)
	return nil
}

func (r *ProductRepository) Clear(ctx context.Context) error {
	r.coll.clear(ctx)
	return nil
}
