package repository

import (
	"context"

	"biocat/internal/domain"
)

// ProductRepository exposes persistence operations for the product collection.
// The collection keeps insertion order; edits never resequence it.
type ProductRepository interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []domain.Product
	Get(ctx context.Context, id string) (*domain.Product, error)
	Append(ctx context.Context, product domain.Product) error
	Replace(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
