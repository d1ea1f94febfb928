package repository

import (
	"context"

	"biocat/internal/domain"
)

// ClientRepository exposes persistence operations for the client collection.
type ClientRepository interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []domain.Client
	Get(ctx context.Context, id string) (*domain.Client, error)
	Append(ctx context.Context, client domain.Client) error
	Replace(ctx context.Context, client domain.Client) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
