// Package kvstore implements the entity repositories over the durable
// key-value store. Each collection is read once at load time into an ordered
// in-memory slice and written through as a whole after every mutation.
package kvstore

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"biocat/internal/domain"
	"biocat/internal/store"
)

type collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	key    string
	idOf   func(T) string
	kv     store.Store
	logger logrus.FieldLogger
}

func newCollection[T any](kv store.Store, key string, idOf func(T) string, logger logrus.FieldLogger) *collection[T] {
	return &collection[T]{
		key:    key,
		idOf:   idOf,
		kv:     kv,
		logger: logger,
	}
}

func (c *collection[T]) load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var items []T
	if _, err := store.GetJSON(ctx, c.kv, c.key, &items, c.logger); err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) append(ctx context.Context, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.flush(ctx)
}

func (c *collection[T]) replace(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == c.idOf(item) {
			c.items[i] = item
			c.flush(ctx)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (c *collection[T]) delete(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.flush(ctx)
			return
		}
	}
	// absent target is a no-op, not an error
}

func (c *collection[T]) clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.flush(ctx)
}

// flush writes the whole list through to the store. A failed write is logged
// and swallowed: the in-memory state stays authoritative until the next
// successful flush, at worst losing the change on restart.
func (c *collection[T]) flush(ctx context.Context) {
	items := c.items
	if items == nil {
		items = []T{}
	}
	if err := store.SetJSON(ctx, c.kv, c.key, items); err != nil {
		var storageErr *domain.StorageError
		if errors.As(err, &storageErr) && c.logger != nil {
			c.logger.WithField("key", c.key).Warnf("write-through failed: %v", storageErr.Err)
			return
		}
		if c.logger != nil {
			c.logger.WithField("key", c.key).Warnf("write-through failed: %v", err)
		}
	}
}
