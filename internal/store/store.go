package store

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"biocat/internal/domain"
)

// Persisted keys. biocat_orders existed historically but nothing reads or
// writes it anymore.
const (
	KeyAuth     = "biocat_auth"
	KeyProducts = "biocat_products"
	KeyClients  = "biocat_clients"
	KeyTheme    = "biocat_theme"
)

// Store is a durable string-keyed store holding serialized values. Get reports
// absence through its second return, never through an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// GetJSON reads key and unmarshals it into v. A missing key or malformed
// payload both report absence; malformed data is logged and otherwise ignored.
func GetJSON(ctx context.Context, s Store, key string, v any, logger logrus.FieldLogger) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		if logger != nil {
			logger.WithField("key", key).Warnf("discarding malformed persisted value: %v", err)
		}
		return false, nil
	}
	return true, nil
}

// SetJSON marshals v and writes it under key. Failures come back as a
// *domain.StorageError so callers can decide whether to swallow them.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &domain.StorageError{Key: key, Err: err}
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return &domain.StorageError{Key: key, Err: err}
	}
	return nil
}
