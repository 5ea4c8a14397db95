package secrets

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/cashflow/pkg/logger"
)

// Backend is a flat string key/value store, such as browser local storage
// behind a bridge or a file. Get reports false for a missing key.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Storage keeps JSON values in a Backend with both names and values sealed.
type Storage struct {
	sealer  *Sealer
	backend Backend
	logger  *slog.Logger
}

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithStorageLogger sets the logger for backend failures.
func WithStorageLogger(l *slog.Logger) StorageOption {
	return func(s *Storage) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewStorage(sealer *Sealer, backend Backend, opts ...StorageOption) (*Storage, error) {
	if sealer == nil {
		return nil, ErrNilSealer
	}
	if backend == nil {
		return nil, ErrNilBackend
	}
	s := &Storage{sealer: sealer, backend: backend, logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SetItem stores v under key, replacing any previous value.
func (s *Storage) SetItem(ctx context.Context, key string, v any) error {
	name, err := s.name(key)
	if err != nil {
		return err
	}
	sealed, err := s.sealer.SealValue(v)
	if err != nil {
		return err
	}
	if err := s.backend.Set(ctx, name, sealed); err != nil {
		return s.fail(ctx, "set", key, err)
	}
	return nil
}

// GetItem decodes the value under key into dst.
// A missing key yields ErrItemNotFound.
func (s *Storage) GetItem(ctx context.Context, key string, dst any) error {
	name, err := s.name(key)
	if err != nil {
		return err
	}
	sealed, ok, err := s.backend.Get(ctx, name)
	if err != nil {
		return s.fail(ctx, "get", key, err)
	}
	if !ok {
		return ErrItemNotFound
	}
	return s.sealer.OpenValue(sealed, dst)
}

// RemoveItem deletes the value under key. Removing a missing key is not an error.
func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	name, err := s.name(key)
	if err != nil {
		return err
	}
	if err := s.backend.Delete(ctx, name); err != nil {
		return s.fail(ctx, "delete", key, err)
	}
	return nil
}

// Clear removes every value from the backend.
func (s *Storage) Clear(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		return s.fail(ctx, "clear", "", err)
	}
	return nil
}

// Get is GetItem returning the value.
func Get[T any](ctx context.Context, s *Storage, key string) (T, error) {
	var v T
	if err := s.GetItem(ctx, key, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (s *Storage) name(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyKey
	}
	return s.sealer.SealKey(key), nil
}

func (s *Storage) fail(ctx context.Context, op, key string, err error) error {
	s.logger.ErrorContext(ctx, "storage backend failed",
		logger.Operation(op),
		slog.String("key", key),
		logger.Error(err),
	)
	return errors.Join(ErrBackend, err)
}
