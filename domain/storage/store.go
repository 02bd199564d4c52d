package storage

import "context"

// Store is the read surface every annotation store exposes. The import
// pipelines that populate the tables live outside this system, so there is
// no generic write surface; stores that need one declare it themselves.
type Store[T any] interface {
	Find(ctx context.Context, options ...Option) ([]T, error)
	FindOne(ctx context.Context, options ...Option) (T, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	Exists(ctx context.Context, options ...Option) (bool, error)
}

// Collection provides list/get/count passthroughs over a Store. Services
// embed it to expose raw lookups without re-declaring the plumbing.
type Collection[T any] struct {
	store Store[T]
}

// NewCollection creates a Collection backed by the given store.
func NewCollection[T any](store Store[T]) Collection[T] {
	return Collection[T]{store: store}
}

// Find retrieves entities matching the given options.
func (c Collection[T]) Find(ctx context.Context, options ...Option) ([]T, error) {
	return c.store.Find(ctx, options...)
}

// Get retrieves a single entity matching the given options.
func (c Collection[T]) Get(ctx context.Context, options ...Option) (T, error) {
	return c.store.FindOne(ctx, options...)
}

// Count returns the number of entities matching the given options.
func (c Collection[T]) Count(ctx context.Context, options ...Option) (int64, error) {
	return c.store.Count(ctx, options...)
}

// Exists checks if any entity matches the given options.
func (c Collection[T]) Exists(ctx context.Context, options ...Option) (bool, error) {
	return c.store.Exists(ctx, options...)
}
