// Package records runs the load-mutate-save cycle over a storage backend.
//
// Appends within one process are serialized, so two concurrent creations
// both end up in the store, and reads never observe a save in progress.
// Separate processes writing the same backend are not coordinated.
package records

import (
	"context"
	"fmt"
	"sync"

	"campusapi/internal/storage"
)

type Collection[T any] struct {
	mu      sync.RWMutex
	backend storage.Backend[T]
}

func New[T any](backend storage.Backend[T]) *Collection[T] {
	return &Collection[T]{backend: backend}
}

// All returns every record in insertion order, never nil.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	const op = "storage.records.All"

	c.mu.RLock()
	defer c.mu.RUnlock()

	recs, err := c.backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if recs == nil {
		recs = []T{}
	}

	return recs, nil
}

func (c *Collection[T]) Append(ctx context.Context, rec T) error {
	const op = "storage.records.Append"

	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	recs = append(recs, rec)

	if err = c.backend.Save(ctx, recs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
