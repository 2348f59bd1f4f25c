package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"campusapi/internal/storage"
)

// Store keeps a collection as one pretty-printed JSON array on disk. Every
// Save rewrites the file in full.
type Store[T any] struct {
	path            string
	createIfMissing bool
}

type Option func(*options)

type options struct {
	createIfMissing bool
}

// WithCreateIfMissing makes Load create the parent directory and an empty
// array file when the file does not exist yet.
func WithCreateIfMissing() Option {
	return func(o *options) {
		o.createIfMissing = true
	}
}

func New[T any](path string, opts ...Option) *Store[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Store[T]{
		path:            path,
		createIfMissing: o.createIfMissing,
	}
}

func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	const op = "storage.jsonfile.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if !s.createIfMissing {
			return []T{}, nil
		}

		if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = s.write([]T{}); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []T
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrParse, err)
	}

	if records == nil {
		records = []T{}
	}

	return records, nil
}

func (s *Store[T]) Save(ctx context.Context, records []T) error {
	const op = "storage.jsonfile.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if records == nil {
		records = []T{}
	}

	if err := s.write(records); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store[T]) write(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}
