package storage

import (
	"context"
	"errors"
)

// ErrParse means the stored document could not be read back as a list of
// records.
var ErrParse = errors.New("stored records are not a valid JSON array")

// Backend loads and saves a whole collection at once.
type Backend[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}
