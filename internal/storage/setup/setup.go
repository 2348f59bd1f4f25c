package setup

import (
	"fmt"
	"io"

	"campusapi/internal/config"
	"campusapi/internal/storage"
	"campusapi/internal/storage/jsonfile"
	"campusapi/internal/storage/postgres"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the backend selected by cfg.Storage.Driver. collection names
// the postgres collection; fileOpts only apply to the file driver.
func Open[T any](cfg *config.Config, collection string, fileOpts ...jsonfile.Option) (storage.Backend[T], io.Closer, error) {
	const op = "storage.setup.Open"

	switch cfg.Storage.Driver {
	case config.DriverFile:
		return jsonfile.New[T](cfg.Storage.Path, fileOpts...), nopCloser{}, nil
	case config.DriverPostgres:
		db, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		return postgres.NewCollection[T](db, collection), db, nil
	default:
		return nil, nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Storage.Driver)
	}
}
