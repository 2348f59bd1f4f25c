package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"campusapi/internal/config"
	"campusapi/internal/storage"

	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS records (
		collection TEXT  NOT NULL,
		position   INT   NOT NULL,
		payload    JSONB NOT NULL,
		PRIMARY KEY (collection, position)
	)`

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	return Open(connStr)
}

func Open(connStr string) (*Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create records table: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Collection stores one named list of records as rows ordered by position.
type Collection[T any] struct {
	db   *sql.DB
	name string
}

func NewCollection[T any](s *Storage, name string) *Collection[T] {
	return &Collection[T]{db: s.DB, name: name}
}

func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	const op = "storage.postgres.Load"

	query := `
		SELECT payload
		FROM records
		WHERE collection = $1
		ORDER BY position ASC`

	rows, err := c.db.QueryContext(ctx, query, c.name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%s: failed to scan record: %w", op, err)
		}

		var rec T
		if err = json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrParse, err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating records: %w", op, err)
	}

	return records, nil
}

// Save replaces the whole collection inside a single transaction.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	const op = "storage.postgres.Save"

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM records WHERE collection = $1`, c.name); err != nil {
		return fmt.Errorf("%s: failed to clear collection: %w", op, err)
	}

	insertQuery := `
		INSERT INTO records (collection, position, payload)
		VALUES ($1, $2, $3)`

	for i, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if _, err = tx.ExecContext(ctx, insertQuery, c.name, i, string(payload)); err != nil {
			return fmt.Errorf("%s: failed to insert record: %w", op, err)
		}
	}

	return tx.Commit()
}
