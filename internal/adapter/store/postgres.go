package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres keeps every collection blob in one key/payload table, mirroring
// the key-value contract of the other drivers.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) (*Postgres, error) {
	query := `
	CREATE TABLE IF NOT EXISTS playground_state (
		key TEXT PRIMARY KEY,
		payload BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`

	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
	SELECT payload FROM playground_state
	WHERE key = $1
	`

	var payload []byte
	err := p.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	return payload, true, nil
}

func (p *Postgres) Save(ctx context.Context, key string, data []byte) error {
	query := `
	INSERT INTO playground_state (key, payload, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE
	SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	if _, err := p.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}
