package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-newsroom/internal/infrastructure/flatstore"
)

// DocumentBackend keeps the store document in one row of the documents table.
// The body column is TEXT so the indented JSON is kept byte for byte.
type DocumentBackend struct {
	pool *pgxpool.Pool
	name string
}

func NewDocumentBackend(pool *pgxpool.Pool, name string) *DocumentBackend {
	return &DocumentBackend{pool: pool, name: name}
}

func (b *DocumentBackend) Name() string { return "postgres" }

func (b *DocumentBackend) Read(ctx context.Context) ([]byte, error) {
	var body string
	err := b.pool.QueryRow(ctx, `SELECT body FROM documents WHERE name = $1`, b.name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, flatstore.ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (b *DocumentBackend) Write(ctx context.Context, data []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`, b.name, string(data))
	return err
}

var _ flatstore.Backend = (*DocumentBackend)(nil)
