package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// EnsureSchema creates the single records table the backend needs. The
// table is a plain key-value shape, one row per record, payload as JSON.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
    CREATE TABLE IF NOT EXISTS records (
      kind TEXT NOT NULL,
      key TEXT NOT NULL,
      payload JSONB NOT NULL,
      updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
      PRIMARY KEY (kind, key)
    )
  `)
	return err
}
