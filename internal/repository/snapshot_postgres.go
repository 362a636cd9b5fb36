package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_sector_dispatch/internal/service"
)

type PostgresSnapshotRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSnapshotRepository(db *pgxpool.Pool) service.SnapshotRepository {
	return &PostgresSnapshotRepository{
		db: db,
	}
}

// Get возвращает снимок по ключу
func (r *PostgresSnapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT payload
		FROM snapshots
		WHERE key = $1;
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return payload, nil
}

// Set заменяет снимок целиком
func (r *PostgresSnapshotRepository) Set(ctx context.Context, key string, blob []byte) error {
	query := `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, key, blob); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
