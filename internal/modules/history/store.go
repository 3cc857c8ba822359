package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles generation_log persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, r Record) error {
	interests := r.Interests
	if interests == nil {
		interests = []string{}
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO generation_log (id, destination, interests, days, status, error, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.ID, r.Destination, interests, r.Days, r.Status, r.Error, r.LatencyMs, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, destination, interests, days, status, error, latency_ms, created_at
		FROM generation_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query recent: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Record, error) {
		var r Record
		err := row.Scan(&r.ID, &r.Destination, &r.Interests, &r.Days, &r.Status, &r.Error, &r.LatencyMs, &r.CreatedAt)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("history: scan recent: %w", err)
	}
	return records, nil
}
