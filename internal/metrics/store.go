package metrics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Sample is one point on the block-height and transaction-rate charts.
type Sample struct {
	ID        uuid.UUID       `json:"id"`
	Height    int64           `json:"height"`
	TxRate    decimal.Decimal `json:"tx_rate"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store persists chart samples. The interface keeps the poller and the
// API layer testable without a database.
type Store interface {
	InsertSample(ctx context.Context, s Sample) error
	RecentSamples(ctx context.Context, limit int) ([]Sample, error)
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) InsertSample(ctx context.Context, sample Sample) error {
	query := `
		INSERT INTO block_samples (id, height, tx_rate, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.pool.Exec(ctx, query, sample.ID, sample.Height, sample.TxRate, sample.CreatedAt)
	return err
}

func (s *PostgresStore) RecentSamples(ctx context.Context, limit int) ([]Sample, error) {
	query := `
		SELECT id, height, tx_rate, created_at
		FROM block_samples
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	samples := make([]Sample, 0, limit)
	for rows.Next() {
		var sample Sample
		if err := rows.Scan(&sample.ID, &sample.Height, &sample.TxRate, &sample.CreatedAt); err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}
