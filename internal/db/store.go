package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smarthome_predictor/backend/internal/models"
)

// Store keeps a history of served predictions. It is optional plumbing: the
// prediction pipeline itself never touches the database.
type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS predictions (
			id UUID PRIMARY KEY,
			location TEXT NOT NULL,
			zone TEXT NOT NULL,
			predicted_price BIGINT NOT NULL,
			category TEXT NOT NULL,
			uncertainty DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	return err
}

func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) InsertPrediction(ctx context.Context, in models.PropertyInput, res models.PredictionResult) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO predictions (id, location, zone, predicted_price, category, uncertainty, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.NewString(), in.Location, res.Zone, res.PredictedPrice, res.Category,
		res.Uncertainty, time.Now().UTC())
	return err
}

func (s *Store) RecentPredictions(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, location, zone, predicted_price, category, uncertainty, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Location, &e.Zone, &e.PredictedPrice,
			&e.Category, &e.Uncertainty, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) PurgeHistory(ctx context.Context) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `TRUNCATE predictions`)
		return err
	})
}
