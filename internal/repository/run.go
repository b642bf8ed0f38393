package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stosento/stephenruns/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RunRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRunRepo(db *dbpg.DB) *RunRepository {
	return &RunRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RunRepository) Create(ctx context.Context, run *domain.Run) error {
	query := `INSERT INTO runs (id, name, schedule, location, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		run.ID, run.Name, run.Schedule, run.Location, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrRunExists
		}
		return fmt.Errorf("insert run: %w", err)
	}
	run.CreatedAt = now

	return nil
}

func (r *RunRepository) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	query := `SELECT id, name, schedule, location, created_at
			  FROM runs
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("get run: %w", err)
	}

	var run domain.Run
	if err = row.Scan(&run.ID, &run.Name, &run.Schedule, &run.Location, &run.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}

	return &run, nil
}

func (r *RunRepository) List(ctx context.Context) ([]*domain.Run, error) {
	query := `SELECT id, name, schedule, location, created_at
			  FROM runs
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var res []*domain.Run
	for rows.Next() {
		var run domain.Run
		if err = rows.Scan(&run.ID, &run.Name, &run.Schedule, &run.Location, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		res = append(res, &run)
	}

	return res, rows.Err()
}
