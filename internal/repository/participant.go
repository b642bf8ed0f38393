package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stosento/stephenruns/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `INSERT INTO participants (id, event_id, run_id, user_id, name, joined_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.EventID, p.RunID, p.UserID, p.Name, p.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}

	return nil
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error) {
	query := `SELECT id, event_id, run_id, user_id, name, joined_at
			  FROM participants
			  WHERE event_id = $1
			  ORDER BY joined_at DESC`

	return r.list(ctx, query, eventID)
}

func (r *ParticipantRepository) ListByRun(ctx context.Context, runID string) ([]domain.Participant, error) {
	query := `SELECT id, event_id, run_id, user_id, name, joined_at
			  FROM participants
			  WHERE run_id = $1
			  ORDER BY joined_at DESC`

	return r.list(ctx, query, runID)
}

// DeleteByEventAndUser removes every row for the (event, user) pair and
// returns the removed rows. Zero matches is not an error.
func (r *ParticipantRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID string) ([]domain.Participant, error) {
	query := `DELETE FROM participants
			  WHERE event_id = $1 AND user_id = $2
			  RETURNING id, event_id, run_id, user_id, name, joined_at`

	return r.list(ctx, query, eventID, userID)
}

func (r *ParticipantRepository) DeleteByRunAndUser(ctx context.Context, runID, userID string) ([]domain.Participant, error) {
	query := `DELETE FROM participants
			  WHERE run_id = $1 AND user_id = $2
			  RETURNING id, event_id, run_id, user_id, name, joined_at`

	return r.list(ctx, query, runID, userID)
}

func (r *ParticipantRepository) list(ctx context.Context, query string, args ...any) ([]domain.Participant, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Participant, 0)
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.ID, &p.EventID, &p.RunID, &p.UserID, &p.Name, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
