package ports

import (
	"context"

	"github.com/stosento/stephenruns/internal/domain"
)

type ParticipantRepo interface {
	Create(ctx context.Context, p *domain.Participant) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error)
	ListByRun(ctx context.Context, runID string) ([]domain.Participant, error)
	DeleteByEventAndUser(ctx context.Context, eventID, userID string) ([]domain.Participant, error)
	DeleteByRunAndUser(ctx context.Context, runID, userID string) ([]domain.Participant, error)
}
