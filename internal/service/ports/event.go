package ports

import (
	"context"
	"time"

	"github.com/stosento/stephenruns/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ClaimDueReminders(ctx context.Context, window time.Duration) ([]*domain.Event, error)
}
