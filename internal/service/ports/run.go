package ports

import (
	"context"

	"github.com/stosento/stephenruns/internal/domain"
)

type RunRepo interface {
	Create(ctx context.Context, run *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	List(ctx context.Context) ([]*domain.Run, error)
}
