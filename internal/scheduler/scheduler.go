package scheduler

import (
	"context"
	"time"

	"github.com/stosento/stephenruns/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendDueReminders(ctx context.Context, window time.Duration) ([]*domain.Event, error)
}

// Scheduler periodically announces events that are about to start.
type Scheduler struct {
	rosterService reminderSender
	interval      time.Duration
	window        time.Duration
	logger        logger.Logger
}

func New(
	rosterService reminderSender,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		rosterService: rosterService,
		interval:      interval,
		window:        window,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("reminder_window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	due, err := s.rosterService.SendDueReminders(ctx, s.window)
	if err != nil {
		s.logger.Error("failed to send event reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range due {
		s.logger.Info("event reminder sent",
			logger.String("event_id", e.ID),
			logger.String("name", e.Name),
		)
	}
}
