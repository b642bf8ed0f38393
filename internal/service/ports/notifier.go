package ports

import (
	"context"
	"time"

	"github.com/stosento/stephenruns/internal/domain"
)

// RosterNotifier delivers roster announcements to an external channel.
// Callers decide whether to wait: the roster service dispatches in a
// goroutine and only logs failures.
type RosterNotifier interface {
	NotifyParticipantJoined(ctx context.Context, eventName, participantName string, eventDate *time.Time) error
	NotifyParticipantLeft(ctx context.Context, eventName, participantName string, eventDate *time.Time) error
	NotifyEventReminder(ctx context.Context, event *domain.Event) error
}
