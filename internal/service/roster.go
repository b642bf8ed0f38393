package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stosento/stephenruns/internal/domain"
	"github.com/stosento/stephenruns/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RosterService owns participant membership for events and runs. The
// persisted rows are the source of truth; webhook announcements are
// advisory and never affect the outcome of a mutation.
type RosterService struct {
	eventRepo       ports.EventRepo
	runRepo         ports.RunRepo
	participantRepo ports.ParticipantRepo
	notifier        ports.RosterNotifier
	logger          logger.Logger
}

func NewRosterService(
	eventRepo ports.EventRepo,
	runRepo ports.RunRepo,
	participantRepo ports.ParticipantRepo,
	notifier ports.RosterNotifier,
	logger logger.Logger,
) *RosterService {
	return &RosterService{
		eventRepo:       eventRepo,
		runRepo:         runRepo,
		participantRepo: participantRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Events

func (s *RosterService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid event type %q", domain.ErrValidation, input.Type)
	}

	event := &domain.Event{
		ID:           input.ID,
		Name:         input.Name,
		Date:         input.Date,
		Type:         input.Type,
		Participants: []domain.Participant{},
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("type", string(event.Type)),
	)

	return event, nil
}

func (s *RosterService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.Participants, err = s.participantRepo.ListByEvent(ctx, id); err != nil {
		return nil, fmt.Errorf("load event roster: %w", err)
	}

	return event, nil
}

func (s *RosterService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		if e.Participants, err = s.participantRepo.ListByEvent(ctx, e.ID); err != nil {
			return nil, fmt.Errorf("load event roster: %w", err)
		}
	}

	return events, nil
}

// Runs

func (s *RosterService) CreateRun(ctx context.Context, input domain.CreateRunInput) (*domain.Run, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	run := &domain.Run{
		ID:           input.ID,
		Name:         input.Name,
		Schedule:     input.Schedule,
		Location:     input.Location,
		Participants: []domain.Participant{},
	}

	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	return run, nil
}

func (s *RosterService) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if run.Participants, err = s.participantRepo.ListByRun(ctx, id); err != nil {
		return nil, fmt.Errorf("load run roster: %w", err)
	}

	return run, nil
}

func (s *RosterService) ListRuns(ctx context.Context) ([]*domain.Run, error) {
	runs, err := s.runRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, run := range runs {
		if run.Participants, err = s.participantRepo.ListByRun(ctx, run.ID); err != nil {
			return nil, fmt.Errorf("load run roster: %w", err)
		}
	}

	return runs, nil
}

// Participants

// AddEventParticipant inserts a membership row and returns the event with
// its full roster. Duplicate joins for the same user are allowed and
// create distinct rows.
func (s *RosterService) AddEventParticipant(ctx context.Context, eventID, userID, name string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	participant := &domain.Participant{
		ID:       uuid.New().String(),
		EventID:  &eventID,
		UserID:   userID,
		Name:     name,
		JoinedAt: time.Now().UTC(),
	}
	if err = s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("add participant: %w", err)
	}

	if event.Participants, err = s.participantRepo.ListByEvent(ctx, eventID); err != nil {
		return nil, fmt.Errorf("load event roster: %w", err)
	}

	s.logger.Info("participant joined event",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	date := event.Date
	go s.dispatch(context.WithoutCancel(ctx), "joined", func(ctx context.Context) error {
		return s.notifier.NotifyParticipantJoined(ctx, event.Name, displayName(participant), &date)
	})

	return event, nil
}

// RemoveEventParticipant deletes every membership row for the user on this
// event. Removing a user that never joined is a no-op success.
func (s *RosterService) RemoveEventParticipant(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	removed, err := s.participantRepo.DeleteByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("remove participant: %w", err)
	}

	if event.Participants, err = s.participantRepo.ListByEvent(ctx, eventID); err != nil {
		return nil, fmt.Errorf("load event roster: %w", err)
	}

	s.logger.Info("participant left event",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("removed", len(removed)),
	)

	if len(removed) > 0 {
		name := displayName(&removed[0])
		date := event.Date
		go s.dispatch(context.WithoutCancel(ctx), "left", func(ctx context.Context) error {
			return s.notifier.NotifyParticipantLeft(ctx, event.Name, name, &date)
		})
	}

	return event, nil
}

func (s *RosterService) AddRunParticipant(ctx context.Context, runID, userID, name string) (*domain.Run, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("check run: %w", err)
	}

	participant := &domain.Participant{
		ID:       uuid.New().String(),
		RunID:    &runID,
		UserID:   userID,
		Name:     name,
		JoinedAt: time.Now().UTC(),
	}
	if err = s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("add participant: %w", err)
	}

	if run.Participants, err = s.participantRepo.ListByRun(ctx, runID); err != nil {
		return nil, fmt.Errorf("load run roster: %w", err)
	}

	go s.dispatch(context.WithoutCancel(ctx), "joined", func(ctx context.Context) error {
		return s.notifier.NotifyParticipantJoined(ctx, run.Name, displayName(participant), nil)
	})

	return run, nil
}

func (s *RosterService) RemoveRunParticipant(ctx context.Context, runID, userID string) (*domain.Run, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("check run: %w", err)
	}

	removed, err := s.participantRepo.DeleteByRunAndUser(ctx, runID, userID)
	if err != nil {
		return nil, fmt.Errorf("remove participant: %w", err)
	}

	if run.Participants, err = s.participantRepo.ListByRun(ctx, runID); err != nil {
		return nil, fmt.Errorf("load run roster: %w", err)
	}

	if len(removed) > 0 {
		name := displayName(&removed[0])
		go s.dispatch(context.WithoutCancel(ctx), "left", func(ctx context.Context) error {
			return s.notifier.NotifyParticipantLeft(ctx, run.Name, name, nil)
		})
	}

	return run, nil
}

// ListEventParticipants is a pass-through query: an unknown event id yields
// an empty roster, not a not-found error.
func (s *RosterService) ListEventParticipants(ctx context.Context, eventID string) ([]domain.Participant, error) {
	return s.participantRepo.ListByEvent(ctx, eventID)
}

func (s *RosterService) ListRunParticipants(ctx context.Context, runID string) ([]domain.Participant, error) {
	return s.participantRepo.ListByRun(ctx, runID)
}

// Reminders

// SendDueReminders claims events starting within the window and announces
// each one. Driven by the scheduler.
func (s *RosterService) SendDueReminders(ctx context.Context, window time.Duration) ([]*domain.Event, error) {
	due, err := s.eventRepo.ClaimDueReminders(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("claim due reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("event reminders due",
			logger.Int("count", len(due)),
		)

		go s.notifyReminders(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *RosterService) notifyReminders(ctx context.Context, events []*domain.Event) {
	for _, e := range events {
		if err := s.notifier.NotifyEventReminder(ctx, e); err != nil {
			s.logger.Error("failed to send event reminder",
				logger.String("event_id", e.ID),
				logger.String("error", err.Error()),
			)
		}
	}
}

// dispatch runs a notification off the request path. Failures are logged
// and dropped; the roster mutation has already committed.
func (s *RosterService) dispatch(ctx context.Context, action string, send func(ctx context.Context) error) {
	if err := send(ctx); err != nil {
		s.logger.Error("failed to send roster notification",
			logger.String("action", action),
			logger.String("error", err.Error()),
		)
	}
}

func displayName(p *domain.Participant) string {
	if p.Name != "" {
		return p.Name
	}
	return p.UserID
}
