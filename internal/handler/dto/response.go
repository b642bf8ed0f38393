package dto

import (
	"time"

	"github.com/stosento/stephenruns/internal/domain"
)

type EventResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Date         string                `json:"date"`
	Type         string                `json:"type"`
	Participants []ParticipantResponse `json:"participants"`
	CreatedAt    string                `json:"createdAt"`
}

type RunResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Schedule     string                `json:"schedule,omitempty"`
	Location     string                `json:"location,omitempty"`
	Participants []ParticipantResponse `json:"participants"`
	CreatedAt    string                `json:"createdAt"`
}

type ParticipantResponse struct {
	ID       string  `json:"id"`
	EventID  *string `json:"eventId,omitempty"`
	RunID    *string `json:"runId,omitempty"`
	UserID   string  `json:"userId"`
	Name     string  `json:"name,omitempty"`
	JoinedAt string  `json:"joinedAt"`
}

type NotifyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Date:         e.Date.Format(time.RFC3339),
		Type:         string(e.Type),
		Participants: ToParticipantResponses(e.Participants),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToRunResponse(r *domain.Run) RunResponse {
	return RunResponse{
		ID:           r.ID,
		Name:         r.Name,
		Schedule:     r.Schedule,
		Location:     r.Location,
		Participants: ToParticipantResponses(r.Participants),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:       p.ID,
		EventID:  p.EventID,
		RunID:    p.RunID,
		UserID:   p.UserID,
		Name:     p.Name,
		JoinedAt: p.JoinedAt.Format(time.RFC3339),
	}
}

func ToParticipantResponses(participants []domain.Participant) []ParticipantResponse {
	res := make([]ParticipantResponse, 0, len(participants))
	for i := range participants {
		res = append(res, ToParticipantResponse(&participants[i]))
	}
	return res
}
