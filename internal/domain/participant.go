package domain

import "time"

// Participant is a user's membership record in exactly one Event or Run.
type Participant struct {
	ID       string    `json:"id"`
	EventID  *string   `json:"event_id,omitempty"`
	RunID    *string   `json:"run_id,omitempty"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}
