package domain

import "time"

// Run is a recurring group run. Unlike Event it carries no typed category,
// only a human-readable schedule.
type Run struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Schedule     string        `json:"schedule"`
	Location     string        `json:"location"`
	Participants []Participant `json:"participants"`
	CreatedAt    time.Time     `json:"created_at"`
}

type CreateRunInput struct {
	ID       string
	Name     string
	Schedule string
	Location string
}
