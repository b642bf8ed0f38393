package domain

import "time"

type EventType string

const (
	EventTypeSocial   EventType = "SOCIAL"
	EventTypeRace     EventType = "RACE"
	EventTypeTraining EventType = "TRAINING"
)

var EventTypes = []EventType{EventTypeSocial, EventTypeRace, EventTypeTraining}

func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Date         time.Time     `json:"date"`
	Type         EventType     `json:"type"`
	Participants []Participant `json:"participants"`
	CreatedAt    time.Time     `json:"created_at"`
}

type CreateEventInput struct {
	ID   string
	Name string
	Date time.Time
	Type EventType
}
