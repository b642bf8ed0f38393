package dto

type CreateEventRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type CreateRunRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Schedule string `json:"schedule"`
	Location string `json:"location"`
}

type AddParticipantRequest struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name"`
}

type RemoveParticipantRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type NotifyRequest struct {
	EventName       string `json:"eventName" binding:"required"`
	ParticipantName string `json:"participantName" binding:"required"`
	EventStart      string `json:"eventStart"`
	ActionType      string `json:"actionType" binding:"required"`
}
