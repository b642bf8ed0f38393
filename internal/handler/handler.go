package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stosento/stephenruns/internal/domain"
	"github.com/stosento/stephenruns/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type RosterSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	CreateRun(ctx context.Context, input domain.CreateRunInput) (*domain.Run, error)
	GetRun(ctx context.Context, id string) (*domain.Run, error)
	ListRuns(ctx context.Context) ([]*domain.Run, error)
	AddEventParticipant(ctx context.Context, eventID, userID, name string) (*domain.Event, error)
	RemoveEventParticipant(ctx context.Context, eventID, userID string) (*domain.Event, error)
	ListEventParticipants(ctx context.Context, eventID string) ([]domain.Participant, error)
	AddRunParticipant(ctx context.Context, runID, userID, name string) (*domain.Run, error)
	RemoveRunParticipant(ctx context.Context, runID, userID string) (*domain.Run, error)
	ListRunParticipants(ctx context.Context, runID string) ([]domain.Participant, error)
}

type CalendarSvc interface {
	ListEntries(ctx context.Context, year, month int) []domain.CalendarEntry
}

type ContentSvc interface {
	GetByType(ctx context.Context, contentType string, limit int) (*domain.ContentResult, error)
}

type NotifySvc interface {
	NotifyParticipantJoined(ctx context.Context, eventName, participantName string, eventDate *time.Time) error
	NotifyParticipantLeft(ctx context.Context, eventName, participantName string, eventDate *time.Time) error
}

type Handler struct {
	roster   RosterSvc
	calendar CalendarSvc
	content  ContentSvc
	notifier NotifySvc
}

func NewHandler(roster RosterSvc, calendar CalendarSvc, content ContentSvc, notifier NotifySvc) *Handler {
	return &Handler{
		roster:   roster,
		calendar: calendar,
		content:  content,
		notifier: notifier,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		ID:   req.ID,
		Name: req.Name,
		Date: date,
		Type: domain.EventType(req.Type),
	}

	event, err := h.roster.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.roster.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.roster.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Runs

func (h *Handler) CreateRun(c *ginext.Context) {
	var req dto.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateRunInput{
		ID:       req.ID,
		Name:     req.Name,
		Schedule: req.Schedule,
		Location: req.Location,
	}

	run, err := h.roster.CreateRun(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRunResponse(run))
}

func (h *Handler) GetRun(c *ginext.Context) {
	run, err := h.roster.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

func (h *Handler) ListRuns(c *ginext.Context) {
	runs, err := h.roster.ListRuns(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RunResponse, 0, len(runs))
	for _, r := range runs {
		resp = append(resp, dto.ToRunResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Participants

func (h *Handler) ListEventParticipants(c *ginext.Context) {
	participants, err := h.roster.ListEventParticipants(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponses(participants))
}

func (h *Handler) AddEventParticipant(c *ginext.Context) {
	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.roster.AddEventParticipant(c.Request.Context(), c.Param("id"), req.UserID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) RemoveEventParticipant(c *ginext.Context) {
	var req dto.RemoveParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.roster.RemoveEventParticipant(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// RemoveEventParticipantByID is the path-parameter variant of removal.
func (h *Handler) RemoveEventParticipantByID(c *ginext.Context) {
	event, err := h.roster.RemoveEventParticipant(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListRunParticipants(c *ginext.Context) {
	participants, err := h.roster.ListRunParticipants(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponses(participants))
}

func (h *Handler) AddRunParticipant(c *ginext.Context) {
	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	run, err := h.roster.AddRunParticipant(c.Request.Context(), c.Param("id"), req.UserID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

func (h *Handler) RemoveRunParticipant(c *ginext.Context) {
	var req dto.RemoveParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	run, err := h.roster.RemoveRunParticipant(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

// Calendar

func (h *Handler) ListCalendar(c *ginext.Context) {
	now := time.Now()

	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid year"})
		return
	}
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid month"})
		return
	}

	c.JSON(http.StatusOK, h.calendar.ListEntries(c.Request.Context(), year, month))
}

// CMS

func (h *Handler) GetContent(c *ginext.Context) {
	contentType := c.Query("type")
	if contentType == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "content type parameter is required"})
		return
	}

	limit, err := queryInt(c, "limit", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
		return
	}

	result, err := h.content.GetByType(c.Request.Context(), contentType, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// limit 1 keeps the single-object contract, anything else is a list
	if limit == 1 {
		c.JSON(http.StatusOK, result.Entries[0])
		return
	}

	c.JSON(http.StatusOK, result.Entries)
}

// Notifications

// Notify delivers a roster announcement synchronously. Delivery failure is
// reported in the body with a 200 status; this endpoint's contract never
// maps webhook failures to non-2xx codes.
func (h *Handler) Notify(c *ginext.Context) {
	var req dto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var eventDate *time.Time
	if req.EventStart != "" {
		parsed, err := time.Parse(time.RFC3339, req.EventStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid eventStart format, expected RFC3339",
			})
			return
		}
		eventDate = &parsed
	}

	ctx := c.Request.Context()
	var err error
	switch req.ActionType {
	case "ADD":
		err = h.notifier.NotifyParticipantJoined(ctx, req.EventName, req.ParticipantName, eventDate)
	case "REMOVE":
		err = h.notifier.NotifyParticipantLeft(ctx, req.EventName, req.ParticipantName, eventDate)
	default:
		c.JSON(http.StatusOK, dto.NotifyResponse{Success: false, Error: "unknown action type"})
		return
	}

	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusOK, dto.NotifyResponse{Success: false, Error: "failed to send notification"})
		return
	}

	c.JSON(http.StatusOK, dto.NotifyResponse{Success: true})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRunNotFound),
		errors.Is(err, domain.ErrContentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventExists),
		errors.Is(err, domain.ErrRunExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func queryInt(c *ginext.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
