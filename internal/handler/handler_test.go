package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stosento/stephenruns/internal/domain"
	"github.com/stosento/stephenruns/internal/handler/dto"
	hmocks "github.com/stosento/stephenruns/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockRosterSvc, *hmocks.MockCalendarSvc, *hmocks.MockContentSvc, *hmocks.MockNotifySvc, http.Handler) {
	t.Helper()
	rosterSvc := hmocks.NewMockRosterSvc(t)
	calendarSvc := hmocks.NewMockCalendarSvc(t)
	contentSvc := hmocks.NewMockContentSvc(t)
	notifySvc := hmocks.NewMockNotifySvc(t)

	h := NewHandler(rosterSvc, calendarSvc, contentSvc, notifySvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/participants", h.ListEventParticipants)
		api.POST("/events/:id/participants", h.AddEventParticipant)
		api.DELETE("/events/:id/participants", h.RemoveEventParticipant)
		api.DELETE("/events/:id/participants/:userId", h.RemoveEventParticipantByID)
		api.POST("/runs", h.CreateRun)
		api.GET("/runs", h.ListRuns)
		api.GET("/runs/:id", h.GetRun)
		api.GET("/runs/:id/participants", h.ListRunParticipants)
		api.POST("/runs/:id/participants", h.AddRunParticipant)
		api.DELETE("/runs/:id/participants", h.RemoveRunParticipant)
		api.GET("/calendar", h.ListCalendar)
		api.GET("/cms", h.GetContent)
		api.POST("/discord-notify", h.Notify)
	}

	return rosterSvc, calendarSvc, contentSvc, notifySvc, r
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	date := time.Now().Add(72 * time.Hour)
	event := &domain.Event{
		ID:           "spring-5k",
		Name:         "Spring 5K",
		Date:         date,
		Type:         domain.EventTypeRace,
		Participants: []domain.Participant{},
		CreatedAt:    time.Now(),
	}

	rosterSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		ID:   "spring-5k",
		Name: "Spring 5K",
		Date: date.Format(time.RFC3339),
		Type: "RACE",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "spring-5k", resp.ID)
	assert.Equal(t, "RACE", resp.Type)
	assert.NotNil(t, resp.Participants)
	assert.Empty(t, resp.Participants)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"id":"spring-5k"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"id":"spring-5k","name":"Spring 5K","date":"not-a-date","type":"RACE"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidType(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	rosterSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.CreateEventRequest{
		ID:   "mystery",
		Name: "Mystery Meetup",
		Date: time.Now().Format(time.RFC3339),
		Type: "PARTY",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_Conflict(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	rosterSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(nil, domain.ErrEventExists)

	body, _ := json.Marshal(dto.CreateEventRequest{
		ID:   "spring-5k",
		Name: "Spring 5K",
		Date: time.Now().Format(time.RFC3339),
		Type: "RACE",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	eventID := "spring-5k"
	event := &domain.Event{
		ID:   eventID,
		Name: "Spring 5K",
		Date: time.Now(),
		Type: domain.EventTypeRace,
		Participants: []domain.Participant{
			{ID: "p1", UserID: "u1", Name: "Alex", JoinedAt: time.Now()},
		},
		CreatedAt: time.Now(),
	}
	rosterSvc.EXPECT().GetEvent(mock.Anything, eventID).Return(event, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Participants, 1)
	assert.Equal(t, "u1", resp.Participants[0].UserID)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	rosterSvc.EXPECT().GetEvent(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Name: "Event 1", Date: time.Now(), CreatedAt: time.Now()},
		{ID: "e2", Name: "Event 2", Date: time.Now(), CreatedAt: time.Now()},
	}
	rosterSvc.EXPECT().ListEvents(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Runs ---

func TestHandler_CreateRun_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	run := &domain.Run{
		ID:           "saturday-long",
		Name:         "Saturday Long Run",
		Schedule:     "Saturdays 8:00",
		Location:     "Riverside Park",
		Participants: []domain.Participant{},
		CreatedAt:    time.Now(),
	}
	rosterSvc.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(run, nil)

	body, _ := json.Marshal(dto.CreateRunRequest{
		ID:       "saturday-long",
		Name:     "Saturday Long Run",
		Schedule: "Saturdays 8:00",
		Location: "Riverside Park",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/runs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Saturday Long Run", resp.Name)
}

func TestHandler_GetRun_NotFound(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	rosterSvc.EXPECT().GetRun(mock.Anything, "missing").Return(nil, domain.ErrRunNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/runs/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Participants ---

func TestHandler_AddEventParticipant_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	event := &domain.Event{
		ID:   "spring-5k",
		Name: "Spring 5K",
		Date: time.Now(),
		Participants: []domain.Participant{
			{ID: "p1", UserID: "u1", Name: "Alex", JoinedAt: time.Now()},
		},
		CreatedAt: time.Now(),
	}
	rosterSvc.EXPECT().AddEventParticipant(mock.Anything, "spring-5k", "u1", "Alex").Return(event, nil)

	body, _ := json.Marshal(dto.AddParticipantRequest{UserID: "u1", Name: "Alex"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/spring-5k/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Participants, 1)
}

func TestHandler_AddEventParticipant_MissingUserID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Alex"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/spring-5k/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddEventParticipant_EventNotFound(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	rosterSvc.EXPECT().AddEventParticipant(mock.Anything, "missing", "u1", "").Return(nil, domain.ErrEventNotFound)

	body, _ := json.Marshal(dto.AddParticipantRequest{UserID: "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/missing/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RemoveEventParticipant_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	event := &domain.Event{
		ID:           "spring-5k",
		Name:         "Spring 5K",
		Date:         time.Now(),
		Participants: []domain.Participant{},
		CreatedAt:    time.Now(),
	}
	rosterSvc.EXPECT().RemoveEventParticipant(mock.Anything, "spring-5k", "u1").Return(event, nil)

	body, _ := json.Marshal(dto.RemoveParticipantRequest{UserID: "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/spring-5k/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Participants)
}

func TestHandler_RemoveEventParticipantByID_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	event := &domain.Event{
		ID:           "spring-5k",
		Name:         "Spring 5K",
		Date:         time.Now(),
		Participants: []domain.Participant{},
		CreatedAt:    time.Now(),
	}
	rosterSvc.EXPECT().RemoveEventParticipant(mock.Anything, "spring-5k", "u1").Return(event, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/spring-5k/participants/u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListEventParticipants_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	participants := []domain.Participant{
		{ID: "p2", UserID: "u2", JoinedAt: time.Now()},
		{ID: "p1", UserID: "u1", JoinedAt: time.Now().Add(-time.Hour)},
	}
	rosterSvc.EXPECT().ListEventParticipants(mock.Anything, "spring-5k").Return(participants, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/spring-5k/participants", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ParticipantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "p2", resp[0].ID)
}

func TestHandler_AddRunParticipant_Success(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	run := &domain.Run{
		ID:   "saturday-long",
		Name: "Saturday Long Run",
		Participants: []domain.Participant{
			{ID: "p1", UserID: "u1", JoinedAt: time.Now()},
		},
		CreatedAt: time.Now(),
	}
	rosterSvc.EXPECT().AddRunParticipant(mock.Anything, "saturday-long", "u1", "").Return(run, nil)

	body, _ := json.Marshal(dto.AddParticipantRequest{UserID: "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/runs/saturday-long/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Participants, 1)
}

// --- Calendar ---

func TestHandler_ListCalendar_Success(t *testing.T) {
	_, calendarSvc, _, _, r := setupRouter(t)

	entries := []domain.CalendarEntry{
		{ID: "ev1", Summary: "Saturday Long Run"},
	}
	calendarSvc.EXPECT().ListEntries(mock.Anything, 2025, 3).Return(entries)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar?year=2025&month=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []domain.CalendarEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListCalendar_DefaultsToCurrentMonth(t *testing.T) {
	_, calendarSvc, _, _, r := setupRouter(t)

	now := time.Now()
	calendarSvc.EXPECT().ListEntries(mock.Anything, now.Year(), int(now.Month())).Return([]domain.CalendarEntry{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestHandler_ListCalendar_InvalidYear(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar?year=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- CMS ---

func TestHandler_GetContent_SingleEntry(t *testing.T) {
	_, _, contentSvc, _, r := setupRouter(t)

	result := &domain.ContentResult{
		Total:   1,
		Entries: []json.RawMessage{json.RawMessage(`{"fields":{"title":"Welcome"}}`)},
	}
	contentSvc.EXPECT().GetByType(mock.Anything, "heroBanner", 1).Return(result, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cms?type=heroBanner", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fields":{"title":"Welcome"}}`, w.Body.String())
}

func TestHandler_GetContent_List(t *testing.T) {
	_, _, contentSvc, _, r := setupRouter(t)

	result := &domain.ContentResult{
		Total: 2,
		Entries: []json.RawMessage{
			json.RawMessage(`{"fields":{"title":"A"}}`),
			json.RawMessage(`{"fields":{"title":"B"}}`),
		},
	}
	contentSvc.EXPECT().GetByType(mock.Anything, "page", 10).Return(result, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cms?type=page&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetContent_MissingType(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetContent_NotFound(t *testing.T) {
	_, _, contentSvc, _, r := setupRouter(t)

	contentSvc.EXPECT().GetByType(mock.Anything, "heroBanner", 1).Return(nil, domain.ErrContentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cms?type=heroBanner", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Notifications ---

func TestHandler_Notify_Add(t *testing.T) {
	_, _, _, notifySvc, r := setupRouter(t)

	notifySvc.EXPECT().NotifyParticipantJoined(mock.Anything, "Spring 5K", "Alex", mock.Anything).Return(nil)

	body, _ := json.Marshal(dto.NotifyRequest{
		EventName:       "Spring 5K",
		ParticipantName: "Alex",
		EventStart:      "2025-03-14T18:00:00Z",
		ActionType:      "ADD",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/discord-notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NotifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandler_Notify_Remove(t *testing.T) {
	_, _, _, notifySvc, r := setupRouter(t)

	notifySvc.EXPECT().NotifyParticipantLeft(mock.Anything, "Spring 5K", "Alex", (*time.Time)(nil)).Return(nil)

	body, _ := json.Marshal(dto.NotifyRequest{
		EventName:       "Spring 5K",
		ParticipantName: "Alex",
		ActionType:      "REMOVE",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/discord-notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NotifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandler_Notify_DeliveryFailureStillOK(t *testing.T) {
	_, _, _, notifySvc, r := setupRouter(t)

	notifySvc.EXPECT().NotifyParticipantJoined(mock.Anything, "Spring 5K", "Alex", mock.Anything).
		Return(errors.New("webhook unreachable"))

	body, _ := json.Marshal(dto.NotifyRequest{
		EventName:       "Spring 5K",
		ParticipantName: "Alex",
		ActionType:      "ADD",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/discord-notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// delivery failures are reported in the body, never as a non-2xx code
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NotifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "failed to send notification", resp.Error)
}

func TestHandler_Notify_UnknownAction(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.NotifyRequest{
		EventName:       "Spring 5K",
		ParticipantName: "Alex",
		ActionType:      "PING",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/discord-notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NotifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestHandler_Notify_MissingFields(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"actionType":"ADD"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/discord-notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	rosterSvc, _, _, _, r := setupRouter(t)

	rosterSvc.EXPECT().GetEvent(mock.Anything, "spring-5k").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/spring-5k", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
