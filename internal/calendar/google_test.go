package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stosento/stephenruns/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(
		config.CalendarConfig{CalendarID: "club@example.com"},
		newTestLogger(t),
		WithHTTPClient(srv.Client()),
		WithBaseURL(srv.URL),
	)
}

func TestClient_ListEntries_Success(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"timeMin":      r.URL.Query().Get("timeMin"),
			"timeMax":      r.URL.Query().Get("timeMax"),
			"singleEvents": r.URL.Query().Get("singleEvents"),
			"orderBy":      r.URL.Query().Get("orderBy"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": "ev1",
					"summary": "Saturday Long Run",
					"location": "Riverside Park",
					"start": {"dateTime": "2025-03-08T08:00:00-05:00"},
					"end": {"dateTime": "2025-03-08T10:00:00-05:00"}
				},
				{
					"id": "ev2",
					"summary": "Spring 5K",
					"start": {"date": "2025-03-14"},
					"end": {"date": "2025-03-15"}
				}
			]
		}`))
	})

	entries := client.ListEntries(context.Background(), 2025, 3)

	require.Len(t, entries, 2)
	assert.Equal(t, "Saturday Long Run", entries[0].Summary)
	assert.Equal(t, "2025-03-08T08:00:00-05:00", entries[0].Start.DateTime)
	assert.Equal(t, "2025-03-14", entries[1].Start.Date)

	// window opens on the first of the requested month and closes on the
	// first of the following month one year later
	assert.Equal(t, "2025-03-01T00:00:00Z", gotQuery["timeMin"])
	assert.Equal(t, "2026-04-01T00:00:00Z", gotQuery["timeMax"])
	assert.Equal(t, "true", gotQuery["singleEvents"])
	assert.Equal(t, "startTime", gotQuery["orderBy"])
}

func TestClient_ListEntries_DecemberWrapsToJanuary(t *testing.T) {
	var timeMax string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		timeMax = r.URL.Query().Get("timeMax")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	entries := client.ListEntries(context.Background(), 2025, 12)

	assert.Empty(t, entries)
	assert.Equal(t, "2027-01-01T00:00:00Z", timeMax)
}

func TestClient_ListEntries_ProviderErrorYieldsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	entries := client.ListEntries(context.Background(), 2025, 3)

	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestClient_ListEntries_MalformedBodyYieldsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	})

	entries := client.ListEntries(context.Background(), 2025, 3)

	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestClient_ListEntries_MissingItemsYieldsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	entries := client.ListEntries(context.Background(), 2025, 3)

	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestNew_WithoutCredentialsIsDisabled(t *testing.T) {
	client := New(config.CalendarConfig{}, newTestLogger(t))

	entries := client.ListEntries(context.Background(), 2025, 3)

	require.NotNil(t, entries)
	assert.Empty(t, entries)
}
