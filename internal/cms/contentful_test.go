package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stosento/stephenruns/internal/config"
	"github.com/stosento/stephenruns/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.ContentfulConfig{
		SpaceID:     "space1",
		AccessToken: "token1",
		Environment: "master",
		Timeout:     5 * time.Second,
	}

	return New(cfg, WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestClient_GetByType_Success(t *testing.T) {
	var gotPath, gotAuth, gotType, gotLimit string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.URL.Query().Get("content_type")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 2,
			"items": [
				{"fields": {"title": "Welcome"}},
				{"fields": {"title": "Route Maps"}}
			]
		}`))
	})

	result, err := client.GetByType(context.Background(), "page", 10)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Entries, 2)
	assert.JSONEq(t, `{"fields": {"title": "Welcome"}}`, string(result.Entries[0]))

	assert.Equal(t, "/spaces/space1/environments/master/entries", gotPath)
	assert.Equal(t, "Bearer token1", gotAuth)
	assert.Equal(t, "page", gotType)
	assert.Equal(t, "10", gotLimit)
}

func TestClient_GetByType_SingleEntryMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0, "items": []}`))
	})

	// limit 1 means "the" entry of this type; none published is a miss
	_, err := client.GetByType(context.Background(), "heroBanner", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestClient_GetByType_EmptyListIsValid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0, "items": []}`))
	})

	result, err := client.GetByType(context.Background(), "announcement", 10)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Entries)
	assert.NotNil(t, result.Entries)
}

func TestClient_GetByType_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	_, err := client.GetByType(context.Background(), "page", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContent)
	assert.NotErrorIs(t, err, domain.ErrContentNotFound)
}

func TestClient_GetByType_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total": `))
	})

	_, err := client.GetByType(context.Background(), "page", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContent)
}
