// Package calendar reads the club's public schedule from the Google
// Calendar v3 API using a read-only service account.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/stosento/stephenruns/internal/config"
	"github.com/stosento/stephenruns/internal/domain"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

const (
	defaultBaseURL = "https://www.googleapis.com/calendar/v3"
	readOnlyScope  = "https://www.googleapis.com/auth/calendar.readonly"
)

// Client fetches calendar entries. It is best-effort by contract: every
// failure is logged and surfaces to callers as an empty result, so an
// empty slice means "no data or provider unavailable".
type Client struct {
	httpClient *http.Client
	baseURL    string
	calendarID string
	logger     logger.Logger
}

type Option func(*Client)

// WithHTTPClient overrides the authenticated client, used in tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func WithBaseURL(u string) Option {
	return func(cl *Client) { cl.baseURL = u }
}

func New(cfg config.CalendarConfig, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		calendarID: cfg.CalendarID,
		logger:     log,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		if cfg.ClientEmail == "" || cfg.PrivateKey == "" || cfg.CalendarID == "" {
			log.Warn("google calendar credentials are not set, calendar feed disabled")
			return c
		}

		conf := &jwt.Config{
			Email:      cfg.ClientEmail,
			PrivateKey: []byte(cfg.NormalizedPrivateKey()),
			Scopes:     []string{readOnlyScope},
			TokenURL:   google.JWTTokenURL,
		}
		c.httpClient = conf.Client(context.Background())
		c.httpClient.Timeout = cfg.Timeout
	}

	return c
}

type listResponse struct {
	Items []domain.CalendarEntry `json:"items"`
}

// ListEntries returns the provider's entries for the window anchored at
// (year, month), expanded into single instances and ordered by start time.
//
// The window deliberately matches the long-observed production behavior:
// it opens on the first day of the month and closes on the first day of
// the following month one year later, so a month view also pulls in the
// year ahead.
func (c *Client) ListEntries(ctx context.Context, year, month int) []domain.CalendarEntry {
	if c.httpClient == nil {
		return []domain.CalendarEntry{}
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)

	entries, err := c.fetch(ctx, start, end)
	if err != nil {
		c.logger.Error("failed to fetch calendar entries",
			logger.Int("year", year),
			logger.Int("month", month),
			logger.String("error", err.Error()),
		)
		return []domain.CalendarEntry{}
	}

	return entries
}

func (c *Client) fetch(ctx context.Context, start, end time.Time) ([]domain.CalendarEntry, error) {
	q := url.Values{}
	q.Set("timeMin", start.Format(time.RFC3339))
	q.Set("timeMax", end.Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s",
		c.baseURL, url.PathEscape(c.calendarID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar responded with status %d", resp.StatusCode)
	}

	var body listResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode calendar response: %w", err)
	}

	if body.Items == nil {
		return []domain.CalendarEntry{}, nil
	}

	return body.Items, nil
}
