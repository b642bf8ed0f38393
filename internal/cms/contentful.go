// Package cms reads published entries from the Contentful delivery API.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stosento/stephenruns/internal/config"
	"github.com/stosento/stephenruns/internal/domain"
)

const defaultBaseURL = "https://cdn.contentful.com"

type Client struct {
	httpClient  *http.Client
	baseURL     string
	spaceID     string
	environment string
	accessToken string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func WithBaseURL(u string) Option {
	return func(cl *Client) { cl.baseURL = u }
}

func New(cfg config.ContentfulConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		spaceID:     cfg.SpaceID,
		environment: cfg.Environment,
		accessToken: cfg.AccessToken,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return c
}

type entriesResponse struct {
	Total int               `json:"total"`
	Items []json.RawMessage `json:"items"`
}

// GetByType returns entries of one content type. With limit 1 the caller
// expects a single entry and an empty result is domain.ErrContentNotFound;
// with any other limit an empty list is a valid answer. Transport and auth
// failures wrap domain.ErrContent.
func (c *Client) GetByType(ctx context.Context, contentType string, limit int) (*domain.ContentResult, error) {
	q := url.Values{}
	q.Set("content_type", contentType)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, url.PathEscape(c.spaceID), url.PathEscape(c.environment), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrContent, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContent, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: cms responded with status %d", domain.ErrContent, resp.StatusCode)
	}

	var body entriesResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrContent, err)
	}

	if limit == 1 && len(body.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrContentNotFound, contentType)
	}

	if body.Items == nil {
		body.Items = []json.RawMessage{}
	}

	return &domain.ContentResult{Total: body.Total, Entries: body.Items}, nil
}
