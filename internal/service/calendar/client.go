// Package calendar pushes bookings to an external calendar API.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
)

// Event is the payload pushed for a booking. Description is HTML.
type Event struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type createEventResponse struct {
	ID string `json:"id"`
}

type Client struct {
	cfg        *config.CalendarConfig
	httpClient *http.Client
}

func NewClient(cfg *config.CalendarConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

func (c *Client) eventsURL() string {
	return fmt.Sprintf("%s/calendars/%s/events", strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.CalendarID))
}

// CreateEvent returns the provider's event id
func (c *Client) CreateEvent(ctx context.Context, event Event) (string, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal calendar event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.eventsURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build calendar request: %w", err)
	}
	c.setHeaders(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("calendar API returned status %d", res.StatusCode)
	}

	var created createEventResponse
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode calendar response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("calendar API returned no event id")
	}
	return created.ID, nil
}

// DeleteEvent treats an already-missing event as deleted
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.eventsURL()+"/"+url.PathEscape(eventID), nil)
	if err != nil {
		return fmt.Errorf("failed to build calendar request: %w", err)
	}
	c.setHeaders(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound, http.StatusGone:
		return nil
	default:
		return fmt.Errorf("calendar API returned status %d", res.StatusCode)
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
}
