package calendarsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"

	"github.com/velora-studio/booking-api/internal/model"
)

// Client mirrors bookings to an external calendar service over JSON HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	calendarID string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, calendarID string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		calendarID: calendarID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type eventPayload struct {
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Notes   string `json:"notes,omitempty"`
}

func eventFromBooking(booking *model.Booking) eventPayload {
	names := make([]string, 0, len(booking.Services))
	for _, svc := range booking.Services {
		names = append(names, svc.Name)
	}
	return eventPayload{
		Summary: strings.Join(names, ", "),
		Date:    booking.Date.String(),
		Start:   booking.StartTime.String(),
		End:     booking.EndTime.String(),
		Notes:   booking.Notes,
	}
}

func (c *Client) CreateEvent(ctx context.Context, booking *model.Booking) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	path := "/calendars/" + c.calendarID + "/events"
	if err := c.do(ctx, http.MethodPost, path, eventFromBooking(booking), &created); err != nil {
		return "", apperrors.External("calendar", err)
	}
	return created.ID, nil
}

func (c *Client) UpdateEvent(ctx context.Context, eventID string, booking *model.Booking) error {
	path := "/calendars/" + c.calendarID + "/events/" + eventID
	if err := c.do(ctx, http.MethodPut, path, eventFromBooking(booking), nil); err != nil {
		return apperrors.External("calendar", err)
	}
	return nil
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	path := "/calendars/" + c.calendarID + "/events/" + eventID
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return apperrors.External("calendar", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read calendar response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("calendar API returned %d: %s", resp.StatusCode, string(respBody))
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode calendar response: %w", err)
		}
	}
	return nil
}
