package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"

	"github.com/velora-studio/booking-api/pkg/circuitbreaker"
)

// Client talks to a Stripe-style payment API over form-encoded HTTP.
// Calls run through a circuit breaker so a down processor fails fast
// instead of tying up booking requests.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "payment",
			MaxFailures: 5,
			Timeout:     30 * time.Second,
		}),
	}
}

func (c *Client) CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", strings.ToLower(currency))

	var intent Intent
	if err := c.do(ctx, http.MethodPost, "/v1/payment_intents", form, &intent); err != nil {
		return nil, apperrors.External("payment", err)
	}
	return &intent, nil
}

func (c *Client) Confirm(ctx context.Context, intentID string) (string, error) {
	var intent Intent
	path := "/v1/payment_intents/" + url.PathEscape(intentID) + "/confirm"
	if err := c.do(ctx, http.MethodPost, path, url.Values{}, &intent); err != nil {
		return "", apperrors.External("payment", err)
	}
	return intent.Status, nil
}

func (c *Client) Refund(ctx context.Context, intentID string, amountCents int64) (string, error) {
	form := url.Values{}
	form.Set("payment_intent", intentID)
	form.Set("amount", strconv.FormatInt(amountCents, 10))

	var result struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/refunds", form, &result); err != nil {
		return "", apperrors.External("payment", err)
	}
	return result.Status, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	return c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, strings.NewReader(form.Encode()))
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.secretKey)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("payment request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read payment response: %w", err)
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("payment API returned %d: %s", resp.StatusCode, string(body))
		}
		if out != nil {
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("failed to decode payment response: %w", err)
			}
		}
		return nil
	})
}
