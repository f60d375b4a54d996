// Package checkin performs the forum daily check-in request and classifies its result.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/edgard/nodeseek-signbot/internal/config"
)

// Status is the result class of a check-in.
type Status int

const (
	StatusFailure Status = iota
	StatusSuccess
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

// Outcome is the classified result of one check-in. Reason is set only on failure.
type Outcome struct {
	Status Status
	Reason string
}

// Succeeded reports whether the check-in went through.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

// Client issues check-in requests with a session cookie.
type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a check-in client. A nil httpClient gets a plain client
// with no timeout of its own; callers bound the request through the context.
func NewClient(cfg config.CheckInConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		url:        cfg.URL,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("component", "checkin_client"),
	}
}

// SignIn sends one GET to the check-in endpoint with the given cookie and classifies
// the body. The HTTP status is not inspected: the forum answers 200 for failures too.
func (c *Client) SignIn(ctx context.Context, cookie string) (Outcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cookie", cookie)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The url.Error text repeats the check-in URL, which ends up in the chat report.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return Outcome{}, fmt.Errorf("check-in request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to read check-in response: %w", err)
	}

	outcome := Classify(string(body))
	c.logger.DebugContext(ctx, "Check-in response classified",
		"status_code", resp.StatusCode,
		"body_bytes", len(body),
		"outcome", outcome.Status)

	return outcome, nil
}
