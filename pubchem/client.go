package pubchem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/molbridge/molbridge/pugrest"
)

// DefaultBaseURL is the production PUG REST endpoint.
const DefaultBaseURL = pugrest.BaseURL

// Client executes declarative pugrest requests against the PubChem
// API, retrying throttle and availability failures. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	userAgent  string
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a new PubChem client.
func NewClient(logger zerolog.Logger, opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		userAgent:  options.userAgent,
		maxRetries: options.maxRetries,
		retryDelay: options.retryDelay,
	}
}

// retryableStatus reports whether a status code is worth another
// attempt. Only throttling and transient upstream unavailability
// qualify; everything else is either success or a caller error that
// will not improve on its own.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Do resolves and executes a request, returning the raw response
// body. Retryable statuses are re-attempted up to the configured
// maximum with linearly growing pauses; transport failures and
// timeouts fail immediately. A fault document in the body is turned
// into a *FaultError even when the status code says success.
func (c *Client) Do(ctx context.Context, req pugrest.Request) ([]byte, error) {
	resolved, err := req.Resolve()
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, resolved)
}

func (c *Client) execute(ctx context.Context, resolved *pugrest.ResolvedRequest) ([]byte, error) {
	url := resolved.URL(c.baseURL)
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Linear backoff: delay, 2*delay, 3*delay, ...
			pause := time.Duration(attempt) * c.retryDelay
			c.logger.Debug().
				Str("url", url).
				Int("attempt", attempt).
				Dur("pause", pause).
				Msg("Retrying PubChem request")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(pause):
			}
		}

		body, retryable, err := c.attempt(ctx, resolved, url)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("retries exhausted after %d attempts: %w", c.maxRetries+1, lastErr)
}

// attempt performs a single HTTP exchange. The second return value
// reports whether the failure may be retried.
func (c *Client) attempt(ctx context.Context, resolved *pugrest.ResolvedRequest, url string) ([]byte, bool, error) {
	var bodyReader io.Reader
	if resolved.Body != "" {
		bodyReader = strings.NewReader(resolved.Body)
	}

	req, err := http.NewRequestWithContext(ctx, resolved.Method, url, bodyReader)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if resolved.Method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures and timeouts are fatal; retrying a
		// connection that never reached the server rarely helps
		// and hides configuration problems.
		return nil, false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read response body: %w", err)
	}

	outcome := Classify(resp.StatusCode, body)
	if outcome.Kind == OutcomeSuccess {
		return body, false, nil
	}

	c.logger.Debug().
		Str("method", resolved.Method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Msg("PubChem request failed")

	return nil, outcome.Retryable, outcome.Err()
}
