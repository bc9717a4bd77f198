package pubchem

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	userAgent  string
	httpClient *http.Client
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:    DefaultBaseURL,
		timeout:    30 * time.Second,
		maxRetries: 3,
		retryDelay: 500 * time.Millisecond,
		userAgent:  "molbridge",
	}
}

// WithBaseURL points the client at a different API endpoint. Mostly
// useful for tests and mirrors.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts. Zero
// disables retrying entirely; every request gets exactly one attempt.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithRetryDelay sets the base delay between retry attempts. The
// actual pause grows linearly: delay, 2*delay, 3*delay, ...
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		o.retryDelay = delay
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The timeout
// option is ignored when this is set.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}
