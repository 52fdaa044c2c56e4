// Package openlibrary provides a client for the Open Library search and
// availability APIs.
package openlibrary

import (
	"net/http"
	"strings"
	"time"

	"github.com/jkorri/openshelf/internal/ratelimit"
)

const (
	defaultBaseURL        = "https://openlibrary.org"
	defaultCoversBaseURL  = "https://covers.openlibrary.org"
	defaultArchiveBaseURL = "https://archive.org"
	defaultMaxAttempts    = 3
	defaultRatePerSecond  = 1 // Open Library asks for at most 1 req/sec

	// DefaultLimit is the result-count cap for a single search request.
	DefaultLimit = 20

	// bibkeyBatchSize is the number of identifiers sent per availability lookup.
	bibkeyBatchSize = 10
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an Open Library API client.
type Client struct {
	baseURL        string
	coversBaseURL  string
	archiveBaseURL string
	httpClient     HTTPDoer
	rateLimiter    *ratelimit.Limiter
	retryAttempts  int
}

// NewClient creates a new Open Library API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:        defaultBaseURL,
		coversBaseURL:  defaultCoversBaseURL,
		archiveBaseURL: defaultArchiveBaseURL,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		rateLimiter:    ratelimit.New("OpenLibrary", defaultRatePerSecond),
		retryAttempts:  defaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the Open Library API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithCoversBaseURL sets a custom base URL for cover images.
func WithCoversBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.coversBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithArchiveBaseURL sets a custom base URL for the archival host used by
// the availability fallback.
func WithArchiveBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.archiveBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// WithRetryAttempts sets the number of attempts for availability lookups.
// The primary search request is never retried.
func WithRetryAttempts(attempts int) Option {
	return func(client *Client) {
		if attempts > 0 {
			client.retryAttempts = attempts
		}
	}
}
