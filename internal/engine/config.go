package engine

import (
	"net/http"
	"time"
)

// DefaultFetchTimeout bounds every single provider call.
const DefaultFetchTimeout = 15 * time.Second

// Config holds provider credentials and shared transport settings,
// assembled once in main and handed to the aggregator. Adapters never read
// process state themselves: a provider whose credentials are empty here
// stays disabled for the life of the process.
type Config struct {
	USAJobsAPIKey    string
	USAJobsUserAgent string
	RapidAPIKey      string
	AdzunaAppID      string
	AdzunaAppKey     string

	FetchTimeout time.Duration
	HTTPClient   *http.Client
}

// Client returns the configured HTTP client, falling back to a default
// when none was injected.
func (c Config) Client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return NewHTTPClient(c.Timeout())
}

// Timeout returns the per-call timeout, defaulting when unset.
func (c Config) Timeout() time.Duration {
	if c.FetchTimeout > 0 {
		return c.FetchTimeout
	}
	return DefaultFetchTimeout
}

// NewHTTPClient builds the HTTP client shared by all provider adapters.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}
}
