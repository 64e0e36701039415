// Package discogs provides a client for the Discogs database API.
//
// This package implements the XML flavour of the Discogs API for
// releases, artists, labels and search. It is designed to be used
// as a standalone SDK.
//
// Example usage:
//
//	import "github.com/jfmyers9/crate/pkg/discogs"
//
//	client, err := discogs.NewClient(discogs.Config{
//	    APIKey: "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	release, err := client.GetRelease(ctx, "1")
package discogs

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default Discogs API endpoint.
	DefaultBaseURL = "http://discogs.com"

	// DefaultTimeout is used when Config.Timeout is zero.
	DefaultTimeout = 60 * time.Second

	// ClientName prefixes every User-Agent sent by this package.
	ClientName = "Go Discogs"

	// Version is the SDK version reported in the User-Agent.
	Version = "1.0.0"
)

// Config holds client configuration.
type Config struct {
	APIKey     string        // Required: Discogs API key
	Timeout    time.Duration // Optional: per-call timeout (defaults to 60s)
	UserAgent  string        // Optional: appended to "Go Discogs/<version> "
	HTTPClient *http.Client  // Optional: HTTP client (defaults to a new client)
	BaseURL    string        // Optional: Base URL for API (defaults to Discogs, used for testing)
	Port       int           // Optional: explicit port (0 uses the scheme default)
	RateLimit  float64       // Optional: max requests per second (0 disables throttling)
	Logger     Logger        // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Discogs API operations.
//
// The API key, timeout and user agent can be changed after construction.
// Setters are not synchronized with in-flight calls.
type Client struct {
	apiKey     string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	baseURL    string
	port       int
	logger     Logger
}

// NewClient creates a new Discogs API client.
//
// Returns ErrAPIKeyRequired if cfg.APIKey is empty.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if cfg.RateLimit > 0 {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		// copy so a caller-supplied client is not mutated
		hc := *httpClient
		hc.Transport = newThrottle(cfg.RateLimit, base)
		httpClient = &hc
	}

	return &Client{
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		baseURL:    baseURL,
		port:       cfg.Port,
		logger:     cfg.Logger,
	}, nil
}

// SetAPIKey sets the API key sent with every request.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// SetTimeout sets the per-call timeout. Zero disables the deadline.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Timeout returns the current per-call timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// SetUserAgent sets the suffix appended to the package's own user agent.
// It should look like <app-name>/<app-version>.
func (c *Client) SetUserAgent(suffix string) {
	c.userAgent = suffix
}

// UserAgent returns the User-Agent header value, "Go Discogs/<version> <suffix>".
func (c *Client) UserAgent() string {
	return ClientName + "/" + Version + " " + c.userAgent
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
