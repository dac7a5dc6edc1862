package client

// http_client.go = talks to the recommendation API for both the web front end and the CLI.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"movierecommender/internal/recommend"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const userAgent = "MovieRecommender/1.0"

var (
	errTrailingData = errors.New("unexpected data after the JSON array")
	errNotAnArray   = errors.New("response body is not a JSON array")
)

// RecommendClient defines the HTTP client for the recommendation API
type RecommendClient struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter // nil = unlimited
	log         zerolog.Logger
}

// Option configures a RecommendClient.
type Option func(*RecommendClient)

// WithTimeout sets an overall request timeout. Zero keeps the platform default (none).
func WithTimeout(d time.Duration) Option {
	return func(c *RecommendClient) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit throttles outgoing requests. rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *RecommendClient) {
		if rps <= 0 {
			c.rateLimiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.rateLimiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RecommendClient) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *RecommendClient) {
		c.log = l
	}
}

// constructor for the recommendation client
func NewRecommendClient(baseURL string, opts ...Option) *RecommendClient {
	c := &RecommendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL requests are sent to.
func (c *RecommendClient) BaseURL() string {
	return c.baseURL
}

// URL returns the full request URL for q.
func (c *RecommendClient) URL(q recommend.Query) string {
	return c.baseURL + recommend.Target(q)
}

// Recommend issues GET /api/recommend for q.
// A non-2xx status becomes *recommend.ServerError carrying the body text;
// anything else that goes wrong becomes *recommend.TransportError. No retries.
func (c *RecommendClient) Recommend(ctx context.Context, q recommend.Query) ([]recommend.Recommendation, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, &recommend.TransportError{Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	fullURL := c.URL(q)
	c.log.Debug().Str("url", fullURL).Msg("requesting API")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &recommend.TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &recommend.TransportError{Err: err}
	}
	defer resp.Body.Close() // Ensure the response body is closed

	c.log.Debug().Int("status", resp.StatusCode).Msg("response received")

	// non-2xx => the body is a human readable error message
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &recommend.TransportError{Err: err}
		}
		return nil, &recommend.ServerError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	dec := json.NewDecoder(resp.Body)
	var result []recommend.Recommendation
	if err := dec.Decode(&result); err != nil {
		return nil, &recommend.TransportError{Err: err}
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return nil, &recommend.TransportError{Err: errTrailingData}
	}
	if result == nil {
		return nil, &recommend.TransportError{Err: errNotAnArray}
	}
	return result, nil
}
