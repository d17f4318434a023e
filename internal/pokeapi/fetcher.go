// Package pokeapi retrieves raw JSON records from PokeAPI.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FlagBrew/local-dex/internal/metrics"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/apex/log"
)

const linkedKind = "linked"

// RawRecord is an undecoded PokeAPI response body.
type RawRecord struct {
	Kind models.Kind
	ID   int
	URL  string
	Body json.RawMessage
}

// Decode unmarshals the record body into v.
func (r *RawRecord) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding %s %d: %w", r.Kind, r.ID, err)
	}
	return nil
}

type Client struct {
	http         *http.Client
	baseURL      string
	userAgent    string
	attempts     int
	retryDelay   time.Duration
	requestDelay time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

type Option func(*Client)

// WithHTTPClient replaces the HTTP client, e.g. to point at a test server
// transport. The configured timeout is not applied to a supplied client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURL overrides the configured base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func New(cfg *models.IngestConfig, opts ...Option) *Client {
	c := &Client{
		http:         &http.Client{Timeout: cfg.TimeoutDuration()},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:    cfg.UserAgent,
		attempts:     max(cfg.MaxRetries, 1),
		retryDelay:   cfg.RetryDelayDuration(),
		requestDelay: cfg.RequestDelayDuration(),
		sleep:        sleep,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the resource URL for an id of the given kind.
func (c *Client) URL(kind models.Kind, id int) string {
	return c.baseURL + "/" + string(kind) + "/" + strconv.Itoa(id) + "/"
}

// Fetch retrieves the primary record for an id.
func (c *Client) Fetch(ctx context.Context, kind models.Kind, id int) (*RawRecord, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("pokeapi: unknown kind %q", kind)
	}

	u := c.URL(kind, id)
	body, err := c.get(ctx, string(kind), u)
	if err != nil {
		return nil, err
	}
	return &RawRecord{Kind: kind, ID: id, URL: u, Body: body}, nil
}

// FetchURL retrieves a linked resource (e.g. a species) by its absolute URL.
// It follows the same retry and pacing rules as Fetch.
func (c *Client) FetchURL(ctx context.Context, u string) (json.RawMessage, error) {
	if u == "" {
		return nil, fmt.Errorf("pokeapi: empty url")
	}
	return c.get(ctx, linkedKind, u)
}

func (c *Client) get(ctx context.Context, label, u string) (json.RawMessage, error) {
	logger := log.FromContext(ctx).WithField("url", u)

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			metrics.FetchRetries.WithLabelValues(label).Inc()
			if err := c.sleep(ctx, c.retryDelay*time.Duration(attempt-1)); err != nil {
				return nil, err
			}
		}

		body, err := c.do(ctx, u)
		if err == nil {
			metrics.FetchRequests.WithLabelValues(label, "success").Inc()
			if err = c.sleep(ctx, c.requestDelay); err != nil {
				return nil, err
			}
			return body, nil
		}

		if errors.Is(err, ErrNotFound) {
			metrics.FetchRequests.WithLabelValues(label, "not_found").Inc()
			return nil, err
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		lastErr = err
		if !retryable(err) {
			metrics.FetchRequests.WithLabelValues(label, "error").Inc()
			return nil, newFetchError(u, attempt, err)
		}

		logger.WithError(err).WithField("attempt", attempt).Warn("request failed")
	}

	metrics.FetchRequests.WithLabelValues(label, "error").Inc()
	return nil, newFetchError(u, c.attempts, lastErr)
}

func (c *Client) do(ctx context.Context, u string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &statusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("response from %s is not valid json", u)
	}
	return body, nil
}

// retryable reports whether err is a transport failure, a 5xx, or a 429.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	return true
}

func newFetchError(u string, attempts int, err error) *FetchError {
	fe := &FetchError{URL: u, Attempts: attempts, Err: err}
	var se *statusError
	if errors.As(err, &se) {
		fe.StatusCode = se.code
	}
	return fe
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
