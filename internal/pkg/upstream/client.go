package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stars_admin/internal/pkg/session"
	"stars_admin/pkg/cache"
	"stars_admin/pkg/metrics"

	"go.uber.org/zap"
)

// ErrNoToken marks a request skipped because the session has no bearer
// token. Distinguishable from transport errors: nothing was sent.
var ErrNoToken = errors.New("upstream: request skipped, no session token")

// StatusError is a non-2xx response from the platform backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream: unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Client issues authenticated JSON requests against the platform backend and
// caches query responses keyed by (resource, parameter tuple). Mutations go
// through Do and never touch the cache directly; invalidation happens on the
// bus.
type Client struct {
	baseURL  string
	http     *http.Client
	cache    cache.CacheService
	bus      *cache.InvalidationBus
	metrics  *metrics.MetricsCollector
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewClient creates an upstream client.
func NewClient(baseURL string, httpClient *http.Client, cacheSvc cache.CacheService, bus *cache.InvalidationBus, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		cache:    cacheSvc,
		bus:      bus,
		metrics:  metrics.GetGlobalCollector(),
		logger:   logger,
		cacheTTL: time.Minute * 5,
	}
}

// Bus exposes the invalidation bus so mutation callers can invalidate tags.
func (c *Client) Bus() *cache.InvalidationBus {
	return c.bus
}

// cacheKey builds the cache key for a (path, query) pair.
func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// GetJSON fetches path and decodes the JSON body into dest. The response is
// cached under the given tags; repeated calls with the same parameters are
// served from cache until a mutation invalidates one of the tags.
func (c *Client) GetJSON(ctx context.Context, sess *session.Session, resource, path string, query url.Values, dest interface{}, tags ...cache.Tag) error {
	if !sess.Authenticated() {
		return ErrNoToken
	}

	key := cacheKey(path, query)

	var raw json.RawMessage
	if err := c.cache.Get(ctx, key, &raw); err == nil {
		c.metrics.RecordCacheLookup(resource, true)
		return json.Unmarshal(raw, dest)
	}
	c.metrics.RecordCacheLookup(resource, false)

	body, err := c.request(ctx, sess, resource, http.MethodGet, key, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("upstream: decode %s: %w", path, err)
	}

	if err := c.cache.Set(ctx, key, json.RawMessage(body), c.cacheTTL); err != nil {
		c.logger.Warn("response cache write failed", zap.String("key", key), zap.Error(err))
	} else if len(tags) > 0 {
		c.bus.Register(key, tags...)
	}

	return nil
}

// Do issues a mutation (POST/PUT/DELETE). The optional body is sent as JSON.
func (c *Client) Do(ctx context.Context, sess *session.Session, resource, method, path string, body interface{}) error {
	if !sess.Authenticated() {
		return ErrNoToken
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: encode body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	_, err := c.request(ctx, sess, resource, method, path, payload)
	return err
}

func (c *Client) request(ctx context.Context, sess *session.Session, resource, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamRequest(resource, "transport_error", time.Since(start))
		return nil, fmt.Errorf("upstream: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordUpstreamRequest(resource, "read_error", time.Since(start))
		return nil, fmt.Errorf("upstream: read %s: %w", path, err)
	}

	c.metrics.RecordUpstreamRequest(resource, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(data), 256)}
	}

	return data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
