// Package tvdb is a minimal TVDB v4 API client: JWT login plus series
// search, with response caching and request pacing.
package tvdb

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"resty.dev/v3"

	"github.com/plexkit/seasonsort/internal/cache"
)

// DefaultBaseURL is the production TVDB v4 endpoint.
const DefaultBaseURL = "https://api4.thetvdb.com/v4"

// tokenHold is how long a JWT is reused before logging in again. TVDB
// tokens last a month; a day keeps a wide safety margin.
const tokenHold = 24 * time.Hour

var searchClean = regexp.MustCompile(`[^\w\s-]`)

// Series is one search result.
type Series struct {
	TVDBID string `json:"tvdb_id"`
	Name   string `json:"name"`
	Year   string `json:"year"`
}

type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

type searchResponse struct {
	Data []Series `json:"data"`
}

// Statistics tracks cache effectiveness for the session.
type Statistics struct {
	CacheHits   int
	CacheMisses int
}

// Client talks to the TVDB API. Safe for concurrent use.
type Client struct {
	apiKey string
	http   *resty.Client
	lim    *rate.Limiter
	cache  *cache.Cache // nil disables caching

	mu           sync.Mutex
	token        string
	tokenExpires time.Time
	stats        Statistics

	now func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.http.SetBaseURL(u) }
}

// WithCache enables response caching.
func WithCache(store *cache.Cache) Option {
	return func(c *Client) { c.cache = store }
}

// WithRateLimit sets the request pacing in requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.lim = rate.NewLimiter(rate.Limit(rps), 1) }
}

// NewClient builds a client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	http := resty.New().
		SetBaseURL(DefaultBaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(3).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(10 * time.Second)

	c := &Client{
		apiKey: apiKey,
		http:   http,
		lim:    rate.NewLimiter(rate.Limit(2), 1),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// Login authenticates and stores the JWT. Callers normally don't need this;
// SearchSeries logs in on demand.
func (c *Client) Login(ctx context.Context) error {
	if err := c.lim.Wait(ctx); err != nil {
		return err
	}

	var body loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"apikey": c.apiKey}).
		SetResult(&body).
		Post("/login")
	if err != nil {
		return fmt.Errorf("tvdb login failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("tvdb login failed: status %d", resp.StatusCode())
	}
	if body.Data.Token == "" {
		return fmt.Errorf("tvdb login returned no token")
	}

	c.mu.Lock()
	c.token = body.Data.Token
	c.tokenExpires = c.now().Add(tokenHold)
	c.mu.Unlock()
	return nil
}

func (c *Client) ensureAuthenticated(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.token
	valid := token != "" && c.now().Before(c.tokenExpires)
	c.mu.Unlock()
	if valid {
		return token, nil
	}
	if err := c.Login(ctx); err != nil {
		return "", err
	}
	c.mu.Lock()
	token = c.token
	c.mu.Unlock()
	return token, nil
}

// SearchSeries looks up a show by name and returns the best match, which is
// the first result the API reports. The cache is consulted first when
// configured; a miss goes to the network and the hit is stored.
func (c *Client) SearchSeries(ctx context.Context, name string) (*Series, error) {
	if c.cache != nil {
		var cached Series
		ok, err := c.cache.Get(name, &cached)
		if err != nil {
			return nil, err
		}
		if ok {
			c.mu.Lock()
			c.stats.CacheHits++
			c.mu.Unlock()
			return &cached, nil
		}
		c.mu.Lock()
		c.stats.CacheMisses++
		c.mu.Unlock()
	}

	token, err := c.ensureAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.lim.Wait(ctx); err != nil {
		return nil, err
	}

	query := strings.TrimSpace(searchClean.ReplaceAllString(name, ""))
	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetQueryParam("query", query).
		SetQueryParam("type", "series").
		SetResult(&body).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("tvdb search failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("tvdb search failed: status %d", resp.StatusCode())
	}
	if len(body.Data) == 0 {
		return nil, nil
	}

	best := body.Data[0]
	if c.cache != nil {
		if err := c.cache.Set(name, best); err != nil {
			return nil, err
		}
	}
	return &best, nil
}

// Statistics returns the session's cache hit/miss counters.
func (c *Client) Statistics() Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
