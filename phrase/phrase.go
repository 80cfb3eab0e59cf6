// Package phrase supplies display phrases from an external generation
// service, with caching and a static fallback so the visualization
// never blocks on, or surfaces, a collaborator failure.
package phrase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Provider fetches a batch of display phrases.
type Provider interface {
	Fetch(ctx context.Context, count int) ([]string, error)
}

// fallbackPhrases keeps the display alive when the service is down or
// unconfigured.
var fallbackPhrases = []string{
	"every atom in you was forged in a dying star",
	"gravity is patience made visible",
	"the cloud remembers the shape it once held",
	"light takes eight minutes to tell us the sun exists",
	"dust, given time, becomes worlds",
	"orbits are just falling that never lands",
}

// HTTPProvider fetches phrases from a JSON endpoint:
// GET {url}?count=N -> {"phrases": ["...", ...]}.
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTPProvider creates a provider for the given endpoint.
func NewHTTPProvider(url string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch requests count phrases from the service.
func (p *HTTPProvider) Fetch(ctx context.Context, count int) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?count=%d", p.url, count), nil)
	if err != nil {
		return nil, fmt.Errorf("building phrase request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching phrases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("phrase service returned %s", resp.Status)
	}

	var body struct {
		Phrases []string `json:"phrases"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding phrase response: %w", err)
	}
	if len(body.Phrases) == 0 {
		return nil, fmt.Errorf("phrase service returned no phrases")
	}
	return body.Phrases, nil
}

// Cache pages phrases out one at a time and tops itself up in the
// background when it runs low. Provider failures are replaced with the
// fallback list, never surfaced.
type Cache struct {
	mu       sync.Mutex
	provider Provider // nil = fallback only
	queue    []string
	lowWater int
	reqCount int
	fetching bool
	fbIndex  int
}

// NewCache creates a cache over the given provider. A nil provider
// serves the fallback rotation.
func NewCache(provider Provider, lowWater, reqCount int) *Cache {
	if lowWater < 1 {
		lowWater = 3
	}
	if reqCount < 1 {
		reqCount = 8
	}
	return &Cache{
		provider: provider,
		lowWater: lowWater,
		reqCount: reqCount,
	}
}

// Next returns the next phrase. It never blocks and never fails: when
// the cache is empty it serves the fallback rotation while a top-up
// runs in the background.
func (c *Cache) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out string
	if len(c.queue) > 0 {
		out = c.queue[0]
		c.queue = c.queue[1:]
	} else {
		out = fallbackPhrases[c.fbIndex%len(fallbackPhrases)]
		c.fbIndex++
	}

	if c.provider != nil && len(c.queue) < c.lowWater && !c.fetching {
		// One top-up in flight at a time; a second trigger while this
		// one runs is dropped, not queued.
		c.fetching = true
		go c.topUp()
	}
	return out
}

// Pending returns the number of cached phrases.
func (c *Cache) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

func (c *Cache) topUp() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	phrases, err := c.provider.Fetch(ctx, c.reqCount)
	if err != nil {
		slog.Warn("phrase service unavailable, using fallback", "error", err)
		phrases = fallbackPhrases
	}

	c.mu.Lock()
	c.queue = append(c.queue, phrases...)
	c.fetching = false
	c.mu.Unlock()
}
