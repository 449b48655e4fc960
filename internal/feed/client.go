// Package feed reads lineup and live-score data for a fixture from
// the external match-data provider and maps it onto the engine's
// update shape.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gregjones/httpcache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mierzida/FLP-forBBK/internal/engine"
)

const userAgent = "flp-overlay/1.0 (+https://github.com/mierzida/FLP-forBBK)"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *zap.Logger
}

// NewClient builds a client over an in-memory cached transport. The
// provider marks live endpoints uncacheable, so origin cache headers
// are rewritten to enforce our own short TTL instead; during a
// polling burst (lineup + detail per tick) that keeps identical
// responses from being fetched twice.
func NewClient(baseURL, apiKey string, cacheTTL time.Duration, log *zap.Logger) *Client {
	transport := httpcache.NewMemoryCacheTransport()
	transport.Transport = &ttlOverrideTransport{
		wrapped: http.DefaultTransport,
		maxAge:  cacheTTL,
	}
	return &Client{
		httpClient: &http.Client{Transport: transport, Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        log,
	}
}

type ttlOverrideTransport struct {
	wrapped http.RoundTripper
	maxAge  time.Duration
}

func (t *ttlOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.wrapped.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	resp.Header.Del("Pragma")
	resp.Header.Del("Expires")
	resp.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(t.maxAge/time.Second)))
	return resp, nil
}

// FetchFixture retrieves the lineup and the fixture detail in
// parallel and merges them into a single update. Either request
// failing fails the fetch; the caller decides whether that aborts a
// user load or just skips an auto-refresh tick.
func (c *Client) FetchFixture(ctx context.Context, fixtureID int) (engine.FeedUpdate, error) {
	var lineups lineupsResponse
	var detail fixtureResponse

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(ctx, "/fixtures/lineups", fixtureID, &lineups)
	})
	g.Go(func() error {
		return c.getJSON(ctx, "/fixtures", fixtureID, &detail)
	})
	if err := g.Wait(); err != nil {
		return engine.FeedUpdate{}, err
	}

	if len(detail.Response) == 0 {
		return engine.FeedUpdate{}, fmt.Errorf("fixture %d: empty detail response", fixtureID)
	}

	update, err := buildUpdate(fixtureID, lineups.Response, detail.Response[0])
	if err != nil {
		return engine.FeedUpdate{}, err
	}
	c.log.Debug("fixture fetched",
		zap.Int("fixture", fixtureID),
		zap.String("status", update.Status),
		zap.Int("events", len(detail.Response[0].Events)))
	return update, nil
}

func (c *Client) getJSON(ctx context.Context, path string, fixtureID int, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	q := u.Query()
	if path == "/fixtures" {
		q.Set("id", strconv.Itoa(fixtureID))
	} else {
		q.Set("fixture", strconv.Itoa(fixtureID))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-apisports-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("feed %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("feed %s: decode: %w", path, err)
	}
	return nil
}
