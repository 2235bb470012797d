package nhle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
	"github.com/preston-bernstein/nhl-ticker-service/internal/providers"
)

// Numbers decode as json.Number so game ids and scores keep their exact text.
var json = jsoniter.Config{UseNumber: true}.Froze()

// Config controls how the client reaches the league API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches raw documents from the public league web API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  ua,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// TeamSchedule fetches the season schedule for team, relative to now.
func (c *Client) TeamSchedule(ctx context.Context, team string) (payload.Object, error) {
	return c.getJSON(ctx, providers.EndpointSchedule, fmt.Sprintf(schedulePath, url.PathEscape(team)))
}

// TVSchedule fetches the broadcast schedule for a YYYY-MM-DD date.
func (c *Client) TVSchedule(ctx context.Context, date string) (payload.Object, error) {
	return c.getJSON(ctx, providers.EndpointTV, fmt.Sprintf(tvPath, url.PathEscape(date)))
}

// Standings fetches league standings, relative to now.
func (c *Client) Standings(ctx context.Context) (payload.Object, error) {
	return c.getJSON(ctx, providers.EndpointStandings, standingsPath)
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string) (payload.Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nhle %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return decodeObject(resp.Body, endpoint)
}

// decodeObject reads a JSON document. A valid document whose root is not an
// object yields an empty object.
func decodeObject(r io.Reader, endpoint string) (payload.Object, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("nhle %s: decode: %w", endpoint, err)
	}
	if obj, ok := payload.AsObject(doc); ok {
		return obj, nil
	}
	return payload.Object{}, nil
}
