package stringdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/tcxian/ppinet/internal/interaction"
	"github.com/tcxian/ppinet/internal/provider"
)

const (
	// BaseURL is the STRING network API endpoint.
	BaseURL = "https://string-db.org/api/json/network"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit is 1 request per second per STRING API guidance.
	RateLimit = 1.0

	// DefaultLimit is the default cap on interaction partners requested.
	DefaultLimit = 20

	// callerIdentity identifies this tool to the STRING API as requested
	// by their usage guidelines.
	callerIdentity = "ppinet"
)

// Client is a rate-limited HTTP client for the STRING API. No credential is
// required.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a new STRING API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the provider name.
func (c *Client) Name() string { return "string" }

// Fetch retrieves functional associations for the queried protein and maps
// them onto the uniform record shape. Limit bounds the number of interaction
// partners requested from the API.
func (c *Client) Fetch(ctx context.Context, q provider.Query) ([]interaction.Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("identifiers", q.Protein)
	params.Set("species", strconv.Itoa(q.TaxonID))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("caller_identity", callerIdentity)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: STRING status %d", provider.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var interactions []Interaction
	if err := json.NewDecoder(resp.Body).Decode(&interactions); err != nil {
		return nil, fmt.Errorf("%w: parsing STRING network: %v", provider.ErrInvalidResponse, err)
	}

	if len(interactions) == 0 {
		return nil, fmt.Errorf("%w: no STRING interactions for %q", provider.ErrEmptyResult, q.Protein)
	}

	return Normalize(interactions), nil
}
