package biogrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/tcxian/ppinet/internal/interaction"
	"github.com/tcxian/ppinet/internal/provider"
)

const (
	// BaseURL is the BioGRID webservice interactions endpoint.
	BaseURL = "https://webservice.thebiogrid.org/interactions"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps requests well under the BioGRID fair-use ceiling.
	RateLimit = 5.0
)

// Client is a rate-limited HTTP client for the BioGRID webservice.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	accessKey  string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAccessKey sets the BioGRID access key.
func WithAccessKey(key string) ClientOption {
	return func(c *Client) {
		c.accessKey = key
	}
}

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

// NewClient creates a new BioGRID webservice client.
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
func (c *Client) Name() string { return "biogrid" }

// Fetch retrieves interactions for the queried gene and maps them onto the
// uniform record shape. BioGRID requires an access key; Fetch fails with
// provider.ErrAuthentication before making a request if none is configured.
func (c *Client) Fetch(ctx context.Context, q provider.Query) ([]interaction.Record, error) {
	if c.accessKey == "" {
		return nil, fmt.Errorf("%w: BioGRID access key not configured", provider.ErrAuthentication)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("accessKey", c.accessKey)
	params.Set("format", "json")
	params.Set("searchNames", "true")
	params.Set("geneList", q.Protein)
	params.Set("organism", strconv.Itoa(q.TaxonID))
	params.Set("searchbiogridids", "true")
	params.Set("includeInteractors", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", provider.ErrUpstreamUnavailable, err)
	}

	interactions, err := decodeInteractions(body)
	if err != nil {
		return nil, err
	}

	if len(interactions) == 0 {
		return nil, fmt.Errorf("%w: no BioGRID interactions for %q", provider.ErrEmptyResult, q.Protein)
	}

	return Normalize(interactions), nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: BioGRID rejected access key (status %d)", provider.ErrAuthentication, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: BioGRID status %d", provider.ErrUpstreamUnavailable, resp.StatusCode)
	}
	return nil
}

// decodeInteractions parses the BioGRID response body. Successful responses
// are an object keyed by interaction ID; an empty result set is serialized
// as an empty array instead of an empty object.
func decodeInteractions(body []byte) ([]Interaction, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("{}")) {
		return nil, nil
	}

	var byID map[string]Interaction
	if err := json.Unmarshal(trimmed, &byID); err != nil {
		return nil, fmt.Errorf("%w: parsing BioGRID interactions: %v", provider.ErrInvalidResponse, err)
	}

	interactions := make([]Interaction, 0, len(byID))
	for _, in := range byID {
		interactions = append(interactions, in)
	}
	// Map iteration order is random; keep output stable across calls.
	sort.Slice(interactions, func(i, j int) bool {
		return interactions[i].BioGRIDInteractionID < interactions[j].BioGRIDInteractionID
	})
	return interactions, nil
}
