package ads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the ADS search API endpoint.
	BaseURL = "https://api.adsabs.harvard.edu/v1/search/query"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// RateLimit is 5 requests per second, well under the ADS daily quota
	// granularity but protective against tight loops.
	RateLimit = 5.0

	// DefaultRows is the page size requested from ADS.
	DefaultRows = 200

	// LibraryFields are the fields requested for full library fetches.
	LibraryFields = "title,author,orcid_pub,orcid_user,first_author,pub,pub_raw,doi,bibcode,abstract,pubdate,citation_count,doctype,property"

	// StatsFields are the fields requested for citation-only fetches.
	StatsFields = "citation_count"
)

// Client is a rate-limited HTTP client for the ADS search API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithToken sets the API token for authenticated requests.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new ADS search API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	// Check for token in environment
	if token := os.Getenv("ADS_API_TOKEN"); token != "" {
		c.token = token
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response) error {
	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		return fmt.Errorf("%w: status %d", ErrAuthError, resp.StatusCode)
	}
	if resp.StatusCode == 429 {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return nil
}

// query executes a search query against ADS and decodes the response.
func (c *Client) query(ctx context.Context, params url.Values) (*SearchResponse, error) {
	if c.token == "" {
		return nil, ErrTokenMissing
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetworkError, err)
	}

	var sr SearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &sr, nil
}

// Library fetches the full record set of a curated ADS library, newest
// first, with the full display field list.
func (c *Client) Library(ctx context.Context, libraryID string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("docs(library/%s)", libraryID))
	params.Set("fl", LibraryFields)
	params.Set("rows", fmt.Sprint(DefaultRows))
	params.Set("sort", "pubdate desc")
	return c.query(ctx, params)
}

// LibraryCitations fetches the same library with only citation counts,
// used for the lightweight stats path.
func (c *Client) LibraryCitations(ctx context.Context, libraryID string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("docs(library/%s)", libraryID))
	params.Set("fl", StatsFields)
	params.Set("rows", fmt.Sprint(DefaultRows))
	return c.query(ctx, params)
}
