// Package pubmed talks to the NCBI E-utilities API: esearch for PMID
// discovery and efetch in MEDLINE text format for article metadata.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the E-utilities root.
	BaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// NCBI allows 3 requests per second without an API key, 10 with one.
	RateLimit        = 3.0
	RateLimitWithKey = 10.0

	// BatchSize caps the number of PMIDs per efetch request.
	BatchSize = 200

	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second
)

// Client is a rate-limited E-utilities client. NCBI asks for an email
// address with every request; an API key raises the rate limit.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	email      string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets an NCBI API key and raises the rate limit.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
		if key != "" {
			c.limiter = rate.NewLimiter(rate.Limit(RateLimitWithKey), 1)
		}
	}
}

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates an E-utilities client. The email is sent with every
// request as NCBI requires.
func NewClient(email string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		email:      email,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params.Set("db", "pubmed")
	if c.email != "" {
		params.Set("email", c.email)
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, endpoint, truncate(body, 512))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}

// Search runs an esearch query and returns matching PMIDs.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	params := url.Values{}
	params.Set("term", query)
	params.Set("retmax", fmt.Sprint(maxResults))
	params.Set("retmode", "json")

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Result struct {
			IDList []string `json:"idlist"`
		} `json:"esearchresult"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding esearch response: %w", err)
	}
	return payload.Result.IDList, nil
}

// SearchByTitle searches for an exact title match and returns PMIDs.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]string, error) {
	return c.Search(ctx, fmt.Sprintf("%s[Title]", title), 5)
}

// GetArticle fetches a single article by PMID.
func (c *Client) GetArticle(ctx context.Context, pmid string) (Article, error) {
	articles, err := c.FetchArticles(ctx, []string{pmid})
	if err != nil {
		return Article{}, err
	}
	if len(articles) == 0 {
		return Article{}, fmt.Errorf("PMID %s not found", pmid)
	}
	return articles[0], nil
}

// FetchArticles fetches articles for a list of PMIDs, batching requests
// at BatchSize IDs each.
func (c *Client) FetchArticles(ctx context.Context, pmids []string) ([]Article, error) {
	var articles []Article

	for start := 0; start < len(pmids); start += BatchSize {
		end := start + BatchSize
		if end > len(pmids) {
			end = len(pmids)
		}

		params := url.Values{}
		params.Set("id", strings.Join(pmids[start:end], ","))
		params.Set("rettype", "medline")
		params.Set("retmode", "text")

		body, err := c.get(ctx, "efetch.fcgi", params)
		if err != nil {
			return nil, err
		}
		articles = append(articles, ParseMedline(string(body))...)
	}

	return articles, nil
}
