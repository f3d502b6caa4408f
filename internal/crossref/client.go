// Package crossref resolves DOIs to publication metadata via the
// CrossRef works API.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the CrossRef REST API root.
	BaseURL = "https://api.crossref.org"

	// RateLimit stays inside CrossRef's polite-pool expectations.
	RateLimit = 5.0

	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second
)

// Client resolves DOIs against the CrossRef works endpoint.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

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

// NewClient creates a CrossRef client.
func NewClient(opts ...Option) *Client {
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

type work struct {
	Title          []string `json:"title"`
	ContainerTitle []string `json:"container-title"`
	Publisher      string   `json:"publisher"`
	Type           string   `json:"type"`
	URL            string   `json:"URL"`
	Abstract       string   `json:"abstract"`
	Author         []struct {
		Given  string `json:"given"`
		Family string `json:"family"`
	} `json:"author"`
	Issued struct {
		DateParts [][]int `json:"date-parts"`
	} `json:"issued"`
}

// Resolve fetches metadata for a DOI and returns it as a record.
// A 404 from CrossRef means the DOI is unknown.
func (c *Client) Resolve(ctx context.Context, doi string) (pubrecord.Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return pubrecord.Record{}, err
	}

	url := fmt.Sprintf("%s/works/%s", c.baseURL, doi)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pubrecord.Record{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pubrecord.Record{}, fmt.Errorf("resolving DOI %s: %w", doi, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return pubrecord.Record{}, fmt.Errorf("DOI %s not found on CrossRef", doi)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return pubrecord.Record{}, fmt.Errorf("unexpected status %d resolving DOI %s: %s", resp.StatusCode, doi, body)
	}

	var payload struct {
		Message work `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return pubrecord.Record{}, fmt.Errorf("decoding CrossRef response: %w", err)
	}

	return recordFromWork(doi, payload.Message), nil
}

func recordFromWork(doi string, w work) pubrecord.Record {
	rec := pubrecord.Record{
		DOI:      doi,
		Abstract: w.Abstract,
		URL:      w.URL,
	}
	if len(w.Title) > 0 {
		rec.Title = w.Title[0]
	}
	if len(w.ContainerTitle) > 0 {
		rec.Journal = w.ContainerTitle[0]
	}
	for _, a := range w.Author {
		switch {
		case a.Family != "" && a.Given != "":
			rec.Authors = append(rec.Authors, a.Family+", "+a.Given)
		case a.Family != "":
			rec.Authors = append(rec.Authors, a.Family)
		}
	}
	if parts := w.Issued.DateParts; len(parts) > 0 && len(parts[0]) > 0 {
		rec.Year = parts[0][0]
	}
	return rec
}
