// Package charite fetches publication data from the Charité
// Forschungsdatenbank JSON API. The SPA frontend loads data from REST
// endpoints which we call directly.
//
// API pattern:
//
//	/experts/expert/publications/pub_per_exp/{token}/FPS -> publications
//	/experts/expert/exp/co_per_exp/{token}/FPS           -> co-authors
//	/experts/expert/exp/info_per_exp/{token}             -> profile info
package charite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the expert API root of the Forschungsdatenbank.
	BaseURL = "https://forschungsdatenbank.charite.de/experts/expert"

	// RateLimit keeps requests well below anything the backend would notice.
	RateLimit = 3.0

	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second
)

// Client calls the Forschungsdatenbank REST endpoints.
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

// NewClient creates a Forschungsdatenbank client.
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

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, url, body)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// FetchPublications fetches all publications for a person by API token.
func (c *Client) FetchPublications(ctx context.Context, token string) ([]Publication, error) {
	url := fmt.Sprintf("%s/publications/pub_per_exp/%s/FPS", c.baseURL, token)

	var payload publicationsResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("fetching publications for token %s: %w", token, err)
	}

	var pubs []Publication
	for _, entry := range payload.Publikationen {
		if pub, ok := normalizeEntry(entry); ok {
			pubs = append(pubs, pub)
		}
	}
	return pubs, nil
}

// FetchCoauthors fetches the co-author list for a person by API token.
// Useful for discovering tokens of other team members.
func (c *Client) FetchCoauthors(ctx context.Context, token string) ([]Coauthor, error) {
	url := fmt.Sprintf("%s/exp/co_per_exp/%s/FPS", c.baseURL, token)

	var payload coauthorsResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("fetching co-authors for token %s: %w", token, err)
	}

	var coauthors []Coauthor
	for _, entry := range payload.Autoren {
		ap := entry.AutorenPerson
		if ap == nil {
			continue
		}
		ca := Coauthor{
			Surname:          ap.Name,
			FirstName:        ap.Vorname,
			PublicationCount: ap.AnzahlPublikationen,
		}
		if ap.Person != nil {
			ca.Token = ap.Person.Token
			ca.Type = ap.Person.Type
		}
		coauthors = append(coauthors, ca)
	}
	return coauthors, nil
}

// FetchProfile fetches basic profile information for a person.
func (c *Client) FetchProfile(ctx context.Context, token string) (Profile, error) {
	url := fmt.Sprintf("%s/exp/info_per_exp/%s", c.baseURL, token)

	var payload profileResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return Profile{}, fmt.Errorf("fetching profile for token %s: %w", token, err)
	}

	return Profile{
		FirstName:         payload.MainInfo.Vorname,
		LastName:          payload.MainInfo.Nachname,
		Group:             payload.MainInfo.Gruppe,
		GroupEN:           payload.MainInfo.GruppeEN,
		ORCID:             payload.MainInfo.ORCID,
		TotalPublications: payload.Publikationen,
		InternalCoauthors: payload.InterneCoAutoren.Level1,
		TotalCoauthors:    payload.Gesamt.Level1,
	}, nil
}
