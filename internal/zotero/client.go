package zotero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Zotero Web API base URL.
	BaseURL = "https://api.zotero.org"

	// APIVersion is the Zotero-API-Version header value.
	APIVersion = "3"

	// RateLimit keeps well under Zotero's per-key limits.
	RateLimit = 5.0

	// PageLimit is the maximum page size the API allows.
	PageLimit = 100

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a rate-limited HTTP client for one Zotero library.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	baseURL     string
	apiKey      string
	libraryType string // "user" or "group"
	libraryID   string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
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

// NewClient creates a client for the given library. libraryType is "user"
// or "group". The API key falls back to the ZOTERO_API_KEY environment
// variable when not set via options.
func NewClient(libraryType, libraryID string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		limiter:     rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:     BaseURL,
		libraryType: libraryType,
		libraryID:   libraryID,
	}

	if key := os.Getenv("ZOTERO_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// prefix returns the library path prefix, e.g. /groups/12345.
func (c *Client) prefix() string {
	if c.libraryType == "group" {
		return "/groups/" + c.libraryID
	}
	return "/users/" + c.libraryID
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, extraHeaders map[string]string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	u := c.baseURL + c.prefix() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Zotero-API-Version", APIVersion)
	if c.apiKey != "" {
		req.Header.Set("Zotero-API-Key", c.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		return fmt.Errorf("%w: status %d", ErrAuthError, resp.StatusCode)
	case resp.StatusCode == 404:
		return ErrNotFound
	case resp.StatusCode == 412:
		return fmt.Errorf("%w: status %d", ErrConflict, resp.StatusCode)
	case resp.StatusCode == 429:
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{StatusCode: resp.StatusCode, Message: string(msg)}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// SearchItems searches top-level items by quick-search query.
func (c *Client) SearchItems(ctx context.Context, q string, limit int) ([]Item, error) {
	if limit <= 0 || limit > PageLimit {
		limit = PageLimit
	}

	query := url.Values{}
	query.Set("q", q)
	query.Set("itemType", "-attachment")
	query.Set("limit", strconv.Itoa(limit))

	var items []Item
	if err := c.getJSON(ctx, "/items/top", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem fetches a single item by key.
func (c *Client) GetItem(ctx context.Context, key string) (*Item, error) {
	var item Item
	if err := c.getJSON(ctx, "/items/"+key, nil, &item); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: item %s", ErrNotFound, key)
		}
		return nil, err
	}
	return &item, nil
}

// ListAllItems pages through every top-level item in the library.
func (c *Client) ListAllItems(ctx context.Context) ([]Item, error) {
	var all []Item
	start := 0

	for {
		query := url.Values{}
		query.Set("itemType", "-attachment")
		query.Set("limit", strconv.Itoa(PageLimit))
		query.Set("start", strconv.Itoa(start))

		resp, err := c.do(ctx, http.MethodGet, "/items/top", query, nil, nil)
		if err != nil {
			return nil, err
		}

		var page []Item
		decodeErr := json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr)
		}

		all = append(all, page...)

		total, _ := strconv.Atoi(resp.Header.Get("Total-Results"))
		start += len(page)
		if len(page) == 0 || (total > 0 && start >= total) {
			break
		}
	}

	return all, nil
}

// Collections lists all collections in the library.
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	var cols []Collection
	if err := c.getJSON(ctx, "/collections", nil, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// FindCollection returns the collection with the given name, if any.
func (c *Client) FindCollection(ctx context.Context, name string) (*Collection, error) {
	cols, err := c.Collections(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cols {
		if cols[i].Data.Name == name {
			return &cols[i], nil
		}
	}
	return nil, fmt.Errorf("%w: collection %q", ErrNotFound, name)
}

// CollectionItems lists the top-level items in a collection.
func (c *Client) CollectionItems(ctx context.Context, collectionKey string) ([]Item, error) {
	query := url.Values{}
	query.Set("itemType", "-attachment")
	query.Set("limit", strconv.Itoa(PageLimit))

	var items []Item
	if err := c.getJSON(ctx, "/collections/"+collectionKey+"/items/top", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ItemsByTag lists top-level items carrying the given tag.
func (c *Client) ItemsByTag(ctx context.Context, tag string) ([]Item, error) {
	query := url.Values{}
	query.Set("tag", tag)
	query.Set("itemType", "-attachment")
	query.Set("limit", strconv.Itoa(PageLimit))

	var items []Item
	if err := c.getJSON(ctx, "/items/top", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItems creates items and returns the new item keys in input order.
// The write is guarded with a Zotero-Write-Token so retried requests do not
// create duplicates.
func (c *Client) CreateItems(ctx context.Context, items []ItemData) ([]string, error) {
	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encoding items: %w", err)
	}

	headers := map[string]string{"Zotero-Write-Token": uuid.NewString()}
	resp, err := c.do(ctx, http.MethodPost, "/items", nil, body, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var wr WriteResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if len(wr.Failed) > 0 {
		for idx, failure := range wr.Failed {
			return wr.Keys(), fmt.Errorf("item %s rejected: %s (code %d)", idx, failure.Message, failure.Code)
		}
	}

	return wr.Keys(), nil
}

// CreateCollection creates a collection and returns its key.
func (c *Client) CreateCollection(ctx context.Context, name, parentKey string) (string, error) {
	payload := []CollectionData{{Name: name, ParentCollection: parentKey}}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding collection: %w", err)
	}

	headers := map[string]string{"Zotero-Write-Token": uuid.NewString()}
	resp, err := c.do(ctx, http.MethodPost, "/collections", nil, body, headers)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var wr WriteResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	keys := wr.Keys()
	if len(keys) == 0 {
		if obj, ok := wr.Successful["0"]; ok {
			if key, ok := obj["key"].(string); ok {
				return key, nil
			}
		}
		return "", fmt.Errorf("%w: no collection key in write response", ErrInvalidResponse)
	}
	return keys[0], nil
}

// SetItemCollections replaces an item's collection membership, guarded by the
// item's current version.
func (c *Client) SetItemCollections(ctx context.Context, itemKey string, version int, collections []string) error {
	body, err := json.Marshal(map[string][]string{"collections": collections})
	if err != nil {
		return fmt.Errorf("encoding patch: %w", err)
	}

	headers := map[string]string{"If-Unmodified-Since-Version": strconv.Itoa(version)}
	resp, err := c.do(ctx, http.MethodPatch, "/items/"+itemKey, nil, body, headers)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// AddItemToCollection adds an item to a collection, preserving its existing
// memberships. Adding an item already in the collection is a no-op.
func (c *Client) AddItemToCollection(ctx context.Context, itemKey, collectionKey string) error {
	item, err := c.GetItem(ctx, itemKey)
	if err != nil {
		return err
	}

	for _, key := range item.Data.Collections {
		if key == collectionKey {
			return nil
		}
	}

	updated := append(append([]string(nil), item.Data.Collections...), collectionKey)
	return c.SetItemCollections(ctx, itemKey, item.Version, updated)
}
