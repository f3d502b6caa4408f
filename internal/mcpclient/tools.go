package mcpclient

import (
	"context"
	"encoding/json"
	"strings"
)

// SearchHit is a loosely-typed item returned by the upstream server.
// zotero-mcp's payloads vary by tool, so callers pick fields out of the
// raw map via the accessors below.
type SearchHit map[string]any

// Str returns a string field of the hit, or "".
func (h SearchHit) Str(key string) string {
	if v, ok := h[key].(string); ok {
		return v
	}
	return ""
}

// Key returns the Zotero item key of the hit.
func (h SearchHit) Key() string {
	if k := h.Str("key"); k != "" {
		return k
	}
	return h.Str("item_key")
}

// CreatorNames returns the hit's creators as "Last, First" entries.
// Single-field creators keep their name as-is.
func (h SearchHit) CreatorNames() []string {
	raw, ok := h["creators"].([]any)
	if !ok {
		return nil
	}

	var names []string
	for _, entry := range raw {
		c, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		hit := SearchHit(c)
		var name string
		switch {
		case hit.Str("lastName") != "" && hit.Str("firstName") != "":
			name = hit.Str("lastName") + ", " + hit.Str("firstName")
		case hit.Str("lastName") != "":
			name = hit.Str("lastName")
		default:
			name = hit.Str("name")
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Creators flattens the hit's creator list to a display string.
func (h SearchHit) Creators() string {
	if names := h.CreatorNames(); len(names) > 0 {
		return strings.Join(names, "; ")
	}
	return h.Str("creators")
}

// itemsPayload covers the two envelope shapes zotero-mcp responds with.
type itemsPayload struct {
	Items   []SearchHit `json:"items"`
	Results []SearchHit `json:"results"`
}

func (p itemsPayload) all() []SearchHit {
	if len(p.Items) > 0 {
		return p.Items
	}
	return p.Results
}

// SearchItems searches the library via the upstream server.
func (c *Client) SearchItems(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	var payload itemsPayload
	err := c.CallToolJSON(ctx, "zotero_search_items", map[string]any{
		"query": query,
		"limit": limit,
	}, &payload)
	if err != nil {
		return nil, err
	}
	hits := payload.all()
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// GetItemMetadata fetches metadata for an item by key.
func (c *Client) GetItemMetadata(ctx context.Context, itemKey string) (SearchHit, error) {
	var hit SearchHit
	err := c.CallToolJSON(ctx, "zotero_get_item_metadata", map[string]any{
		"item_key": itemKey,
	}, &hit)
	return hit, err
}

// ListCollections lists all collections in the library.
func (c *Client) ListCollections(ctx context.Context) ([]SearchHit, error) {
	var payload struct {
		Collections []SearchHit `json:"collections"`
	}
	err := c.CallToolJSON(ctx, "zotero_get_collections", map[string]any{}, &payload)
	return payload.Collections, err
}

// GetCollectionItems fetches the items of a collection by key.
func (c *Client) GetCollectionItems(ctx context.Context, collectionKey string) ([]SearchHit, error) {
	var payload itemsPayload
	err := c.CallToolJSON(ctx, "zotero_get_collection_items", map[string]any{
		"collection_key": collectionKey,
	}, &payload)
	return payload.all(), err
}

// GetItemFulltext fetches the full text content of an item.
func (c *Client) GetItemFulltext(ctx context.Context, itemKey string) (string, error) {
	text, err := c.CallTool(ctx, "zotero_get_item_fulltext", map[string]any{
		"item_key": itemKey,
	})
	if err != nil {
		return "", err
	}

	// Fulltext may arrive as a JSON envelope or as plain text.
	var payload struct {
		Fulltext string `json:"fulltext"`
		Text     string `json:"text"`
	}
	if json.Unmarshal([]byte(text), &payload) == nil {
		if payload.Fulltext != "" {
			return payload.Fulltext, nil
		}
		if payload.Text != "" {
			return payload.Text, nil
		}
	}
	return text, nil
}

// SemanticSearch runs the upstream embedding-backed search.
func (c *Client) SemanticSearch(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	var payload itemsPayload
	err := c.CallToolJSON(ctx, "zotero_semantic_search", map[string]any{
		"query": query,
		"limit": limit,
	}, &payload)
	return payload.all(), err
}

// GetTags lists all tags in the library.
func (c *Client) GetTags(ctx context.Context) ([]string, error) {
	var payload struct {
		Tags []string `json:"tags"`
	}
	err := c.CallToolJSON(ctx, "zotero_get_tags", map[string]any{}, &payload)
	return payload.Tags, err
}

// SearchByTag fetches items carrying a tag.
func (c *Client) SearchByTag(ctx context.Context, tag string) ([]SearchHit, error) {
	var payload itemsPayload
	err := c.CallToolJSON(ctx, "zotero_search_by_tag", map[string]any{
		"tag": tag,
	}, &payload)
	return payload.all(), err
}
