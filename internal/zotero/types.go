// Package zotero provides a rate-limited client for the Zotero Web API v3.
package zotero

import "strconv"

// Item is a library item as returned by the API.
type Item struct {
	Key     string   `json:"key"`
	Version int      `json:"version"`
	Data    ItemData `json:"data"`
}

// ItemData is the editable payload of an item.
type ItemData struct {
	Key              string    `json:"key,omitempty"`
	Version          int       `json:"version,omitempty"`
	ItemType         string    `json:"itemType"`
	Title            string    `json:"title,omitempty"`
	Creators         []Creator `json:"creators,omitempty"`
	AbstractNote     string    `json:"abstractNote,omitempty"`
	PublicationTitle string    `json:"publicationTitle,omitempty"`
	Volume           string    `json:"volume,omitempty"`
	Issue            string    `json:"issue,omitempty"`
	Pages            string    `json:"pages,omitempty"`
	Date             string    `json:"date,omitempty"`
	DOI              string    `json:"DOI,omitempty"`
	URL              string    `json:"url,omitempty"`
	Extra            string    `json:"extra,omitempty"`
	Collections      []string  `json:"collections,omitempty"`
	Tags             []Tag     `json:"tags,omitempty"`
}

// Creator is an item author, editor, etc.
type Creator struct {
	CreatorType string `json:"creatorType"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Name        string `json:"name,omitempty"` // single-field form
}

// Tag is an item tag.
type Tag struct {
	Tag string `json:"tag"`
}

// Collection is a library collection.
type Collection struct {
	Key     string         `json:"key"`
	Version int            `json:"version"`
	Data    CollectionData `json:"data"`
}

// CollectionData is the editable payload of a collection.
type CollectionData struct {
	Name             string `json:"name"`
	ParentCollection string `json:"parentCollection,omitempty"`
}

// WriteResponse is the multi-object write result returned by POST endpoints.
type WriteResponse struct {
	Success    map[string]string         `json:"success"`    // index -> key
	Successful map[string]map[string]any `json:"successful"` // index -> object
	Unchanged  map[string]string         `json:"unchanged"`
	Failed     map[string]WriteFailure   `json:"failed"`
}

// WriteFailure describes a single failed object in a write response.
type WriteFailure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Keys returns the created object keys in index order where possible.
func (w WriteResponse) Keys() []string {
	var keys []string
	for i := 0; ; i++ {
		key, ok := w.Success[strconv.Itoa(i)]
		if !ok {
			break
		}
		keys = append(keys, key)
	}
	if keys == nil {
		for _, key := range w.Success {
			keys = append(keys, key)
		}
	}
	return keys
}
