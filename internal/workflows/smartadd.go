package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
	"github.com/bih-ceir/zotero-comfort/internal/zotero"
)

// SmartAdd statuses.
const (
	StatusAdded     = "added"
	StatusDuplicate = "duplicate"
)

// SmartAddResult reports what SmartAdd did for a DOI.
type SmartAddResult struct {
	Status              string `json:"status"`
	DOI                 string `json:"doi"`
	Title               string `json:"title,omitempty"`
	ItemKey             string `json:"item_key,omitempty"`
	DuplicateKey        string `json:"duplicate_key,omitempty"`
	SuggestedCollection string `json:"suggested_collection,omitempty"`
	AssignedCollection  string `json:"assigned_collection,omitempty"`
	Message             string `json:"message,omitempty"`
}

// SmartAdd resolves a DOI via CrossRef, checks the library for a
// duplicate, creates the item and, when assignCollection is set, files
// it into the suggested collection if one with that name exists.
func (s *Service) SmartAdd(ctx context.Context, doi string, assignCollection bool) (SmartAddResult, error) {
	normalized := pubrecord.NormalizeDOI(doi)
	if !pubrecord.ValidDOI(normalized) {
		return SmartAddResult{}, fmt.Errorf("invalid DOI: %q", doi)
	}
	if s.resolver == nil || s.writer == nil {
		return SmartAddResult{}, errors.New("smart add needs CrossRef and Zotero write access")
	}

	// Duplicate check: search the library for the DOI itself.
	hits, err := s.library.SearchItems(ctx, normalized, 5)
	if err != nil {
		return SmartAddResult{}, fmt.Errorf("duplicate check: %w", err)
	}
	for _, hit := range hits {
		if pubrecord.NormalizeDOI(hit.Str("DOI")) == normalized ||
			pubrecord.NormalizeDOI(hit.Str("doi")) == normalized {
			return SmartAddResult{
				Status:       StatusDuplicate,
				DOI:          normalized,
				Title:        hit.Str("title"),
				DuplicateKey: hit.Key(),
				Message:      "paper already in library",
			}, nil
		}
	}

	rec, err := s.resolver.Resolve(ctx, normalized)
	if err != nil {
		return SmartAddResult{}, fmt.Errorf("resolving %s: %w", normalized, err)
	}

	keys, err := s.writer.CreateItems(ctx, []zotero.ItemData{zotero.ItemFromRecord(rec)})
	if err != nil {
		return SmartAddResult{}, fmt.Errorf("creating item: %w", err)
	}
	if len(keys) == 0 {
		return SmartAddResult{}, errors.New("create returned no item key")
	}

	result := SmartAddResult{
		Status:              StatusAdded,
		DOI:                 normalized,
		Title:               rec.Title,
		ItemKey:             keys[0],
		SuggestedCollection: SuggestCollection(rec.Title),
	}

	if assignCollection && result.SuggestedCollection != DefaultCollection {
		col, err := s.writer.FindCollection(ctx, result.SuggestedCollection)
		if err == nil {
			if err := s.writer.AddItemToCollection(ctx, keys[0], col.Key); err != nil {
				return result, fmt.Errorf("assigning collection: %w", err)
			}
			result.AssignedCollection = col.Key
		} else if !zotero.IsNotFound(err) {
			return result, fmt.Errorf("looking up collection: %w", err)
		}
	}

	return result, nil
}
