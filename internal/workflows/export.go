package workflows

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/export"
	"github.com/bih-ceir/zotero-comfort/internal/mcpclient"
	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// Bibliography is the result of ExportBibliography.
type Bibliography struct {
	Format       string `json:"format"`
	Count        int    `json:"count"`
	Bibliography string `json:"bibliography"`

	// Records are the exported records, for callers that want to
	// re-render or filter (e.g. append-with-dedup to a .bib file).
	Records []pubrecord.Record `json:"-"`
}

// ExportBibliography renders a collection (by name) or a tag as BibTeX.
// Exactly one of collectionName and tag must be set.
func (s *Service) ExportBibliography(ctx context.Context, collectionName, tag string) (Bibliography, error) {
	var hits []mcpclient.SearchHit
	var err error

	switch {
	case collectionName != "" && tag != "":
		return Bibliography{}, fmt.Errorf("specify a collection or a tag, not both")
	case collectionName != "":
		hits, err = s.collectionItems(ctx, collectionName)
	case tag != "":
		hits, err = s.library.SearchByTag(ctx, tag)
	default:
		return Bibliography{}, fmt.Errorf("specify a collection or a tag")
	}
	if err != nil {
		return Bibliography{}, err
	}

	records := make([]pubrecord.Record, 0, len(hits))
	for _, hit := range hits {
		if rec := recordFromHit(hit); rec.Valid() {
			records = append(records, rec)
		}
	}

	return Bibliography{
		Format:       "bibtex",
		Count:        len(records),
		Bibliography: export.ToBibTeXList(records),
		Records:      records,
	}, nil
}

func (s *Service) collectionItems(ctx context.Context, name string) ([]mcpclient.SearchHit, error) {
	collections, err := s.library.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	for _, col := range collections {
		if col.Str("name") == name {
			return s.library.GetCollectionItems(ctx, col.Key())
		}
	}
	return nil, fmt.Errorf("collection not found: %s", name)
}

// recordFromHit converts an upstream item payload to a record.
func recordFromHit(hit mcpclient.SearchHit) pubrecord.Record {
	rec := pubrecord.Record{
		Title:    hit.Str("title"),
		Journal:  hit.Str("publicationTitle"),
		Abstract: hit.Str("abstractNote"),
		Year:     pubrecord.ExtractYear(hit.Str("date")),
		URL:      hit.Str("url"),
	}
	if doi := hit.Str("DOI"); doi != "" {
		rec.DOI = doi
	} else {
		rec.DOI = hit.Str("doi")
	}
	rec.Authors = hit.CreatorNames()
	return rec
}
