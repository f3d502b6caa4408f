package workflows

import (
	"context"
	"fmt"
	"strings"
)

// RelatedPaper is one hit from FindRelated.
type RelatedPaper struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Creators string `json:"creators,omitempty"`
}

// RelatedResult is the result of FindRelated.
type RelatedResult struct {
	SourceKey   string         `json:"source_key"`
	SourceTitle string         `json:"source_title"`
	Related     []RelatedPaper `json:"related"`
}

// FindRelated runs a semantic search seeded from the source paper's
// title and the first sentence of its abstract. The source itself is
// excluded from the results.
func (s *Service) FindRelated(ctx context.Context, itemKey string, limit int) (RelatedResult, error) {
	if limit <= 0 {
		limit = 10
	}

	source, err := s.library.GetItemMetadata(ctx, itemKey)
	if err != nil {
		return RelatedResult{}, fmt.Errorf("fetching source %s: %w", itemKey, err)
	}

	title := source.Str("title")
	query := title
	if abstract := source.Str("abstractNote"); abstract != "" {
		query = title + ". " + firstSentence(abstract)
	}

	hits, err := s.library.SemanticSearch(ctx, query, limit+1)
	if err != nil {
		return RelatedResult{}, fmt.Errorf("semantic search: %w", err)
	}

	result := RelatedResult{SourceKey: itemKey, SourceTitle: title}
	for _, hit := range hits {
		if hit.Key() == itemKey {
			continue
		}
		result.Related = append(result.Related, RelatedPaper{
			Key:      hit.Key(),
			Title:    hit.Str("title"),
			Creators: hit.Creators(),
		})
		if len(result.Related) >= limit {
			break
		}
	}
	return result, nil
}

func firstSentence(text string) string {
	if idx := strings.Index(text, "."); idx >= 0 {
		return text[:idx]
	}
	if len(text) > 200 {
		return text[:200]
	}
	return text
}
