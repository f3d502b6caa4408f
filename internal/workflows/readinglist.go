package workflows

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// ReadingListEntry is one paper on a reading list.
type ReadingListEntry struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	Creators string `json:"creators,omitempty"`
}

// ReadingList is the result of BuildReadingList.
type ReadingList struct {
	Topic               string             `json:"topic"`
	PapersFound         int                `json:"papers_found"`
	PapersIncluded      int                `json:"papers_included"`
	Papers              []ReadingListEntry `json:"papers"`
	SuggestedCollection string             `json:"suggested_collection"`
}

// BuildReadingList searches the library for a topic, filters by minimum
// year when given, and returns the top maxPapers hits with a suggested
// collection for the topic.
func (s *Service) BuildReadingList(ctx context.Context, topic string, maxPapers, minYear int) (ReadingList, error) {
	if maxPapers <= 0 {
		maxPapers = 20
	}

	hits, err := s.library.SearchItems(ctx, topic, 100)
	if err != nil {
		return ReadingList{}, fmt.Errorf("searching for %q: %w", topic, err)
	}

	list := ReadingList{
		Topic:               topic,
		PapersFound:         len(hits),
		SuggestedCollection: SuggestCollection(topic),
	}

	for _, hit := range hits {
		year := pubrecord.ExtractYear(hit.Str("date"))
		if minYear > 0 && year < minYear {
			continue
		}

		list.Papers = append(list.Papers, ReadingListEntry{
			Key:      hit.Key(),
			Title:    hit.Str("title"),
			Year:     year,
			Creators: hit.Creators(),
		})
		if len(list.Papers) >= maxPapers {
			break
		}
	}

	list.PapersIncluded = len(list.Papers)
	return list, nil
}
