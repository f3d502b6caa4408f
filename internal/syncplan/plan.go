// Package syncplan diffs filtered publication records against an existing
// Zotero library and plans create/skip actions.
package syncplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// ErrRemoteUnavailable indicates the remote item listing could not be
// obtained. No partial plan is ever produced in that case.
var ErrRemoteUnavailable = errors.New("remote library listing unavailable")

// RemoteItem is the slice of an existing library item the planner needs.
type RemoteItem struct {
	Key         string
	DOI         string
	Title       string
	Collections []string
}

// Lister provides the remote library's current items.
type Lister interface {
	ListItems(ctx context.Context) ([]RemoteItem, error)
}

// Collections maps publication years to target collection keys, with a
// fallback bucket for records whose year is absent or unconfigured.
type Collections struct {
	ByYear  map[int]string
	Unknown string
}

// Resolve returns the collection key for a publication year.
func (c Collections) Resolve(year int) string {
	if key, ok := c.ByYear[year]; ok && key != "" {
		return key
	}
	return c.Unknown
}

// Action is the planned disposition for one record.
type Action string

const (
	ActionSkip   Action = "skip"   // already present in the remote library
	ActionCreate Action = "create" // to be created in the target collection
)

// Entry pairs a record with its planned action.
type Entry struct {
	Record        pubrecord.Record `json:"record"`
	Action        Action           `json:"action"`
	CollectionKey string           `json:"collection_key,omitempty"` // for creates
	MatchedKey    string           `json:"matched_key,omitempty"`    // remote item key, for skips
	MatchedBy     string           `json:"matched_by,omitempty"`     // "doi" or "title"
}

// Plan fetches the remote listing and diffs local records against it.
// A listing failure yields ErrRemoteUnavailable and no entries; the local
// input is never modified.
func Plan(ctx context.Context, local []pubrecord.Record, lister Lister, cols Collections) ([]Entry, error) {
	remote, err := lister.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	return Diff(local, remote, cols), nil
}

// Diff is the pure planning step: match each local record against the remote
// items by normalized DOI first, then by normalized title, and assign creates
// to the year-derived collection.
func Diff(local []pubrecord.Record, remote []RemoteItem, cols Collections) []Entry {
	byDOI := make(map[string]*RemoteItem)
	byTitle := make(map[string]*RemoteItem)
	for i := range remote {
		item := &remote[i]
		if doi := pubrecord.NormalizeDOI(item.DOI); doi != "" {
			if _, taken := byDOI[doi]; !taken {
				byDOI[doi] = item
			}
		}
		if title := pubrecord.NormalizeTitle(item.Title); title != "" {
			if _, taken := byTitle[title]; !taken {
				byTitle[title] = item
			}
		}
	}

	entries := make([]Entry, 0, len(local))
	for _, rec := range local {
		if item, by := match(rec, byDOI, byTitle); item != nil {
			entries = append(entries, Entry{
				Record:     rec,
				Action:     ActionSkip,
				MatchedKey: item.Key,
				MatchedBy:  by,
			})
			continue
		}

		entries = append(entries, Entry{
			Record:        rec,
			Action:        ActionCreate,
			CollectionKey: cols.Resolve(rec.Year),
		})
	}

	return entries
}

func match(rec pubrecord.Record, byDOI, byTitle map[string]*RemoteItem) (*RemoteItem, string) {
	if doi := pubrecord.NormalizeDOI(rec.DOI); doi != "" {
		if item, ok := byDOI[doi]; ok {
			return item, "doi"
		}
	}
	if title := pubrecord.NormalizeTitle(rec.Title); title != "" {
		if item, ok := byTitle[title]; ok {
			return item, "title"
		}
	}
	return nil, ""
}
