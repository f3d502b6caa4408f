package syncplan

import (
	"context"
	"errors"
	"testing"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

var testCols = Collections{
	ByYear:  map[int]string{2023: "COL2023", 2024: "COL2024"},
	Unknown: "COLUNKNOWN",
}

type stubLister struct {
	items []RemoteItem
	err   error
}

func (s stubLister) ListItems(ctx context.Context) ([]RemoteItem, error) {
	return s.items, s.err
}

func TestDiff_MatchByDOI(t *testing.T) {
	local := []pubrecord.Record{
		{Title: "Completely Different Title", DOI: "10.1/a", Year: 2023},
	}
	remote := []RemoteItem{
		{Key: "ABCD1234", DOI: "10.1/A", Title: "Remote Title"},
	}

	entries := Diff(local, remote, testCols)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Action != ActionSkip {
		t.Errorf("expected skip, got %s", e.Action)
	}
	if e.MatchedBy != "doi" || e.MatchedKey != "ABCD1234" {
		t.Errorf("expected DOI match to ABCD1234, got %s/%s", e.MatchedBy, e.MatchedKey)
	}
}

func TestDiff_MatchByTitleWhenDOIAbsent(t *testing.T) {
	local := []pubrecord.Record{
		{Title: "FHIR in Practice", Year: 2023},
	}
	remote := []RemoteItem{
		{Key: "WXYZ9999", Title: "fhir in practice!"},
	}

	entries := Diff(local, remote, testCols)

	if entries[0].Action != ActionSkip || entries[0].MatchedBy != "title" {
		t.Errorf("expected title match, got %+v", entries[0])
	}
}

func TestDiff_DOICheckedBeforeTitle(t *testing.T) {
	local := []pubrecord.Record{
		{Title: "Shared Title", DOI: "10.1/a", Year: 2023},
	}
	remote := []RemoteItem{
		{Key: "TITLEKEY", Title: "Shared Title", DOI: "10.1/other"},
		{Key: "DOIKEY", Title: "Another Title", DOI: "10.1/a"},
	}

	entries := Diff(local, remote, testCols)

	if entries[0].MatchedKey != "DOIKEY" || entries[0].MatchedBy != "doi" {
		t.Errorf("DOI match must win over title match, got %+v", entries[0])
	}
}

func TestDiff_UnmatchedCreatesInYearCollection(t *testing.T) {
	local := []pubrecord.Record{
		{Title: "New Work", DOI: "10.1/new", Year: 2023},
	}

	entries := Diff(local, nil, testCols)

	e := entries[0]
	if e.Action != ActionCreate {
		t.Fatalf("expected create, got %s", e.Action)
	}
	if e.CollectionKey != "COL2023" {
		t.Errorf("expected 2023 collection, got %q", e.CollectionKey)
	}
}

func TestDiff_MissingYearFallsBackToUnknownBucket(t *testing.T) {
	local := []pubrecord.Record{
		{Title: "Undated Work"},
		{Title: "Out of Range", Year: 1850},
	}

	entries := Diff(local, nil, testCols)

	for _, e := range entries {
		if e.CollectionKey != "COLUNKNOWN" {
			t.Errorf("%q: expected unknown-year bucket, got %q", e.Record.Title, e.CollectionKey)
		}
	}
}

func TestPlan_RemoteFailureYieldsNoPartialPlan(t *testing.T) {
	local := []pubrecord.Record{
		{Title: "A", DOI: "10.1/a", Provenance: []string{"P1"}},
	}

	entries, err := Plan(context.Background(), local, stubLister{err: errors.New("boom")}, testCols)

	if !errors.Is(err, ErrRemoteUnavailable) {
		t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
	}
	if entries != nil {
		t.Errorf("expected no entries on failure, got %d", len(entries))
	}
	if len(local) != 1 || local[0].Provenance[0] != "P1" {
		t.Errorf("local input must not be modified")
	}
}

func TestPlan_Succeeds(t *testing.T) {
	local := []pubrecord.Record{
		{Title: "A", DOI: "10.1/a", Year: 2024},
	}
	lister := stubLister{items: []RemoteItem{{Key: "K", DOI: "10.1/b", Title: "B"}}}

	entries, err := Plan(context.Background(), local, lister, testCols)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if entries[0].Action != ActionCreate || entries[0].CollectionKey != "COL2024" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}
