package dedup

import (
	"reflect"
	"testing"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

func TestDeduplicate_MergesByDOI(t *testing.T) {
	in := []pubrecord.Record{
		{Title: "FHIR in Practice", DOI: "10.1/a", Provenance: []string{"P1"}},
		{Title: "fhir in practice!!", DOI: "10.1/a", Provenance: []string{"P2"}},
	}

	out := Deduplicate(in)

	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].Title != "FHIR in Practice" {
		t.Errorf("first-seen scalar fields should win, got title %q", out[0].Title)
	}
	if !reflect.DeepEqual(out[0].Provenance, []string{"P1", "P2"}) {
		t.Errorf("expected provenance union {P1,P2}, got %v", out[0].Provenance)
	}
}

func TestDeduplicate_DistinctDOIsNeverMerge(t *testing.T) {
	in := []pubrecord.Record{
		{Title: "Same Title", DOI: "10.1/preprint", Provenance: []string{"P1"}},
		{Title: "Same Title", DOI: "10.1/journal", Provenance: []string{"P2"}},
	}

	out := Deduplicate(in)

	if len(out) != 2 {
		t.Fatalf("records with different DOIs must stay separate, got %d", len(out))
	}
}

func TestDeduplicate_TitleFallbackMergesIntoDOIRecord(t *testing.T) {
	in := []pubrecord.Record{
		{Title: "Interop Standards Review", DOI: "10.1/a", Provenance: []string{"P1"}},
		{Title: "Interop Standards Review", Provenance: []string{"P2"}}, // no DOI
	}

	out := Deduplicate(in)

	if len(out) != 1 {
		t.Fatalf("expected title-only record to merge into DOI record, got %d", len(out))
	}
	if !reflect.DeepEqual(out[0].Provenance, []string{"P1", "P2"}) {
		t.Errorf("expected provenance union, got %v", out[0].Provenance)
	}
}

func TestDeduplicate_BlankDOITreatedAsAbsent(t *testing.T) {
	in := []pubrecord.Record{
		{Title: "Some Work", DOI: "   ", Provenance: []string{"P1"}},
		{Title: "some work", Provenance: []string{"P2"}},
	}

	out := Deduplicate(in)

	if len(out) != 1 {
		t.Fatalf("blank DOI must fall back to title matching, got %d records", len(out))
	}
}

func TestDeduplicate_OrderPreserved(t *testing.T) {
	in := []pubrecord.Record{
		{Title: "Alpha", DOI: "10.1/a"},
		{Title: "Beta", DOI: "10.1/b"},
		{Title: "Alpha again", DOI: "10.1/a"},
		{Title: "Gamma", DOI: "10.1/c"},
	}

	out := Deduplicate(in)

	want := []string{"Alpha", "Beta", "Gamma"}
	if len(out) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(out))
	}
	for i, title := range want {
		if out[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, out[i].Title)
		}
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	in := []pubrecord.Record{
		{Title: "FHIR in Practice", DOI: "10.1/a", Provenance: []string{"P1"}},
		{Title: "fhir in practice", DOI: "10.1/a", Provenance: []string{"P2"}},
		{Title: "Untitled Work", Provenance: []string{"P3"}},
	}

	once := Deduplicate(in)
	twice := Deduplicate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("deduplicate is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestDeduplicate_DoesNotMutateInput(t *testing.T) {
	in := []pubrecord.Record{
		{Title: "A", DOI: "10.1/a", Provenance: []string{"P1"}},
		{Title: "A", DOI: "10.1/a", Provenance: []string{"P2"}},
	}

	Deduplicate(in)

	if len(in[0].Provenance) != 1 || in[0].Provenance[0] != "P1" {
		t.Errorf("input record mutated: %v", in[0].Provenance)
	}
}

func TestIngest_SkipsRecordsWithoutIdentity(t *testing.T) {
	raw := []pubrecord.Record{
		{Title: "Has a title"},
		{DOI: "10.1/only-doi"},
		{Abstract: "neither title nor doi"},
		{},
	}

	res := Ingest(raw)

	if len(res.Accepted) != 2 {
		t.Errorf("expected 2 accepted, got %d", len(res.Accepted))
	}
	if res.Skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", res.Skipped)
	}
}
