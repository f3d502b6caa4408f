package server

import (
	"context"
	"errors"
	"testing"

	"github.com/bih-ceir/zotero-comfort/internal/mcpclient"
)

type stubLibrary struct {
	hits     []mcpclient.SearchHit
	fulltext string
	err      error
}

func (s *stubLibrary) SearchItems(_ context.Context, _ string, _ int) ([]mcpclient.SearchHit, error) {
	return s.hits, s.err
}

func (s *stubLibrary) GetItemMetadata(_ context.Context, _ string) (mcpclient.SearchHit, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.hits) == 0 {
		return nil, errors.New("no such item")
	}
	return s.hits[0], nil
}

func (s *stubLibrary) ListCollections(_ context.Context) ([]mcpclient.SearchHit, error) {
	return s.hits, s.err
}

func (s *stubLibrary) GetCollectionItems(_ context.Context, _ string) ([]mcpclient.SearchHit, error) {
	return s.hits, s.err
}

func (s *stubLibrary) SemanticSearch(_ context.Context, _ string, _ int) ([]mcpclient.SearchHit, error) {
	return s.hits, s.err
}

func (s *stubLibrary) SearchByTag(_ context.Context, _ string) ([]mcpclient.SearchHit, error) {
	return s.hits, s.err
}

func (s *stubLibrary) GetItemFulltext(_ context.Context, _ string) (string, error) {
	return s.fulltext, s.err
}

func TestSearchHandler_DefaultLimit(t *testing.T) {
	lib := &stubLibrary{hits: []mcpclient.SearchHit{
		{"key": "AAAA1111", "title": "FHIR profiling"},
		{"key": "BBBB2222", "title": "Terminology services"},
	}}
	deps := Deps{Library: lib}

	_, out, err := deps.searchHandler(context.Background(), nil, searchInput{Query: "fhir"})
	if err != nil {
		t.Fatalf("searchHandler: %v", err)
	}
	if out.Count != 2 || len(out.Items) != 2 {
		t.Errorf("got count %d, items %d, want 2", out.Count, len(out.Items))
	}
	if out.Items[0].Key() != "AAAA1111" {
		t.Errorf("first item key = %q", out.Items[0].Key())
	}
}

func TestMetadataHandler_Error(t *testing.T) {
	deps := Deps{Library: &stubLibrary{err: errors.New("upstream down")}}

	_, _, err := deps.metadataHandler(context.Background(), nil, itemKeyInput{ItemKey: "AAAA1111"})
	if err == nil {
		t.Fatal("expected error from failing library")
	}
}

func TestFulltextHandler(t *testing.T) {
	deps := Deps{Library: &stubLibrary{fulltext: "Introduction. We describe..."}}

	_, out, err := deps.fulltextHandler(context.Background(), nil, itemKeyInput{ItemKey: "AAAA1111"})
	if err != nil {
		t.Fatalf("fulltextHandler: %v", err)
	}
	if out.ItemKey != "AAAA1111" {
		t.Errorf("item key = %q", out.ItemKey)
	}
	if out.Fulltext == "" {
		t.Error("expected fulltext")
	}
}

func TestTeamSyncHandler_NotConfigured(t *testing.T) {
	deps := Deps{Library: &stubLibrary{}}

	_, _, err := deps.teamSyncHandler(context.Background(), nil, teamSyncInput{DryRun: true})
	if err == nil {
		t.Fatal("expected error when syncer is not configured")
	}
}

func TestNew_RegistersServer(t *testing.T) {
	s := New(Deps{Library: &stubLibrary{}})
	if s == nil {
		t.Fatal("New returned nil server")
	}
}
