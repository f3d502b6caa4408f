package pubmed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test@example.org", WithBaseURL(srv.URL), WithAPIKey("test-key"))
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/esearch.fcgi") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("db") != "pubmed" {
			t.Errorf("expected db=pubmed, got %q", q.Get("db"))
		}
		if q.Get("email") != "test@example.org" {
			t.Errorf("expected email param, got %q", q.Get("email"))
		}
		if q.Get("api_key") != "test-key" {
			t.Errorf("expected api_key param, got %q", q.Get("api_key"))
		}
		w.Write([]byte(`{"esearchresult": {"idlist": ["36123456", "35000001"]}}`))
	})

	pmids, err := client.Search(context.Background(), "fhir profiles", 10)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(pmids) != 2 || pmids[0] != "36123456" {
		t.Errorf("unexpected PMIDs: %v", pmids)
	}
}

func TestFetchArticles_Batches(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		ids := strings.Split(r.URL.Query().Get("id"), ",")
		if len(ids) > BatchSize {
			t.Errorf("batch too large: %d IDs", len(ids))
		}
		var b strings.Builder
		for _, id := range ids {
			b.WriteString("PMID- " + id + "\nTI  - Article " + id + "\n\n")
		}
		w.Write([]byte(b.String()))
	})

	pmids := make([]string, BatchSize+10)
	for i := range pmids {
		pmids[i] = fmt.Sprintf("10%03d", i)
	}

	articles, err := client.FetchArticles(context.Background(), pmids)
	if err != nil {
		t.Fatalf("FetchArticles() error: %v", err)
	}
	if requests != 2 {
		t.Errorf("expected 2 batched requests, got %d", requests)
	}
	if len(articles) != len(pmids) {
		t.Errorf("expected %d articles, got %d", len(pmids), len(articles))
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\n"))
	})

	if _, err := client.GetArticle(context.Background(), "99999999"); err == nil {
		t.Fatal("expected error for unknown PMID")
	}
}

func TestEnrich_ByPMID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleMedline))
	})

	records := []pubrecord.Record{
		{Title: "FHIR Profiles", PMID: "36123456", Provenance: []string{"Thun"}},
	}

	enriched, err := client.Enrich(context.Background(), records)
	if err != nil {
		t.Fatalf("Enrich() error: %v", err)
	}
	if enriched[0].DOI != "10.1055/a-2000-1234" {
		t.Errorf("expected DOI filled in, got %q", enriched[0].DOI)
	}
	if enriched[0].Abstract == "" {
		t.Error("expected abstract filled in")
	}
	if enriched[0].Title != "FHIR Profiles" {
		t.Errorf("existing title must not be overwritten, got %q", enriched[0].Title)
	}
	if !enriched[0].HasProvenance("Thun") {
		t.Error("provenance must survive enrichment")
	}
}

func TestEnrich_ByTitle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/esearch.fcgi") {
			w.Write([]byte(`{"esearchresult": {"idlist": ["36123456"]}}`))
			return
		}
		w.Write([]byte(sampleMedline))
	})

	records := []pubrecord.Record{
		{Title: "FHIR Profiles for Rare Disease Registries: Design and Implementation"},
	}

	enriched, err := client.Enrich(context.Background(), records)
	if err != nil {
		t.Fatalf("Enrich() error: %v", err)
	}
	if enriched[0].PMID != "36123456" {
		t.Errorf("expected PMID from title lookup, got %q", enriched[0].PMID)
	}
	if enriched[0].DOI != "10.1055/a-2000-1234" {
		t.Errorf("expected DOI from title lookup, got %q", enriched[0].DOI)
	}
}

func TestEnrich_TitleMismatchIgnored(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/esearch.fcgi") {
			w.Write([]byte(`{"esearchresult": {"idlist": ["36123456"]}}`))
			return
		}
		w.Write([]byte(sampleMedline))
	})

	records := []pubrecord.Record{
		{Title: "A Completely Different Paper"},
	}

	enriched, err := client.Enrich(context.Background(), records)
	if err != nil {
		t.Fatalf("Enrich() error: %v", err)
	}
	if enriched[0].PMID != "" || enriched[0].DOI != "" {
		t.Errorf("mismatched hit must not be applied, got %+v", enriched[0])
	}
}
