package zotero

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("group", "12345", WithBaseURL(srv.URL), WithAPIKey("test-key"))
}

func TestSearchItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/groups/12345/items/top" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "fhir" {
			t.Errorf("expected q=fhir, got %q", got)
		}
		if got := r.Header.Get("Zotero-API-Key"); got != "test-key" {
			t.Errorf("expected API key header, got %q", got)
		}
		if got := r.Header.Get("Zotero-API-Version"); got != "3" {
			t.Errorf("expected API version 3, got %q", got)
		}

		json.NewEncoder(w).Encode([]Item{
			{Key: "AAAA1111", Version: 10, Data: ItemData{Title: "FHIR Profiles"}},
		})
	})

	items, err := client.SearchItems(context.Background(), "fhir", 10)
	if err != nil {
		t.Fatalf("SearchItems() error: %v", err)
	}
	if len(items) != 1 || items[0].Data.Title != "FHIR Profiles" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetItem(context.Background(), "MISSING1")
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestListAllItems_Paginates(t *testing.T) {
	pageSize := PageLimit
	total := pageSize + 25

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		start, _ := strconv.Atoi(r.URL.Query().Get("start"))
		count := pageSize
		if start+count > total {
			count = total - start
		}

		page := make([]Item, count)
		for i := range page {
			page[i] = Item{Key: "KEY" + strconv.Itoa(start+i)}
		}

		w.Header().Set("Total-Results", strconv.Itoa(total))
		json.NewEncoder(w).Encode(page)
	})

	items, err := client.ListAllItems(context.Background())
	if err != nil {
		t.Fatalf("ListAllItems() error: %v", err)
	}
	if len(items) != total {
		t.Errorf("expected %d items, got %d", total, len(items))
	}
}

func TestCreateItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Zotero-Write-Token") == "" {
			t.Error("expected a write token header")
		}

		var payload []ItemData
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		if len(payload) != 1 || payload[0].ItemType != "journalArticle" {
			t.Errorf("unexpected payload: %+v", payload)
		}

		json.NewEncoder(w).Encode(WriteResponse{
			Success: map[string]string{"0": "NEWKEY11"},
		})
	})

	keys, err := client.CreateItems(context.Background(), []ItemData{
		{ItemType: "journalArticle", Title: "New Paper"},
	})
	if err != nil {
		t.Fatalf("CreateItems() error: %v", err)
	}
	if len(keys) != 1 || keys[0] != "NEWKEY11" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestCreateItems_ReportsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(WriteResponse{
			Failed: map[string]WriteFailure{"0": {Code: 400, Message: "bad item"}},
		})
	})

	_, err := client.CreateItems(context.Background(), []ItemData{{ItemType: "journalArticle"}})
	if err == nil {
		t.Fatal("expected error for failed write")
	}
}

func TestAddItemToCollection_AlreadyMember(t *testing.T) {
	patched := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(Item{
				Key: "ITEM1111", Version: 7,
				Data: ItemData{Collections: []string{"COL1"}},
			})
		case http.MethodPatch:
			patched = true
		}
	})

	if err := client.AddItemToCollection(context.Background(), "ITEM1111", "COL1"); err != nil {
		t.Fatalf("AddItemToCollection() error: %v", err)
	}
	if patched {
		t.Error("no patch expected when item already in collection")
	}
}

func TestAddItemToCollection_Patches(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(Item{
				Key: "ITEM1111", Version: 7,
				Data: ItemData{Collections: []string{"COL1"}},
			})
		case http.MethodPatch:
			if got := r.Header.Get("If-Unmodified-Since-Version"); got != "7" {
				t.Errorf("expected version guard 7, got %q", got)
			}
			var body map[string][]string
			json.NewDecoder(r.Body).Decode(&body)
			if len(body["collections"]) != 2 {
				t.Errorf("expected 2 collections, got %v", body["collections"])
			}
			w.WriteHeader(http.StatusNoContent)
		}
	})

	if err := client.AddItemToCollection(context.Background(), "ITEM1111", "COL2"); err != nil {
		t.Fatalf("AddItemToCollection() error: %v", err)
	}
}

func TestCheckStatus_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
	})

	err := client.SetItemCollections(context.Background(), "ITEM1111", 3, nil)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestFindCollection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Collection{
			{Key: "COL2023A", Data: CollectionData{Name: "2023"}},
			{Key: "COL2024A", Data: CollectionData{Name: "2024"}},
		})
	})

	col, err := client.FindCollection(context.Background(), "2024")
	if err != nil {
		t.Fatalf("FindCollection() error: %v", err)
	}
	if col.Key != "COL2024A" {
		t.Errorf("expected COL2024A, got %s", col.Key)
	}

	if _, err := client.FindCollection(context.Background(), "2030"); !IsNotFound(err) {
		t.Errorf("expected not-found for unknown collection, got %v", err)
	}
}
