// Package workflows implements the smart library operations that
// combine the upstream proxy, CrossRef and the Zotero Web API: reading
// lists, DOI-driven adds, bibliography export and related-paper search.
package workflows

import (
	"context"

	"github.com/bih-ceir/zotero-comfort/internal/mcpclient"
	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
	"github.com/bih-ceir/zotero-comfort/internal/zotero"
)

// Library is the read surface, normally backed by the upstream
// zotero-mcp server.
type Library interface {
	SearchItems(ctx context.Context, query string, limit int) ([]mcpclient.SearchHit, error)
	GetItemMetadata(ctx context.Context, itemKey string) (mcpclient.SearchHit, error)
	ListCollections(ctx context.Context) ([]mcpclient.SearchHit, error)
	GetCollectionItems(ctx context.Context, collectionKey string) ([]mcpclient.SearchHit, error)
	SemanticSearch(ctx context.Context, query string, limit int) ([]mcpclient.SearchHit, error)
	SearchByTag(ctx context.Context, tag string) ([]mcpclient.SearchHit, error)
}

// Resolver turns a DOI into publication metadata, normally CrossRef.
type Resolver interface {
	Resolve(ctx context.Context, doi string) (pubrecord.Record, error)
}

// Writer is the write surface against the Zotero Web API.
type Writer interface {
	CreateItems(ctx context.Context, items []zotero.ItemData) ([]string, error)
	FindCollection(ctx context.Context, name string) (*zotero.Collection, error)
	AddItemToCollection(ctx context.Context, itemKey, collectionKey string) error
}

// Service bundles the dependencies of the smart workflows.
type Service struct {
	library  Library
	resolver Resolver
	writer   Writer
}

// NewService creates a workflow service. resolver and writer may be nil
// for read-only use; workflows needing them return an error then.
func NewService(library Library, resolver Resolver, writer Writer) *Service {
	return &Service{library: library, resolver: resolver, writer: writer}
}
