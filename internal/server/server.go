// Package server exposes the library workflows as MCP tools over stdio.
// Read operations proxy through the upstream zotero-mcp server; the
// smart workflows and team sync run locally.
package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bih-ceir/zotero-comfort/internal/roster"
	"github.com/bih-ceir/zotero-comfort/internal/teamsync"
	"github.com/bih-ceir/zotero-comfort/internal/workflows"
)

// Version is stamped into the MCP handshake.
const Version = "0.3.0"

// Deps bundles what the server needs. Syncer, Remote and Team may be
// nil; the team_sync tool then reports an error instead of running.
type Deps struct {
	Library workflows.Library
	Service *workflows.Service

	Syncer *teamsync.Syncer
	Remote teamsync.Remote
	Team   *roster.Roster

	// Years maps publication years to collection names for the sync;
	// UnknownName is the bucket for records without a usable year.
	Years       map[int]string
	UnknownName string
}

// New builds the MCP server with all tools registered.
func New(deps Deps) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: "zotero-comfort", Version: Version}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "zotero_search",
		Description: "Search the Zotero library for items matching a query.",
	}, deps.searchHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "zotero_get_metadata",
		Description: "Get metadata for a Zotero item by key.",
	}, deps.metadataHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "zotero_list_collections",
		Description: "List all collections in the Zotero library.",
	}, deps.collectionsHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "zotero_get_collection_items",
		Description: "List the items of a collection by key.",
	}, deps.collectionItemsHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "zotero_get_fulltext",
		Description: "Get the full text of a Zotero item by key.",
	}, deps.fulltextHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "zotero_semantic_search",
		Description: "Semantic search over the Zotero library.",
	}, deps.semanticSearchHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "build_reading_list",
		Description: "Build a curated reading list for a research topic, with a suggested collection.",
	}, deps.readingListHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "smart_add_paper",
		Description: "Add a paper by DOI: duplicate check, CrossRef metadata resolution, collection suggestion.",
	}, deps.smartAddHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "export_bibliography",
		Description: "Export a collection or tag as BibTeX.",
	}, deps.exportHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "find_related_papers",
		Description: "Find papers related to a library item via semantic search.",
	}, deps.relatedHandler)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "team_sync",
		Description: "Sync the team's publications from the Charité research database into Zotero.",
	}, deps.teamSyncHandler)

	return s
}

// Run serves MCP over stdio until the context is cancelled.
func Run(ctx context.Context, deps Deps) error {
	return New(deps).Run(ctx, &mcp.StdioTransport{})
}
