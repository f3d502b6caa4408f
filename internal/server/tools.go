package server

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bih-ceir/zotero-comfort/internal/mcpclient"
	"github.com/bih-ceir/zotero-comfort/internal/teamsync"
	"github.com/bih-ceir/zotero-comfort/internal/workflows"
)

type searchInput struct {
	Query string `json:"query" jsonschema:"search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum results (default 50)"`
}

type itemsOutput struct {
	Items []mcpclient.SearchHit `json:"items"`
	Count int                   `json:"count"`
}

func (d Deps) searchHandler(ctx context.Context, _ *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, itemsOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}
	hits, err := d.Library.SearchItems(ctx, in.Query, limit)
	if err != nil {
		return nil, itemsOutput{}, err
	}
	return nil, itemsOutput{Items: hits, Count: len(hits)}, nil
}

type itemKeyInput struct {
	ItemKey string `json:"item_key" jsonschema:"Zotero item key"`
}

func (d Deps) metadataHandler(ctx context.Context, _ *mcp.CallToolRequest, in itemKeyInput) (*mcp.CallToolResult, mcpclient.SearchHit, error) {
	hit, err := d.Library.GetItemMetadata(ctx, in.ItemKey)
	if err != nil {
		return nil, nil, err
	}
	return nil, hit, nil
}

type emptyInput struct{}

type collectionsOutput struct {
	Collections []mcpclient.SearchHit `json:"collections"`
}

func (d Deps) collectionsHandler(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, collectionsOutput, error) {
	cols, err := d.Library.ListCollections(ctx)
	if err != nil {
		return nil, collectionsOutput{}, err
	}
	return nil, collectionsOutput{Collections: cols}, nil
}

type collectionKeyInput struct {
	CollectionKey string `json:"collection_key" jsonschema:"Zotero collection key"`
}

func (d Deps) collectionItemsHandler(ctx context.Context, _ *mcp.CallToolRequest, in collectionKeyInput) (*mcp.CallToolResult, itemsOutput, error) {
	hits, err := d.Library.GetCollectionItems(ctx, in.CollectionKey)
	if err != nil {
		return nil, itemsOutput{}, err
	}
	return nil, itemsOutput{Items: hits, Count: len(hits)}, nil
}

type fulltextOutput struct {
	ItemKey  string `json:"item_key"`
	Fulltext string `json:"fulltext"`
}

func (d Deps) fulltextHandler(ctx context.Context, _ *mcp.CallToolRequest, in itemKeyInput) (*mcp.CallToolResult, fulltextOutput, error) {
	fulltext, ok := d.Library.(interface {
		GetItemFulltext(ctx context.Context, itemKey string) (string, error)
	})
	if !ok {
		return nil, fulltextOutput{}, errors.New("fulltext not supported by the configured library")
	}
	text, err := fulltext.GetItemFulltext(ctx, in.ItemKey)
	if err != nil {
		return nil, fulltextOutput{}, err
	}
	return nil, fulltextOutput{ItemKey: in.ItemKey, Fulltext: text}, nil
}

func (d Deps) semanticSearchHandler(ctx context.Context, _ *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, itemsOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 10
	}
	hits, err := d.Library.SemanticSearch(ctx, in.Query, limit)
	if err != nil {
		return nil, itemsOutput{}, err
	}
	return nil, itemsOutput{Items: hits, Count: len(hits)}, nil
}

type readingListInput struct {
	Topic     string `json:"topic" jsonschema:"research topic"`
	MaxPapers int    `json:"max_papers,omitempty" jsonschema:"maximum papers (default 20)"`
	MinYear   int    `json:"min_year,omitempty" jsonschema:"only include papers from this year on"`
}

func (d Deps) readingListHandler(ctx context.Context, _ *mcp.CallToolRequest, in readingListInput) (*mcp.CallToolResult, workflows.ReadingList, error) {
	list, err := d.Service.BuildReadingList(ctx, in.Topic, in.MaxPapers, in.MinYear)
	if err != nil {
		return nil, workflows.ReadingList{}, err
	}
	return nil, list, nil
}

type smartAddInput struct {
	DOI              string `json:"doi" jsonschema:"paper DOI"`
	AssignCollection bool   `json:"assign_collection,omitempty" jsonschema:"file the item into the suggested collection"`
}

func (d Deps) smartAddHandler(ctx context.Context, _ *mcp.CallToolRequest, in smartAddInput) (*mcp.CallToolResult, workflows.SmartAddResult, error) {
	result, err := d.Service.SmartAdd(ctx, in.DOI, in.AssignCollection)
	if err != nil {
		return nil, workflows.SmartAddResult{}, err
	}
	return nil, result, nil
}

type exportInput struct {
	Collection string `json:"collection,omitempty" jsonschema:"collection name to export"`
	Tag        string `json:"tag,omitempty" jsonschema:"tag to export"`
}

func (d Deps) exportHandler(ctx context.Context, _ *mcp.CallToolRequest, in exportInput) (*mcp.CallToolResult, workflows.Bibliography, error) {
	bib, err := d.Service.ExportBibliography(ctx, in.Collection, in.Tag)
	if err != nil {
		return nil, workflows.Bibliography{}, err
	}
	return nil, bib, nil
}

type relatedInput struct {
	ItemKey string `json:"item_key" jsonschema:"source item key"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum related papers (default 10)"`
}

func (d Deps) relatedHandler(ctx context.Context, _ *mcp.CallToolRequest, in relatedInput) (*mcp.CallToolResult, workflows.RelatedResult, error) {
	result, err := d.Service.FindRelated(ctx, in.ItemKey, in.Limit)
	if err != nil {
		return nil, workflows.RelatedResult{}, err
	}
	return nil, result, nil
}

type teamSyncInput struct {
	DryRun bool `json:"dry_run,omitempty" jsonschema:"plan without writing to the library"`
}

func (d Deps) teamSyncHandler(ctx context.Context, _ *mcp.CallToolRequest, in teamSyncInput) (*mcp.CallToolResult, *teamsync.Report, error) {
	if d.Syncer == nil || d.Team == nil {
		return nil, nil, errors.New("team sync not configured (roster or Zotero credentials missing)")
	}
	cols, err := teamsync.ResolveCollections(ctx, d.Remote, d.Years, d.UnknownName, in.DryRun)
	if err != nil {
		return nil, nil, err
	}
	report, err := d.Syncer.Run(ctx, d.Team, teamsync.Options{
		DryRun:      in.DryRun,
		Collections: cols,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, report, nil
}
