// Package teamsync runs the full team publication sync: fetch every
// roster member's publications, enrich and deduplicate them, classify
// them against the roster rules, plan against the live Zotero library
// and apply the creates.
package teamsync

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/affiliation"
	"github.com/bih-ceir/zotero-comfort/internal/dedup"
	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
	"github.com/bih-ceir/zotero-comfort/internal/roster"
	"github.com/bih-ceir/zotero-comfort/internal/syncplan"
	"github.com/bih-ceir/zotero-comfort/internal/zotero"
)

// Fetcher pulls the raw team publications, normally the Charité client.
type Fetcher interface {
	FetchTeam(ctx context.Context, team *roster.Roster) ([]pubrecord.Record, error)
}

// Enricher fills metadata gaps, normally the PubMed client.
type Enricher interface {
	Enrich(ctx context.Context, records []pubrecord.Record) ([]pubrecord.Record, error)
}

// Remote is the Zotero library surface the sync needs.
type Remote interface {
	ListAllItems(ctx context.Context) ([]zotero.Item, error)
	CreateItems(ctx context.Context, items []zotero.ItemData) ([]string, error)
	FindCollection(ctx context.Context, name string) (*zotero.Collection, error)
	CreateCollection(ctx context.Context, name, parentKey string) (string, error)
}

// Options controls a sync run.
type Options struct {
	// DryRun plans but never writes to the library.
	DryRun bool
	// SkipEnrichment leaves records as fetched.
	SkipEnrichment bool
	// Collections maps years to collection keys. When empty, year
	// collections are resolved (and created) by name instead.
	Collections syncplan.Collections
}

// Syncer orchestrates the pipeline.
type Syncer struct {
	fetcher  Fetcher
	enricher Enricher
	remote   Remote
}

// NewSyncer creates a Syncer. enricher may be nil.
func NewSyncer(fetcher Fetcher, enricher Enricher, remote Remote) *Syncer {
	return &Syncer{fetcher: fetcher, enricher: enricher, remote: remote}
}

// remoteLister adapts the Zotero item listing to the planner.
type remoteLister struct {
	remote Remote
}

func (l remoteLister) ListItems(ctx context.Context) ([]syncplan.RemoteItem, error) {
	items, err := l.remote.ListAllItems(ctx)
	if err != nil {
		return nil, err
	}
	remote := make([]syncplan.RemoteItem, 0, len(items))
	for _, item := range items {
		remote = append(remote, syncplan.RemoteItem{
			Key:         item.Key,
			DOI:         item.Data.DOI,
			Title:       item.Data.Title,
			Collections: item.Data.Collections,
		})
	}
	return remote, nil
}

// Run executes the sync and returns a report. With DryRun set, the plan
// is computed but nothing is written.
func (s *Syncer) Run(ctx context.Context, team *roster.Roster, opts Options) (*Report, error) {
	raw, err := s.fetcher.FetchTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("fetching team publications: %w", err)
	}

	ingested := dedup.Ingest(raw)
	records := ingested.Accepted

	if s.enricher != nil && !opts.SkipEnrichment {
		records, err = s.enricher.Enrich(ctx, records)
		if err != nil {
			return nil, fmt.Errorf("enriching records: %w", err)
		}
	}

	unique := dedup.Deduplicate(records)
	buckets := affiliation.ClassifyAll(unique, team.ExclusionRules(), team.Keywords)

	entries, err := syncplan.Plan(ctx, buckets.Included, remoteLister{s.remote}, opts.Collections)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Fetched:  len(raw),
		Skipped:  ingested.Skipped,
		Unique:   len(unique),
		Included: len(buckets.Included),
		Excluded: buckets.Excluded,
		Flagged:  buckets.Flagged,
		DryRun:   opts.DryRun,
	}

	for _, entry := range entries {
		switch entry.Action {
		case syncplan.ActionSkip:
			report.AlreadyPresent = append(report.AlreadyPresent, entry)
		case syncplan.ActionCreate:
			report.Planned = append(report.Planned, entry)
		}
	}

	if opts.DryRun {
		return report, nil
	}

	if err := s.apply(ctx, report); err != nil {
		return report, err
	}
	return report, nil
}

// apply creates the planned items, one create call per collection so
// each batch can carry its collection key.
func (s *Syncer) apply(ctx context.Context, report *Report) error {
	byCollection := make(map[string][]pubrecord.Record)
	var order []string
	for _, entry := range report.Planned {
		key := entry.CollectionKey
		if _, seen := byCollection[key]; !seen {
			order = append(order, key)
		}
		byCollection[key] = append(byCollection[key], entry.Record)
	}

	for _, colKey := range order {
		records := byCollection[colKey]
		items := make([]zotero.ItemData, 0, len(records))
		for _, rec := range records {
			item := zotero.ItemFromRecord(rec)
			if colKey != "" {
				item.Collections = []string{colKey}
			}
			items = append(items, item)
		}

		keys, err := s.remote.CreateItems(ctx, items)
		if err != nil {
			return fmt.Errorf("creating %d items: %w", len(items), err)
		}
		report.Created = append(report.Created, keys...)
	}

	return nil
}

// ResolveCollections builds the year to collection-key map by looking
// the named collections up, creating missing ones unless dryRun is set.
// A year mapped to an empty name uses the year itself as the name. The
// unknown bucket uses unknownName.
func ResolveCollections(ctx context.Context, remote Remote, years map[int]string, unknownName string, dryRun bool) (syncplan.Collections, error) {
	cols := syncplan.Collections{ByYear: make(map[int]string)}

	resolve := func(name string) (string, error) {
		col, err := remote.FindCollection(ctx, name)
		if err == nil {
			return col.Key, nil
		}
		if !zotero.IsNotFound(err) {
			return "", err
		}
		if dryRun {
			return "", nil
		}
		return remote.CreateCollection(ctx, name, "")
	}

	for year, name := range years {
		if name == "" {
			name = fmt.Sprint(year)
		}
		key, err := resolve(name)
		if err != nil {
			return cols, fmt.Errorf("resolving collection for %d: %w", year, err)
		}
		cols.ByYear[year] = key
	}

	if unknownName != "" {
		key, err := resolve(unknownName)
		if err != nil {
			return cols, fmt.Errorf("resolving collection %q: %w", unknownName, err)
		}
		cols.Unknown = key
	}

	return cols, nil
}
