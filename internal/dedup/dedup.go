// Package dedup collapses duplicate publication observations into unique
// records, first occurrence wins, provenance unioned.
package dedup

import (
	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// IngestResult reports what survived batch ingestion.
type IngestResult struct {
	Accepted []pubrecord.Record
	Skipped  int // records with neither title nor usable DOI
}

// Ingest filters a raw batch down to records that can enter the pipeline.
// Malformed records (no title and no DOI) are counted, not fatal.
func Ingest(raw []pubrecord.Record) IngestResult {
	res := IngestResult{}
	for _, r := range raw {
		if !r.Valid() {
			res.Skipped++
			continue
		}
		res.Accepted = append(res.Accepted, r)
	}
	return res
}

// Deduplicate collapses an ordered sequence of records into unique records.
//
// Matching is two-tier: records carrying a DOI are keyed by normalized DOI
// only, so two records with different DOIs are never merged even when their
// titles agree. DOI-less records match by normalized title against the first
// record seen with that title. On a repeat key the first-seen record's scalar
// fields win and only its provenance set grows.
//
// The input slice is not mutated; output order is the order of first
// occurrence. Deduplicate(Deduplicate(xs)) == Deduplicate(xs).
func Deduplicate(records []pubrecord.Record) []pubrecord.Record {
	out := make([]pubrecord.Record, 0, len(records))
	byDOI := make(map[string]int)   // normalized DOI -> output index
	byTitle := make(map[string]int) // normalized title -> output index

	for _, rec := range records {
		doi := pubrecord.NormalizeDOI(rec.DOI)
		title := pubrecord.NormalizeTitle(rec.Title)

		var idx int
		var matched bool
		if doi != "" {
			idx, matched = lookup(byDOI, doi)
		} else {
			idx, matched = lookup(byTitle, title)
		}

		if matched {
			out[idx].MergeProvenance(rec)
			continue
		}

		kept := rec
		kept.Provenance = append([]string(nil), rec.Provenance...)
		out = append(out, kept)
		pos := len(out) - 1

		if doi != "" {
			byDOI[doi] = pos
		}
		// Register the title even for DOI-bearing records so that a later
		// DOI-less observation of the same work merges into it.
		if title != "" {
			if _, taken := byTitle[title]; !taken {
				byTitle[title] = pos
			}
		}
	}

	return out
}

func lookup(index map[string]int, key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	idx, ok := index[key]
	return idx, ok
}
