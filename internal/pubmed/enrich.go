package pubmed

import (
	"context"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// Enrich fills gaps in records from PubMed. Records with a known PMID
// are fetched directly; records missing a DOI or abstract are looked up
// by title, and the hit is used only when its normalized title matches.
// Enrichment never overwrites a field that is already set.
func (c *Client) Enrich(ctx context.Context, records []pubrecord.Record) ([]pubrecord.Record, error) {
	// Batch everything with a PMID in one pass.
	var pmids []string
	for _, rec := range records {
		if rec.PMID != "" && needsEnrichment(rec) {
			pmids = append(pmids, rec.PMID)
		}
	}

	byPMID := make(map[string]Article)
	if len(pmids) > 0 {
		articles, err := c.FetchArticles(ctx, pmids)
		if err != nil {
			return nil, err
		}
		for _, art := range articles {
			byPMID[art.PMID] = art
		}
	}

	out := make([]pubrecord.Record, len(records))
	for i, rec := range records {
		if art, ok := byPMID[rec.PMID]; ok && rec.PMID != "" {
			rec = fillFromArticle(rec, art)
		} else if rec.PMID == "" && needsEnrichment(rec) && rec.Title != "" {
			art, found, err := c.lookupByTitle(ctx, rec.Title)
			if err != nil {
				return nil, err
			}
			if found {
				rec = fillFromArticle(rec, art)
			}
		}
		out[i] = rec
	}

	return out, nil
}

func needsEnrichment(rec pubrecord.Record) bool {
	return rec.DOI == "" || rec.Abstract == "" || rec.PMID == "" || rec.Year == 0
}

// lookupByTitle searches PubMed for the title and returns the first hit
// whose normalized title matches the query.
func (c *Client) lookupByTitle(ctx context.Context, title string) (Article, bool, error) {
	pmids, err := c.SearchByTitle(ctx, title)
	if err != nil {
		return Article{}, false, err
	}
	if len(pmids) == 0 {
		return Article{}, false, nil
	}

	articles, err := c.FetchArticles(ctx, pmids)
	if err != nil {
		return Article{}, false, err
	}

	want := pubrecord.NormalizeTitle(title)
	for _, art := range articles {
		if pubrecord.NormalizeTitle(art.Title) == want {
			return art, true, nil
		}
	}
	return Article{}, false, nil
}

func fillFromArticle(rec pubrecord.Record, art Article) pubrecord.Record {
	if rec.DOI == "" {
		rec.DOI = art.DOI
	}
	if rec.Abstract == "" {
		rec.Abstract = art.Abstract
	}
	if rec.PMID == "" {
		rec.PMID = art.PMID
	}
	if rec.PMCID == "" {
		rec.PMCID = art.PMCID
	}
	if rec.Year == 0 {
		rec.Year = art.Year
	}
	if rec.Journal == "" {
		rec.Journal = art.Journal
	}
	if len(rec.Authors) == 0 {
		rec.Authors = art.Authors
	}
	return rec
}
