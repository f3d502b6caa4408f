// Package affiliation classifies publications as in-scope team output.
package affiliation

import (
	"fmt"
	"strings"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// Decision is the classification outcome for one record.
type Decision string

const (
	Include Decision = "include"
	Exclude Decision = "exclude"
	Flag    Decision = "flag" // needs manual review
)

// Result is a per-record classification decision with a human-readable reason.
type Result struct {
	Decision Decision `json:"decision"`
	Reason   string   `json:"reason,omitempty"`
	Member   string   `json:"member,omitempty"` // set for member-rule exclusions
	Topic    string   `json:"topic,omitempty"`  // set for member-rule exclusions
}

// Classify decides whether a record counts as team output.
//
// Rules are applied in order: records with no known team author are excluded;
// a member exclusion topic found in title or abstract excludes the record
// unless a keyword also matches (the keyword reinstates it); records matching
// no keyword at all in title, abstract or journal are flagged for manual
// review; everything else is included.
//
// Classification depends only on the record and the static rule inputs, so it
// is safe to run per record in any order.
func Classify(rec pubrecord.Record, rules map[string][]string, keywords []string) Result {
	if len(rec.Provenance) == 0 {
		return Result{Decision: Exclude, Reason: "no known team author"}
	}

	titleAbstract := strings.ToLower(rec.Title + " " + rec.Abstract)
	keywordInBody := anyKeyword(titleAbstract, keywords)

	for _, member := range rec.Provenance {
		for _, topic := range rules[member] {
			if topic == "" {
				continue
			}
			if strings.Contains(titleAbstract, strings.ToLower(topic)) {
				if keywordInBody {
					// An in-scope keyword reinstates the record; fall
					// through to the keyword check below.
					break
				}
				return Result{
					Decision: Exclude,
					Member:   member,
					Topic:    topic,
					Reason:   fmt.Sprintf("excluded topic %q for %s", topic, member),
				}
			}
		}
	}

	searchable := titleAbstract + " " + strings.ToLower(rec.Journal)
	if !anyKeyword(searchable, keywords) {
		return Result{Decision: Flag, Reason: "no matching keyword, needs manual review"}
	}

	return Result{Decision: Include}
}

// ClassifyAll classifies a batch and buckets the records by decision.
type Buckets struct {
	Included []pubrecord.Record
	Excluded []Classified
	Flagged  []Classified
}

// Classified pairs a record with its classification result.
type Classified struct {
	Record pubrecord.Record `json:"record"`
	Result Result           `json:"result"`
}

// ClassifyAll applies Classify to each record in order.
func ClassifyAll(records []pubrecord.Record, rules map[string][]string, keywords []string) Buckets {
	var b Buckets
	for _, rec := range records {
		res := Classify(rec, rules, keywords)
		switch res.Decision {
		case Include:
			b.Included = append(b.Included, rec)
		case Exclude:
			b.Excluded = append(b.Excluded, Classified{Record: rec, Result: res})
		case Flag:
			b.Flagged = append(b.Flagged, Classified{Record: rec, Result: res})
		}
	}
	return b
}

func anyKeyword(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
