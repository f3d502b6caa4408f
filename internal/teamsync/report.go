package teamsync

import (
	"fmt"
	"strings"

	"github.com/bih-ceir/zotero-comfort/internal/affiliation"
	"github.com/bih-ceir/zotero-comfort/internal/syncplan"
)

// Report summarizes a sync run.
type Report struct {
	Fetched  int `json:"fetched"`
	Skipped  int `json:"skipped"`
	Unique   int `json:"unique"`
	Included int `json:"included"`

	Excluded []affiliation.Classified `json:"excluded,omitempty"`
	Flagged  []affiliation.Classified `json:"flagged,omitempty"`

	AlreadyPresent []syncplan.Entry `json:"already_present,omitempty"`
	Planned        []syncplan.Entry `json:"planned,omitempty"`
	Created        []string         `json:"created,omitempty"`

	DryRun bool `json:"dry_run"`
}

// Summary renders a human-readable overview of the run.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Fetched %d publications (%d invalid, %d unique)\n", r.Fetched, r.Skipped, r.Unique)
	fmt.Fprintf(&b, "Included %d, excluded %d, flagged %d for review\n", r.Included, len(r.Excluded), len(r.Flagged))
	fmt.Fprintf(&b, "Already in library: %d\n", len(r.AlreadyPresent))

	if r.DryRun {
		fmt.Fprintf(&b, "Would create %d items (dry run)\n", len(r.Planned))
	} else {
		fmt.Fprintf(&b, "Created %d items\n", len(r.Created))
	}

	for _, c := range r.Flagged {
		fmt.Fprintf(&b, "  review: %s (%s)\n", c.Record.Title, c.Result.Reason)
	}

	return b.String()
}
