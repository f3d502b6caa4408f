// Package pubrecord defines the core domain types for team publications.
package pubrecord

// Record represents one academic publication, possibly merged from
// observations contributed by several team members.
type Record struct {
	// Identity
	DOI   string `json:"doi,omitempty"` // Digital Object Identifier (primary dedup key)
	Title string `json:"title"`

	// Metadata
	Authors  []string `json:"authors,omitempty"`
	Year     int      `json:"year,omitempty"`
	Journal  string   `json:"journal,omitempty"`
	Abstract string   `json:"abstract,omitempty"`

	// External identifiers
	PMID  string `json:"pmid,omitempty"`
	PMCID string `json:"pmcid,omitempty"`
	URL   string `json:"url,omitempty"`

	OpenAccess bool `json:"open_access,omitempty"`

	// Provenance is the ordered set of team-member surnames through whom
	// this record was observed. Grown during dedup merging, never shrunk.
	Provenance []string `json:"provenance,omitempty"`
}

// Valid reports whether the record carries enough identity to enter the
// pipeline: a non-empty title or a usable DOI.
func (r Record) Valid() bool {
	return r.Title != "" || NormalizeDOI(r.DOI) != ""
}

// Key returns the deduplication key: the normalized DOI if present,
// otherwise the normalized title. Empty when the record has neither.
func (r Record) Key() string {
	if doi := NormalizeDOI(r.DOI); doi != "" {
		return doi
	}
	return NormalizeTitle(r.Title)
}

// HasProvenance reports whether member is already in the provenance set.
func (r Record) HasProvenance(member string) bool {
	for _, m := range r.Provenance {
		if m == member {
			return true
		}
	}
	return false
}

// AddProvenance adds member to the provenance set, preserving insertion order.
func (r *Record) AddProvenance(member string) {
	if member == "" || r.HasProvenance(member) {
		return
	}
	r.Provenance = append(r.Provenance, member)
}

// MergeProvenance unions another record's provenance into this one.
func (r *Record) MergeProvenance(other Record) {
	for _, m := range other.Provenance {
		r.AddProvenance(m)
	}
}
