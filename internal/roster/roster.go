// Package roster loads the team roster, exclusion rules and keyword list
// that drive publication fetching and affiliation filtering.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Member is one team member. Members without a research-database token have
// no fetchable profile; their publications surface through co-authors.
type Member struct {
	Name          string   `yaml:"name" json:"name"`
	Surname       string   `yaml:"surname" json:"surname"`
	Token         string   `yaml:"token,omitempty" json:"token,omitempty"`
	ORCID         string   `yaml:"orcid,omitempty" json:"orcid,omitempty"`
	ProfileURL    string   `yaml:"profile_url,omitempty" json:"profile_url,omitempty"`
	ExcludeTopics []string `yaml:"exclude_topics,omitempty" json:"exclude_topics,omitempty"`
}

// Roster is the full team configuration file.
type Roster struct {
	Members  []Member `yaml:"members" json:"members"`
	Keywords []string `yaml:"keywords" json:"keywords,omitempty"`
}

// Load reads and validates a roster file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(r.Members) == 0 {
		return nil, fmt.Errorf("roster must define at least one member")
	}
	seen := make(map[string]bool)
	for i, m := range r.Members {
		if m.Surname == "" {
			return nil, fmt.Errorf("member entry %d must have a surname", i+1)
		}
		if seen[m.Surname] {
			return nil, fmt.Errorf("duplicate member surname %q", m.Surname)
		}
		seen[m.Surname] = true
	}

	return &r, nil
}

// Fetchable returns the members that have a research-database token.
func (r *Roster) Fetchable() []Member {
	var out []Member
	for _, m := range r.Members {
		if m.Token != "" {
			out = append(out, m)
		}
	}
	return out
}

// ExclusionRules returns the member-surname -> exclusion-topics mapping
// consumed by the affiliation filter.
func (r *Roster) ExclusionRules() map[string][]string {
	rules := make(map[string][]string)
	for _, m := range r.Members {
		if len(m.ExcludeTopics) > 0 {
			rules[m.Surname] = m.ExcludeTopics
		}
	}
	return rules
}

// FindMember returns the first member whose name or surname contains the
// given string, case-insensitively handled by the caller.
func (r *Roster) FindMember(match func(Member) bool) (Member, bool) {
	for _, m := range r.Members {
		if match(m) {
			return m, true
		}
	}
	return Member{}, false
}
