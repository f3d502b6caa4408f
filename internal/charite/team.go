package charite

import (
	"context"
	"fmt"
	"strings"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
	"github.com/bih-ceir/zotero-comfort/internal/roster"
)

// FetchMember fetches all publications for a team member, converted to
// records with the member's surname as provenance.
func (c *Client) FetchMember(ctx context.Context, member roster.Member) ([]pubrecord.Record, error) {
	if member.Token == "" {
		return nil, nil
	}

	pubs, err := c.FetchPublications(ctx, member.Token)
	if err != nil {
		return nil, fmt.Errorf("fetching for %s: %w", member.Surname, err)
	}

	records := make([]pubrecord.Record, 0, len(pubs))
	for _, pub := range pubs {
		records = append(records, pub.Record(member.Surname))
	}
	return records, nil
}

// FetchTeam fetches publications for every roster member with an API
// token. The result is the raw concatenation; deduplication happens
// downstream so provenance from multiple members can be merged.
func (c *Client) FetchTeam(ctx context.Context, team *roster.Roster) ([]pubrecord.Record, error) {
	var all []pubrecord.Record
	for _, member := range team.Fetchable() {
		records, err := c.FetchMember(ctx, member)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// FetchMemberByName fetches publications for the first roster member
// whose name or surname contains the given string (case-insensitive).
func (c *Client) FetchMemberByName(ctx context.Context, team *roster.Roster, name string) ([]pubrecord.Record, error) {
	needle := strings.ToLower(name)
	member, ok := team.FindMember(func(m roster.Member) bool {
		return strings.Contains(strings.ToLower(m.Name), needle) ||
			strings.Contains(strings.ToLower(m.Surname), needle)
	})
	if !ok {
		return nil, fmt.Errorf("no team member matching %q", name)
	}
	return c.FetchMember(ctx, member)
}

// DiscoverTokens traverses co-author networks starting from the known
// tokens and matches surnames against the roster. Returns a surname to
// token map covering both known and newly discovered members.
func (c *Client) DiscoverTokens(ctx context.Context, team *roster.Roster) (map[string]string, error) {
	surnames := make(map[string]bool)
	discovered := make(map[string]string)
	var scan []string

	for _, m := range team.Members {
		surnames[m.Surname] = true
		if m.Token != "" {
			discovered[m.Surname] = m.Token
			scan = append(scan, m.Token)
		}
	}

	for _, token := range scan {
		coauthors, err := c.FetchCoauthors(ctx, token)
		if err != nil {
			return nil, err
		}
		for _, ca := range coauthors {
			if ca.Token != "" && surnames[ca.Surname] && discovered[ca.Surname] == "" {
				discovered[ca.Surname] = ca.Token
			}
		}

		// Publication-level internal authors carry tokens too.
		pubs, err := c.FetchPublications(ctx, token)
		if err != nil {
			return nil, err
		}
		for _, pub := range pubs {
			for _, ia := range pub.InternalAuthors {
				if ia.Token != "" && surnames[ia.Surname] && discovered[ia.Surname] == "" {
					discovered[ia.Surname] = ia.Token
				}
			}
		}
	}

	return discovered, nil
}

// SearchTeam fetches all team publications and returns those whose
// title contains the query (case-insensitive), up to maxResults.
func (c *Client) SearchTeam(ctx context.Context, team *roster.Roster, query string, maxResults int) ([]pubrecord.Record, error) {
	all, err := c.FetchTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var matched []pubrecord.Record
	for _, rec := range all {
		if strings.Contains(strings.ToLower(rec.Title), needle) {
			matched = append(matched, rec)
			if maxResults > 0 && len(matched) >= maxResults {
				break
			}
		}
	}
	return matched, nil
}
