package charite

import (
	"regexp"
	"strings"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

var doiPrefixRe = regexp.MustCompile(`^https?://(dx\.)?doi\.org/`)

// normalizeEntry converts a raw API entry to a Publication.
// Entries without a title are dropped.
func normalizeEntry(entry publicationEntry) (Publication, bool) {
	data := entry.Publikation
	title := strings.TrimSpace(data.Titel)
	if title == "" {
		return Publication{}, false
	}

	pub := Publication{
		Title:           strings.TrimRight(title, "."),
		Authors:         parseAuthorString(data.AutorenString),
		Year:            data.PublikationJahr,
		Abstract:        data.Abriss,
		PublicationType: data.ExternPnTyp,
		BookTitle:       data.Buchtitel,
		Volume:          data.QuelleIdentifier,
		Issue:           data.QuelleIdentifier2,
		Pages:           data.QuelleLocation,
		JournalAbbrev:   data.Quelle.Name,
		OpenAccess:      entry.OAStatus,
	}

	pub.Journal = data.Quelle.Langname
	if pub.Journal == "" {
		pub.Journal = data.Quelle.Name
	}

	for _, link := range entry.Links {
		label := strings.ToLower(link.Label)
		switch {
		case strings.Contains(label, "doi"):
			pub.DOI = doiPrefixRe.ReplaceAllString(link.URL, "")
		case strings.Contains(label, "pubmed"):
			pub.PubMedURL = link.URL
		case strings.Contains(label, "pmc"):
			pub.PMCURL = link.URL
		case strings.Contains(label, "full text"), strings.Contains(label, "volltext"):
			pub.FulltextURL = link.URL
		}
	}

	for _, ia := range entry.InterneAutoren {
		author := InternalAuthor{Surname: ia.Name, FirstName: ia.Vorname}
		if ia.Person != nil {
			author.Token = ia.Person.Token
			author.Type = ia.Person.Type
		}
		pub.InternalAuthors = append(pub.InternalAuthors, author)
	}

	return pub, true
}

// parseAuthorString splits the backend's "Last,First;Last,First;..."
// author string into "Last, First" entries.
func parseAuthorString(s string) []string {
	var authors []string
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if last, first, found := strings.Cut(part, ","); found {
			authors = append(authors, strings.TrimSpace(last)+", "+strings.TrimSpace(first))
		} else {
			authors = append(authors, part)
		}
	}
	return authors
}

// Record converts a Publication to a pipeline record. The provenance
// holds the surname of the team member whose profile it was fetched from.
func (p Publication) Record(fetchedFor string) pubrecord.Record {
	url := ""
	if p.DOI != "" {
		url = "https://doi.org/" + p.DOI
	} else if p.PubMedURL != "" {
		url = p.PubMedURL
	}

	rec := pubrecord.Record{
		DOI:        p.DOI,
		Title:      p.Title,
		Authors:    p.Authors,
		Year:       p.Year,
		Journal:    p.Journal,
		Abstract:   p.Abstract,
		URL:        url,
		OpenAccess: p.OpenAccess,
		PMCID:      pmcIDFromURL(p.PMCURL),
		PMID:       pmidFromURL(p.PubMedURL),
	}
	if fetchedFor != "" {
		rec.AddProvenance(fetchedFor)
	}
	return rec
}

var (
	pmidRe = regexp.MustCompile(`pubmed(?:\.ncbi\.nlm\.nih\.gov)?/(\d+)`)
	pmcRe  = regexp.MustCompile(`(PMC\d+)`)
)

func pmidFromURL(url string) string {
	if m := pmidRe.FindStringSubmatch(url); len(m) > 1 {
		return m[1]
	}
	return ""
}

func pmcIDFromURL(url string) string {
	return pmcRe.FindString(url)
}
