package pubmed

import (
	"strings"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// Article holds the fields we use from a MEDLINE record.
type Article struct {
	PMID          string
	Title         string
	Abstract      string
	Authors       []string
	Journal       string
	JournalAbbrev string
	Date          string
	Year          int
	DOI           string
	PMCID         string
	MeshTerms     []string
}

// ParseMedline parses efetch output in MEDLINE text format
// (rettype=medline, retmode=text). Records are separated by blank
// lines; continuation lines start with six spaces.
func ParseMedline(text string) []Article {
	var articles []Article

	for _, block := range strings.Split(text, "\n\n") {
		fields := parseMedlineBlock(block)
		if len(fields) == 0 {
			continue
		}
		articles = append(articles, articleFromFields(fields))
	}

	return articles
}

// parseMedlineBlock collects tag -> values for one record.
func parseMedlineBlock(block string) map[string][]string {
	fields := make(map[string][]string)
	var tag string

	for _, line := range strings.Split(block, "\n") {
		if line == "" {
			continue
		}

		// Continuation line: append to the last value of the open tag.
		if strings.HasPrefix(line, "      ") {
			if tag == "" {
				continue
			}
			vals := fields[tag]
			if len(vals) > 0 {
				vals[len(vals)-1] += " " + strings.TrimSpace(line)
			}
			continue
		}

		// Tag line: "TI  - value" with the tag padded to 4 characters.
		if len(line) < 6 || line[4:6] != "- " {
			continue
		}
		tag = strings.TrimSpace(line[:4])
		fields[tag] = append(fields[tag], strings.TrimSpace(line[6:]))
	}

	if len(fields["PMID"]) == 0 {
		return nil
	}
	return fields
}

func articleFromFields(fields map[string][]string) Article {
	first := func(tag string) string {
		if vals := fields[tag]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	art := Article{
		PMID:          first("PMID"),
		Title:         strings.TrimRight(first("TI"), "."),
		Abstract:      first("AB"),
		Authors:       fields["AU"],
		Journal:       first("JT"),
		JournalAbbrev: first("TA"),
		Date:          first("DP"),
		MeshTerms:     fields["MH"],
	}
	art.Year = pubrecord.ExtractYear(art.Date)

	// Article IDs carry the DOI and PMCID with bracketed type suffixes.
	for _, aid := range fields["AID"] {
		lower := strings.ToLower(aid)
		switch {
		case strings.HasSuffix(lower, "[doi]"):
			art.DOI = strings.TrimSpace(strings.TrimSuffix(aid, aid[len(aid)-5:]))
		case strings.HasSuffix(lower, "[pmc]"):
			art.PMCID = strings.TrimSpace(strings.TrimSuffix(aid, aid[len(aid)-5:]))
		}
	}
	if art.PMCID == "" {
		art.PMCID = first("PMC")
	}

	return art
}

// Record converts an article to a pipeline record. Provenance stays
// empty; PubMed has no notion of which team member a paper belongs to.
func (a Article) Record() pubrecord.Record {
	return pubrecord.Record{
		DOI:      a.DOI,
		Title:    a.Title,
		Authors:  a.Authors,
		Year:     a.Year,
		Journal:  a.Journal,
		Abstract: a.Abstract,
		PMID:     a.PMID,
		PMCID:    a.PMCID,
		URL:      "https://pubmed.ncbi.nlm.nih.gov/" + a.PMID + "/",
	}
}
