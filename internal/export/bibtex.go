// Package export renders publication records as BibTeX.
package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// ToBibTeX converts a single record to a BibTeX entry.
func ToBibTeX(rec pubrecord.Record) string {
	entryType := determineEntryType(rec)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, CitationKey(rec)))

	// Authors
	if len(rec.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", strings.Join(rec.Authors, " and ")))
	}

	// Title
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(rec.Title)))

	// Journal or booktitle
	if rec.Journal != "" {
		fieldName := "journal"
		if entryType == "inproceedings" {
			fieldName = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, escapeLatex(rec.Journal)))
	}

	// Year
	if rec.Year > 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", rec.Year))
	}

	// DOI (optional)
	if rec.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", rec.DOI))
	}

	// PMID (optional)
	if rec.PMID != "" {
		b.WriteString(fmt.Sprintf("  pmid = {%s},\n", rec.PMID))
	}

	// Abstract (optional, if present)
	if rec.Abstract != "" {
		b.WriteString(fmt.Sprintf("  abstract = {%s},\n", escapeLatex(rec.Abstract)))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts multiple records to BibTeX format.
func ToBibTeXList(recs []pubrecord.Record) string {
	var entries []string
	for _, rec := range recs {
		entries = append(entries, ToBibTeX(rec))
	}
	return strings.Join(entries, "\n")
}

// CitationKey derives a citation key from the first author's surname and
// the year, e.g. "thun2023". Falls back to the first title word when no
// author is known.
func CitationKey(rec pubrecord.Record) string {
	base := ""
	if len(rec.Authors) > 0 {
		last, _, _ := strings.Cut(rec.Authors[0], ",")
		base = keyToken(last)
	}
	if base == "" {
		for _, word := range strings.Fields(rec.Title) {
			if tok := keyToken(word); tok != "" {
				base = tok
				break
			}
		}
	}
	if base == "" {
		base = "unknown"
	}
	if rec.Year > 0 {
		return fmt.Sprintf("%s%d", base, rec.Year)
	}
	return base
}

// keyToken lowercases a word and strips everything that is not a letter or digit.
func keyToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// determineEntryType returns the BibTeX entry type for a record.
func determineEntryType(rec pubrecord.Record) string {
	journal := strings.ToLower(rec.Journal)

	// Conference proceedings
	if strings.Contains(journal, "proceedings") ||
		strings.Contains(journal, "conference") ||
		strings.Contains(journal, "workshop") ||
		strings.Contains(journal, "symposium") {
		return "inproceedings"
	}

	// Default to article
	return "article"
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
