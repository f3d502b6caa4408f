package pubrecord

import (
	"regexp"
	"strings"
)

// TitleKeyLength caps normalized titles used as dedup keys.
const TitleKeyLength = 50

var yearRe = regexp.MustCompile(`\b(\d{4})\b`)

// NormalizeTitle reduces a free-text title to a comparison key: lowercase,
// letters and digits only, truncated to TitleKeyLength characters.
// Empty input yields an empty key.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	key := b.String()
	if len(key) > TitleKeyLength {
		key = key[:TitleKeyLength]
	}
	return key
}

// NormalizeDOI canonicalizes a DOI for comparison: trims whitespace, strips
// URL and "doi:" prefixes, and lowercases. A DOI that normalizes to the
// empty string is treated as absent.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "http://dx.doi.org/", "doi:"} {
		if strings.HasPrefix(strings.ToLower(doi), prefix) {
			doi = doi[len(prefix):]
			break
		}
	}
	return strings.ToLower(strings.TrimSpace(doi))
}

var doiRe = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)

// ValidDOI reports whether the normalized form of doi looks like a DOI.
func ValidDOI(doi string) bool {
	return doiRe.MatchString(NormalizeDOI(doi))
}

// ExtractYear pulls a four-digit year out of a free-form date string.
// Returns 0 when no year is found.
func ExtractYear(date string) int {
	m := yearRe.FindStringSubmatch(date)
	if m == nil {
		return 0
	}
	year := 0
	for _, c := range m[1] {
		year = year*10 + int(c-'0')
	}
	return year
}
