package workflows

import "strings"

// collectionKeywords maps title keywords to collection names. Checked
// in order so the more specific entries win over the catch-alls.
var collectionKeywords = []struct {
	keyword    string
	collection string
}{
	{"fhir", "FHIR"},
	{"hl7", "FHIR"},
	{"healthcare interoperability", "FHIR"},
	{"snomed", "Terminology"},
	{"loinc", "Terminology"},
	{"icd", "Terminology"},
	{"ontology", "Terminology"},
	{"machine learning", "ML"},
	{"deep learning", "ML"},
	{"neural network", "ML"},
	{"nlp", "NLP"},
	{"natural language", "NLP"},
	{"clinical", "Clinical"},
	{"patient", "Clinical"},
	{"ehr", "Clinical"},
	{"electronic health", "Clinical"},
}

// DefaultCollection is suggested when no keyword matches.
const DefaultCollection = "Uncategorized"

// SuggestCollection suggests a collection for a title or topic.
func SuggestCollection(title string) string {
	lower := strings.ToLower(title)
	for _, kc := range collectionKeywords {
		if strings.Contains(lower, kc.keyword) {
			return kc.collection
		}
	}
	return DefaultCollection
}
