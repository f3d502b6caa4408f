package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

func TestToBibTeX_BasicArticle(t *testing.T) {
	rec := pubrecord.Record{
		DOI:      "10.1234/test",
		Title:    "Test Paper Title",
		Authors:  []string{"Smith, John", "Doe, Jane"},
		Abstract: "This is the abstract",
		Journal:  "Nature",
		Year:     2023,
		PMID:     "12345678",
	}

	got := ToBibTeX(rec)

	// Check entry type and key
	if !strings.HasPrefix(got, "@article{smith2023,") {
		t.Errorf("ToBibTeX() should start with @article{smith2023, got:\n%s", got)
	}

	// Check author format
	if !strings.Contains(got, `author = {Smith, John and Doe, Jane}`) {
		t.Errorf("ToBibTeX() should contain properly formatted authors, got:\n%s", got)
	}

	// Check title
	if !strings.Contains(got, `title = {Test Paper Title}`) {
		t.Errorf("ToBibTeX() should contain title, got:\n%s", got)
	}

	// Check journal
	if !strings.Contains(got, `journal = {Nature}`) {
		t.Errorf("ToBibTeX() should contain journal, got:\n%s", got)
	}

	// Check year
	if !strings.Contains(got, `year = {2023}`) {
		t.Errorf("ToBibTeX() should contain year, got:\n%s", got)
	}

	// Check DOI
	if !strings.Contains(got, `doi = {10.1234/test}`) {
		t.Errorf("ToBibTeX() should contain DOI, got:\n%s", got)
	}

	// Check PMID
	if !strings.Contains(got, `pmid = {12345678}`) {
		t.Errorf("ToBibTeX() should contain PMID, got:\n%s", got)
	}

	// Check abstract
	if !strings.Contains(got, `abstract = {This is the abstract}`) {
		t.Errorf("ToBibTeX() should contain abstract, got:\n%s", got)
	}

	// Check closing brace
	if !strings.HasSuffix(strings.TrimSpace(got), "}") {
		t.Errorf("ToBibTeX() should end with }, got:\n%s", got)
	}
}

func TestToBibTeX_Inproceedings(t *testing.T) {
	rec := pubrecord.Record{
		Title:   "A Conference Paper",
		Authors: []string{"Brown, Alice"},
		Journal: "Proceedings of MIE 2023",
		Year:    2023,
	}

	got := ToBibTeX(rec)

	if !strings.HasPrefix(got, "@inproceedings{brown2023,") {
		t.Errorf("ToBibTeX() conference paper should be @inproceedings, got:\n%s", got)
	}

	if !strings.Contains(got, `booktitle = {Proceedings of MIE 2023}`) {
		t.Errorf("ToBibTeX() conference paper should use booktitle, got:\n%s", got)
	}
}

func TestDetermineEntryType(t *testing.T) {
	tests := []struct {
		journal string
		want    string
	}{
		{"Nature", "article"},
		{"Methods of Information in Medicine", "article"},
		{"Proceedings of MedInfo", "inproceedings"},
		{"International Conference on Machine Learning", "inproceedings"},
		{"Workshop on AI Safety", "inproceedings"},
		{"Symposium on Theory of Computing", "inproceedings"},
		{"", "article"}, // Default
	}

	for _, tt := range tests {
		t.Run(tt.journal, func(t *testing.T) {
			rec := pubrecord.Record{Journal: tt.journal}
			got := determineEntryType(rec)
			if got != tt.want {
				t.Errorf("determineEntryType(%q) = %q, want %q", tt.journal, got, tt.want)
			}
		})
	}
}

func TestCitationKey(t *testing.T) {
	tests := []struct {
		name string
		rec  pubrecord.Record
		want string
	}{
		{
			name: "author and year",
			rec:  pubrecord.Record{Authors: []string{"Thun, Sylvia"}, Year: 2023},
			want: "thun2023",
		},
		{
			name: "surname with accents stripped of punctuation",
			rec:  pubrecord.Record{Authors: []string{"van der Berg, Anna"}, Year: 2021},
			want: "vanderberg2021",
		},
		{
			name: "no authors falls back to title",
			rec:  pubrecord.Record{Title: "FHIR Profiles in Practice", Year: 2022},
			want: "fhir2022",
		},
		{
			name: "nothing usable",
			rec:  pubrecord.Record{},
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CitationKey(tt.rec)
			if got != tt.want {
				t.Errorf("CitationKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeLatex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"100% effective", `100\% effective`},
		{"A & B", `A \& B`},
		{"$100 price", `\$100 price`},
		{"section #1", `section \#1`},
		{"under_score", `under\_score`},
		{"{braces}", `\{braces\}`},
		{"test~tilde", `test\textasciitilde{}tilde`},
		{"x^2", `x\textasciicircum{}2`},
		{"A & B: $100 for {item} #1", `A \& B: \$100 for \{item\} \#1`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeLatex(tt.input)
			if got != tt.want {
				t.Errorf("escapeLatex(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToBibTeX_OptionalFields(t *testing.T) {
	rec := pubrecord.Record{
		Title:   "Minimal Paper",
		Authors: []string{"B, A"},
		Year:    2023,
	}

	got := ToBibTeX(rec)

	// Should NOT contain optional fields
	if strings.Contains(got, "doi = ") {
		t.Errorf("ToBibTeX() should not include empty DOI, got:\n%s", got)
	}
	if strings.Contains(got, "abstract = ") {
		t.Errorf("ToBibTeX() should not include empty abstract, got:\n%s", got)
	}
	if strings.Contains(got, "journal = ") || strings.Contains(got, "booktitle = ") {
		t.Errorf("ToBibTeX() should not include empty journal, got:\n%s", got)
	}
}

func TestToBibTeXList(t *testing.T) {
	recs := []pubrecord.Record{
		{Title: "First Paper", Authors: []string{"B, A"}, Year: 2023},
		{Title: "Second Paper", Authors: []string{"D, C"}, Year: 2022},
	}

	got := ToBibTeXList(recs)

	if !strings.Contains(got, "@article{b2023,") {
		t.Errorf("ToBibTeXList() should contain first entry, got:\n%s", got)
	}
	if !strings.Contains(got, "@article{d2022,") {
		t.Errorf("ToBibTeXList() should contain second entry, got:\n%s", got)
	}

	// Entries should be separated by newline
	parts := strings.Split(got, "@article{")
	if len(parts) != 3 { // Empty first part + 2 entries
		t.Errorf("ToBibTeXList() should have 2 entries separated properly, got %d parts", len(parts)-1)
	}
}

func TestToBibTeXList_Empty(t *testing.T) {
	got := ToBibTeXList(nil)
	if got != "" {
		t.Errorf("ToBibTeXList(nil) should return empty string, got: %q", got)
	}
}

func TestParseBibTeXFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.bib")

	content := `@article{thun2023,
  author = {Thun, Sylvia},
  title = {Existing Paper},
  doi = {https://doi.org/10.1234/Existing},
  year = {2023},
}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := ParseBibTeXFile(path)
	if err != nil {
		t.Fatalf("ParseBibTeXFile() error: %v", err)
	}

	if !idx.Keys["thun2023"] {
		t.Error("expected citation key thun2023 in index")
	}

	// DOI match beats key match, case-insensitive and prefix-stripped
	dup := pubrecord.Record{DOI: "10.1234/existing", Title: "Existing Paper"}
	if !idx.HasRecord(dup) {
		t.Error("expected record with matching DOI to be detected")
	}

	// Same citation key but no DOI
	sameKey := pubrecord.Record{Authors: []string{"Thun, Sylvia"}, Year: 2023}
	if !idx.HasRecord(sameKey) {
		t.Error("expected record with matching citation key to be detected")
	}

	fresh := pubrecord.Record{DOI: "10.9999/new", Authors: []string{"Doe, Jane"}, Year: 2024}
	if idx.HasRecord(fresh) {
		t.Error("fresh record should not be detected as duplicate")
	}
}

func TestParseBibTeXFile_Missing(t *testing.T) {
	idx, err := ParseBibTeXFile(filepath.Join(t.TempDir(), "missing.bib"))
	if err != nil {
		t.Fatalf("ParseBibTeXFile() on missing file should not error, got: %v", err)
	}
	if len(idx.Keys) != 0 {
		t.Errorf("expected empty index, got %d keys", len(idx.Keys))
	}
}

func TestAppendToBibFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bib")

	if err := AppendToBibFile(path, "@article{a2023,\n}\n"); err != nil {
		t.Fatalf("AppendToBibFile() error: %v", err)
	}
	if err := AppendToBibFile(path, "@article{b2022,\n}\n"); err != nil {
		t.Fatalf("AppendToBibFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "a2023") || !strings.Contains(string(data), "b2022") {
		t.Errorf("expected both entries in file, got:\n%s", data)
	}
}
