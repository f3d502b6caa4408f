package pubrecord

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"lowercases", "FHIR In Practice", "fhirinpractice"},
		{"strips punctuation", "fhir in practice!!", "fhirinpractice"},
		{"keeps digits", "HL7 Version 2", "hl7version2"},
		{"empty input", "", ""},
		{"only punctuation", "—!?:;", ""},
		{"unicode stripped", "Übergabe für Ärzte", "bergabefrrzte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.title); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitle_Truncates(t *testing.T) {
	long := ""
	for i := 0; i < 20; i++ {
		long += "abcdefghij"
	}
	got := NormalizeTitle(long)
	if len(got) != TitleKeyLength {
		t.Errorf("expected %d chars, got %d", TitleKeyLength, len(got))
	}
}

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.1234/Test.2024", "10.1234/test.2024"},
		{"https://doi.org/10.1234/test", "10.1234/test"},
		{"http://dx.doi.org/10.1234/test", "10.1234/test"},
		{"doi:10.1234/test", "10.1234/test"},
		{"  10.1234/test  ", "10.1234/test"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDOI(tt.in); got != tt.want {
			t.Errorf("NormalizeDOI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidDOI(t *testing.T) {
	if !ValidDOI("https://doi.org/10.1234/jmir.2024") {
		t.Error("expected URL-prefixed DOI to validate")
	}
	if ValidDOI("not-a-doi") {
		t.Error("expected non-DOI to fail validation")
	}
	if ValidDOI("10.12/short-prefix") {
		t.Error("expected short registrant prefix to fail validation")
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2023-04-01", 2023},
		{"2021 Mar 15", 2021},
		{"no year here", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ExtractYear(tt.in); got != tt.want {
			t.Errorf("ExtractYear(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRecord_Key(t *testing.T) {
	withDOI := Record{DOI: "10.1/A", Title: "Some Title"}
	if got := withDOI.Key(); got != "10.1/a" {
		t.Errorf("expected DOI key, got %q", got)
	}

	titleOnly := Record{Title: "Some Title"}
	if got := titleOnly.Key(); got != "sometitle" {
		t.Errorf("expected title key, got %q", got)
	}

	// A DOI that normalizes to empty falls back to title.
	blankDOI := Record{DOI: "   ", Title: "Some Title"}
	if got := blankDOI.Key(); got != "sometitle" {
		t.Errorf("expected title fallback for blank DOI, got %q", got)
	}
}

func TestRecord_Provenance(t *testing.T) {
	r := Record{Title: "t"}
	r.AddProvenance("Thun")
	r.AddProvenance("Vorisek")
	r.AddProvenance("Thun") // duplicate ignored

	if len(r.Provenance) != 2 {
		t.Fatalf("expected 2 provenance entries, got %d", len(r.Provenance))
	}
	if r.Provenance[0] != "Thun" || r.Provenance[1] != "Vorisek" {
		t.Errorf("provenance order not preserved: %v", r.Provenance)
	}

	other := Record{Title: "t", Provenance: []string{"Vorisek", "Sass"}}
	r.MergeProvenance(other)
	if len(r.Provenance) != 3 || r.Provenance[2] != "Sass" {
		t.Errorf("union incorrect: %v", r.Provenance)
	}
}
