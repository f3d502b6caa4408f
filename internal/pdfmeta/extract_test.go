package pdfmeta

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain DOI in text",
			text: "This article is available at 10.1038/s41586-023-01234-5 online.",
			want: "10.1038/s41586-023-01234-5",
		},
		{
			name: "DOI with trailing period",
			text: "doi: 10.1093/jamia/ocab123.",
			want: "10.1093/jamia/ocab123",
		},
		{
			name: "DOI in URL",
			text: "https://doi.org/10.3233/SHTI210548",
			want: "10.3233/SHTI210548",
		},
		{
			name: "no DOI",
			text: "This page intentionally left blank.",
			want: "",
		},
		{
			name: "too short to be a DOI",
			text: "version 10.1234/x",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindDOI(tt.text)
			if got != tt.want {
				t.Errorf("FindDOI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Journal of Biomedical Informatics", true},
		{"Volume 12, Issue 3", true},
		{"Copyright 2023 the authors", true},
		{"Semantic Interoperability of Clinical Data", false},
	}

	for _, tt := range tests {
		if got := isHeaderLine(tt.line); got != tt.want {
			t.Errorf("isHeaderLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
