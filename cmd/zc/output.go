package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bih-ceir/zotero-comfort/internal/mcpclient"
	"github.com/bih-ceir/zotero-comfort/internal/zotero"
)

const (
	DefaultSearchLimit = 50 // Default limit for search commands
	SearchTitleMaxLen  = 70 // Title truncation in search summaries
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitWithAPIError classifies an upstream error and exits with the
// matching code.
func exitWithAPIError(err error) {
	code := ExitAPIError
	if zotero.IsNotFound(err) {
		code = ExitNotFound
	} else if zotero.IsAuthError(err) {
		code = ExitConfigError
	}
	exitWithError(code, "%v", err)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// hitListResponse wraps search hits for JSON output.
type hitListResponse struct {
	Items []mcpclient.SearchHit `json:"items"`
	Count int                   `json:"count"`
}

// printHitsHuman prints library hits in human-readable format.
func printHitsHuman(hits []mcpclient.SearchHit) {
	if len(hits) == 0 {
		fmt.Println("No items found")
		return
	}
	for i, h := range hits {
		fmt.Printf("%d. %s\n", i+1, truncateString(h.Str("title"), SearchTitleMaxLen))
		if creators := h.Creators(); creators != "" {
			fmt.Printf("   %s\n", creators)
		}
		line := h.Key()
		if date := h.Str("date"); date != "" {
			line += "  " + date
		}
		if doi := h.Str("DOI"); doi != "" {
			line += "  doi:" + doi
		}
		fmt.Printf("   %s\n\n", line)
	}
}

// printHitDetailHuman prints a single item with all scalar fields.
func printHitDetailHuman(h mcpclient.SearchHit) {
	fmt.Printf("%s\n", h.Str("title"))
	if creators := h.Creators(); creators != "" {
		fmt.Printf("  %s\n", creators)
	}
	for _, field := range []string{"publicationTitle", "date", "DOI", "url", "itemType"} {
		if v := h.Str(field); v != "" {
			fmt.Printf("  %s: %s\n", field, v)
		}
	}
	fmt.Printf("  key: %s\n", h.Key())
	if abstract := h.Str("abstractNote"); abstract != "" {
		fmt.Printf("\n%s\n", wrapText(abstract, 68, "  "))
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// wrapText wraps text to the specified width with indentation on subsequent lines.
func wrapText(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= width {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n"+indent)
}
