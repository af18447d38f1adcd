package inspect

import (
	"fmt"
	"io"
	"strings"
)

// Page content classifications
const (
	ClassText   = "text"
	ClassSparse = "sparse_text"
	ClassEmpty  = "empty"
)

// Report represents the outcome of inspecting the leading pages of a PDF
type Report struct {
	Path            string       `json:"path"`
	Engine          string       `json:"engine"`
	FallbackReason  string       `json:"fallback_reason,omitempty"`
	TablesSupported bool         `json:"tables_supported"`
	TotalPages      int          `json:"total_pages"`
	InspectedPages  int          `json:"inspected_pages"`
	Pages           []PageReport `json:"pages"`
}

// PageReport represents what one page yielded under inspection
type PageReport struct {
	Number         int            `json:"number"`
	Classification string         `json:"classification"`
	WordCount      int            `json:"word_count"`
	Text           string         `json:"text,omitempty"`
	TextTruncated  bool           `json:"text_truncated,omitempty"`
	TableCount     int            `json:"table_count"`
	Tables         []TablePreview `json:"tables,omitempty"`
}

// TablePreview represents the head of one detected table
type TablePreview struct {
	Number  int        `json:"number"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Render writes the report in its console form
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Using %s...\n", r.Engine)
	if r.FallbackReason != "" {
		fmt.Fprintf(w, "(fallback: %s)\n", r.FallbackReason)
	}
	if !r.TablesSupported {
		fmt.Fprintln(w, "(table extraction unavailable with this engine)")
	}

	for _, p := range r.Pages {
		fmt.Fprintf(w, "\n=== Page %d ===\n", p.Number)

		switch p.Classification {
		case ClassEmpty:
			fmt.Fprintln(w, "(no extractable text)")
		case ClassSparse:
			fmt.Fprintf(w, "(sparse text: %d words)\n", p.WordCount)
		}
		if p.Text != "" {
			fmt.Fprintln(w, p.Text)
		}

		if p.TableCount == 0 {
			continue
		}
		fmt.Fprintf(w, "\nFound %d table(s) on page %d\n", p.TableCount, p.Number)
		for _, t := range p.Tables {
			fmt.Fprintf(w, "\n--- Table %d ---\n", t.Number)
			fmt.Fprintf(w, "Headers: %v\n", t.Headers)
			for _, row := range t.Rows {
				fmt.Fprintf(w, "%v\n", row)
			}
		}
	}
}

// String returns the console form of the report
func (r *Report) String() string {
	var sb strings.Builder
	r.Render(&sb)
	return sb.String()
}
