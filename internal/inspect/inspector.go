package inspect

import (
	"strings"

	"github.com/rsunkara/eci-extract/internal/config"
	"github.com/rsunkara/eci-extract/internal/pdf/engine"
)

// Preview bounds of the rendered report. The text cap counts runes, not
// bytes, so multibyte names survive truncation intact.
const (
	textPreviewLimit = 2000
	maxTablePreviews = 2
	maxPreviewRows   = 5
	sparseWordCount  = 50
)

// Inspector opens a PDF and reports what its leading pages yield: extracted
// text previews, detected tables, and a rough per-page content
// classification. It produces no output artifact.
type Inspector struct {
	cfg     *config.Config
	factory *engine.Factory
}

// NewInspector creates an inspector from the given configuration
func NewInspector(cfg *config.Config) (*Inspector, error) {
	kind, err := engine.ParseKind(cfg.Engine)
	if err != nil {
		return nil, err
	}

	return &Inspector{
		cfg:     cfg,
		factory: engine.NewFactory(kind),
	}, nil
}

// InspectRequest represents a request to inspect a PDF file
type InspectRequest struct {
	PDFPath string `json:"pdf_path"`
	Pages   int    `json:"pages,omitempty"`
}

// Inspect opens the file with the best available engine and builds a report
// over its leading pages
func (i *Inspector) Inspect(req InspectRequest) (*Report, error) {
	path := req.PDFPath
	if path == "" {
		path = i.cfg.PDFPath
	}

	sel, err := i.factory.Open(path)
	if err != nil {
		return nil, err
	}
	defer sel.Document.Close()

	return i.buildReport(path, sel, req.Pages), nil
}

// buildReport walks the leading pages of an open document
func (i *Inspector) buildReport(path string, sel *engine.Selection, pages int) *Report {
	if pages <= 0 {
		pages = i.cfg.InspectPages
	}
	total := sel.Document.PageCount()
	if pages > total {
		pages = total
	}

	report := &Report{
		Path:            path,
		Engine:          string(sel.Engine.Name()),
		FallbackReason:  sel.FallbackReason,
		TablesSupported: sel.Engine.Capabilities().Tables,
		TotalPages:      total,
		InspectedPages:  pages,
		Pages:           []PageReport{},
	}

	for pageNum := 1; pageNum <= pages; pageNum++ {
		page, err := sel.Document.Page(pageNum)
		if err != nil {
			continue
		}
		report.Pages = append(report.Pages, i.inspectPage(page, pageNum, report.TablesSupported))
	}

	return report
}

// inspectPage builds the report entry for a single page
func (i *Inspector) inspectPage(page engine.Page, pageNum int, withTables bool) PageReport {
	pr := PageReport{Number: pageNum}

	text, err := page.Text()
	if err != nil {
		text = ""
	}
	pr.WordCount = len(strings.Fields(text))
	pr.Classification = classifyText(pr.WordCount)
	pr.Text, pr.TextTruncated = truncateRunes(text, textPreviewLimit)

	if !withTables {
		return pr
	}
	tables, err := page.Tables()
	if err != nil {
		return pr
	}
	pr.TableCount = len(tables)
	for j, table := range tables {
		if j >= maxTablePreviews {
			break
		}
		pr.Tables = append(pr.Tables, previewTable(table, j+1))
	}

	return pr
}

// previewTable keeps the header row and the first few data rows of a table
func previewTable(table engine.Table, number int) TablePreview {
	tp := TablePreview{Number: number}
	if len(table.Rows) == 0 {
		return tp
	}

	tp.Headers = table.Rows[0]
	end := len(table.Rows)
	if end > 1+maxPreviewRows {
		end = 1 + maxPreviewRows
	}
	tp.Rows = table.Rows[1:end]
	return tp
}

// classifyText buckets a page by how many words its text layer carries.
// Whitespace-only pages count as empty.
func classifyText(wordCount int) string {
	if wordCount == 0 {
		return ClassEmpty
	}
	if wordCount < sparseWordCount {
		return ClassSparse
	}
	return ClassText
}

// truncateRunes caps s at limit runes and reports whether it was cut
func truncateRunes(s string, limit int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}
