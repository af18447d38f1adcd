package engine

import (
	"fmt"

	pdfplumber "github.com/pyhub-apps/pdfplumber-golang"
	plumberpdf "github.com/pyhub-apps/pdfplumber-golang/pdf"
)

// PlumberEngine extracts text and tables using pyhub-apps/pdfplumber-golang.
// It is the primary engine: the only one that can see the candidate tables.
type PlumberEngine struct{}

// NewPlumberEngine creates a new plumber engine
func NewPlumberEngine() *PlumberEngine {
	return &PlumberEngine{}
}

// Name returns the engine kind
func (e *PlumberEngine) Name() Kind {
	return KindPlumber
}

// Capabilities returns what the engine can extract
func (e *PlumberEngine) Capabilities() Capabilities {
	return Capabilities{Text: true, Tables: true}
}

// Open opens a PDF from a file path
func (e *PlumberEngine) Open(path string) (Document, error) {
	doc, err := pdfplumber.OpenWithDslipak(path)
	if err != nil {
		return nil, &EngineError{
			Engine: KindPlumber,
			Op:     "open",
			Err:    fmt.Errorf("failed to open PDF: %w", err),
		}
	}

	return &plumberDocument{doc: doc}, nil
}

// plumberDocument adapts the pdfplumber document to the Document interface
type plumberDocument struct {
	doc    plumberpdf.Document
	closed bool
}

// PageCount returns the number of pages in the document
func (d *plumberDocument) PageCount() int {
	return d.doc.PageCount()
}

// Page returns a specific page (1-based)
func (d *plumberDocument) Page(pageNum int) (Page, error) {
	if d.closed {
		return nil, &EngineError{Engine: KindPlumber, Op: "page", Err: ErrDocumentClosed}
	}

	if pageNum < 1 || pageNum > d.doc.PageCount() {
		return nil, &EngineError{
			Engine: KindPlumber,
			Op:     "page",
			Err:    fmt.Errorf("%w: %d (document has %d pages)", ErrInvalidPage, pageNum, d.doc.PageCount()),
		}
	}

	// pdfplumber pages are 0-based
	page, err := d.doc.GetPage(pageNum - 1)
	if err != nil {
		return nil, &EngineError{
			Engine: KindPlumber,
			Op:     "page",
			Err:    fmt.Errorf("failed to load page %d: %w", pageNum, err),
		}
	}

	return &plumberPage{page: page, pageNum: pageNum}, nil
}

// Close closes the document
func (d *plumberDocument) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.doc.Close()
}

// plumberPage adapts a pdfplumber page to the Page interface
type plumberPage struct {
	page    plumberpdf.Page
	pageNum int
}

// Text returns the extracted plain text of the page
func (p *plumberPage) Text() (string, error) {
	return p.page.ExtractText(), nil
}

// Tables returns the tables detected on the page
func (p *plumberPage) Tables() ([]Table, error) {
	detected := p.page.ExtractTables()

	tables := make([]Table, 0, len(detected))
	for _, t := range detected {
		tables = append(tables, Table{Rows: t.Rows})
	}
	return tables, nil
}
