package engine

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// LedongthucEngine extracts plain text using ledongthuc/pdf. It is the
// text-only fallback: table extraction is not available, so a pipeline
// running on it sees every page as table-free.
type LedongthucEngine struct{}

// NewLedongthucEngine creates a new ledongthuc engine
func NewLedongthucEngine() *LedongthucEngine {
	return &LedongthucEngine{}
}

// Name returns the engine kind
func (e *LedongthucEngine) Name() Kind {
	return KindLedongthuc
}

// Capabilities returns what the engine can extract
func (e *LedongthucEngine) Capabilities() Capabilities {
	return Capabilities{Text: true, Tables: false}
}

// Open opens a PDF from a file path
func (e *LedongthucEngine) Open(path string) (Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &EngineError{
			Engine: KindLedongthuc,
			Op:     "open",
			Err:    fmt.Errorf("failed to open PDF: %w", err),
		}
	}

	return &ledongthucDocument{file: f, reader: reader}, nil
}

// ledongthucDocument adapts the ledongthuc reader to the Document interface
type ledongthucDocument struct {
	file   *os.File
	reader *pdf.Reader
	closed bool
}

// PageCount returns the number of pages in the document
func (d *ledongthucDocument) PageCount() int {
	return d.reader.NumPage()
}

// Page returns a specific page (1-based)
func (d *ledongthucDocument) Page(pageNum int) (Page, error) {
	if d.closed {
		return nil, &EngineError{Engine: KindLedongthuc, Op: "page", Err: ErrDocumentClosed}
	}

	if pageNum < 1 || pageNum > d.reader.NumPage() {
		return nil, &EngineError{
			Engine: KindLedongthuc,
			Op:     "page",
			Err:    fmt.Errorf("%w: %d (document has %d pages)", ErrInvalidPage, pageNum, d.reader.NumPage()),
		}
	}

	return &ledongthucPage{page: d.reader.Page(pageNum), pageNum: pageNum}, nil
}

// Close closes the document
func (d *ledongthucDocument) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// ledongthucPage adapts a ledongthuc page to the Page interface
type ledongthucPage struct {
	page    pdf.Page
	pageNum int
}

// Text returns the extracted plain text of the page
func (p *ledongthucPage) Text() (string, error) {
	// Pages can be null in malformed documents; treat them as empty so
	// the pipelines skip them
	if p.page.V.IsNull() {
		return "", nil
	}

	text, err := p.page.GetPlainText(nil)
	if err != nil {
		return "", &EngineError{
			Engine: KindLedongthuc,
			Op:     "text",
			Err:    fmt.Errorf("failed to extract text from page %d: %w", p.pageNum, err),
		}
	}
	return text, nil
}

// Tables returns nil: ledongthuc/pdf has no table detection
func (p *ledongthucPage) Tables() ([]Table, error) {
	return nil, nil
}
