package engine

import (
	"fmt"
)

// Kind identifies the underlying PDF engine being used
type Kind string

const (
	KindPlumber    Kind = "plumber"
	KindLedongthuc Kind = "ledongthuc"
	KindAuto       Kind = "auto" // Automatically select the best engine
)

// ParseKind converts a configuration string into an engine Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPlumber, KindLedongthuc, KindAuto:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown engine %q", s)
	}
}

// Capabilities describes what an engine can extract from a page
type Capabilities struct {
	Text   bool
	Tables bool
}

// Table is one detected table: an ordered sequence of rows, each row an
// ordered sequence of text cells. A cell the engine could not read is the
// empty string.
type Table struct {
	Rows [][]string
}

// Page exposes the per-page payload the pipelines consume
type Page interface {
	// Text returns the extracted plain text of the page. An empty string
	// means the page has no extractable text.
	Text() (string, error)

	// Tables returns the tables detected on the page. Engines without
	// table support return nil.
	Tables() ([]Table, error)
}

// Document represents an open PDF document
type Document interface {
	// PageCount returns the number of pages in the document
	PageCount() int

	// Page returns a specific page (1-based)
	Page(pageNum int) (Page, error)

	// Close releases resources associated with the document
	Close() error
}

// Engine opens PDF documents
type Engine interface {
	// Name returns the engine kind
	Name() Kind

	// Capabilities returns what the engine can extract
	Capabilities() Capabilities

	// Open opens a PDF from a file path
	Open(path string) (Document, error)
}

// EngineError wraps a failure inside a specific engine
type EngineError struct {
	Engine Kind   `json:"engine"`
	Op     string `json:"operation"`
	Err    error  `json:"error"`
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("PDF %s engine error in %s: %v", e.Engine, e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Common error variables
var (
	ErrDocumentClosed = fmt.Errorf("document is closed")
	ErrInvalidPage    = fmt.Errorf("invalid page number")
)
