package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rsunkara/eci-extract/internal/config"
	"github.com/rsunkara/eci-extract/internal/pdf"
	"github.com/rsunkara/eci-extract/internal/pdf/engine"
)

// Service runs the extraction pipeline: validate the input file, open it
// with a PDF engine, walk the pages for constituency banners and candidate
// tables, then write the assembled document as JSON.
type Service struct {
	cfg       *config.Config
	factory   *engine.Factory
	validator *pdf.Validator
	logger    *log.Logger
}

// NewService creates an extraction service from the given configuration
func NewService(cfg *config.Config) (*Service, error) {
	kind, err := engine.ParseKind(cfg.Engine)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:       cfg,
		factory:   engine.NewFactory(kind),
		validator: pdf.NewValidator(cfg.MaxFileSize),
		logger:    log.New(os.Stderr, "[Extract] ", log.LstdFlags),
	}, nil
}

// Extract runs the full pipeline for one document. Row and page level
// problems are absorbed where they occur; anything that survives to here is
// fatal for the run and reported with its pipeline stage. A panic inside the
// PDF engine is converted into a parse-stage error carrying the stack trace.
func (s *Service) Extract(req ExtractRequest) (result *ExtractResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = NewExtractError(StageParse, fmt.Errorf("panic: %v\n%s", r, debug.Stack()))
		}
	}()

	pdfPath := req.PDFPath
	if pdfPath == "" {
		pdfPath = s.cfg.PDFPath
	}
	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = s.cfg.OutputPath
	}

	validation, err := s.validator.ValidateFile(pdf.ValidateFileRequest{Path: pdfPath})
	if err != nil {
		return nil, NewExtractError(StageValidate, err)
	}
	if !validation.Valid {
		return nil, NewExtractError(StageValidate, errors.New(validation.Message))
	}

	sel, err := s.factory.Open(pdfPath)
	if err != nil {
		return nil, NewExtractError(StageOpen, err)
	}
	defer sel.Document.Close()

	if sel.FallbackReason != "" {
		s.logger.Printf("engine fallback: %s", sel.FallbackReason)
	}

	doc := s.assemble(sel.Document)

	encoded, err := encodeDocument(doc)
	if err != nil {
		return nil, NewExtractError(StageWrite, err)
	}
	if err := ValidateDocumentJSON(encoded); err != nil {
		return nil, NewExtractError(StageSchema, err)
	}
	if err := os.WriteFile(outputPath, encoded, 0o600); err != nil {
		return nil, NewExtractError(StageWrite, err)
	}

	return &ExtractResult{
		Document:        doc,
		Constituencies:  len(doc.Constituencies),
		TotalCandidates: doc.TotalCandidates(),
		OutputPath:      outputPath,
		Engine:          string(sel.Engine.Name()),
		FallbackReason:  sel.FallbackReason,
	}, nil
}

// assemble walks every page of an open document and builds the result
// document from the banners and tables it finds.
func (s *Service) assemble(doc engine.Document) *ResultsDocument {
	acc := NewAccumulator()
	pages := doc.PageCount()

	for pageNum := 1; pageNum <= pages; pageNum++ {
		page, err := doc.Page(pageNum)
		if err != nil {
			if s.cfg.IsDebug() {
				s.logger.Printf("page %d: %v", pageNum, err)
			}
			continue
		}
		s.processPage(acc, page, pageNum)
	}

	return &ResultsDocument{
		Election:       s.cfg.Election,
		State:          s.cfg.State,
		Constituencies: acc.Finish(),
	}
}

// processPage feeds one page through the banner detector and row parser.
// Pages without extractable text are skipped entirely, tables included.
// Tables are only read once a banner has activated a constituency.
func (s *Service) processPage(acc *Accumulator, page engine.Page, pageNum int) {
	text, err := page.Text()
	if err != nil || text == "" {
		return
	}

	if h, ok := ParseHeader(text); ok {
		acc.StartConstituency(h)
		if s.cfg.IsDebug() {
			s.logger.Printf("page %d: constituency %d (%s)", pageNum, h.Number, h.Name)
		}
	}
	if !acc.Active() {
		return
	}

	tables, err := page.Tables()
	if err != nil {
		if s.cfg.IsDebug() {
			s.logger.Printf("page %d tables: %v", pageNum, err)
		}
		return
	}

	for _, table := range tables {
		// The first two rows of every result table are column headers.
		if len(table.Rows) < 2 {
			continue
		}
		for _, row := range table.Rows[2:] {
			if c, ok := ParseRow(row); ok {
				acc.AddCandidate(c)
			}
		}
	}
}

// encodeDocument renders the document as indented UTF-8 JSON. HTML escaping
// is off so names keep their literal characters.
func encodeDocument(doc *ResultsDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
