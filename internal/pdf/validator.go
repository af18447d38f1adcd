package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator handles PDF file validation operations
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new PDF validator with the specified constraints
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{
		maxFileSize: maxFileSize,
	}
}

// ValidateFile performs comprehensive validation on a PDF file
func (v *Validator) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	result := &ValidateFileResult{
		Path:  req.Path,
		Valid: false,
	}

	pages, size, err := v.validatePDFFile(req.Path)
	if err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // Return result with validation error, not a processing error
	}

	result.Valid = true
	result.Pages = pages
	result.Size = size
	return result, nil
}

// validatePDFFile performs detailed validation on a PDF file and reports
// its page count and size
func (v *Validator) validatePDFFile(filePath string) (int, int64, error) {
	if filePath == "" {
		return 0, 0, fmt.Errorf("path cannot be empty")
	}

	// Check if file exists and get basic info
	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return 0, 0, fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("cannot access file: %w", err)
	}

	// Check if it's a regular file (not a directory)
	if fileInfo.IsDir() {
		return 0, 0, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	// Check file extension
	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return 0, 0, fmt.Errorf("file is not a PDF: %s", filePath)
	}

	// Check file size
	if fileInfo.Size() == 0 {
		return 0, 0, fmt.Errorf("file is empty: %s", filePath)
	}

	if fileInfo.Size() > v.maxFileSize {
		return 0, 0, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	pages, err := v.probePDF(filePath)
	if err != nil {
		return 0, 0, err
	}

	return pages, fileInfo.Size(), nil
}

// probePDF parses the file in relaxed validation mode to confirm it is a
// structurally sound PDF and to count its pages. Relaxed mode tolerates
// the malformed cross-reference tables found in many scanned documents.
func (v *Validator) probePDF(filePath string) (int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("cannot open file: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return 0, fmt.Errorf("invalid PDF file: %w", err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("cannot determine page count: %w", err)
	}

	return ctx.PageCount, nil
}

// IsValidPDF performs a quick check to see if a file is a valid PDF
func (v *Validator) IsValidPDF(filePath string) bool {
	_, _, err := v.validatePDFFile(filePath)
	return err == nil
}

// ValidateFileInfo performs basic validation on file info without opening the PDF
func (v *Validator) ValidateFileInfo(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", filePath)
	}

	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	return nil
}
