package extract

import "fmt"

// Pipeline stages reported by ExtractError
const (
	StageValidate = "validate"
	StageOpen     = "open"
	StageParse    = "parse"
	StageSchema   = "schema"
	StageWrite    = "write"
)

// ExtractError wraps a failure in a specific stage of the extraction pipeline
type ExtractError struct {
	Stage string
	Err   error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extraction failed at %s stage: %v", e.Stage, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// NewExtractError creates a new extraction error for the given stage
func NewExtractError(stage string, err error) *ExtractError {
	return &ExtractError{Stage: stage, Err: err}
}
