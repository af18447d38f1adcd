package extract

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed results_schema.json
var resultsSchema []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaCompile  error
)

func resultSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("results_schema.json", bytes.NewReader(resultsSchema)); err != nil {
			schemaCompile = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaCompile = compiler.Compile("results_schema.json")
	})
	return compiledSchema, schemaCompile
}

// ValidateDocumentJSON validates an encoded result document against the
// embedded output schema. The extraction pipeline runs this on the bytes it
// is about to write so a malformed document never reaches disk.
func ValidateDocumentJSON(data []byte) error {
	schema, err := resultSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
