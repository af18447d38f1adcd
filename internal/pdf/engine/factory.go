package engine

import (
	"fmt"
	"strings"
)

// Factory selects and opens PDF engines
type Factory struct {
	kind Kind
}

// NewFactory creates a factory for the given engine kind. KindAuto tries the
// table-capable engine first and degrades to the text-only one.
func NewFactory(kind Kind) *Factory {
	return &Factory{kind: kind}
}

// Kind returns the configured engine kind
func (f *Factory) Kind() Kind {
	return f.kind
}

// Selection is the outcome of opening a document through the factory
type Selection struct {
	Engine   Engine
	Document Document

	// FallbackReason is set when the primary engine was passed over,
	// explaining why. Empty when the preferred engine opened the file.
	FallbackReason string
}

// Create instantiates an engine of the specified kind
func (f *Factory) Create(kind Kind) (Engine, error) {
	switch kind {
	case KindPlumber:
		return NewPlumberEngine(), nil
	case KindLedongthuc:
		return NewLedongthucEngine(), nil
	default:
		return nil, &EngineError{
			Engine: kind,
			Op:     "create",
			Err:    fmt.Errorf("unknown engine kind: %s", kind),
		}
	}
}

// candidates returns the engines to try, in preference order
func (f *Factory) candidates() []Engine {
	switch f.kind {
	case KindPlumber:
		return []Engine{NewPlumberEngine()}
	case KindLedongthuc:
		return []Engine{NewLedongthucEngine()}
	default:
		return []Engine{NewPlumberEngine(), NewLedongthucEngine()}
	}
}

// Open opens the document with the best available engine. With a forced
// kind only that engine is tried; with KindAuto a failure of the primary
// engine falls through to the next candidate and the selection records why.
func (f *Factory) Open(path string) (*Selection, error) {
	var failures []string
	var fallbackReason string

	for i, eng := range f.candidates() {
		doc, err := eng.Open(path)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", eng.Name(), err))
			if i == 0 {
				fallbackReason = fmt.Sprintf("%s engine could not open the file: %v", eng.Name(), err)
			}
			continue
		}

		sel := &Selection{Engine: eng, Document: doc}
		if i > 0 {
			sel.FallbackReason = fallbackReason
		}
		return sel, nil
	}

	return nil, &EngineError{
		Engine: f.kind,
		Op:     "open",
		Err:    fmt.Errorf("no usable PDF engine for %s (%s)", path, strings.Join(failures, "; ")),
	}
}

// CapabilitiesByKind returns the capabilities of every selectable engine
func CapabilitiesByKind() map[Kind]Capabilities {
	return map[Kind]Capabilities{
		KindPlumber:    {Text: true, Tables: true},
		KindLedongthuc: {Text: true, Tables: false},
	}
}
