// Package analyzer exposes the narrow analysis contract the anonymization
// stage depends on, hiding registry internals behind a stable seam.
package analyzer

import "github.com/daikumatan/anonymization/internal/recognizer"

// Engine runs one recognizer registry against a text.
type Engine struct {
	registry *recognizer.Registry
}

// New wraps a registry.
func New(registry *recognizer.Registry) *Engine {
	return &Engine{registry: registry}
}

// Analyze returns every span the registry's recognizers detect in text.
// The span list is unranked and may contain overlaps; resolution is the
// anonymizer's concern.
func (e *Engine) Analyze(text, language string) ([]recognizer.Span, error) {
	return e.registry.Run(text, language)
}
