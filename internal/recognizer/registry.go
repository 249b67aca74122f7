package recognizer

import (
	"errors"
	"fmt"
)

// ErrLanguageNotSupported is returned by Registry.Run when asked to analyze
// text in a language the registry is not configured for. It is a
// configuration error: no partial results are produced.
var ErrLanguageNotSupported = errors.New("language not supported")

// Registry holds an ordered collection of recognizers scoped to one working
// language. Recognizers are added before the run starts and never mutated
// afterwards, so a registry is safe to share read-only across all cells.
type Registry struct {
	language    string
	recognizers []Recognizer
}

// NewRegistry creates an empty registry for the given language tag.
func NewRegistry(language string) *Registry {
	return &Registry{language: language}
}

// Add appends a recognizer. Registration order is preserved in Run output.
func (r *Registry) Add(rec Recognizer) {
	r.recognizers = append(r.recognizers, rec)
}

// Language returns the registry's supported language tag.
func (r *Registry) Language() string { return r.language }

// Len returns the number of registered recognizers.
func (r *Registry) Len() int { return len(r.recognizers) }

// Run invokes every recognizer against text and concatenates their spans in
// registration order. Overlapping spans from different recognizers are
// legitimate output here; overlap resolution belongs to the anonymizer.
func (r *Registry) Run(text, language string) ([]Span, error) {
	if language != r.language {
		return nil, fmt.Errorf("%w: %q (registry supports %q)", ErrLanguageNotSupported, language, r.language)
	}
	var spans []Span
	for _, rec := range r.recognizers {
		spans = append(spans, rec.Analyze(text)...)
	}
	return spans, nil
}

// Labels returns the distinct entity labels the registered recognizers can
// emit, in registration order. The anonymizer policy must be total over
// this set.
func (r *Registry) Labels() []string {
	seen := make(map[string]bool, len(r.recognizers))
	var labels []string
	for _, rec := range r.recognizers {
		if !seen[rec.Label()] {
			seen[rec.Label()] = true
			labels = append(labels, rec.Label())
		}
	}
	return labels
}
