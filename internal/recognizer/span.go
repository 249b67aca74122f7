// Package recognizer implements entity detection: pattern-based and
// model-backed recognizers behind one interface, and the registry that
// runs them against a text for a single working language.
package recognizer

// Span is one detected entity occurrence. Start and End are byte offsets
// into the analyzed text, 0 <= Start < End <= len(text). Spans are produced
// by recognizers and consumed, never mutated, by the anonymizer.
type Span struct {
	Label string  `json:"label"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Score float64 `json:"score"` // confidence in [0,1]
}

// Recognizer scans text and proposes spans for one entity label.
// Implementations are pure functions of their construction-time
// configuration: no per-call mutable state, safe to share across a run.
type Recognizer interface {
	// Label returns the entity label this recognizer emits.
	Label() string

	// Analyze returns all spans detected in text, possibly empty, never nil
	// on failure — a text with no matches is an empty result, not an error.
	Analyze(text string) []Span
}
