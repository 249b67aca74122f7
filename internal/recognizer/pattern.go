package recognizer

import (
	"fmt"
	"regexp"
)

// PatternRecognizer detects entities with a compiled regular expression and
// reports every non-overlapping match at a fixed confidence score.
type PatternRecognizer struct {
	name    string
	label   string
	pattern *regexp.Regexp
	score   float64
}

// NewPattern compiles expr and returns a pattern recognizer emitting label
// at the given score. A malformed expression is a configuration error
// surfaced here, at construction, never per call.
func NewPattern(name, label, expr string, score float64) (*PatternRecognizer, error) {
	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q for %s: %w", name, label, err)
	}
	if score < 0 || score > 1 {
		return nil, fmt.Errorf("pattern %q for %s: score %v outside [0,1]", name, label, score)
	}
	return &PatternRecognizer{name: name, label: label, pattern: compiled, score: score}, nil
}

// Label implements Recognizer.
func (r *PatternRecognizer) Label() string { return r.label }

// Analyze implements Recognizer.
func (r *PatternRecognizer) Analyze(text string) []Span {
	matches := r.pattern.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{Label: r.label, Start: m[0], End: m[1], Score: r.score})
	}
	return spans
}
