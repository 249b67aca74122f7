package anonymizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/daikumatan/anonymization/internal/recognizer"
)

// Engine replaces recognized spans with policy literals. It is stateless;
// one instance serves every cell of a run.
type Engine struct{}

// New returns an anonymization engine.
func New() *Engine {
	return &Engine{}
}

// Anonymize returns a copy of text with every span replaced by the policy
// literal for its label. The input text is never mutated.
//
// Spans are applied in a deterministic order: ascending start, and on equal
// start the longer span wins. Once a region has been consumed by a
// replacement, any later span starting inside it is skipped entirely
// (first-applied-wins), which prevents double-masking and nested
// replacement artifacts when recognizers overlap.
func (e *Engine) Anonymize(text string, spans []recognizer.Span, policy Policy) (string, error) {
	if len(spans) == 0 {
		return text, nil
	}

	ordered := make([]recognizer.Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].End > ordered[j].End
	})

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, s := range ordered {
		if s.Start < pos {
			// Inside an already-consumed region.
			continue
		}
		literal, ok := policy.Replacement(s.Label)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownLabel, s.Label)
		}
		b.WriteString(text[pos:s.Start])
		b.WriteString(literal)
		pos = s.End
	}
	b.WriteString(text[pos:])

	return b.String(), nil
}
