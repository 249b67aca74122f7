// Package anonymizer turns recognized spans into masked text according to a
// per-label replacement policy.
package anonymizer

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLabel is returned when a span carries a label the policy has no
// replacement for. Unmapped entity types are never silently dropped or left
// unmasked; this is a configuration error.
var ErrUnknownLabel = errors.New("no replacement policy for label")

// Policy maps entity labels to the literal each detected span is replaced
// with. It is built once at startup and shared read-only by every cell
// processed; there are no post-construction mutators.
type Policy struct {
	replacements map[string]string
}

// NewPolicy copies the given label → literal mapping into an immutable policy.
func NewPolicy(replacements map[string]string) Policy {
	m := make(map[string]string, len(replacements))
	for label, literal := range replacements {
		m[label] = literal
	}
	return Policy{replacements: m}
}

// Replacement returns the literal for label and whether one is configured.
func (p Policy) Replacement(label string) (string, bool) {
	literal, ok := p.replacements[label]
	return literal, ok
}

// Labels returns the configured labels in sorted order.
func (p Policy) Labels() []string {
	labels := make([]string, 0, len(p.replacements))
	for label := range p.replacements {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Validate checks that the policy is total over labels: every label an
// active recognizer can emit must have a replacement. The gap is reported
// at startup rather than on the first cell that happens to match.
func (p Policy) Validate(labels []string) error {
	for _, label := range labels {
		if _, ok := p.replacements[label]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLabel, label)
		}
	}
	return nil
}
