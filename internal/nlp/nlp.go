// Package nlp wraps the language-segmentation capability consumed by the
// model-backed recognizer. The rest of the pipeline never tokenizes text
// itself; it sees only labeled byte ranges.
package nlp

import "fmt"

// CategoryPerson is the segment category for spans referring to a person.
const CategoryPerson = "Person"

// Segment is one labeled region of an input text. Start and End are byte
// offsets into the original string, 0 <= Start < End <= len(text).
type Segment struct {
	Category string
	Start    int
	End      int
}

// Engine segments text into labeled regions. Implementations are safe for
// repeated calls and hold no per-call state.
type Engine interface {
	Segment(text string) []Segment
}

// Load initializes a segmentation engine by backend and model name.
// Unknown names are configuration errors surfaced at startup.
func Load(engineName, modelName string) (Engine, error) {
	switch engineName {
	case "kagome":
		return newKagomeEngine(modelName)
	default:
		return nil, fmt.Errorf("unknown segmentation engine %q (supported: kagome)", engineName)
	}
}
