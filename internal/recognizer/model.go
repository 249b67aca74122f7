package recognizer

import "github.com/daikumatan/anonymization/internal/nlp"

// LabelPerson is the entity label emitted by the model-backed recognizer.
const LabelPerson = "PERSON"

// ModelRecognizer delegates detection to a language-segmentation engine and
// keeps only segments of one target category. The underlying model is
// trusted fully: every kept segment is emitted at score 1.0, with no
// independent calibration.
type ModelRecognizer struct {
	engine   nlp.Engine
	category string
}

// NewModel returns a recognizer that emits LabelPerson for every segment
// whose category equals category (typically nlp.CategoryPerson).
func NewModel(engine nlp.Engine, category string) *ModelRecognizer {
	return &ModelRecognizer{engine: engine, category: category}
}

// Label implements Recognizer.
func (r *ModelRecognizer) Label() string { return LabelPerson }

// Analyze implements Recognizer. The engine is invoked exactly once per call.
func (r *ModelRecognizer) Analyze(text string) []Span {
	var spans []Span
	for _, seg := range r.engine.Segment(text) {
		if seg.Category != r.category {
			continue
		}
		spans = append(spans, Span{Label: LabelPerson, Start: seg.Start, End: seg.End, Score: 1.0})
	}
	return spans
}
