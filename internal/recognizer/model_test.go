package recognizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daikumatan/anonymization/internal/nlp"
	"github.com/daikumatan/anonymization/internal/testutil"
)

func TestModelRecognizer_Analyze(t *testing.T) {
	engine := &testutil.FakeSegmenter{Segments: map[string][]nlp.Segment{
		"田中太郎です": {
			{Category: nlp.CategoryPerson, Start: 0, End: 12},
		},
		"東京の山田花子": {
			{Category: "Location", Start: 0, End: 6},
			{Category: nlp.CategoryPerson, Start: 9, End: 21},
		},
	}}
	rec := NewModel(engine, nlp.CategoryPerson)

	t.Run("person segment becomes PERSON span at full confidence", func(t *testing.T) {
		got := rec.Analyze("田中太郎です")
		assert.Equal(t, []Span{{Label: LabelPerson, Start: 0, End: 12, Score: 1.0}}, got)
	})

	t.Run("non-person categories are filtered out", func(t *testing.T) {
		got := rec.Analyze("東京の山田花子")
		assert.Equal(t, []Span{{Label: LabelPerson, Start: 9, End: 21, Score: 1.0}}, got)
	})

	t.Run("no qualifying segment yields empty result", func(t *testing.T) {
		assert.Empty(t, rec.Analyze("unknown text"))
	})
}

func TestModelRecognizer_Label(t *testing.T) {
	rec := NewModel(&testutil.FakeSegmenter{}, nlp.CategoryPerson)
	assert.Equal(t, "PERSON", rec.Label())
}
