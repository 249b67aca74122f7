package recognizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPattern(t *testing.T, name, label, expr string, score float64) *PatternRecognizer {
	t.Helper()
	rec, err := NewPattern(name, label, expr, score)
	require.NoError(t, err)
	return rec
}

func TestRegistry_Run_ConcatenatesInRegistrationOrder(t *testing.T) {
	registry := NewRegistry("ja")
	registry.Add(mustPattern(t, "digits", "NUM", `\d+`, 0.5))
	registry.Add(mustPattern(t, "letters", "WORD", `[a-z]+`, 0.5))

	spans, err := registry.Run("abc 123", "ja")
	require.NoError(t, err)

	// All NUM spans first (first registered), then WORD.
	require.Len(t, spans, 2)
	assert.Equal(t, "NUM", spans[0].Label)
	assert.Equal(t, "WORD", spans[1].Label)
}

func TestRegistry_Run_KeepsOverlappingSpans(t *testing.T) {
	registry := NewRegistry("ja")
	registry.Add(mustPattern(t, "a", "A", `abcd`, 0.5))
	registry.Add(mustPattern(t, "b", "B", `cdef`, 0.5))

	spans, err := registry.Run("abcdef", "ja")
	require.NoError(t, err)

	// No dedup or overlap resolution at this layer.
	assert.Equal(t, []Span{
		{Label: "A", Start: 0, End: 4, Score: 0.5},
		{Label: "B", Start: 2, End: 6, Score: 0.5},
	}, spans)
}

func TestRegistry_Run_UnsupportedLanguage(t *testing.T) {
	registry := NewRegistry("ja")
	registry.Add(mustPattern(t, "digits", "NUM", `\d+`, 0.5))

	spans, err := registry.Run("123", "en")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLanguageNotSupported))
	assert.Nil(t, spans, "no partial results on language mismatch")
}

func TestRegistry_Run_NoRecognizers(t *testing.T) {
	registry := NewRegistry("ja")
	spans, err := registry.Run("anything", "ja")
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestRegistry_Labels_DistinctInRegistrationOrder(t *testing.T) {
	registry := NewRegistry("ja")
	registry.Add(mustPattern(t, "p1", "USER_ID", `x`, 0.5))
	registry.Add(mustPattern(t, "p2", "EMAIL_ADDRESS", `y`, 0.5))
	registry.Add(mustPattern(t, "p3", "USER_ID", `z`, 0.5))

	assert.Equal(t, []string{"USER_ID", "EMAIL_ADDRESS"}, registry.Labels())
}

func TestRegistry_Language(t *testing.T) {
	assert.Equal(t, "ja", NewRegistry("ja").Language())
}
