package analyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daikumatan/anonymization/internal/recognizer"
)

func TestEngine_Analyze_Delegates(t *testing.T) {
	registry := recognizer.NewRegistry("ja")
	rec, err := recognizer.NewPattern("user_id", "USER_ID", `[A-Za-z]\d{7}`, 0.95)
	require.NoError(t, err)
	registry.Add(rec)

	engine := New(registry)

	spans, err := engine.Analyze("A1234567", "ja")
	require.NoError(t, err)
	assert.Equal(t, []recognizer.Span{{Label: "USER_ID", Start: 0, End: 8, Score: 0.95}}, spans)
}

func TestEngine_Analyze_LanguageErrorPropagates(t *testing.T) {
	engine := New(recognizer.NewRegistry("ja"))

	_, err := engine.Analyze("text", "en")
	require.Error(t, err)
	assert.True(t, errors.Is(err, recognizer.ErrLanguageNotSupported))
}

func TestEngine_Analyze_NoMatches(t *testing.T) {
	registry := recognizer.NewRegistry("ja")
	rec, err := recognizer.NewPattern("user_id", "USER_ID", `[A-Za-z]\d{7}`, 0.95)
	require.NoError(t, err)
	registry.Add(rec)

	spans, err := New(registry).Analyze("no identifiers here", "ja")
	require.NoError(t, err)
	assert.Empty(t, spans)
}
