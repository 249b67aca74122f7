package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daikumatan/anonymization/internal/analyzer"
	"github.com/daikumatan/anonymization/internal/anonymizer"
	"github.com/daikumatan/anonymization/internal/nlp"
	"github.com/daikumatan/anonymization/internal/recognizer"
	"github.com/daikumatan/anonymization/internal/testutil"
)

func newTestRow(t *testing.T, language string) *Row {
	t.Helper()

	engine := &testutil.FakeSegmenter{Segments: map[string][]nlp.Segment{
		"田中太郎です": {{Category: nlp.CategoryPerson, Start: 0, End: 12}},
	}}

	registry := recognizer.NewRegistry("ja")
	registry.Add(recognizer.NewModel(engine, nlp.CategoryPerson))
	userID, err := recognizer.NewPattern("user_id", "USER_ID", `[A-Za-z]\d{7}`, 0.95)
	require.NoError(t, err)
	registry.Add(userID)

	policy := anonymizer.NewPolicy(map[string]string{
		"USER_ID": "<USER_ID>",
		"PERSON":  "<PERSON>",
	})
	require.NoError(t, policy.Validate(registry.Labels()))

	return NewRow(analyzer.New(registry), anonymizer.New(), policy, language)
}

func TestRow_Process_EndToEnd(t *testing.T) {
	row := newTestRow(t, "ja")

	got, err := row.Process([]string{"A1234567", "田中太郎です", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"<USER_ID>", "<PERSON>です", ""}, got)
}

// Exercises the default engine/model pair against the real IPA dictionary,
// so a dictionary loading regression surfaces here and not on the first run.
func TestRow_Process_EndToEnd_KagomeIPA(t *testing.T) {
	engine, err := nlp.Load("kagome", "ipa")
	require.NoError(t, err)

	registry := recognizer.NewRegistry("ja")
	registry.Add(recognizer.NewModel(engine, nlp.CategoryPerson))
	userID, err := recognizer.NewPattern("user_id", "USER_ID", `[A-Za-z]\d{7}`, 0.95)
	require.NoError(t, err)
	registry.Add(userID)

	policy := anonymizer.NewPolicy(map[string]string{
		"USER_ID": "<USER_ID>",
		"PERSON":  "<PERSON>",
	})
	row := NewRow(analyzer.New(registry), anonymizer.New(), policy, "ja")

	got, err := row.Process([]string{"A1234567", "田中太郎です", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"<USER_ID>", "<PERSON>です", ""}, got)

	got, err = row.Process([]string{"担当は田中太郎です。ID: A1234567"})
	require.NoError(t, err)
	assert.Equal(t, []string{"担当は<PERSON>です。ID: <USER_ID>"}, got)
}

func TestRow_Process_PreservesShape(t *testing.T) {
	row := newTestRow(t, "ja")

	tests := []struct {
		name  string
		input []string
	}{
		{"empty row", []string{}},
		{"single cell", []string{"hello"}},
		{"wide row", []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := row.Process(tt.input)
			require.NoError(t, err)
			assert.Len(t, got, len(tt.input))
		})
	}
}

func TestRow_Process_BlankCellsPassThroughByteIdentical(t *testing.T) {
	row := newTestRow(t, "ja")

	input := []string{"", " ", "\t", "  \t "}
	got, err := row.Process(input)
	require.NoError(t, err)
	assert.Equal(t, input, got, "blank cells must not be touched")
}

func TestRow_Process_CellWithoutPIIUnchanged(t *testing.T) {
	row := newTestRow(t, "ja")

	got, err := row.Process([]string{"no identifiers here"})
	require.NoError(t, err)
	assert.Equal(t, []string{"no identifiers here"}, got)
}

func TestRow_Process_LanguageMismatchFails(t *testing.T) {
	row := newTestRow(t, "en") // registry only supports ja

	_, err := row.Process([]string{"some text"})
	require.Error(t, err)
	assert.ErrorIs(t, err, recognizer.ErrLanguageNotSupported)
}
