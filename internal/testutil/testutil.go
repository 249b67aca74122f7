// Package testutil provides shared fixtures: a scripted segmentation engine
// and CSV file helpers.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/daikumatan/anonymization/internal/nlp"
)

// FakeSegmenter is a scripted nlp.Engine: each input text maps to a fixed
// segment list. Texts without an entry yield no segments.
type FakeSegmenter struct {
	Segments map[string][]nlp.Segment
}

// Segment implements nlp.Engine.
func (f *FakeSegmenter) Segment(text string) []nlp.Segment {
	return f.Segments[text]
}

// WriteCSV writes rows to a CSV file in a temp dir and returns its path.
func WriteCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatal(err)
	}
	return path
}

// ReadCSV reads all records from a CSV file.
func ReadCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}
