package processor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultProgressInterval is the record cadence for progress log events.
const DefaultProgressInterval = 10

// CSV streams a delimited input file through a Row processor into an output
// file. Records are written and flushed one at a time, so memory stays
// proportional to a single row and a fatal mid-run error leaves everything
// already flushed as the partial result.
type CSV struct {
	row              *Row
	progressInterval int
}

// NewCSV creates a batch driver. A non-positive progressInterval falls back
// to DefaultProgressInterval.
func NewCSV(row *Row, progressInterval int) *CSV {
	if progressInterval <= 0 {
		progressInterval = DefaultProgressInterval
	}
	return &CSV{row: row, progressInterval: progressInterval}
}

// Run anonymizes inputPath into outputPath. The input is opened before the
// output is created, so a missing input produces no output file at all.
// Row 0 is treated like any other row; rows may vary in field count.
func (c *CSV) Run(inputPath, outputPath string) error {
	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", outputPath, err)
	}
	defer out.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(out)

	logger.Info().Str("input", inputPath).Str("output", outputPath).Msg("starting anonymization run")

	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading record %d: %w", rows, err)
		}

		masked, err := c.row.Process(record)
		if err != nil {
			return fmt.Errorf("processing record %d: %w", rows, err)
		}

		if err := writer.Write(masked); err != nil {
			return fmt.Errorf("writing record %d: %w", rows, err)
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("writing record %d: %w", rows, err)
		}

		if rows%c.progressInterval == 0 {
			logger.Info().Int("record", rows).Msg("processing")
		}
		rows++
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("flushing output %s: %w", outputPath, err)
	}

	logger.Info().Int("records", rows).Msg("anonymization run complete")
	return nil
}
