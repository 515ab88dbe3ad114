package ingest

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/drbill/internal/model"
	"github.com/gyeh/drbill/internal/normalize"
)

// StageResult holds metrics from the row staging phase.
type StageResult struct {
	Roster       model.Roster
	RowsRead     int64
	RowsAccepted int64
	RowsSkipped  int64
	Duration     time.Duration
}

// Stage normalizes every data row of the preflighted sheet into patient
// records and groups them by doctor. Rows failing the required-cell check
// are skipped and counted, never reported as errors.
func Stage(log zerolog.Logger, pf *PreflightResult, now normalize.Clock) *StageResult {
	start := time.Now()

	var b rosterBuilder
	var rowsRead, rowsAccepted, rowsSkipped int64

	for i, row := range pf.Sheet.DataRows() {
		rowsRead++
		rowNum := i + 2 // 1-based, after the header

		doctor, rec, ok := normalize.ToPatientRecord(row, rowNum, pf.Sheet.Date1904, now)
		if !ok {
			rowsSkipped++
			log.Debug().Int("row", rowNum).Int("cells", len(row)).Msg("row skipped")
			continue
		}
		rowsAccepted++
		b.add(doctor, rec)
	}

	roster := b.roster()
	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowsRead).
		Int64("rows_accepted", rowsAccepted).
		Int64("rows_skipped", rowsSkipped).
		Int("doctors", len(roster)).
		Str("duration", dur.String()).
		Msg("staging complete")

	return &StageResult{
		Roster:       roster,
		RowsRead:     rowsRead,
		RowsAccepted: rowsAccepted,
		RowsSkipped:  rowsSkipped,
		Duration:     dur,
	}
}
