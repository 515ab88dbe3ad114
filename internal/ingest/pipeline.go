package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/drbill/internal/model"
	"github.com/gyeh/drbill/internal/normalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Options tunes a pipeline run.
type Options struct {
	// Source names the upload in logs and the summary.
	Source string
	// Now supplies "today" for unreadable bill dates. Defaults to the wall clock.
	Now normalize.Clock
}

// Result is the outcome of one ingestion: the roster in first-seen order
// and the run's metrics.
type Result struct {
	Roster  model.Roster
	Summary model.IngestSummary
}

// Run executes the ingest pipeline: preflight → stage. Empty input yields
// an empty roster. A workbook that cannot be decoded fails with a
// *PipelineError in the "preflight" phase.
func Run(ctx context.Context, log zerolog.Logger, data []byte, opts Options) (*Result, error) {
	totalStart := time.Now()
	now := opts.Now
	if now == nil {
		now = normalize.SystemClock
	}

	if len(data) == 0 {
		log.Info().Str("source", opts.Source).Msg("empty upload, nothing to ingest")
		return &Result{
			Roster:  model.Roster{},
			Summary: model.IngestSummary{Source: opts.Source, SHA256: normalize.BytesHash(nil)},
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	// Phase 1: Preflight
	pf, err := Preflight(log, opts.Source, data)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	// Phase 2: Stage
	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}
	st := Stage(log, pf, now)

	summary := model.IngestSummary{
		Source:       pf.Source,
		SHA256:       pf.SHA256,
		Format:       pf.Sheet.Format,
		Sheet:        pf.Sheet.Name,
		RowsRead:     st.RowsRead,
		RowsAccepted: st.RowsAccepted,
		RowsSkipped:  st.RowsSkipped,
		Doctors:      len(st.Roster),
		Duration:     time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_accepted", summary.RowsAccepted).
		Int64("rows_skipped", summary.RowsSkipped).
		Int("doctors", summary.Doctors).
		Str("total_duration", summary.Duration.String()).
		Msg("ingest pipeline complete")

	return &Result{Roster: st.Roster, Summary: summary}, nil
}
