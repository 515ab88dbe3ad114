// Package app owns the current roster and selection and runs every user
// action against them, one at a time.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/drbill/internal/export"
	"github.com/gyeh/drbill/internal/ingest"
	"github.com/gyeh/drbill/internal/layout"
	"github.com/gyeh/drbill/internal/normalize"
	"github.com/gyeh/drbill/internal/preview"
	"github.com/gyeh/drbill/internal/printdoc"
)

var (
	ErrNothingSelected = errors.New("no doctor selected")
	ErrTooManySelected = fmt.Errorf("more than %d doctors selected", layout.MaxDoctorsPerPage)
	ErrUnknownDoctor   = errors.New("unknown doctor")
)

// Options configures a Controller.
type Options struct {
	Layout layout.Options
	Print  printdoc.Options
	// Now supplies "today" for unreadable bill dates and snapshot times.
	Now normalize.Clock
}

// Controller serializes uploads, selections and renders behind one lock
// held for the whole action.
type Controller struct {
	mu   sync.Mutex
	log  zerolog.Logger
	opts Options
	snap *Snapshot
}

// New returns a Controller holding an empty roster.
func New(log zerolog.Logger, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = normalize.SystemClock
	}
	if opts.Layout.RowBudget == 0 {
		opts.Layout = layout.DefaultOptions()
	}
	if opts.Print.PageSize == "" {
		opts.Print = printdoc.DefaultOptions()
	}
	return &Controller{log: log, opts: opts, snap: emptySnapshot()}
}

// Snapshot returns the current snapshot.
func (c *Controller) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Upload ingests data and replaces the roster, clearing the selection.
// Empty data is a no-op. On an ingest error the previous snapshot stays.
func (c *Controller) Upload(ctx context.Context, source string, data []byte) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(data) == 0 {
		c.log.Debug().Str("source", source).Msg("empty upload ignored")
		return c.snap, nil
	}

	res, err := ingest.Run(ctx, c.log, data, ingest.Options{Source: source, Now: c.opts.Now})
	if err != nil {
		return c.snap, err
	}

	summary := res.Summary
	c.snap = &Snapshot{
		ID:       uuid.New(),
		Roster:   res.Roster.SortedByName(),
		Summary:  &summary,
		LoadedAt: c.opts.Now(),
	}
	c.log.Info().
		Str("snapshot", c.snap.ID.String()).
		Str("source", source).
		Int("doctors", len(c.snap.Roster)).
		Msg("roster loaded")
	return c.snap, nil
}

// Select replaces the selection. Blank names are ignored and repeated
// names count once. Selecting nothing clears the selection.
func (c *Controller) Select(names ...string) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	picked := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(picked, name) {
			continue
		}
		picked = append(picked, name)
	}
	if len(picked) > layout.MaxDoctorsPerPage {
		return c.snap, ErrTooManySelected
	}
	for _, name := range picked {
		if _, ok := c.snap.Roster.Find(name); !ok {
			return c.snap, fmt.Errorf("%w: %q", ErrUnknownDoctor, name)
		}
	}

	c.snap = c.snap.withSelection(picked)
	c.log.Info().
		Str("snapshot", c.snap.ID.String()).
		Strs("selection", picked).
		Msg("selection changed")
	return c.snap, nil
}

// Preview writes the HTML preview of the current selection.
func (c *Controller) Preview(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	page, err := layout.ComposePage(c.snap.Selected(), layout.Preview, c.opts.Layout)
	if err != nil {
		return err
	}
	return preview.Render(w, preview.View{
		Doctors:  c.snap.Roster.Names(),
		Selected: c.snap.Selection,
		Page:     page,
		Summary:  c.snap.Summary,
	})
}

// Print renders the selection as a PDF. Printing is disabled while
// nothing is selected.
func (c *Controller) Print() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.snap.Selection) == 0 {
		return nil, ErrNothingSelected
	}
	return c.renderSelection()
}

// PrintDocument renders the selection as a PDF, producing the
// placeholder page when nothing is selected.
func (c *Controller) PrintDocument() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderSelection()
}

func (c *Controller) renderSelection() ([]byte, error) {
	start := time.Now()
	page, err := layout.ComposePage(c.snap.Selected(), layout.Print, c.opts.Layout)
	if err != nil {
		return nil, err
	}
	out, err := printdoc.RenderPage(page, c.opts.Print)
	if err != nil {
		return nil, fmt.Errorf("render selection: %w", err)
	}
	c.log.Info().
		Strs("selection", c.snap.Selection).
		Int("bytes", len(out)).
		Str("duration", time.Since(start).String()).
		Msg("selection rendered")
	return out, nil
}

// RosterPDF renders the whole-roster summary document.
func (c *Controller) RosterPDF() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out, err := printdoc.RenderRoster(layout.ComposeRoster(c.snap.Roster), c.opts.Print)
	if err != nil {
		return nil, fmt.Errorf("render roster: %w", err)
	}
	c.log.Info().Int("doctors", len(c.snap.Roster)).Int("bytes", len(out)).Msg("roster rendered")
	return out, nil
}

// RosterXLSX writes the whole-roster summary as an xlsx workbook.
func (c *Controller) RosterXLSX(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return export.WriteRosterWorkbook(w, layout.ComposeRoster(c.snap.Roster))
}

// ExportParquet writes every patient record of the roster as Parquet.
func (c *Controller) ExportParquet(w io.Writer) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := export.WriteParquet(w, c.snap.Roster)
	if err != nil {
		return n, err
	}
	c.log.Info().Int("rows", n).Msg("parquet export written")
	return n, nil
}
