package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gyeh/drbill/internal/app"
	"github.com/gyeh/drbill/internal/exitcode"
	"github.com/gyeh/drbill/internal/ingest"
)

func newController(log zerolog.Logger) *app.Controller {
	return app.New(log, app.Options{
		Layout: cfg.LayoutOptions(),
		Print:  cfg.PrintOptions(),
	})
}

// loadRoster validates --file, reads it and uploads it into a fresh
// controller. Failures exit with the matching code.
func loadRoster(ctx context.Context, log zerolog.Logger) (*app.Controller, *app.Snapshot) {
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read file")
		os.Exit(exitcode.ValidationError)
	}

	ctrl := newController(log)
	snap, err := ctrl.Upload(ctx, filepath.Base(cfg.FilePath), data)
	if err != nil {
		var pe *ingest.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("ingest failed")
		} else {
			log.Error().Err(err).Msg("ingest failed")
		}
		os.Exit(exitcode.ValidationError)
	}
	return ctrl, snap
}

func writeOutput(log zerolog.Logger, path string, data []byte, code int) {
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to write output")
		os.Exit(code)
	}
}
