package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/drbill/internal/app"
	"github.com/gyeh/drbill/internal/exitcode"
	"github.com/gyeh/drbill/internal/logging"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the billing sheet for up to two doctors as a PDF",
	RunE:  runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to billing workbook, xlsx or xls (required)")
	f.StringVar(&renderOut, "out", "billing.pdf", "Output PDF path")
	f.StringArrayVar(&cfg.Doctors, "doctor", nil, "Doctor to include; repeat for a second doctor")
	_ = renderCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	ctrl, _ := loadRoster(ctx, log)

	snap, err := ctrl.Select(cfg.Doctors...)
	if err != nil {
		if errors.Is(err, app.ErrUnknownDoctor) {
			log.Error().Err(err).Strs("known", snap.Roster.Names()).Msg("selection rejected")
		} else {
			log.Error().Err(err).Msg("selection rejected")
		}
		os.Exit(exitcode.UsageError)
	}

	out, err := ctrl.PrintDocument()
	if err != nil {
		log.Error().Err(err).Msg("render failed")
		os.Exit(exitcode.RenderError)
	}
	writeOutput(log, renderOut, out, exitcode.RenderError)

	if len(snap.Selection) == 0 {
		fmt.Printf("No doctor selected: wrote placeholder page to %s\n", renderOut)
		return nil
	}
	fmt.Printf("Render complete: %d doctor(s) to %s (%d bytes)\n", len(snap.Selection), renderOut, len(out))
	return nil
}
