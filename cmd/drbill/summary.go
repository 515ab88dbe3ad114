package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/drbill/internal/exitcode"
	"github.com/gyeh/drbill/internal/logging"
)

var (
	summaryOut  string
	summaryXLSX string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Render the whole-roster summary (PDF, optionally xlsx)",
	RunE:  runSummary,
}

func init() {
	f := summaryCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to billing workbook, xlsx or xls (required)")
	f.StringVar(&summaryOut, "out", "summary.pdf", "Output PDF path")
	f.StringVar(&summaryXLSX, "xlsx", "", "Also write the summary as an xlsx workbook to this path")
	_ = summaryCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	ctrl, snap := loadRoster(ctx, log)

	out, err := ctrl.RosterPDF()
	if err != nil {
		log.Error().Err(err).Msg("roster render failed")
		os.Exit(exitcode.RenderError)
	}
	writeOutput(log, summaryOut, out, exitcode.RenderError)

	if summaryXLSX != "" {
		var buf bytes.Buffer
		if err := ctrl.RosterXLSX(&buf); err != nil {
			log.Error().Err(err).Msg("roster export failed")
			os.Exit(exitcode.ExportError)
		}
		writeOutput(log, summaryXLSX, buf.Bytes(), exitcode.ExportError)
	}

	fmt.Printf("Summary complete: %d doctors to %s\n", len(snap.Roster), summaryOut)
	return nil
}
