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

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every accepted patient record as Parquet",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to billing workbook, xlsx or xls (required)")
	f.StringVar(&exportOut, "out", "records.parquet", "Output Parquet path")
	_ = exportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	ctrl, _ := loadRoster(ctx, log)

	var buf bytes.Buffer
	n, err := ctrl.ExportParquet(&buf)
	if err != nil {
		log.Error().Err(err).Msg("parquet export failed")
		os.Exit(exitcode.ExportError)
	}
	writeOutput(log, exportOut, buf.Bytes(), exitcode.ExportError)

	fmt.Printf("Export complete: %d rows to %s\n", n, exportOut)
	return nil
}
