package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gyeh/drbill/internal/exitcode"
	"github.com/gyeh/drbill/internal/logging"
	"github.com/gyeh/drbill/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local preview server",
	Long:  "Serves an HTML preview with upload and doctor pickers, plus PDF and xlsx downloads. Reads DRBILL_ADDR and DRBILL_MAX_UPLOAD_MB.",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "", "Listen address (overrides DRBILL_ADDR)")
	f.StringVar(&cfg.FilePath, "file", "", "Optional workbook to load at startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.LoadFromEnv(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := newController(log)
	if cfg.FilePath != "" {
		ctrl, _ = loadRoster(ctx, log)
	}

	srv := server.New(ctrl, log, cfg.MaxUploadBytes())
	if err := srv.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(exitcode.ServerError)
	}
	return nil
}
