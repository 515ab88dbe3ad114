package main

import (
	"github.com/spf13/cobra"

	"github.com/gyeh/drbill/internal/config"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "drbill",
	Short: "Doctor billing sheets from a clinic spreadsheet",
	Long: "Reads a clinic billing export (xlsx or xls), groups the rows by attending doctor, " +
		"and renders per-doctor billing sheets, a roster summary, or a local preview server.",
	PersistentPreRunE: loadConfigFile,
	SilenceUsage:      true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&cfg.ConfigPath, "config", "", "Path to a YAML config file with a layout section")
}

func loadConfigFile(cmd *cobra.Command, args []string) error {
	if cfg.ConfigPath == "" {
		return nil
	}
	return cfg.LoadFromFile(cfg.ConfigPath)
}
