package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gyeh/drbill/internal/app"
	"github.com/gyeh/drbill/internal/layout"
	"github.com/gyeh/drbill/internal/logging"
	"github.com/gyeh/drbill/internal/normalize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no output files)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to billing workbook, xlsx or xls (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	_, snap := loadRoster(ctx, log)
	writePlan(cmd.OutOrStdout(), cfg.FilePath, snap, cfg.LayoutOptions())
	return nil
}

// writePlan prints the ingest report for snap. A snapshot without a
// summary comes from an empty file, which loads as an empty roster.
func writePlan(w io.Writer, path string, snap *app.Snapshot, opts layout.Options) {
	fmt.Fprintln(w, "=== drbill plan ===")
	fmt.Fprintf(w, "File:       %s\n", path)

	sum := snap.Summary
	if sum == nil {
		fmt.Fprintln(w, "Empty file: 0 rows read, nothing to print")
		return
	}
	fmt.Fprintf(w, "SHA-256:    %s\n", sum.SHA256)
	fmt.Fprintf(w, "Format:     %s (sheet %q)\n", sum.Format, sum.Sheet)
	fmt.Fprintf(w, "Rows read:  %d\n", sum.RowsRead)
	fmt.Fprintf(w, "Accepted:   %d\n", sum.RowsAccepted)
	fmt.Fprintf(w, "Skipped:    %d\n", sum.RowsSkipped)
	fmt.Fprintf(w, "Doctors:    %d\n", sum.Doctors)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Per doctor (shared-page row budget %d):\n", opts.RowBudget)

	for _, d := range snap.Roster {
		shared := "summary"
		if layout.UseTable(d.PatientCount(), layout.MaxDoctorsPerPage, layout.Print, opts.RowBudget) {
			shared = "table"
		}
		fmt.Fprintf(w, "  %-24s %4d patients  %12s  shared page: %s\n",
			d.Name, d.PatientCount(), normalize.FormatCharge(d.TotalCharge()), shared)
	}
}
