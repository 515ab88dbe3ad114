// mkfixture writes a synthetic clinic billing workbook for demos and manual testing.
// Usage: go run ./cmd/mkfixture --out testdata/billing.xlsx --doctors 4 --patients 12
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gyeh/drbill/internal/fixture"
	"github.com/gyeh/drbill/internal/sheetread"
)

func main() {
	out := flag.String("out", "testdata/billing.xlsx", "output workbook")
	doctors := flag.Int("doctors", 4, "number of doctors")
	patients := flag.Int("patients", 12, "patients per doctor")
	seed := flag.Int64("seed", 1, "random seed")
	start := flag.String("start", "2024-03-01", "first bill date (YYYY-MM-DD)")
	checkOnly := flag.Bool("check", false, "only print stats of an existing workbook at --out")
	flag.Parse()

	if *checkOnly {
		check(*out)
		return
	}

	if *doctors < 1 || *patients < 1 {
		fmt.Fprintln(os.Stderr, "--doctors and --patients must be positive")
		os.Exit(1)
	}
	day, err := time.Parse("2006-01-02", *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse --start: %v\n", err)
		os.Exit(1)
	}

	bills := fixture.Generate(*doctors, *patients, *seed, day)
	data, err := fixture.Workbook(bills)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build workbook: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows (%d doctors x %d patients) to %s\n", len(bills), *doctors, *patients, *out)
}

func check(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	sheet, err := sheetread.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(1)
	}

	perDoctor := make(map[string]int)
	var order []string
	for _, row := range sheet.DataRows() {
		if len(row) < 2 {
			continue
		}
		if _, seen := perDoctor[row[1]]; !seen {
			order = append(order, row[1])
		}
		perDoctor[row[1]]++
	}
	fmt.Printf("Format: %s, sheet %q, %d data rows\n", sheet.Format, sheet.Name, len(sheet.DataRows()))
	for _, name := range order {
		fmt.Printf("  %-24s %d\n", name, perDoctor[name])
	}
}
