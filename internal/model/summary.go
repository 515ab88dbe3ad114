package model

import "time"

// IngestSummary captures metrics from a single spreadsheet ingest.
type IngestSummary struct {
	Source       string
	SHA256       string
	Format       string // "xlsx" or "xls"
	Sheet        string
	RowsRead     int64 // data rows after the header
	RowsAccepted int64
	RowsSkipped  int64
	Doctors      int
	Duration     time.Duration
}
