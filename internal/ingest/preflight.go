package ingest

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/drbill/internal/normalize"
	"github.com/gyeh/drbill/internal/sheetread"
)

// PreflightResult holds what is resolved before any row is read.
type PreflightResult struct {
	// Source is the caller-supplied name of the upload, used only for logs.
	Source string
	// SHA256 is the hex digest of the raw bytes, computed by normalize.BytesHash.
	SHA256 string
	// Size is the upload size in bytes.
	Size int
	// Sheet is the decoded first worksheet.
	Sheet *sheetread.Sheet
}

// Preflight fingerprints the upload and decodes its first worksheet.
func Preflight(log zerolog.Logger, source string, data []byte) (*PreflightResult, error) {
	start := time.Now()

	sha := normalize.BytesHash(data)
	sheet, err := sheetread.Decode(data)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("source", source).
		Str("sha256", sha).
		Str("format", sheet.Format).
		Str("sheet", sheet.Name).
		Int("rows", len(sheet.Rows)).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return &PreflightResult{
		Source: source,
		SHA256: sha,
		Size:   len(data),
		Sheet:  sheet,
	}, nil
}
