// Package printdoc renders composed layouts into printable PDF documents.
package printdoc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	rowHeight  = 6.0
)

// Options controls page geometry and document metadata.
type Options struct {
	PageSize     string  // fpdf size name, e.g. "A4" or "Letter"
	Margin       float64 // mm, applied on every side
	BlockSpacing float64 // mm between the two regions of a shared page
	Creator      string
	// CreationDate stamps the document; zero means now.
	CreationDate time.Time
}

// DefaultOptions returns A4 with 12 mm margins and 8 mm block spacing.
func DefaultOptions() Options {
	return Options{PageSize: "A4", Margin: 12, BlockSpacing: 8, Creator: "drbill"}
}

// doc wraps an fpdf document with the page geometry every drawing helper
// needs.
type doc struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	opts   Options
	width  float64 // printable width
	height float64 // page height
}

func newDoc(opts Options, title string) *doc {
	pdf := fpdf.New("P", "mm", opts.PageSize, "")
	pdf.SetMargins(opts.Margin, opts.Margin, opts.Margin)
	pdf.SetAutoPageBreak(true, opts.Margin)
	pdf.SetCatalogSort(true)
	pdf.SetCreator(opts.Creator, true)
	pdf.SetTitle(title, true)
	if !opts.CreationDate.IsZero() {
		pdf.SetCreationDate(opts.CreationDate)
		pdf.SetModificationDate(opts.CreationDate)
	}

	w, h := pdf.GetPageSize()
	return &doc{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		opts:   opts,
		width:  w - 2*opts.Margin,
		height: h,
	}
}

func (d *doc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *doc) cell(w, h float64, text, border string, ln int, align string, fill bool) {
	d.pdf.CellFormat(w, h, d.tr(text), border, ln, align, fill, 0, "")
}
