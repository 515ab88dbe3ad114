package printdoc

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

// Vertical extents of a doctor block, in mm.
const (
	headingH      = 8.0
	headingGap    = 2.0
	tableHeadH    = 7.0
	totalGap      = 1.0
	totalH        = 7.0
	footerReserve = 8.0 // anchored signature line sits this far above the region bottom
	summaryLineH  = rowHeight + 1
	noticeGap     = 2.0
	noticeLineH   = 5.0
	noticeLines   = 2
)

// ErrRegionOverflow is returned when a block on a shared page would run
// into the block below it or off the sheet.
var ErrRegionOverflow = errors.New("block does not fit its half of a shared page")

// SharedCapacity reports how many table rows, and how many department
// lines in a summary block, fit into one half of a shared page with the
// given geometry.
func SharedCapacity(opts Options) (rows, departments int, err error) {
	pdf := fpdf.New("P", "mm", opts.PageSize, "")
	if err := pdf.Error(); err != nil {
		return 0, 0, fmt.Errorf("page size %q: %w", opts.PageSize, err)
	}
	_, h := pdf.GetPageSize()

	region := (h - 2*opts.Margin - opts.BlockSpacing) / 2
	avail := region - headingH - headingGap - totalGap - totalH - footerReserve

	rows = int(math.Floor((avail - tableHeadH) / rowHeight))
	// The summary always shows total patients and total charge.
	departments = int(math.Floor((avail-noticeGap-noticeLines*noticeLineH)/summaryLineH)) - 2
	return max(rows, 0), max(departments, 0), nil
}
