package printdoc

import (
	"fmt"
	"strconv"

	"github.com/gyeh/drbill/internal/layout"
)

// RenderPage draws a composed selection onto a single page: a placeholder
// when nothing is selected, one block filling the page, or two blocks in
// equal top and bottom halves.
func RenderPage(page layout.Page, opts Options) ([]byte, error) {
	d := newDoc(opts, "Doctor billing sheet")
	d.pdf.AddPage()

	top := opts.Margin
	bottom := d.height - opts.Margin

	switch len(page.Blocks) {
	case 0:
		d.pdf.SetFont(fontFamily, "B", 16)
		d.pdf.SetY(top + 40)
		d.cell(d.width, 10, page.Placeholder, "", 1, "C", false)
	case 1:
		d.drawBlock(page.Blocks[0], top, bottom, false)
	default:
		// A shared page never spills onto a second sheet.
		d.pdf.SetAutoPageBreak(false, 0)
		region := (bottom - top - opts.BlockSpacing) / 2
		if end := d.drawBlock(page.Blocks[0], top, top+region, true); end > top+region-footerReserve {
			return nil, fmt.Errorf("%w: %s", ErrRegionOverflow, page.Blocks[0].Doctor)
		}

		mid := top + region + opts.BlockSpacing/2
		d.pdf.SetDrawColor(180, 180, 180)
		d.pdf.Line(opts.Margin, mid, opts.Margin+d.width, mid)
		d.pdf.SetDrawColor(0, 0, 0)

		secondTop := top + region + opts.BlockSpacing
		if end := d.drawBlock(page.Blocks[1], secondTop, secondTop+region, true); end > bottom-footerReserve {
			return nil, fmt.Errorf("%w: %s", ErrRegionOverflow, page.Blocks[1].Doctor)
		}
	}

	return d.bytes()
}

// drawBlock draws heading, body, total and signature footer, and returns
// the y position where the total line ends. With anchorFooter the footer
// sits at the bottom of the region; otherwise it follows the content.
func (d *doc) drawBlock(b layout.Block, top, bottom float64, anchorFooter bool) float64 {
	m := d.opts.Margin
	d.pdf.SetXY(m, top)
	d.pdf.SetFont(fontFamily, "B", 14)
	d.cell(d.width, headingH, b.Doctor, "", 1, "L", false)
	d.pdf.Ln(headingGap)

	switch b.Body {
	case layout.BodyTable:
		d.drawTable(b.Rows)
	case layout.BodySummary:
		d.drawSummary(b.Stats, b.Notice)
	}

	d.pdf.Ln(totalGap)
	d.pdf.SetFont(fontFamily, "B", 11)
	d.cell(d.width*0.75, totalH, layout.TotalLabel, "T", 0, "L", false)
	d.cell(d.width*0.25, totalH, b.Total, "T", 1, "R", false)
	end := d.pdf.GetY()

	footerY := end + 16
	if anchorFooter {
		footerY = bottom - footerReserve
	}
	d.drawSignatures(footerY)
	return end
}

func (d *doc) tableWidths() [4]float64 {
	return [4]float64{d.width * 0.40, d.width * 0.20, d.width * 0.20, d.width * 0.20}
}

func (d *doc) drawTable(rows []layout.TableRow) {
	widths := d.tableWidths()
	aligns := [4]string{"L", "L", "L", "R"}

	d.pdf.SetFont(fontFamily, "B", 10)
	d.pdf.SetFillColor(230, 230, 230)
	for i, h := range layout.TableHeaders {
		ln := 0
		if i == len(layout.TableHeaders)-1 {
			ln = 1
		}
		d.cell(widths[i], tableHeadH, h, "B", ln, aligns[i], true)
	}

	d.pdf.SetFont(fontFamily, "", 10)
	for _, r := range rows {
		d.cell(widths[0], rowHeight, r.Patient, "", 0, "L", false)
		d.cell(widths[1], rowHeight, r.Department, "", 0, "L", false)
		d.cell(widths[2], rowHeight, r.BillDate, "", 0, "L", false)
		d.cell(widths[3], rowHeight, r.Charge, "", 1, "R", false)
	}
}

func (d *doc) drawSummary(s layout.Stats, notice string) {
	label := d.width * 0.75
	value := d.width * 0.25

	d.pdf.SetFont(fontFamily, "", 11)
	d.cell(label, summaryLineH, "Total patients", "", 0, "L", false)
	d.cell(value, summaryLineH, strconv.Itoa(s.Patients), "", 1, "R", false)
	for _, dc := range s.Departments {
		d.cell(label, summaryLineH, dc.Department+" patients", "", 0, "L", false)
		d.cell(value, summaryLineH, strconv.Itoa(dc.Count), "", 1, "R", false)
	}
	d.cell(label, summaryLineH, "Total charge", "", 0, "L", false)
	d.cell(value, summaryLineH, s.Total, "", 1, "R", false)

	d.pdf.Ln(noticeGap)
	d.pdf.SetFont(fontFamily, "I", 9)
	d.pdf.MultiCell(d.width, noticeLineH, d.tr(notice), "", "L", false)
}

func (d *doc) drawSignatures(y float64) {
	const sigWidth = 55.0
	m := d.opts.Margin

	d.pdf.SetFont(fontFamily, "", 10)
	d.pdf.SetXY(m, y)
	d.cell(sigWidth, rowHeight, layout.PreparedByLabel, "T", 0, "C", false)
	d.pdf.SetX(m + d.width - sigWidth)
	d.cell(sigWidth, rowHeight, layout.ReceiverSignLabel, "T", 1, "C", false)
}
