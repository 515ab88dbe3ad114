package printdoc

import "github.com/gyeh/drbill/internal/layout"

// RenderRoster draws the whole-roster summary table, starting a new page
// (with the header repeated) whenever the next row would not fit.
func RenderRoster(page layout.RosterPage, opts Options) ([]byte, error) {
	d := newDoc(opts, page.Title)
	d.pdf.SetAutoPageBreak(false, 0)
	d.pdf.AddPage()

	d.pdf.SetFont(fontFamily, "B", 16)
	d.cell(d.width, 10, page.Title, "", 1, "C", false)
	d.pdf.Ln(4)

	widths := [4]float64{d.width * 0.45, d.width * 0.25, d.width * 0.15, d.width * 0.15}
	const rowH = 8.0
	limit := d.height - opts.Margin

	header := func() {
		d.pdf.SetFont(fontFamily, "B", 11)
		d.pdf.SetFillColor(230, 230, 230)
		for i, h := range layout.RosterHeaders {
			ln := 0
			if i == len(widths)-1 {
				ln = 1
			}
			d.cell(widths[i], rowH, h, "1", ln, "C", true)
		}
		d.pdf.SetFont(fontFamily, "", 11)
	}

	header()
	for _, r := range page.Rows {
		if d.pdf.GetY()+rowH > limit {
			d.pdf.AddPage()
			header()
		}
		d.cell(widths[0], rowH, r.Doctor, "1", 0, "L", false)
		d.cell(widths[1], rowH, r.Total, "1", 0, "R", false)
		d.cell(widths[2], rowH, "", "1", 0, "L", false)
		d.cell(widths[3], rowH, "", "1", 1, "L", false)
	}

	return d.bytes()
}
