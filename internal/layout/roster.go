package layout

import (
	"github.com/gyeh/drbill/internal/model"
	"github.com/gyeh/drbill/internal/normalize"
)

// RosterTitle heads the whole-roster summary document.
const RosterTitle = "Doctor Billing Summary"

// RosterHeaders caption the roster table. The last two columns are left
// blank for annotation by hand after printing.
var RosterHeaders = [4]string{"Doctor", "Total", "", ""}

// RosterRow is one doctor line of the roster summary.
type RosterRow struct {
	Doctor string
	Total  string
}

// RosterPage is the whole-roster summary, independent of any selection.
type RosterPage struct {
	Title string
	Rows  []RosterRow
}

// ComposeRoster lists every doctor with their total charge, keeping the
// roster's order. It never truncates; pagination is the backend's job.
func ComposeRoster(r model.Roster) RosterPage {
	page := RosterPage{Title: RosterTitle, Rows: make([]RosterRow, len(r))}
	for i, d := range r {
		page.Rows[i] = RosterRow{Doctor: d.Name, Total: normalize.FormatCharge(d.TotalCharge())}
	}
	return page
}
