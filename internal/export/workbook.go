package export

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v3"

	"github.com/gyeh/drbill/internal/layout"
)

// RosterSheetName names the single sheet of the roster workbook.
const RosterSheetName = "Summary"

// RosterWorkbook builds the whole-roster summary as an xlsx workbook with
// the same columns as the printed summary.
func RosterWorkbook(page layout.RosterPage) (*xlsx.File, error) {
	report := xlsx.NewFile()
	sh, err := report.AddSheet(RosterSheetName)
	if err != nil {
		return nil, err
	}

	sh.AddRow().AddCell().SetValue(page.Title)

	header := sh.AddRow()
	for _, h := range layout.RosterHeaders {
		header.AddCell().SetValue(h)
	}

	for _, r := range page.Rows {
		row := sh.AddRow()
		row.AddCell().SetValue(r.Doctor)
		row.AddCell().SetString(r.Total)
		row.AddCell()
		row.AddCell()
	}
	return report, nil
}

// WriteRosterWorkbook writes the roster workbook to w.
func WriteRosterWorkbook(w io.Writer, page layout.RosterPage) error {
	report, err := RosterWorkbook(page)
	if err != nil {
		return fmt.Errorf("build roster workbook: %w", err)
	}
	if err := report.Write(w); err != nil {
		return fmt.Errorf("write roster workbook: %w", err)
	}
	return nil
}
