package sheetread

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// Workbook formats recognized by Decode.
const (
	FormatXLSX = "xlsx"
	FormatXLS  = "xls"
)

// ErrUnsupportedFormat is returned when the bytes are neither an xlsx (zip)
// nor a legacy xls (OLE2) container.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Sheet is the decoded first worksheet of a workbook. Cell values are raw:
// numbers (including dates) appear as their stored value, not formatted.
// Date1904 is read from xlsx workbook properties only; the xls decoder does
// not expose the DATEMODE record, so xls sheets always use the 1900 system.
type Sheet struct {
	Format   string
	Name     string
	Rows     [][]string
	Date1904 bool
}

// Decode reads the first worksheet of an xlsx or xls workbook held in data.
// Additional sheets are ignored.
func Decode(data []byte) (*Sheet, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return decodeXLSX(data)
	case bytes.HasPrefix(data, oleMagic):
		return decodeXLS(data)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func decodeXLSX(data []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("open xlsx: workbook has no sheets")
	}
	name := sheets[0]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %q: %w", name, err)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	return &Sheet{Format: FormatXLSX, Name: name, Rows: rows, Date1904: date1904}, nil
}

func decodeXLS(data []byte) (*Sheet, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if len(workbook.GetSheets()) == 0 {
		return nil, fmt.Errorf("open xls: workbook has no sheets")
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("read xls sheet: %w", err)
	}

	var rows [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, cells)
	}
	return &Sheet{Format: FormatXLS, Name: sheet.GetName(), Rows: rows}, nil
}

// DataRows returns every row after the header. The header row is dropped
// without inspection.
func (s *Sheet) DataRows() [][]string {
	if len(s.Rows) <= 1 {
		return nil
	}
	return s.Rows[1:]
}
