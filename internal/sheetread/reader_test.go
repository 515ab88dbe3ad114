package sheetread

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/drbill/internal/normalize"
)

func buildWorkbook(t *testing.T, sheets map[string][][]any, order []string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		for r, row := range sheets[name] {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_FirstSheetOnly(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		"Bills": {
			{"No", "Doctor", "Patient"},
			{1, "Dr. Smith", "Jane"},
		},
		"Other": {
			{"ignored"},
			{"ignored"},
			{"ignored"},
		},
	}, []string{"Bills", "Other"})

	s, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.Format != FormatXLSX || s.Name != "Bills" {
		t.Errorf("format=%q name=%q", s.Format, s.Name)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(s.Rows))
	}
	data1 := s.DataRows()
	if len(data1) != 1 || data1[0][1] != "Dr. Smith" {
		t.Errorf("data rows = %v", data1)
	}
}

func TestDecode_RawDateSerial(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		"Sheet1": {
			{"date"},
			{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		},
	}, []string{"Sheet1"})

	s, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := s.Rows[1][0]; got != "45356" {
		t.Errorf("raw date cell = %q, want serial 45356", got)
	}
}

func TestDecode_HeaderOnly(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		"Sheet1": {{"No", "Doctor"}},
	}, []string{"Sheet1"})

	s, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rows := s.DataRows(); len(rows) != 0 {
		t.Errorf("data rows = %v, want none", rows)
	}
}

func TestDecode_Unsupported(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("doctor,patient\n"), []byte("%PDF-1.4")} {
		if _, err := Decode(data); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Decode(%q) err = %v, want ErrUnsupportedFormat", data, err)
		}
	}
}

func TestDecode_CorruptZip(t *testing.T) {
	if _, err := Decode([]byte("PK\x03\x04garbage")); err == nil {
		t.Fatal("expected error for corrupt xlsx")
	}
}

// testdata/billing.xls is a BIFF8 workbook with a "Bills" sheet (header,
// a row whose bill date is a NUMBER cell, a row whose bill date is text)
// followed by an "Other" sheet that must be ignored.
func TestDecode_XLS(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "billing.xls"))
	if err != nil {
		t.Fatal(err)
	}

	s, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.Format != FormatXLS || s.Name != "Bills" {
		t.Errorf("format=%q name=%q", s.Format, s.Name)
	}
	if s.Date1904 {
		t.Error("xls sheets always use the 1900 date system")
	}
	if len(s.Rows) != 3 {
		t.Fatalf("rows = %d, want 3 from the first sheet only", len(s.Rows))
	}
	for _, row := range s.Rows {
		for _, cell := range row {
			if cell == "ignored" {
				t.Fatal("cells from the second sheet leaked in")
			}
		}
	}

	rows := s.DataRows()
	if len(rows[0]) != 10 {
		t.Fatalf("row width = %d, want 10", len(rows[0]))
	}
	if rows[0][1] != "Dr. Smith" || rows[0][2] != "Jane Roe" || rows[1][1] != "Dr. Lee" {
		t.Errorf("unexpected text cells: %q / %q", rows[0], rows[1])
	}
	if rows[0][8] != "100.5" {
		t.Errorf("charge cell = %q, want 100.5", rows[0][8])
	}
	if rows[0][9] != "45356" {
		t.Errorf("numeric date cell = %q, want serial 45356", rows[0][9])
	}

	now := func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }
	tests := []struct {
		row  int
		want time.Time
	}{
		{0, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{1, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		_, rec, ok := normalize.ToPatientRecord(rows[tt.row], tt.row+2, s.Date1904, now)
		if !ok {
			t.Fatalf("row %d skipped", tt.row)
		}
		if !rec.BillDate.Equal(tt.want) {
			t.Errorf("row %d bill date = %v, want %v", tt.row, rec.BillDate, tt.want)
		}
	}
}
