package export

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/gyeh/drbill/internal/layout"
	"github.com/gyeh/drbill/internal/model"
)

func sampleRoster() model.Roster {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	return model.Roster{
		{Name: "Dr. Lee", Patients: []model.PatientRecord{
			{Name: "Omar Haddad", Department: "CT", Charge: decimal.RequireFromString("75.00"), BillDate: day, SourceRow: 3},
		}},
		{Name: "Dr. Smith", Patients: []model.PatientRecord{
			{Name: "Jane Roe", Department: "MRI", Charge: decimal.RequireFromString("100.00"), BillDate: day, SourceRow: 2},
			{Name: "Li Chen", Department: "CT", Charge: decimal.RequireFromString("200.50"), BillDate: day, SourceRow: 4},
			{Name: "Maria Fernandes", Department: "X-Ray", Charge: decimal.RequireFromString("50.25"), BillDate: day, SourceRow: 5},
		}},
	}
}

func TestWriteParquet_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteParquet(&buf, sampleRoster())
	if err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}
	if n != 4 {
		t.Fatalf("wrote %d rows, want 4", n)
	}

	data := buf.Bytes()
	pf, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open parquet: %v", err)
	}
	reader := parquet.NewGenericReader[model.PatientRow](pf)
	defer reader.Close()

	rows := make([]model.PatientRow, 8)
	got, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		t.Fatalf("read parquet: %v", err)
	}
	if got != 4 {
		t.Fatalf("read %d rows, want 4", got)
	}

	want := model.PatientRow{
		DoctorName:  "Dr. Smith",
		PatientName: "Li Chen",
		Department:  "CT",
		ChargeCents: 20050,
		Charge:      "200.50",
		BillDate:    "2024-03-05",
		SourceRow:   4,
	}
	if rows[2] != want {
		t.Errorf("row 2 = %+v, want %+v", rows[2], want)
	}
	if rows[0].DoctorName != "Dr. Lee" {
		t.Errorf("roster order not kept: %+v", rows[0])
	}
}

func TestWriteRosterWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRosterWorkbook(&buf, layout.ComposeRoster(sampleRoster())); err != nil {
		t.Fatalf("WriteRosterWorkbook: %v", err)
	}

	wb, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	sh, ok := wb.Sheet[RosterSheetName]
	if !ok {
		t.Fatalf("sheet %q missing", RosterSheetName)
	}

	cellValue := func(row, col int) string {
		t.Helper()
		c, err := sh.Cell(row, col)
		if err != nil {
			t.Fatalf("cell(%d,%d): %v", row, col, err)
		}
		return c.Value
	}

	if got := cellValue(0, 0); got != layout.RosterTitle {
		t.Errorf("title = %q", got)
	}
	if got := cellValue(1, 0); got != "Doctor" {
		t.Errorf("header = %q", got)
	}
	tests := []struct {
		row           int
		doctor, total string
	}{
		{2, "Dr. Lee", "75.00"},
		{3, "Dr. Smith", "350.75"},
	}
	for _, tt := range tests {
		if got := cellValue(tt.row, 0); got != tt.doctor {
			t.Errorf("row %d doctor = %q, want %q", tt.row, got, tt.doctor)
		}
		if got := cellValue(tt.row, 1); got != tt.total {
			t.Errorf("row %d total = %q, want %q", tt.row, got, tt.total)
		}
		if cellValue(tt.row, 2) != "" || cellValue(tt.row, 3) != "" {
			t.Errorf("row %d annotation columns not blank", tt.row)
		}
	}
	if sh.MaxRow != 4 {
		t.Errorf("rows = %d, want 4 (title, header, 2 doctors)", sh.MaxRow)
	}
}
