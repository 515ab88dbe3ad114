package ingest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/drbill/internal/fixture"
	"github.com/gyeh/drbill/internal/ingest"
	"github.com/gyeh/drbill/internal/model"
	"github.com/gyeh/drbill/internal/sheetread"
)

var fixedNow = func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC) }

func run(t *testing.T, bills []fixture.Bill) *ingest.Result {
	t.Helper()
	data, err := fixture.Workbook(bills)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	res, err := ingest.Run(context.Background(), zerolog.Nop(), data, ingest.Options{Source: "test.xlsx", Now: fixedNow})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestRun_EndToEndScenario(t *testing.T) {
	res := run(t, []fixture.Bill{
		{Doctor: "Dr. Smith", Patient: "Jane Roe", Department: "MRI", Charge: "100.00", BillDate: "05/03/24"},
		{Doctor: "Dr. Lee", Patient: "Omar Haddad", Department: "CT", Charge: "75.00", BillDate: "06/03/24"},
		{Doctor: "Dr. Smith", Patient: "Li Chen", Department: "CT", Charge: "200.50", BillDate: "05/03/2024"},
		{Doctor: "Dr. Smith", Patient: "Maria Fernandes", Department: "X-Ray", Charge: "50.25", BillDate: "07/03/24"},
	})

	if len(res.Roster) != 2 {
		t.Fatalf("doctors = %d, want 2", len(res.Roster))
	}
	smith, lee := res.Roster[0], res.Roster[1]
	if smith.Name != "Dr. Smith" || lee.Name != "Dr. Lee" {
		t.Fatalf("first-seen order broken: %v", res.Roster.Names())
	}
	if got := smith.TotalCharge().StringFixed(2); got != "350.75" {
		t.Errorf("Dr. Smith total = %s, want 350.75", got)
	}
	if got := lee.TotalCharge().StringFixed(2); got != "75.00" {
		t.Errorf("Dr. Lee total = %s, want 75.00", got)
	}

	wantPatients := []string{"Jane Roe", "Li Chen", "Maria Fernandes"}
	for i, p := range smith.Patients {
		if p.Name != wantPatients[i] {
			t.Errorf("smith patient %d = %q, want %q", i, p.Name, wantPatients[i])
		}
	}
	if smith.Patients[1].SourceRow != 4 {
		t.Errorf("source row = %d, want 4", smith.Patients[1].SourceRow)
	}

	s := res.Summary
	if s.Format != sheetread.FormatXLSX || s.RowsRead != 4 || s.RowsAccepted != 4 || s.RowsSkipped != 0 || s.Doctors != 2 {
		t.Errorf("unexpected summary %+v", s)
	}
	if len(s.SHA256) != 64 {
		t.Errorf("sha256 = %q", s.SHA256)
	}
}

func TestRun_SkipRule(t *testing.T) {
	res := run(t, []fixture.Bill{
		{Doctor: "Dr. Smith", Patient: "Kept One", Department: "MRI", Charge: "10", BillDate: "05/03/24"},
		{Doctor: "", Patient: "No Doctor", Department: "MRI", Charge: "10", BillDate: "05/03/24"},
		{Doctor: "Dr. Smith", Patient: "", Department: "MRI", Charge: "10", BillDate: "05/03/24"},
		{Doctor: "Dr. Smith", Patient: "No Dept", Department: "", Charge: "10", BillDate: "05/03/24"},
		{Doctor: "Dr. Smith", Patient: "No Charge", Department: "CT", Charge: nil, BillDate: "05/03/24"},
		{Doctor: "Dr. Smith", Patient: "No Date", Department: "CT", Charge: "10", BillDate: nil},
		{Doctor: "Dr. Ghost", Patient: "No Date", Department: "CT", Charge: "10", BillDate: nil},
		{Doctor: "Dr. Smith", Patient: "Kept Two", Department: "CT", Charge: "20", BillDate: "05/03/24"},
	})

	if len(res.Roster) != 1 {
		t.Fatalf("doctors = %v, want only Dr. Smith", res.Roster.Names())
	}
	got := res.Roster[0].Patients
	if len(got) != 2 || got[0].Name != "Kept One" || got[1].Name != "Kept Two" {
		t.Errorf("patients = %+v", got)
	}
	if res.Summary.RowsSkipped != 6 || res.Summary.RowsAccepted != 2 || res.Summary.RowsRead != 8 {
		t.Errorf("summary = %+v", res.Summary)
	}
}

func TestRun_ChargeAndDateFallbacks(t *testing.T) {
	res := run(t, []fixture.Bill{
		{Doctor: "Dr. Lee", Patient: "Bad Charge", Department: "MRI", Charge: "abc", BillDate: "05/03/24"},
		{Doctor: "Dr. Lee", Patient: "Good Charge", Department: "MRI", Charge: "123.45", BillDate: "not-a-date"},
		{Doctor: "Dr. Lee", Patient: "Real Date", Department: "CT", Charge: 99.5, BillDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	})

	p := res.Roster[0].Patients
	if !p[0].Charge.IsZero() {
		t.Errorf("bad charge = %s, want 0", p[0].Charge)
	}
	if p[1].Charge.StringFixed(2) != "123.45" {
		t.Errorf("good charge = %s", p[1].Charge)
	}
	if want := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC); !p[1].BillDate.Equal(want) {
		t.Errorf("fallback date = %v, want %v", p[1].BillDate, want)
	}
	if want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC); !p[2].BillDate.Equal(want) {
		t.Errorf("structured date = %v, want %v", p[2].BillDate, want)
	}
	if p[2].Charge.StringFixed(2) != "99.50" {
		t.Errorf("numeric charge = %s", p[2].Charge)
	}
}

func TestRun_TrimmedDoctorKey(t *testing.T) {
	res := run(t, []fixture.Bill{
		{Doctor: "Dr. Smith", Patient: "A", Department: "MRI", Charge: "1", BillDate: "05/03/24"},
		{Doctor: "  Dr. Smith ", Patient: "B", Department: "MRI", Charge: "1", BillDate: "05/03/24"},
		{Doctor: "dr. smith", Patient: "C", Department: "MRI", Charge: "1", BillDate: "05/03/24"},
	})
	if len(res.Roster) != 2 {
		t.Fatalf("doctors = %v, want [Dr. Smith dr. smith]", res.Roster.Names())
	}
	if res.Roster[0].PatientCount() != 2 {
		t.Errorf("Dr. Smith patients = %d, want 2", res.Roster[0].PatientCount())
	}
}

func TestRun_GroupingCoversAcceptedRows(t *testing.T) {
	bills := fixture.Generate(5, 7, 11, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	res := run(t, bills)

	seen := map[string]bool{}
	for _, d := range res.Roster {
		if seen[d.Name] {
			t.Fatalf("doctor %q appears twice", d.Name)
		}
		seen[d.Name] = true
	}
	if got := res.Roster.PatientCount(); got != len(bills) {
		t.Fatalf("patients = %d, want %d", got, len(bills))
	}

	// Within each doctor, patients keep sheet order.
	next := map[string]int{}
	for i, b := range bills {
		d, _ := res.Roster.Find(b.Doctor)
		p := d.Patients[next[b.Doctor]]
		if p.SourceRow != i+2 || p.Name != b.Patient {
			t.Fatalf("bill %d landed as %+v", i, p)
		}
		next[b.Doctor]++
	}
}

func TestRun_HeaderOnly(t *testing.T) {
	res := run(t, nil)
	if len(res.Roster) != 0 || res.Roster == nil {
		t.Errorf("roster = %#v, want empty non-nil", res.Roster)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	res, err := ingest.Run(context.Background(), zerolog.Nop(), nil, ingest.Options{})
	if err != nil {
		t.Fatalf("Run(nil): %v", err)
	}
	if len(res.Roster) != 0 {
		t.Errorf("roster = %v", res.Roster)
	}
}

func TestRun_CorruptFile(t *testing.T) {
	_, err := ingest.Run(context.Background(), zerolog.Nop(), []byte("not a workbook"), ingest.Options{})
	var pe *ingest.PipelineError
	if !errors.As(err, &pe) || pe.Phase != "preflight" {
		t.Fatalf("err = %v, want preflight PipelineError", err)
	}
	if !errors.Is(err, sheetread.ErrUnsupportedFormat) {
		t.Errorf("err should unwrap to ErrUnsupportedFormat: %v", err)
	}
}

func TestRun_Deterministic(t *testing.T) {
	bills := []fixture.Bill{
		{Doctor: "Dr. Lee", Patient: "A", Department: "MRI", Charge: "1.10", BillDate: "bogus"},
	}
	a, b := run(t, bills), run(t, bills)
	if !equalRosters(a.Roster, b.Roster) {
		t.Error("two runs over the same bytes differ")
	}
}

func equalRosters(a, b model.Roster) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || len(a[i].Patients) != len(b[i].Patients) {
			return false
		}
		for j := range a[i].Patients {
			pa, pb := a[i].Patients[j], b[i].Patients[j]
			if pa.Name != pb.Name || !pa.Charge.Equal(pb.Charge) || !pa.BillDate.Equal(pb.BillDate) {
				return false
			}
		}
	}
	return true
}
