package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PatientRecord is one billed encounter read from a single spreadsheet row.
type PatientRecord struct {
	Name       string
	Department string
	Charge     decimal.Decimal
	BillDate   time.Time
	SourceRow  int // 1-based row number in the worksheet
}

// DoctorSummary holds every patient attributed to one doctor, in sheet order.
type DoctorSummary struct {
	Name     string
	Patients []PatientRecord
}

// TotalCharge returns the exact decimal sum of all patient charges.
// It is recomputed on every call.
func (d DoctorSummary) TotalCharge() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Patients {
		total = total.Add(p.Charge)
	}
	return total
}

// CountByDepartment counts patients whose department equals name exactly.
// Matching is case-sensitive: "mri" and "MRI" are different departments.
func (d DoctorSummary) CountByDepartment(name string) int {
	n := 0
	for _, p := range d.Patients {
		if p.Department == name {
			n++
		}
	}
	return n
}

// PatientCount returns the number of patients.
func (d DoctorSummary) PatientCount() int {
	return len(d.Patients)
}
