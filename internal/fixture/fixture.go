// Package fixture builds billing-export workbooks in the fixed column
// layout the ingest pipeline expects. It backs cmd/mkfixture and tests.
package fixture

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/xuri/excelize/v2"
)

// Header is the first row of a billing export.
var Header = []any{"S.No", "Doctor", "Patient Name", "Department", "Service", "Price", "Discount", "Total", "IC", "Bill Date"}

// Bill is one source row. Charge and BillDate are written as given, so a
// test can place text, numbers, dates, or nil (absent) in those cells.
type Bill struct {
	Doctor     string
	Patient    string
	Department string
	Service    string
	Charge     any
	BillDate   any
}

// Workbook returns the bytes of an xlsx file whose first sheet holds the
// header followed by one row per bill.
func Workbook(bills []Bill) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, b := range bills {
		row := []any{i + 1, b.Doctor, b.Patient, b.Department, b.Service, b.Charge, 0, b.Charge, b.Charge, b.BillDate}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	doctorNames  = []string{"Dr. Smith", "Dr. Lee", "Dr. Patel", "Dr. Okafor", "Dr. Novak", "Dr. Garcia"}
	firstNames   = []string{"Jane", "Omar", "Li", "Maria", "Kwame", "Ingrid", "Arjun", "Sofia", "Tomasz", "Aiko"}
	lastNames    = []string{"Roe", "Haddad", "Chen", "Fernandes", "Mensah", "Lindqvist", "Raghunathan", "Moreau", "Kowalczyk", "Tanaka"}
	departments  = []string{"MRI", "CT", "X-Ray", "USG"}
	servicesByDp = map[string]string{"MRI": "MRI Brain", "CT": "CT Chest", "X-Ray": "Chest PA", "USG": "Abdomen"}
)

// Generate produces a deterministic synthetic roster of bills.
func Generate(doctors, patientsPerDoctor int, seed int64, start time.Time) []Bill {
	rng := rand.New(rand.NewSource(seed))
	var bills []Bill
	for p := 0; p < patientsPerDoctor; p++ {
		for d := 0; d < doctors; d++ {
			dept := departments[rng.Intn(len(departments))]
			cents := 2000 + rng.Intn(48000)
			bills = append(bills, Bill{
				Doctor:     doctorName(d),
				Patient:    firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
				Department: dept,
				Service:    servicesByDp[dept],
				Charge:     fmt.Sprintf("%d.%02d", cents/100, cents%100),
				BillDate:   start.AddDate(0, 0, rng.Intn(28)).Format("02/01/06"),
			})
		}
	}
	return bills
}

func doctorName(i int) string {
	if i < len(doctorNames) {
		return doctorNames[i]
	}
	return fmt.Sprintf("Dr. Locum %d", i-len(doctorNames)+1)
}
