package normalize

import (
	"github.com/gyeh/drbill/internal/model"
)

// ToPatientRecord converts one worksheet row into a PatientRecord and the
// doctor it belongs to. ok is false when the row is too short or any of
// doctor, patient, department, charge or bill date is blank; such rows are
// skipped by the caller without error.
func ToPatientRecord(row []string, rowNum int, date1904 bool, now Clock) (doctor string, rec model.PatientRecord, ok bool) {
	if len(row) < model.MinColumns {
		return "", model.PatientRecord{}, false
	}

	doctor = CleanCell(row[model.ColDoctor])
	patient := CleanCell(row[model.ColPatient])
	department := CleanCell(row[model.ColDepartment])
	charge := CleanCell(row[model.ColCharge])
	billDate := CleanCell(row[model.ColBillDate])

	for _, v := range []string{doctor, patient, department, charge, billDate} {
		if v == "" {
			return "", model.PatientRecord{}, false
		}
	}

	return doctor, model.PatientRecord{
		Name:       patient,
		Department: department,
		Charge:     ParseCharge(charge),
		BillDate:   ParseBillDate(billDate, date1904, now),
		SourceRow:  rowNum,
	}, true
}
