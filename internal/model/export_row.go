package model

// PatientRow mirrors the Parquet schema of a flattened patient record.
// Charges are carried both as integer cents and as the exact decimal text.
type PatientRow struct {
	DoctorName  string `parquet:"doctor_name"`
	PatientName string `parquet:"patient_name"`
	Department  string `parquet:"department"`
	ChargeCents int64  `parquet:"charge_cents"`
	Charge      string `parquet:"charge"`
	BillDate    string `parquet:"bill_date"` // YYYY-MM-DD
	SourceRow   int64  `parquet:"source_row"`
}
