package model

// Fixed column positions (0-indexed) of the billing export.
// Columns not listed here (service name, price, discount, total) are
// present in the source file but never read.
const (
	ColSerial     = 0
	ColDoctor     = 1
	ColPatient    = 2
	ColDepartment = 3
	ColService    = 4
	ColPrice      = 5
	ColDiscount   = 6
	ColTotal      = 7
	ColCharge     = 8 // "IC"
	ColBillDate   = 9
)

// MinColumns is the row width needed to reach the bill date column.
const MinColumns = ColBillDate + 1
