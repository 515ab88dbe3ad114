package export

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/drbill/internal/model"
	"github.com/gyeh/drbill/internal/normalize"
)

// PatientRows flattens the roster into export rows, doctors in roster
// order and patients in sheet order.
func PatientRows(r model.Roster) []model.PatientRow {
	rows := make([]model.PatientRow, 0, r.PatientCount())
	for _, d := range r {
		for _, p := range d.Patients {
			rows = append(rows, model.PatientRow{
				DoctorName:  d.Name,
				PatientName: p.Name,
				Department:  p.Department,
				ChargeCents: normalize.ChargeToCents(p.Charge),
				Charge:      normalize.FormatCharge(p.Charge),
				BillDate:    p.BillDate.Format("2006-01-02"),
				SourceRow:   int64(p.SourceRow),
			})
		}
	}
	return rows
}

// WriteParquet writes every patient record of the roster as one Parquet
// file and returns the number of rows written.
func WriteParquet(w io.Writer, r model.Roster) (int, error) {
	rows := PatientRows(r)
	writer := parquet.NewGenericWriter[model.PatientRow](w)
	n, err := writer.Write(rows)
	if err != nil {
		writer.Close()
		return n, fmt.Errorf("write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return n, fmt.Errorf("close parquet writer: %w", err)
	}
	return n, nil
}
