// Package layout decides what a doctor's billing block shows: the detailed
// patient table or the summary block, and the values to print in either.
// The PDF and HTML backends both draw from these decisions and never
// compute totals or thresholds themselves.
package layout

import (
	"errors"
	"fmt"

	"github.com/gyeh/drbill/internal/model"
	"github.com/gyeh/drbill/internal/normalize"
)

// Target is the presentation backend a layout is built for.
type Target int

const (
	Print Target = iota
	Preview
)

func (t Target) String() string {
	if t == Preview {
		return "preview"
	}
	return "print"
}

// MaxDoctorsPerPage is the most doctors a page or preview can hold.
const MaxDoctorsPerPage = 2

// Fixed labels shared by both backends.
const (
	TotalLabel        = "TOTAL"
	PreparedByLabel   = "Prepared by"
	ReceiverSignLabel = "Receiver's Sign"
	NoSelectionText   = "No doctor selected"
)

// TableHeaders are the column captions of the detailed table.
var TableHeaders = [4]string{"Patient", "Dept", "Date", "Amount"}

// ErrTooManyDoctors is returned when more than MaxDoctorsPerPage doctors
// are composed onto one page.
var ErrTooManyDoctors = errors.New("at most two doctors fit on a page")

// Options carries the configurable parts of the layout rules.
type Options struct {
	// RowBudget is the most patients a block may list on a shared page.
	RowBudget int
	// Departments are counted, in order, in the summary block.
	Departments []string
}

// DefaultOptions returns the stock rules: 9 rows, MRI and CT counts.
func DefaultOptions() Options {
	return Options{RowBudget: 9, Departments: model.DefaultDepartments}
}

// Body selects how a block presents its patients.
type Body int

const (
	BodyTable Body = iota
	BodySummary
)

// TableRow is one formatted patient line.
type TableRow struct {
	Patient    string
	Department string
	BillDate   string
	Charge     string
}

// DepartmentCount is one department tally in the summary block.
type DepartmentCount struct {
	Department string
	Count      int
}

// Stats is the content of the summary block.
type Stats struct {
	Patients    int
	Departments []DepartmentCount
	Total       string
}

// Block is everything a backend needs to draw one doctor.
type Block struct {
	Doctor string
	Body   Body
	Rows   []TableRow // set when Body is BodyTable
	Stats  Stats      // set when Body is BodySummary
	Notice string     // why the table was suppressed
	Total  string
}

// UseTable reports whether a doctor's block lists every patient.
// Within the row budget the table is always used. Beyond it only a
// printed page holding a single doctor keeps the table; the preview
// applies the row budget alone.
func UseTable(patients, doctorsOnPage int, target Target, rowBudget int) bool {
	if patients <= rowBudget {
		return true
	}
	return target == Print && doctorsOnPage == 1
}

// BuildBlock lays out one doctor for a page holding doctorsOnPage doctors.
func BuildBlock(d model.DoctorSummary, doctorsOnPage int, target Target, opts Options) Block {
	total := normalize.FormatCharge(d.TotalCharge())
	b := Block{Doctor: d.Name, Total: total}

	if UseTable(d.PatientCount(), doctorsOnPage, target, opts.RowBudget) {
		b.Body = BodyTable
		b.Rows = make([]TableRow, len(d.Patients))
		for i, p := range d.Patients {
			b.Rows[i] = TableRow{
				Patient:    normalize.TruncateName(p.Name),
				Department: p.Department,
				BillDate:   p.BillDate.Format(normalize.BillDateDisplay),
				Charge:     normalize.FormatCharge(p.Charge),
			}
		}
		return b
	}

	b.Body = BodySummary
	b.Stats = Stats{Patients: d.PatientCount(), Total: total}
	for _, dept := range opts.Departments {
		b.Stats.Departments = append(b.Stats.Departments, DepartmentCount{
			Department: dept,
			Count:      d.CountByDepartment(dept),
		})
	}
	b.Notice = fmt.Sprintf("Table omitted: %d patients exceed the %d-row limit of a shared page.",
		d.PatientCount(), opts.RowBudget)
	return b
}
