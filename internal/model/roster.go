package model

import (
	"slices"
	"strings"
)

// Roster is the ordered list of doctor summaries produced by one ingestion.
type Roster []DoctorSummary

// SortedByName returns a copy of the roster ordered by doctor name.
// The receiver is left untouched.
func (r Roster) SortedByName() Roster {
	out := slices.Clone(r)
	slices.SortStableFunc(out, func(a, b DoctorSummary) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Find returns the summary for the named doctor.
func (r Roster) Find(name string) (DoctorSummary, bool) {
	for _, d := range r {
		if d.Name == name {
			return d, true
		}
	}
	return DoctorSummary{}, false
}

// Names returns doctor names in roster order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, d := range r {
		names[i] = d.Name
	}
	return names
}

// PatientCount returns the number of patients across all doctors.
func (r Roster) PatientCount() int {
	n := 0
	for _, d := range r {
		n += len(d.Patients)
	}
	return n
}
