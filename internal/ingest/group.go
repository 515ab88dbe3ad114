package ingest

import "github.com/gyeh/drbill/internal/model"

// rosterBuilder groups patient records by doctor name while keeping the
// order in which doctors were first seen: insert if absent, else append.
type rosterBuilder struct {
	index   map[string]int
	doctors []model.DoctorSummary
}

func (b *rosterBuilder) add(doctor string, rec model.PatientRecord) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	i, ok := b.index[doctor]
	if !ok {
		i = len(b.doctors)
		b.index[doctor] = i
		b.doctors = append(b.doctors, model.DoctorSummary{Name: doctor})
	}
	b.doctors[i].Patients = append(b.doctors[i].Patients, rec)
}

func (b *rosterBuilder) roster() model.Roster {
	if b.doctors == nil {
		return model.Roster{}
	}
	return model.Roster(b.doctors)
}
