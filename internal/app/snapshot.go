package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/drbill/internal/model"
)

// Snapshot is the current roster and selection. It is never modified
// once published; every change produces a new Snapshot with a new ID.
type Snapshot struct {
	ID        uuid.UUID
	Roster    model.Roster // sorted by doctor name
	Selection []string     // at most two names, in selection order
	Summary   *model.IngestSummary
	LoadedAt  time.Time
}

func emptySnapshot() *Snapshot {
	return &Snapshot{ID: uuid.New(), Roster: model.Roster{}}
}

// Selected resolves the selection against the roster.
func (s *Snapshot) Selected() []model.DoctorSummary {
	out := make([]model.DoctorSummary, 0, len(s.Selection))
	for _, name := range s.Selection {
		if d, ok := s.Roster.Find(name); ok {
			out = append(out, d)
		}
	}
	return out
}

// withSelection returns a copy of s carrying names as its selection.
func (s *Snapshot) withSelection(names []string) *Snapshot {
	next := *s
	next.ID = uuid.New()
	next.Selection = names
	return &next
}
