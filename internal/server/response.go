package server

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/gyeh/drbill/internal/app"
	"github.com/gyeh/drbill/internal/normalize"
)

// ErrResponse is the JSON body of every failed request.
type ErrResponse struct {
	HTTPStatusCode int    `json:"-"`
	Status         string `json:"status"`
	Error          string `json:"error"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErr(code int, err error) render.Renderer {
	return &ErrResponse{HTTPStatusCode: code, Status: http.StatusText(code), Error: err.Error()}
}

func errBadRequest(err error) render.Renderer    { return newErr(http.StatusBadRequest, err) }
func errConflict(err error) render.Renderer      { return newErr(http.StatusConflict, err) }
func errTooLarge(err error) render.Renderer      { return newErr(http.StatusRequestEntityTooLarge, err) }
func errUnprocessable(err error) render.Renderer { return newErr(http.StatusUnprocessableEntity, err) }
func errInternal(err error) render.Renderer      { return newErr(http.StatusInternalServerError, err) }

type doctorResponse struct {
	Name     string `json:"name"`
	Patients int    `json:"patients"`
	Total    string `json:"total"`
}

type summaryResponse struct {
	Source       string `json:"source"`
	SHA256       string `json:"sha256"`
	Format       string `json:"format"`
	Sheet        string `json:"sheet"`
	RowsRead     int64  `json:"rows_read"`
	RowsAccepted int64  `json:"rows_accepted"`
	RowsSkipped  int64  `json:"rows_skipped"`
	Doctors      int    `json:"doctors"`
	DurationMS   int64  `json:"duration_ms"`
}

// SnapshotResponse is the JSON view of the current snapshot.
type SnapshotResponse struct {
	ID        string           `json:"id"`
	Doctors   []doctorResponse `json:"doctors"`
	Selection []string         `json:"selection"`
	Summary   *summaryResponse `json:"summary,omitempty"`
	LoadedAt  *time.Time       `json:"loaded_at,omitempty"`
}

func (s *SnapshotResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func newSnapshotResponse(snap *app.Snapshot) *SnapshotResponse {
	resp := &SnapshotResponse{
		ID:        snap.ID.String(),
		Doctors:   make([]doctorResponse, len(snap.Roster)),
		Selection: append([]string{}, snap.Selection...),
	}
	for i, d := range snap.Roster {
		resp.Doctors[i] = doctorResponse{
			Name:     d.Name,
			Patients: d.PatientCount(),
			Total:    normalize.FormatCharge(d.TotalCharge()),
		}
	}
	if sum := snap.Summary; sum != nil {
		resp.Summary = &summaryResponse{
			Source:       sum.Source,
			SHA256:       sum.SHA256,
			Format:       sum.Format,
			Sheet:        sum.Sheet,
			RowsRead:     sum.RowsRead,
			RowsAccepted: sum.RowsAccepted,
			RowsSkipped:  sum.RowsSkipped,
			Doctors:      sum.Doctors,
			DurationMS:   sum.Duration.Milliseconds(),
		}
		loaded := snap.LoadedAt
		resp.LoadedAt = &loaded
	}
	return resp
}
