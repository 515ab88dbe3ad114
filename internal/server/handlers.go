package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/render"

	"github.com/gyeh/drbill/internal/app"
	"github.com/gyeh/drbill/internal/ingest"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.ctrl.Preview(&buf); err != nil {
		s.log.Error().Err(err).Msg("preview failed")
		render.Render(w, r, errInternal(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.maxUpload {
		render.Render(w, r, errTooLarge(fmt.Errorf("upload of %d bytes exceeds the %d byte limit", r.ContentLength, s.maxUpload)))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			render.Render(w, r, errTooLarge(err))
			return
		}
		// No multipart body means no file was chosen.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		render.Render(w, r, errBadRequest(err))
		return
	}

	if _, err := s.ctrl.Upload(r.Context(), header.Filename, data); err != nil {
		var pe *ingest.PipelineError
		if errors.As(err, &pe) {
			s.log.Warn().Err(pe.Err).Str("phase", pe.Phase).Str("source", header.Filename).Msg("upload rejected")
			render.Render(w, r, errUnprocessable(err))
			return
		}
		render.Render(w, r, errInternal(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type selectionRequest struct {
	Doctors []string `json:"doctors"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	isJSON := mediaType == "application/json"

	var names []string
	if isJSON {
		var req selectionRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Render(w, r, errBadRequest(err))
			return
		}
		names = req.Doctors
	} else {
		if err := r.ParseForm(); err != nil {
			render.Render(w, r, errBadRequest(err))
			return
		}
		names = r.PostForm["doctors"]
	}

	snap, err := s.ctrl.Select(names...)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrTooManySelected), errors.Is(err, app.ErrUnknownDoctor):
			render.Render(w, r, errBadRequest(err))
		default:
			render.Render(w, r, errInternal(err))
		}
		return
	}

	if !isJSON {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	render.Render(w, r, newSnapshotResponse(snap))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	render.Render(w, r, newSnapshotResponse(s.ctrl.Snapshot()))
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	out, err := s.ctrl.Print()
	if err != nil {
		if errors.Is(err, app.ErrNothingSelected) {
			render.Render(w, r, errConflict(err))
			return
		}
		s.log.Error().Err(err).Msg("print failed")
		render.Render(w, r, errInternal(err))
		return
	}
	writeDocument(w, contentTypePDF, "selection.pdf", out)
}

func (s *Server) handleRosterPDF(w http.ResponseWriter, r *http.Request) {
	out, err := s.ctrl.RosterPDF()
	if err != nil {
		s.log.Error().Err(err).Msg("roster render failed")
		render.Render(w, r, errInternal(err))
		return
	}
	writeDocument(w, contentTypePDF, "summary.pdf", out)
}

func (s *Server) handleRosterXLSX(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.ctrl.RosterXLSX(&buf); err != nil {
		s.log.Error().Err(err).Msg("roster export failed")
		render.Render(w, r, errInternal(err))
		return
	}
	writeDocument(w, contentTypeXLSX, "summary.xlsx", buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func writeDocument(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": filename}))
	w.Write(body)
}
