// Package server exposes the controller over HTTP: an HTML preview with
// upload and doctor pickers, a JSON view of the snapshot, and PDF/xlsx
// downloads.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/gyeh/drbill/internal/app"
)

// Server wires the routes to one controller.
type Server struct {
	ctrl      *app.Controller
	log       zerolog.Logger
	maxUpload int64
}

// New returns a Server. maxUpload caps the request body of an upload in bytes.
func New(ctrl *app.Controller, log zerolog.Logger, maxUpload int64) *Server {
	return &Server{
		ctrl:      ctrl,
		log:       log.With().Str("component", "server").Logger(),
		maxUpload: maxUpload,
	}
}

// Routes returns the router for every endpoint.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Post("/roster", s.handleUpload)
	r.Post("/selection", s.handleSelect)
	r.Get("/print.pdf", s.handlePrint)
	r.Get("/summary.pdf", s.handleRosterPDF)
	r.Get("/summary.xlsx", s.handleRosterXLSX)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/roster", s.handleSnapshot)
		r.Post("/selection", s.handleSelect)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("preview server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info().Msg("preview server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Str("duration", time.Since(start).String()).
			Msg("request")
	})
}
