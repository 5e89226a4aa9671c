// Package api serves the extrusion over HTTP.
//
// Routes:
//
//	POST /v1/extrude   body: SVG document, response: image/svg+xml
//	GET  /healthz      liveness check
//
// Extrusion parameters are read from the query string and default to the
// base options the server was created with:
//
//	curl --data-binary @hat.svg 'localhost:8080/v1/extrude?mode=body&depth=6'
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pixelextrude/pkg/buildinfo"
	"github.com/matzehuels/pixelextrude/pkg/pipeline"
)

// MaxBodyBytes bounds the size of an uploaded document.
const MaxBodyBytes = 10 << 20

// Server handles extrusion requests with a shared Runner.
type Server struct {
	runner *pipeline.Runner
	base   pipeline.Options
	logger *log.Logger
}

// NewServer creates a server. base supplies the parameters a request does
// not override.
func NewServer(runner *pipeline.Runner, base pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, base: base, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/extrude", s.extrude)
	})
	return r
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}
