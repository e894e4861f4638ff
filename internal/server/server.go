// Package server exposes the publication pipeline over HTTP.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/adithyavalsaraj/folio/internal/library"
	"github.com/adithyavalsaraj/folio/internal/publication"
	"github.com/adithyavalsaraj/folio/internal/storage"
	"github.com/adithyavalsaraj/folio/internal/subject"
)

// Server is the portfolio's HTTP surface.
type Server struct {
	router      *chi.Mux
	svc         *library.Service
	curated     []publication.Curated
	highlighter *subject.Highlighter
	index       *storage.DB
	logger      *slog.Logger
}

// Config assembles a Server. Index may be nil, in which case the curated
// query endpoint reports unavailable.
type Config struct {
	Service     *library.Service
	Curated     []publication.Curated
	Highlighter *subject.Highlighter
	Index       *storage.DB
	Logger      *slog.Logger
}

// New builds the router and wires all routes.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router:      chi.NewRouter(),
		svc:         cfg.Service,
		curated:     cfg.Curated,
		highlighter: cfg.Highlighter,
		index:       cfg.Index,
		logger:      logger,
	}

	s.router.Use(chiMiddleware.RealIP)
	s.router.Use(RequestID)
	s.router.Use(Logger(logger))
	s.router.Use(chiMiddleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/publications", s.handlePublications)
		r.Get("/publications/stats", s.handleStats)
		r.Get("/timeline", s.handleTimeline)
		r.Get("/curated", s.handleCurated)
	})

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
