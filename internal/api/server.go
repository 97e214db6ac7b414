package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/wordcollect/internal/config"
	"github.com/dgallion1/wordcollect/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for wordcollect.
type Server struct {
	router chi.Router
	conv   *pipeline.Converter
	store  *pipeline.Store
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(conv *pipeline.Converter, store *pipeline.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		conv:  conv,
		store: store,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/collections", s.handleCreateCollection)
		r.Route("/api/collections/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetCollection)
			r.Get("/stats", s.handleCollectionStats)
			r.Get("/tiers/{tier}", s.handleGetTier)
			r.Get("/tiers/{tier}/passage", s.handleRandomPassage)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
