package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/maktaba/portal-search/internal/config"
	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/indexer"
	"github.com/maktaba/portal-search/internal/searchindex"
)

// Server is the portal search HTTP service.
type Server struct {
	cfg        *config.Config
	db         *db.DB
	engine     *searchindex.Engine
	pipeline   *indexer.Pipeline
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server wired to the given source store and search
// engine.
func New(cfg *config.Config, database *db.DB, engine *searchindex.Engine) *Server {
	s := &Server{
		cfg:      cfg,
		db:       database,
		engine:   engine,
		pipeline: indexer.New(database, engine, cfg.ReindexWorkers),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// The portal's widgets are embedded on several public sites, so the
	// search surface answers any configured origin (all, by default).
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.registerRoutes(r)
	return r
}

// Router returns the chi router, used by handler tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portal-search listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
