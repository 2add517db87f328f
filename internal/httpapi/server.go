// Package httpapi exposes the scrape and wage calculator endpoints over a
// chi router. Scrape responses are cached in memory so a refresh-happy
// frontend does not re-trigger a full scrape.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"sleevescout/internal/config"
	"sleevescout/internal/domain"
	"sleevescout/internal/fetch"
	"sleevescout/internal/rank"
	"sleevescout/internal/sleeves"
	"sleevescout/internal/store"
)

// Scraper runs one query against every enabled source.
type Scraper interface {
	Run(ctx context.Context, q fetch.Query) ([]domain.JobPosting, map[string]string)
}

// Server wires the ranking engine, the scrape runner, and the seen-jobs
// store behind the HTTP surface.
type Server struct {
	cfg     config.Config
	catalog *sleeves.Catalog
	ranker  *rank.Ranker
	scraper Scraper
	seen    *store.SeenStore
	modes   rank.LocationModeSet
	cache   *gocache.Cache
	log     zerolog.Logger
	now     func() time.Time
}

func NewServer(cfg config.Config, catalog *sleeves.Catalog, ranker *rank.Ranker, scraper Scraper, seen *store.SeenStore, log zerolog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		catalog: catalog,
		ranker:  ranker,
		scraper: scraper,
		seen:    seen,
		modes:   rank.NewLocationModeSet(cfg.LocationModes),
		cache:   gocache.New(cfg.CacheTTL(), 5*time.Minute),
		log:     log,
		now:     time.Now,
	}
}

// Router builds the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/scrape", s.handleScrape)
	r.Post("/wagecalculator/calculate", s.handleWageCalculate)
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": config.Version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
