package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"sleevescout/internal/config"
	"sleevescout/internal/fetch"
	"sleevescout/internal/httpapi"
	"sleevescout/internal/rank"
	"sleevescout/internal/sleeves"
	"sleevescout/internal/store"
)

func main() {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if os.Getenv("LOG_PRETTY") != "" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	dataDir := os.Getenv("SLEEVESCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		log.Fatal().Err(err).Msg("config bootstrap failed")
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", userCfgPath).Msg("config load failed")
	}
	config.OverlayEnv(&cfg)

	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, warning := range validation.Warnings {
		log.Warn().Msg(warning)
	}
	if !validation.OK() {
		for _, problem := range validation.Errors {
			log.Error().Msg(problem)
		}
		log.Fatal().Str("path", userCfgPath).Msg("config invalid")
	}

	catalog, err := sleeves.NewCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("sleeve catalog invalid")
	}

	limiter := fetch.NewHostLimiter(cfg.Scrape.RequestsPerSecond, 1)
	detailLimiter := fetch.NewHostLimiter(cfg.Scrape.DetailRequestsPerSec, 1)
	client := fetch.NewClient(cfg.HTTPTimeout(), limiter)

	var fetchers []fetch.Fetcher
	for _, source := range cfg.Scrape.Sources {
		switch source {
		case "indeed_web":
			fetchers = append(fetchers, fetch.NewIndeed(client))
		case "linkedin_web":
			fetchers = append(fetchers, fetch.NewLinkedIn(client, detailLimiter))
		case "nl_web_openings":
			fetchers = append(fetchers, fetch.NewWebOpenings(client))
		default:
			log.Warn().Str("source", source).Msg("skipping unknown source")
		}
	}

	runner := fetch.NewRunner(fetchers, cfg.OuterDeadline(), log)
	ranker := rank.New(catalog, log)
	seen := store.NewSeenStore(cfg.App.DataDir, cfg.IncrementalWindow())

	server := httpapi.NewServer(cfg, catalog, ranker, runner, seen, log)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info().
		Str("addr", addr).
		Str("profile", cfg.Scrape.Profile).
		Str("data_dir", cfg.App.DataDir).
		Msg("engine listening")

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
