// Package config loads and validates the engine configuration: a YAML file
// bootstrapped into the data directory on first run, overlaid with a few
// environment switches.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"sleevescout/internal/rank"
)

const Version = "1.0"

// Profile names for the scrape pipeline.
const (
	ProfileMVP  = "mvp"
	ProfileFull = "full"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" validate:"gt=0,lte=65535"`
		DataDir string `yaml:"data_dir" validate:"required"`
	} `yaml:"app"`

	Scrape struct {
		Profile               string  `yaml:"profile" validate:"oneof=mvp full"`
		Sources               []string `yaml:"sources" validate:"min=1"`
		MaxPages              int     `yaml:"max_pages" validate:"gt=0"`
		TargetRaw             int     `yaml:"target_raw" validate:"gt=0"`
		RequestsPerSecond     float64 `yaml:"requests_per_second" validate:"gt=0"`
		DetailRequestsPerSec  float64 `yaml:"detail_requests_per_second" validate:"gt=0"`
		HTTPTimeoutSeconds    int     `yaml:"http_timeout_seconds" validate:"gt=0"`
		OuterDeadlineSeconds  int     `yaml:"outer_deadline_seconds" validate:"gt=0"`
		IncrementalWindowDays int     `yaml:"incremental_window_days" validate:"gte=0"`
		CacheTTLSeconds       int     `yaml:"cache_ttl_seconds" validate:"gt=0"`
		EmptyCacheTTLSeconds  int     `yaml:"empty_cache_ttl_seconds" validate:"gt=0"`
	} `yaml:"scrape"`

	Scoring struct {
		GateMode string `yaml:"gate_mode" validate:"oneof=soft hard"`
	} `yaml:"scoring"`

	LocationModes []rank.LocationMode `yaml:"location_modes"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Default returns the built-in configuration, identical to the shipped
// config.yml.
func Default() Config {
	var cfg Config
	cfg.App.Port = 8080
	cfg.App.DataDir = "data"
	cfg.Scrape.Profile = ProfileMVP
	cfg.Scrape.Sources = []string{"indeed_web", "linkedin_web", "nl_web_openings"}
	cfg.Scrape.MaxPages = 4
	cfg.Scrape.TargetRaw = 150
	cfg.Scrape.RequestsPerSecond = 0.45
	cfg.Scrape.DetailRequestsPerSec = 0.25
	cfg.Scrape.HTTPTimeoutSeconds = 14
	cfg.Scrape.OuterDeadlineSeconds = 45
	cfg.Scrape.IncrementalWindowDays = 14
	cfg.Scrape.CacheTTLSeconds = 600
	cfg.Scrape.EmptyCacheTTLSeconds = 45
	cfg.Scoring.GateMode = "soft"
	cfg.LocationModes = rank.DefaultLocationModes()
	return cfg
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Scrape.HTTPTimeoutSeconds) * time.Second
}

func (c Config) OuterDeadline() time.Duration {
	return time.Duration(c.Scrape.OuterDeadlineSeconds) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Scrape.CacheTTLSeconds) * time.Second
}

func (c Config) EmptyCacheTTL() time.Duration {
	return time.Duration(c.Scrape.EmptyCacheTTLSeconds) * time.Second
}

func (c Config) IncrementalWindow() time.Duration {
	return time.Duration(c.Scrape.IncrementalWindowDays) * 24 * time.Hour
}
