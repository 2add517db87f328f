package config

import (
	"os"
	"strings"
)

// OverlayEnv applies environment switches on top of the loaded file. Only a
// handful of operational knobs are exposed this way; everything else lives
// in config.yml.
//
//	SLEEVESCOUT_DATA_DIR         overrides app.data_dir
//	SCRAPE_PROFILE               mvp or full
//	SCRAPE_FULL_PROFILE_ENABLED  gates the full profile; without it a
//	                             requested full profile degrades to mvp
func OverlayEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("SLEEVESCOUT_DATA_DIR")); v != "" {
		cfg.App.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SCRAPE_PROFILE")); v != "" {
		cfg.Scrape.Profile = strings.ToLower(v)
	}
	if cfg.Scrape.Profile == ProfileFull && !envBool("SCRAPE_FULL_PROFILE_ENABLED") {
		cfg.Scrape.Profile = ProfileMVP
	}
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
