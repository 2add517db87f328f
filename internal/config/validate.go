package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"sleevescout/internal/rank"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

var knownSources = map[string]bool{
	"indeed_web":      true,
	"linkedin_web":    true,
	"nl_web_openings": true,
}

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it. Callers should refuse to start on Errors and log
// Warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Scrape.Profile = strings.ToLower(strings.TrimSpace(out.Scrape.Profile))
	out.Scoring.GateMode = strings.ToLower(strings.TrimSpace(out.Scoring.GateMode))
	if out.Scoring.GateMode == "" {
		out.Scoring.GateMode = "soft"
	}
	if len(out.LocationModes) == 0 {
		out.LocationModes = rank.DefaultLocationModes()
	}

	var sources []string
	seen := map[string]bool{}
	for _, s := range out.Scrape.Sources {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		sources = append(sources, s)
		if !knownSources[s] {
			res.addWarn("unknown scrape source %q will be ignored at runtime", s)
		}
	}
	out.Scrape.Sources = sources

	if err := validator.New().Struct(out); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				res.addErr("config field %s fails rule %q", fe.Namespace(), fe.Tag())
			}
		} else {
			res.addErr("config validation: %v", err)
		}
	}

	if out.Scrape.RequestsPerSecond > 2 {
		res.addWarn("scrape.requests_per_second %.2f is aggressive and risks blocks", out.Scrape.RequestsPerSecond)
	}
	if out.Scrape.OuterDeadlineSeconds <= out.Scrape.HTTPTimeoutSeconds {
		res.addErr("scrape.outer_deadline_seconds must exceed scrape.http_timeout_seconds")
	}

	modeIDs := map[string]bool{}
	for _, m := range out.LocationModes {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			res.addErr("location mode with empty id")
			continue
		}
		if modeIDs[id] {
			res.addErr("duplicate location mode %q", id)
		}
		modeIDs[id] = true
	}

	return out, res
}
