package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"sleevescout/internal/config"
	"sleevescout/internal/domain"
	"sleevescout/internal/fetch"
	"sleevescout/internal/rank"
	"sleevescout/internal/sleeves"
)

// Raising the raw target past this point only burns scrape budget.
const maxTargetRaw = 500

// The KPI gate wants at least this many postings worth looking at.
const targetPassOrMaybe = 10

// Targets compares the run against its goals.
type Targets struct {
	TargetRaw           int `json:"target_raw"`
	RawAchieved         int `json:"raw_achieved"`
	TargetPassOrMaybe   int `json:"target_pass_or_maybe"`
	PassOrMaybeAchieved int `json:"pass_or_maybe_achieved"`
}

// Summary is the run-level metadata next to the ranked items.
type Summary struct {
	Funnel           domain.Funnel     `json:"funnel"`
	Targets          Targets           `json:"targets"`
	SourceErrors     map[string]string `json:"source_errors"`
	ConfigVersion    string            `json:"config_version"`
	KPIGatePassed    bool              `json:"kpi_gate_passed"`
	Profile          string            `json:"profile"`
	Sleeve           string            `json:"sleeve"`
	LocationMode     string            `json:"location_mode"`
	GateMode         string            `json:"gate_mode"`
	SeenFiltered     int               `json:"seen_filtered"`
	FallbacksApplied []string          `json:"fallbacks_applied"`
}

type scrapeResponse struct {
	Items   []domain.RankedJob `json:"items"`
	Summary Summary            `json:"summary"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sleeve := strings.TrimSpace(q.Get("sleeve"))
	if sleeve == "" {
		sleeve = "A"
	}
	if !s.catalog.ValidSleeve(sleeve) {
		writeError(w, http.StatusBadRequest, "invalid sleeve: "+sleeve)
		return
	}

	modeID := strings.TrimSpace(q.Get("location_mode"))
	if modeID == "" {
		modeID = "nl_only"
	}
	if !s.modes.Valid(modeID) {
		writeError(w, http.StatusBadRequest, "invalid location_mode: "+modeID+" (valid: "+strings.Join(s.modes.IDs(), ", ")+")")
		return
	}

	terms := splitTerms(q.Get("query_terms"))
	if len(terms) == 0 {
		terms = s.catalog.Sleeves[sleeve].SearchQueries
	}
	if len(terms) == 0 {
		terms = []string{s.catalog.Sleeves[sleeve].Name}
	}

	targetRaw := s.cfg.Scrape.TargetRaw
	if v, err := strconv.Atoi(q.Get("target_raw")); err == nil && v > 0 {
		targetRaw = min(v, maxTargetRaw)
	}
	failover := q.Get("failover") != "0"

	cacheKey := strings.Join([]string{
		sleeve, modeID, strings.Join(terms, ","), s.cfg.Scrape.Profile,
		strconv.Itoa(targetRaw), strconv.FormatBool(failover),
	}, "|")
	if cached, ok := s.cache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	query := fetch.Query{
		Terms:       terms,
		MaxPages:    s.cfg.Scrape.MaxPages,
		TargetRaw:   targetRaw,
		FullProfile: s.cfg.Scrape.Profile == config.ProfileFull,
	}
	jobs, sourceErrors := s.scraper.Run(r.Context(), query)

	jobs, seenFiltered := s.filterSeen(jobs)

	result := s.ranker.Rank(jobs, rank.Options{
		TargetSleeve: sleeve,
		LocationMode: s.modes[modeID],
		Failover:     failover,
		GateMode:     sleeves.GateMode(s.cfg.Scoring.GateMode),
	})

	passOrMaybe := result.Funnel.PassCount + result.Funnel.MaybeCount
	resp := scrapeResponse{
		Items: result.Jobs,
		Summary: Summary{
			Funnel: result.Funnel,
			Targets: Targets{
				TargetRaw:           targetRaw,
				RawAchieved:         result.Funnel.Raw,
				TargetPassOrMaybe:   targetPassOrMaybe,
				PassOrMaybeAchieved: passOrMaybe,
			},
			SourceErrors:     sourceErrors,
			ConfigVersion:    config.Version,
			KPIGatePassed:    result.Funnel.Raw > 0 && passOrMaybe > 0,
			Profile:          s.cfg.Scrape.Profile,
			Sleeve:           sleeve,
			LocationMode:     modeID,
			GateMode:         s.cfg.Scoring.GateMode,
			SeenFiltered:     seenFiltered,
			FallbacksApplied: result.FallbacksApplied,
		},
	}
	if resp.Items == nil {
		resp.Items = []domain.RankedJob{}
	}
	if resp.Summary.FallbacksApplied == nil {
		resp.Summary.FallbacksApplied = []string{}
	}

	ttl := s.cfg.CacheTTL()
	if len(resp.Items) == 0 {
		ttl = s.cfg.EmptyCacheTTL()
	}
	s.cache.Set(cacheKey, resp, ttl)

	writeJSON(w, http.StatusOK, resp)
}

// filterSeen drops postings already surfaced within the incremental window
// and records the rest as seen. The filter is best effort: on store trouble
// the full batch passes through.
func (s *Server) filterSeen(jobs []domain.JobPosting) ([]domain.JobPosting, int) {
	anchors := make([]string, len(jobs))
	unique := make([]string, 0, len(jobs))
	known := map[string]bool{}
	for i, job := range jobs {
		anchor := rank.CanonicalizeURL(job.Link)
		if anchor == "" {
			anchor = rank.ExtractJobID(job.Link)
		}
		anchors[i] = anchor
		// Touch each anchor once so an in-batch duplicate is not mistaken
		// for an earlier scrape.
		if anchor != "" && !known[anchor] {
			known[anchor] = true
			unique = append(unique, anchor)
		}
	}

	seenBefore, err := s.seen.Touch(unique, s.now())
	if err != nil {
		s.log.Warn().Err(err).Msg("seen store unavailable, skipping incremental filter")
		return jobs, 0
	}

	kept := jobs[:0]
	filtered := 0
	for i, job := range jobs {
		if anchors[i] != "" && seenBefore[anchors[i]] {
			filtered++
			continue
		}
		kept = append(kept, job)
	}
	return kept, filtered
}

func splitTerms(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
