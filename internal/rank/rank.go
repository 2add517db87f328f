// Package rank turns raw scraped postings into deduplicated, scored, and
// ordered results with explainable decisions.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"sleevescout/internal/domain"
	"sleevescout/internal/sleeves"
)

// Composite weights. They must sum to 1.0 before the penalty term.
const (
	weightSleeve    = 0.47
	weightAbroad    = 0.28
	weightSynergy   = 0.15
	weightProximity = 0.10
)

const failoverPassTarget = 10
const failoverPromoteLimit = 10

// Options steers one ranking run.
type Options struct {
	// TargetSleeve forces the primary sleeve instead of taking the argmax.
	TargetSleeve string
	// MinTargetScore overrides the pass floor for the target sleeve when
	// positive.
	MinTargetScore int
	LocationMode   LocationMode
	// StrictSleeve drops hard-rejected postings from the output entirely
	// instead of listing them as FAIL.
	StrictSleeve bool
	// Failover relaxes decision thresholds stepwise when too few postings
	// pass.
	Failover bool
	GateMode sleeves.GateMode
}

// Ranker scores and orders postings against a sleeve catalog.
type Ranker struct {
	catalog *sleeves.Catalog
	log     zerolog.Logger
}

func New(catalog *sleeves.Catalog, log zerolog.Logger) *Ranker {
	return &Ranker{catalog: catalog, log: log}
}

// thresholds are the decision floors, mutable only by the failover ladder.
type thresholds struct {
	passPrimary  int
	passHits     int
	maybePrimary int
	maybeHits    int
}

func defaultThresholds() thresholds {
	return thresholds{
		passPrimary:  sleeves.MinPrimaryScoreToShow,
		passHits:     sleeves.MinTotalHitsToShow,
		maybePrimary: sleeves.MinPrimaryScoreToMaybe,
		maybeHits:    sleeves.MinTotalHitsToMaybe,
	}
}

// scored is one posting with everything computed except its final decision.
type scored struct {
	job          domain.RankedJob
	primaryHits  int
	hardRejected bool
}

// Result is the full outcome of one ranking run.
type Result struct {
	Jobs             []domain.RankedJob
	Funnel           domain.Funnel
	FallbacksApplied []string
}

// Rank runs the pipeline: dedupe, location gate, scoring, decisions,
// failover, and deterministic ordering.
func (r *Ranker) Rank(jobs []domain.JobPosting, opts Options) Result {
	if opts.GateMode == "" {
		opts.GateMode = sleeves.GateSoft
	}

	funnel := domain.Funnel{
		Raw:            len(jobs),
		TopFailReasons: []domain.FailReasonCount{},
	}

	deduped, dedupeBySource := dedupe(jobs)
	funnel.AfterDedupe = len(deduped)
	funnel.DedupeBySource = dedupeBySource

	var kept []domain.JobPosting
	for _, job := range deduped {
		if PassesLocationGate(opts.LocationMode, job.Location, job.WorkModeHint, combinedText(job)) {
			kept = append(kept, job)
			continue
		}
		funnel.LocationFiltered++
	}

	items := make([]scored, 0, len(kept))
	for _, job := range kept {
		s := r.scoreOne(job, opts)
		if s.hardRejected && opts.StrictSleeve {
			continue
		}
		items = append(items, s)
	}

	th := defaultThresholds()
	if opts.TargetSleeve != "" && opts.MinTargetScore > 0 {
		th.passPrimary = opts.MinTargetScore
	}
	decide(items, th)

	var fallbacks []string
	if opts.Failover {
		fallbacks = r.applyFailover(items, th)
	}

	sortRanked(items)

	out := make([]domain.RankedJob, 0, len(items))
	failReasons := map[string]int{}
	for _, s := range items {
		out = append(out, s.job)
		switch s.job.Decision {
		case domain.DecisionPass:
			funnel.PassCount++
		case domain.DecisionMaybe:
			funnel.MaybeCount++
		default:
			funnel.FailCount++
			failReasons[failReasonKind(s)]++
		}
		if s.job.FullDescription != "" {
			funnel.FullDescriptionCount++
		}
	}
	if len(out) > 0 {
		funnel.FullDescriptionCoverage = float64(funnel.FullDescriptionCount) / float64(len(out))
	}
	funnel.TopFailReasons = topFailReasons(failReasons, 5)

	r.log.Debug().
		Int("raw", funnel.Raw).
		Int("after_dedupe", funnel.AfterDedupe).
		Int("pass", funnel.PassCount).
		Int("maybe", funnel.MaybeCount).
		Int("fail", funnel.FailCount).
		Strs("fallbacks", fallbacks).
		Msg("ranking complete")

	return Result{Jobs: out, Funnel: funnel, FallbacksApplied: fallbacks}
}

// combinedText is the haystack every text scorer runs against.
func combinedText(job domain.JobPosting) string {
	return strings.Join([]string{
		job.Title,
		job.Company,
		job.Location,
		job.Snippet,
		job.WorkModeHint,
		job.EmploymentType,
		job.Source,
		job.FullDescription,
	}, " ")
}

func dedupe(jobs []domain.JobPosting) ([]domain.JobPosting, map[string]domain.SourceDedupe) {
	seen := make(map[DedupeKey]bool, len(jobs))
	rawBySource := map[string]int{}
	keptBySource := map[string]int{}
	var out []domain.JobPosting
	for _, job := range jobs {
		rawBySource[job.Source]++
		key, _, _ := BuildDedupeKey(job.Title, job.Company, job.Link, job.Location, job.Date)
		if seen[key] {
			continue
		}
		seen[key] = true
		keptBySource[job.Source]++
		out = append(out, job)
	}

	bySource := make(map[string]domain.SourceDedupe, len(rawBySource))
	for source, raw := range rawBySource {
		kept := keptBySource[source]
		entry := domain.SourceDedupe{Raw: raw, AfterDedupe: kept}
		if raw > 0 {
			entry.DedupeRatio = float64(kept) / float64(raw)
		}
		bySource[source] = entry
	}
	return out, bySource
}

func (r *Ranker) scoreOne(job domain.JobPosting, opts Options) scored {
	text := combinedText(job)

	ranked := domain.RankedJob{JobPosting: job}
	ranked.Link = StripTrackingParams(job.Link)
	ranked.WorkMode = job.WorkModeHint

	canonical := CanonicalizeURL(job.Link)
	if canonical == "" {
		canonical = ExtractJobID(job.Link)
	}
	ranked.CanonicalURLOrJobID = canonical

	ranked.HardRejectReason = r.catalog.DetectHardReject(job.Title, text)

	scores, details := r.catalog.ScoreAllSleeves(job.Title, text, opts.GateMode)
	ranked.SleeveScores = scores

	primary := opts.TargetSleeve
	if primary == "" {
		best := -1
		for _, id := range r.catalog.SleeveIDs {
			if scores[id] > best {
				best = scores[id]
				primary = id
			}
		}
	}
	ranked.PrimarySleeveID = primary
	ranked.PrimarySleeveScore = scores[primary]
	if s, ok := r.catalog.Sleeves[primary]; ok {
		ranked.PrimarySleeveName = s.Name
		ranked.PrimarySleeveTagline = s.Tagline
	}

	ranked.AbroadScore, ranked.AbroadBadges = r.catalog.ScoreAbroad(text)
	ranked.AbroadMeta = r.catalog.ExtractAbroadMetadata(text)
	ranked.SynergyScore = r.catalog.ScoreSynergy(text)
	ranked.SoftPenaltyTotal, ranked.SoftPenaltyReasons = r.catalog.EvaluateSoftPenalties(text)
	ranked.LanguageFlags, ranked.LanguageNotes = r.catalog.DetectLanguageFlags(text)

	proximity := locationProximity(job.Location, job.WorkModeHint, text)
	capMax := 5
	if s, ok := r.catalog.Sleeves[primary]; ok {
		capMax = s.CapMax
	}
	ranked.CompositeRankKey = weightSleeve*float64(ranked.PrimarySleeveScore)/float64(capMax) +
		weightAbroad*float64(ranked.AbroadScore)/float64(sleeves.AbroadScoreCap) +
		weightSynergy*float64(ranked.SynergyScore)/float64(sleeves.SynergyCap) +
		weightProximity*proximity -
		float64(ranked.SoftPenaltyTotal)/100.0

	ranked.Reasons = buildReasons(ranked, details[primary])

	return scored{
		job:          ranked,
		primaryHits:  details[primary].TotalHits,
		hardRejected: ranked.HardRejectReason != "",
	}
}

// locationProximity prefers local work: Netherlands first, then EU, then the
// rest of the world.
func locationProximity(location, workModeHint, rawText string) float64 {
	text := locationGateText(location, workModeHint, rawText)
	for _, marker := range netherlandsMarkers {
		if strings.Contains(text, marker) {
			return 1.0
		}
	}
	for _, marker := range euCountryMarkers {
		if strings.Contains(text, marker) {
			return 0.5
		}
	}
	return 0.0
}

// buildReasons produces at most three human-readable explanations, strongest
// signal first.
func buildReasons(job domain.RankedJob, primary sleeves.ScoreDetails) []string {
	var reasons []string
	if job.HardRejectReason != "" {
		reasons = append(reasons, "Rejected: "+job.HardRejectReason)
	}
	if job.PrimarySleeveScore > 0 {
		parts := []string{fmt.Sprintf("%s fit %d/5", job.PrimarySleeveName, job.PrimarySleeveScore)}
		if len(primary.TitleHits) > 0 {
			parts = append(parts, "title: "+strings.Join(primary.TitleHits, ", "))
		}
		if len(primary.ContextHits) > 0 {
			parts = append(parts, "context: "+strings.Join(primary.ContextHits, ", "))
		}
		reasons = append(reasons, strings.Join(parts, "; "))
	}
	if len(reasons) < 3 && job.AbroadScore > 0 {
		reasons = append(reasons, fmt.Sprintf("Abroad signals %d/4 via %s", job.AbroadScore, strings.Join(job.AbroadBadges, ", ")))
	}
	if len(reasons) < 3 && job.SynergyScore > 0 {
		reasons = append(reasons, fmt.Sprintf("Synergy signals %d/5", job.SynergyScore))
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return reasons
}

func decide(items []scored, th thresholds) {
	for i := range items {
		items[i].job.Decision = decideOne(items[i], th)
	}
}

func decideOne(s scored, th thresholds) domain.Decision {
	if s.hardRejected {
		return domain.DecisionFail
	}
	if s.job.PrimarySleeveScore < th.maybePrimary || s.primaryHits < th.maybeHits {
		return domain.DecisionFail
	}
	if s.job.PrimarySleeveScore >= th.passPrimary && s.primaryHits >= th.passHits {
		return domain.DecisionPass
	}
	return domain.DecisionMaybe
}

// applyFailover relaxes thresholds one step at a time until enough postings
// pass, then as a last resort promotes the best non-rejected fails to MAYBE
// so the caller never renders an empty page over a threshold artifact.
func (r *Ranker) applyFailover(items []scored, th thresholds) []string {
	var applied []string

	passCount := func() int {
		n := 0
		for i := range items {
			if items[i].job.Decision == domain.DecisionPass {
				n++
			}
		}
		return n
	}

	steps := []struct {
		name  string
		relax func(*thresholds)
	}{
		{"relax_total_hits", func(t *thresholds) {
			if t.passHits > 1 {
				t.passHits--
			}
		}},
		{"relax_primary_score", func(t *thresholds) {
			if t.passPrimary > 1 {
				t.passPrimary--
			}
		}},
		{"soften_maybe_floor", func(t *thresholds) {
			if t.maybePrimary > 1 {
				t.maybePrimary--
			}
		}},
	}
	for _, step := range steps {
		if passCount() >= failoverPassTarget {
			break
		}
		before := th
		step.relax(&th)
		if th == before {
			continue
		}
		applied = append(applied, step.name)
		decide(items, th)
	}

	visible := 0
	for i := range items {
		if items[i].job.Decision != domain.DecisionFail {
			visible++
		}
	}
	if visible == 0 {
		promoted := 0
		order := make([]int, 0, len(items))
		for i := range items {
			if !items[i].hardRejected {
				order = append(order, i)
			}
		}
		sort.SliceStable(order, func(a, b int) bool {
			return items[order[a]].job.CompositeRankKey > items[order[b]].job.CompositeRankKey
		})
		for _, i := range order {
			if promoted >= failoverPromoteLimit {
				break
			}
			items[i].job.Decision = domain.DecisionMaybe
			promoted++
		}
		if promoted > 0 {
			applied = append(applied, "promote_fails_to_maybe")
		}
	}
	return applied
}

func sortRanked(items []scored) {
	sort.SliceStable(items, func(a, b int) bool {
		ja, jb := items[a].job, items[b].job
		if ja.Decision != jb.Decision {
			return ja.Decision > jb.Decision
		}
		if ja.CompositeRankKey != jb.CompositeRankKey {
			return ja.CompositeRankKey > jb.CompositeRankKey
		}
		return ja.Source < jb.Source
	})
}

func failReasonKind(s scored) string {
	if s.hardRejected {
		if strings.HasPrefix(s.job.HardRejectReason, "hard_reject_title:") {
			return "hard_reject_title"
		}
		return "hard_reject_text"
	}
	if s.primaryHits < sleeves.MinTotalHitsToMaybe {
		return "insufficient_keyword_hits"
	}
	return "primary_sleeve_score_too_low"
}

func topFailReasons(counts map[string]int, limit int) []domain.FailReasonCount {
	out := make([]domain.FailReasonCount, 0, len(counts))
	for reason, count := range counts {
		out = append(out, domain.FailReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Reason < out[b].Reason
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
