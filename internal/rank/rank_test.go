package rank

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sleevescout/internal/domain"
	"sleevescout/internal/sleeves"
)

func newTestRanker(t *testing.T) *Ranker {
	t.Helper()
	return New(sleeves.MustCatalog(), zerolog.Nop())
}

func festivalJob() domain.JobPosting {
	return domain.JobPosting{
		Title:    "Event Producer",
		Company:  "LiveCo",
		Location: "Amsterdam",
		Snippet:  "International festival tour production with crew scheduling, backstage coordination and on-site delivery.",
		Link:     "https://nl.indeed.com/viewjob?jk=abc123",
		Source:   "indeed_web",
	}
}

func salesJob() domain.JobPosting {
	return domain.JobPosting{
		Title:    "Account Executive",
		Company:  "SellCo",
		Location: "Amsterdam",
		Snippet:  "Quota-driven sales role.",
		Link:     "https://nl.indeed.com/viewjob?jk=sales1",
		Source:   "indeed_web",
	}
}

func defaultOptions() Options {
	return Options{LocationMode: NewLocationModeSet(nil)["nl_only"]}
}

func TestRankPassesStrongMatch(t *testing.T) {
	r := newTestRanker(t)
	res := r.Rank([]domain.JobPosting{festivalJob()}, defaultOptions())

	require.Len(t, res.Jobs, 1)
	job := res.Jobs[0]
	assert.Equal(t, domain.DecisionPass, job.Decision)
	assert.Equal(t, "A", job.PrimarySleeveID)
	assert.Equal(t, 5, job.PrimarySleeveScore)
	assert.Equal(t, "Music Events & Festivals", job.PrimarySleeveName)
	assert.Equal(t, "https://nl.indeed.com/viewjob?jk=abc123", job.CanonicalURLOrJobID)
	assert.NotEmpty(t, job.Reasons)
	assert.LessOrEqual(t, len(job.Reasons), 3)
	assert.Equal(t, 1, res.Funnel.PassCount)
}

func TestRankHardRejectFails(t *testing.T) {
	r := newTestRanker(t)
	res := r.Rank([]domain.JobPosting{salesJob()}, defaultOptions())

	require.Len(t, res.Jobs, 1)
	job := res.Jobs[0]
	assert.Equal(t, domain.DecisionFail, job.Decision)
	assert.Equal(t, "hard_reject_title:Account Executive", job.HardRejectReason)
	assert.Equal(t, 1, res.Funnel.FailCount)
	require.NotEmpty(t, res.Funnel.TopFailReasons)
	assert.Equal(t, "hard_reject_title", res.Funnel.TopFailReasons[0].Reason)
}

func TestRankStrictSleeveDropsHardRejects(t *testing.T) {
	r := newTestRanker(t)
	opts := defaultOptions()
	opts.StrictSleeve = true
	res := r.Rank([]domain.JobPosting{festivalJob(), salesJob()}, opts)

	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "Event Producer", res.Jobs[0].Title)
	assert.Equal(t, 0, res.Funnel.FailCount)
}

func TestRankDedupeFirstWriterWins(t *testing.T) {
	r := newTestRanker(t)
	first := festivalJob()
	dup := festivalJob()
	dup.Source = "linkedin_web"
	dup.Link = "https://nl.indeed.com/viewjob?jk=abc123&utm_source=alert"
	dup.Snippet = "Different snippet, same posting."

	res := r.Rank([]domain.JobPosting{first, dup}, defaultOptions())
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "indeed_web", res.Jobs[0].Source, "first occurrence wins")
	assert.Equal(t, 2, res.Funnel.Raw)
	assert.Equal(t, 1, res.Funnel.AfterDedupe)

	bySource := res.Funnel.DedupeBySource
	require.Contains(t, bySource, "linkedin_web")
	assert.Equal(t, 1, bySource["linkedin_web"].Raw)
	assert.Equal(t, 0, bySource["linkedin_web"].AfterDedupe)
	assert.Equal(t, 1, bySource["indeed_web"].AfterDedupe)
}

func TestRankLocationFilter(t *testing.T) {
	r := newTestRanker(t)
	abroad := festivalJob()
	abroad.Location = "New York, United States"
	abroad.Link = "https://example.com/jobs/900001"

	res := r.Rank([]domain.JobPosting{festivalJob(), abroad}, defaultOptions())
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, 1, res.Funnel.LocationFiltered)

	optsGlobal := defaultOptions()
	optsGlobal.LocationMode = NewLocationModeSet(nil)["global"]
	res = r.Rank([]domain.JobPosting{festivalJob(), abroad}, optsGlobal)
	assert.Len(t, res.Jobs, 2)
	assert.Equal(t, 0, res.Funnel.LocationFiltered)
}

func TestRankTargetSleeveOverridesPrimary(t *testing.T) {
	r := newTestRanker(t)
	opts := defaultOptions()
	opts.TargetSleeve = "C"

	res := r.Rank([]domain.JobPosting{festivalJob()}, opts)
	require.Len(t, res.Jobs, 1)
	job := res.Jobs[0]
	assert.Equal(t, "C", job.PrimarySleeveID)
	assert.Equal(t, domain.DecisionFail, job.Decision, "festival posting has no data center signal")
}

func TestRankOrderingDeterministic(t *testing.T) {
	r := newTestRanker(t)
	weak := domain.JobPosting{
		Title:    "Operations Coordinator",
		Company:  "MidCo",
		Location: "Utrecht",
		Snippet:  "Coordination of delivery workflow and planning.",
		Link:     "https://example.com/jobs/700001",
		Source:   "nl_web_openings",
	}
	jobs := []domain.JobPosting{salesJob(), weak, festivalJob()}

	res1 := r.Rank(jobs, defaultOptions())
	res2 := r.Rank(jobs, defaultOptions())
	assert.Equal(t, res1.Jobs, res2.Jobs, "identical input must rank identically")

	require.Len(t, res1.Jobs, 3)
	assert.Equal(t, domain.DecisionPass, res1.Jobs[0].Decision)
	assert.Equal(t, domain.DecisionFail, res1.Jobs[2].Decision)
	for i := 1; i < len(res1.Jobs); i++ {
		assert.GreaterOrEqual(t, res1.Jobs[i-1].Decision, res1.Jobs[i].Decision)
	}
}

func TestRankFailoverPromotesWhenEmpty(t *testing.T) {
	r := newTestRanker(t)
	dull := domain.JobPosting{
		Title:    "Gardener",
		Company:  "GreenCo",
		Location: "Utrecht",
		Snippet:  "Tending plants.",
		Link:     "https://example.com/jobs/800001",
		Source:   "nl_web_openings",
	}

	opts := defaultOptions()
	res := r.Rank([]domain.JobPosting{dull}, opts)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, domain.DecisionFail, res.Jobs[0].Decision)
	assert.Empty(t, res.FallbacksApplied)

	opts.Failover = true
	res = r.Rank([]domain.JobPosting{dull}, opts)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, domain.DecisionMaybe, res.Jobs[0].Decision)
	assert.Contains(t, res.FallbacksApplied, "promote_fails_to_maybe")
}

func TestRankFailoverNeverPromotesHardRejects(t *testing.T) {
	r := newTestRanker(t)
	opts := defaultOptions()
	opts.Failover = true

	res := r.Rank([]domain.JobPosting{salesJob()}, opts)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, domain.DecisionFail, res.Jobs[0].Decision)
}

func TestRankSoftPenaltyLowersComposite(t *testing.T) {
	r := newTestRanker(t)
	clean := festivalJob()
	tainted := festivalJob()
	tainted.Link = "https://example.com/jobs/600001"
	tainted.Company = "ColdCo"
	tainted.Snippet = clean.Snippet + " Some cold calling may be expected."

	res := r.Rank([]domain.JobPosting{tainted, clean}, defaultOptions())
	require.Len(t, res.Jobs, 2)
	assert.Equal(t, "LiveCo", res.Jobs[0].Company, "penalized posting ranks below the clean one")
	assert.Greater(t, res.Jobs[0].CompositeRankKey, res.Jobs[1].CompositeRankKey)
	assert.Equal(t, 10, res.Jobs[1].SoftPenaltyTotal)
	assert.Equal(t, []string{"High-friction sales context detected."}, res.Jobs[1].SoftPenaltyReasons)
}

func TestRankHardGateMode(t *testing.T) {
	r := newTestRanker(t)
	nearMiss := domain.JobPosting{
		Title:    "Coordinator",
		Company:  "FestCo",
		Location: "Amsterdam",
		Snippet:  "Festival concert backstage crew scheduling.",
		Link:     "https://example.com/jobs/500001",
		Source:   "indeed_web",
	}

	soft := r.Rank([]domain.JobPosting{nearMiss}, defaultOptions())
	require.Len(t, soft.Jobs, 1)
	assert.NotEqual(t, domain.DecisionFail, soft.Jobs[0].Decision)

	opts := defaultOptions()
	opts.GateMode = sleeves.GateHard
	hard := r.Rank([]domain.JobPosting{nearMiss}, opts)
	require.Len(t, hard.Jobs, 1)
	assert.Equal(t, domain.DecisionFail, hard.Jobs[0].Decision)
}

func TestDecideThresholds(t *testing.T) {
	th := defaultThresholds()
	mk := func(score, hits int, rejected bool) scored {
		s := scored{primaryHits: hits, hardRejected: rejected}
		s.job.PrimarySleeveScore = score
		return s
	}
	assert.Equal(t, domain.DecisionPass, decideOne(mk(3, 2, false), th))
	assert.Equal(t, domain.DecisionPass, decideOne(mk(5, 5, false), th))
	assert.Equal(t, domain.DecisionMaybe, decideOne(mk(2, 1, false), th))
	assert.Equal(t, domain.DecisionMaybe, decideOne(mk(3, 1, false), th))
	assert.Equal(t, domain.DecisionFail, decideOne(mk(1, 5, false), th))
	assert.Equal(t, domain.DecisionFail, decideOne(mk(5, 0, false), th))
	assert.Equal(t, domain.DecisionFail, decideOne(mk(5, 5, true), th))
}
