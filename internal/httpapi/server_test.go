package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sleevescout/internal/config"
	"sleevescout/internal/domain"
	"sleevescout/internal/fetch"
	"sleevescout/internal/rank"
	"sleevescout/internal/sleeves"
	"sleevescout/internal/store"
)

type stubScraper struct {
	jobs  []domain.JobPosting
	errs  map[string]string
	calls int
	lastQ fetch.Query
}

func (s *stubScraper) Run(_ context.Context, q fetch.Query) ([]domain.JobPosting, map[string]string) {
	s.calls++
	s.lastQ = q
	return s.jobs, s.errs
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

func newTestServer(t *testing.T, scraper Scraper) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.App.DataDir = t.TempDir()

	catalog := sleeves.MustCatalog()
	srv := NewServer(
		cfg,
		catalog,
		rank.New(catalog, zerolog.Nop()),
		scraper,
		store.NewSeenStore(cfg.App.DataDir, cfg.IncrementalWindow()),
		zerolog.Nop(),
	)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func getScrape(t *testing.T, ts *httptest.Server, rawQuery string) (int, scrapeResponse) {
	t.Helper()
	res, err := http.Get(ts.URL + "/scrape?" + rawQuery)
	require.NoError(t, err)
	defer res.Body.Close()

	var body scrapeResponse
	if res.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	}
	return res.StatusCode, body
}

func TestScrapeStrongMatch(t *testing.T) {
	scraper := &stubScraper{jobs: []domain.JobPosting{festivalJob()}}
	ts := newTestServer(t, scraper)

	status, body := getScrape(t, ts, "sleeve=A&location_mode=nl_only")
	require.Equal(t, http.StatusOK, status)

	require.Len(t, body.Items, 1)
	assert.Equal(t, domain.DecisionPass, body.Items[0].Decision)
	assert.Equal(t, "A", body.Items[0].PrimarySleeveID)

	assert.Equal(t, "A", body.Summary.Sleeve)
	assert.Equal(t, "nl_only", body.Summary.LocationMode)
	assert.Equal(t, "mvp", body.Summary.Profile)
	assert.Equal(t, config.Version, body.Summary.ConfigVersion)
	assert.True(t, body.Summary.KPIGatePassed)
	assert.Equal(t, 1, body.Summary.Funnel.Raw)
	assert.Equal(t, 1, body.Summary.Targets.PassOrMaybeAchieved)
	assert.Empty(t, body.Summary.SourceErrors)
}

func TestScrapeInvalidSleeve(t *testing.T) {
	ts := newTestServer(t, &stubScraper{})
	status, _ := getScrape(t, ts, "sleeve=Z")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestScrapeInvalidLocationMode(t *testing.T) {
	ts := newTestServer(t, &stubScraper{})
	status, _ := getScrape(t, ts, "sleeve=A&location_mode=mars")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestScrapeAllSourcesFailStill200(t *testing.T) {
	scraper := &stubScraper{errs: map[string]string{
		"indeed_web":   "indeed_web: blocked by anti-bot page",
		"linkedin_web": "linkedin_web: status 500",
	}}
	ts := newTestServer(t, scraper)

	status, body := getScrape(t, ts, "sleeve=A")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body.Items)
	assert.Len(t, body.Summary.SourceErrors, 2)
	assert.False(t, body.Summary.KPIGatePassed)
	assert.Equal(t, 0, body.Summary.Funnel.Raw)
}

func TestScrapeResponseCached(t *testing.T) {
	scraper := &stubScraper{jobs: []domain.JobPosting{festivalJob()}}
	ts := newTestServer(t, scraper)

	status, _ := getScrape(t, ts, "sleeve=A")
	require.Equal(t, http.StatusOK, status)
	status, body := getScrape(t, ts, "sleeve=A")
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, 1, scraper.calls)
	require.Len(t, body.Items, 1)
}

func TestScrapeIncrementalFilter(t *testing.T) {
	scraper := &stubScraper{jobs: []domain.JobPosting{festivalJob()}}
	ts := newTestServer(t, scraper)

	status, first := getScrape(t, ts, "sleeve=A&query_terms=producer")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, first.Items, 1)
	assert.Equal(t, 0, first.Summary.SeenFiltered)

	// Different terms dodge the response cache but return the same posting.
	status, second := getScrape(t, ts, "sleeve=A&query_terms=regisseur")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, second.Items)
	assert.Equal(t, 1, second.Summary.SeenFiltered)
}

func TestScrapeQueryKnobsReachScraper(t *testing.T) {
	scraper := &stubScraper{}
	ts := newTestServer(t, scraper)

	status, _ := getScrape(t, ts, "sleeve=B&query_terms=tour+manager,stage+manager&target_raw=30")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"tour manager", "stage manager"}, scraper.lastQ.Terms)
	assert.Equal(t, 30, scraper.lastQ.TargetRaw)
	assert.False(t, scraper.lastQ.FullProfile)
}

func TestWageCalculateOK(t *testing.T) {
	ts := newTestServer(t, &stubScraper{})

	payload := `{"mode":"payroll","inputs":{
		"payroll_gross_yearly":"72000","payroll_net_yearly":"48000",
		"fringe_benefits_yearly":"8000","freelance_net_yearly":"52000"}}`
	res, err := http.Post(ts.URL+"/wagecalculator/calculate", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		OK     bool `json:"ok"`
		Result struct {
			Mode    string `json:"mode"`
			Payroll struct {
				Gross struct {
					Yearly float64 `json:"yearly"`
					Hourly float64 `json:"hourly"`
				} `json:"gross"`
			} `json:"payroll"`
		} `json:"result"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.Equal(t, "payroll", body.Result.Mode)
	assert.Equal(t, 72000.0, body.Result.Payroll.Gross.Yearly)
	assert.Equal(t, 34.5, body.Result.Payroll.Gross.Hourly)
}

func TestWageCalculateBadMode(t *testing.T) {
	ts := newTestServer(t, &stubScraper{})

	res, err := http.Post(ts.URL+"/wagecalculator/calculate", "application/json",
		strings.NewReader(`{"mode":"barter","inputs":{}}`))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	var body wageFailed
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.False(t, body.OK)
	assert.Equal(t, "wagecalculator_invalid_mode", body.Code)
	assert.NotEmpty(t, body.Message)
}

func TestWageCalculateInvalidJSON(t *testing.T) {
	ts := newTestServer(t, &stubScraper{})
	res, err := http.Post(ts.URL+"/wagecalculator/calculate", "application/json", strings.NewReader("{nope"))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, &stubScraper{})
	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestCacheExpiresQuicklyWhenEmpty(t *testing.T) {
	cfg := config.Default()
	assert.Less(t, cfg.EmptyCacheTTL(), cfg.CacheTTL())
	assert.Equal(t, 45*time.Second, cfg.EmptyCacheTTL())
}
