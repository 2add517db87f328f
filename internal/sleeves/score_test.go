package sleeves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog()
	require.NoError(t, err)
	return c
}

func TestNewCatalogValidates(t *testing.T) {
	c := mustCatalog(t)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, c.SleeveIDs)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, c.SleeveIDs)
	for _, id := range c.SleeveIDs {
		assert.True(t, c.ValidSleeve(id))
	}
	assert.False(t, c.ValidSleeve("Z"))
	assert.False(t, c.ValidSleeve(""))
}

func TestScoreSleeveFestivalProducer(t *testing.T) {
	c := mustCatalog(t)
	title := "Event Producer"
	text := "Event Producer. International festival tour production with crew scheduling, backstage coordination and on-site delivery."

	score, details := c.ScoreSleeve("A", title, text, GateSoft)
	assert.Equal(t, 5, score, "rich posting should hit the cap")
	assert.Equal(t, "ok", details.Reason)
	assert.Contains(t, details.TitleHits, "event producer")
	assert.Contains(t, details.ContextHits, "festival")
	assert.True(t, details.TitleGateMet)
	assert.True(t, details.CoverageMet)
}

func TestScoreSleeveNeverNegative(t *testing.T) {
	c := mustCatalog(t)
	score, _ := c.ScoreSleeve("A", "Inside Sales", "inside sales account executive sdr callcenter", GateSoft)
	assert.Equal(t, 0, score)
}

func TestScoreSleeveUnknownID(t *testing.T) {
	c := mustCatalog(t)
	score, details := c.ScoreSleeve("X", "Event Producer", "festival", GateSoft)
	assert.Equal(t, 0, score)
	assert.Equal(t, "unknown_sleeve", details.Reason)
}

func TestScoreSleeveHardGate(t *testing.T) {
	c := mustCatalog(t)
	// Context-only posting: no title-positive phrase in the title.
	title := "Coordinator"
	text := "festival concert backstage crew scheduling"

	soft, softDetails := c.ScoreSleeve("A", title, text, GateSoft)
	assert.Greater(t, soft, 0, "soft gates keep near misses visible")
	assert.False(t, softDetails.TitleGateMet)

	hard, hardDetails := c.ScoreSleeve("A", title, text, GateHard)
	assert.Equal(t, 0, hard)
	assert.Equal(t, "failed_must_haves", hardDetails.Reason)
}

func TestScoreSleeveWordBoundaries(t *testing.T) {
	c := mustCatalog(t)
	// "salesforce" must not count as a sales-ish negative hit anywhere.
	_, details := c.ScoreSleeve("E", "Operations Manager", "salesforce operations delivery workflow", GateSoft)
	assert.Empty(t, details.NegativeHits)
}

func TestScoreAllSleevesCoversCatalog(t *testing.T) {
	c := mustCatalog(t)
	scores, details := c.ScoreAllSleeves("Supply Chain Manager", "supply chain logistics vendor management rollout", GateSoft)
	assert.Len(t, scores, 5)
	assert.Len(t, details, 5)
	assert.Greater(t, scores["D"], scores["A"])
}

func TestScoreSynergyCapped(t *testing.T) {
	c := mustCatalog(t)
	text := "international operations delivery multi-site travel on-site stakeholder workflow reliability commissioning"
	assert.Equal(t, SynergyCap, c.ScoreSynergy(text))
	assert.Equal(t, 0, c.ScoreSynergy("gardening"))
	assert.Equal(t, 2, c.ScoreSynergy("international travel plans"))
}

func TestEvaluateSoftPenalties(t *testing.T) {
	c := mustCatalog(t)

	total, reasons := c.EvaluateSoftPenalties("account executive with cold calling duties")
	assert.Equal(t, 22, total)
	assert.Equal(t, []string{
		"Sales-heavy role signal detected.",
		"High-friction sales context detected.",
	}, reasons)

	total, reasons = c.EvaluateSoftPenalties("technical account manager for enterprise clients")
	assert.Equal(t, 20, total)
	require.Len(t, reasons, 1)

	total, reasons = c.EvaluateSoftPenalties("festival production role")
	assert.Equal(t, 0, total)
	assert.Empty(t, reasons)
}

func TestDetectHardReject(t *testing.T) {
	c := mustCatalog(t)

	tests := []struct {
		name  string
		title string
		text  string
		want  string
	}{
		{
			name:  "title pattern",
			title: "Account Executive Benelux",
			text:  "",
			want:  "hard_reject_title:Account Executive",
		},
		{
			name:  "title outranks text",
			title: "SDR",
			text:  "door-to-door sales",
			want:  "hard_reject_title:SDR",
		},
		{
			name:  "text pattern",
			title: "Operations Manager",
			text:  "commission only compensation",
			want:  "hard_reject_text:commission only",
		},
		{
			name:  "cold calling with sales context",
			title: "Operations Manager",
			text:  "cold calling to hit your sales quota",
			want:  "hard_reject_text:cold calling sales context",
		},
		{
			name:  "cold calling without context survives",
			title: "Operations Manager",
			text:  "no cold calling involved",
			want:  "",
		},
		{
			name:  "clean posting",
			title: "Festival Producer",
			text:  "touring production",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.DetectHardReject(tt.title, tt.text))
		})
	}
}

func TestDetectBlockedHTML(t *testing.T) {
	assert.True(t, DetectBlockedHTML("<html>Please complete the CAPTCHA to continue</html>"))
	assert.True(t, DetectBlockedHTML("Access Denied"))
	assert.False(t, DetectBlockedHTML("You have been blocked")) // single weak marker
	assert.True(t, DetectBlockedHTML("blocked. sign in to continue"))
	assert.False(t, DetectBlockedHTML("<html>30 jobs found</html>"))
	assert.False(t, DetectBlockedHTML(""))
}
