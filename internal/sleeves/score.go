package sleeves

import (
	"sleevescout/internal/textmatch"
)

// ScoreDetails explains one sleeve score: which phrases hit where and how
// the gates resolved.
type ScoreDetails struct {
	Reason        string   `json:"reason"`
	TitleHits     []string `json:"title_hits"`
	ContextHits   []string `json:"context_hits"`
	BonusHits     []string `json:"bonus_hits"`
	NegativeHits  []string `json:"negative_hits"`
	TitleHitCount int      `json:"title_hit_count"`
	TotalHits     int      `json:"total_positive_hits"`
	TitleGateMet  bool     `json:"title_gate_met"`
	CoverageMet   bool     `json:"coverage_met"`
	MinTitleHits  int      `json:"min_title_hits"`
	MinTotalHits  int      `json:"min_total_hits"`
}

// ScoreSleeve scores one sleeve against a job title and its combined text.
// Both inputs are raw; preparation happens here so callers cannot skip it.
//
// The score is additive over distinct phrase hits, plus a gate bonus per met
// must-have gate, clamped to [0, CapMax]. Under GateHard a failed gate zeroes
// the score instead.
func (c *Catalog) ScoreSleeve(id, rawTitle, rawText string, mode GateMode) (int, ScoreDetails) {
	s, ok := c.Sleeves[id]
	if !ok {
		return 0, ScoreDetails{Reason: "unknown_sleeve"}
	}

	preparedTitle := textmatch.Prepare(rawTitle)
	preparedText := textmatch.Prepare(rawText)

	titleHitsInTitle := textmatch.FindHits(preparedTitle, s.Keywords.TitlePositive)
	titleHitsInText := textmatch.FindHits(preparedText, s.Keywords.TitlePositive)
	contextHits := textmatch.FindHits(preparedText, s.Keywords.ContextPositive)
	negativeHits := textmatch.FindHits(preparedText, s.Keywords.Negative)
	bonusHits := textmatch.FindHits(preparedText, s.MustHaves.BonusSignals)

	totalHits := titleHitsInText.Union(contextHits).Count()
	titleGateMet := titleHitsInTitle.Count() >= s.MustHaves.MinTitleHits
	coverageMet := totalHits >= s.MustHaves.MinTotalHits

	details := ScoreDetails{
		Reason:        "ok",
		TitleHits:     titleHitsInTitle.Sorted(),
		ContextHits:   contextHits.Sorted(),
		BonusHits:     bonusHits.Sorted(),
		NegativeHits:  negativeHits.Sorted(),
		TitleHitCount: titleHitsInTitle.Count(),
		TotalHits:     totalHits,
		TitleGateMet:  titleGateMet,
		CoverageMet:   coverageMet,
		MinTitleHits:  s.MustHaves.MinTitleHits,
		MinTotalHits:  s.MustHaves.MinTotalHits,
	}

	if mode == GateHard && (!titleGateMet || !coverageMet) {
		details.Reason = "failed_must_haves"
		return 0, details
	}

	score := titleHitsInTitle.Count()*s.Points.TitleHit +
		contextHits.Count()*s.Points.ContextHit +
		bonusHits.Count()*s.Points.BonusHit +
		negativeHits.Count()*s.Points.NegativeHit
	if titleGateMet {
		score += s.Points.TitleGateBonus
	}
	if coverageMet {
		score += s.Points.CoverageBonus
	}
	if score < 0 {
		score = 0
	}
	if score > s.CapMax {
		score = s.CapMax
	}
	return score, details
}

// ScoreAllSleeves scores every configured sleeve in sorted id order.
func (c *Catalog) ScoreAllSleeves(rawTitle, rawText string, mode GateMode) (map[string]int, map[string]ScoreDetails) {
	scores := make(map[string]int, len(c.SleeveIDs))
	details := make(map[string]ScoreDetails, len(c.SleeveIDs))
	for _, id := range c.SleeveIDs {
		score, d := c.ScoreSleeve(id, rawTitle, rawText, mode)
		scores[id] = score
		details[id] = d
	}
	return scores, details
}

// ScoreSynergy counts distinct cross-cutting signal hits, capped.
func (c *Catalog) ScoreSynergy(rawText string) int {
	prepared := textmatch.Prepare(rawText)
	n := textmatch.FindHits(prepared, c.Synergy).Count()
	if n > SynergyCap {
		n = SynergyCap
	}
	return n
}

// EvaluateSoftPenalties sums every triggered penalty rule. Reasons come back
// in rule order so repeated runs read identically.
func (c *Catalog) EvaluateSoftPenalties(rawText string) (int, []string) {
	prepared := textmatch.Prepare(rawText)
	total := 0
	var reasons []string
	for _, rule := range c.SoftPenalties {
		if textmatch.FindHits(prepared, rule.IfAny).Count() == 0 {
			continue
		}
		total += rule.PenaltyPoints
		reasons = append(reasons, rule.Reason)
	}
	return total, reasons
}

// DetectHardReject returns a machine-readable reject reason, or "" when the
// posting survives. Title patterns outrank text patterns; the cold-calling
// rule fires only alongside a sales context phrase.
func (c *Catalog) DetectHardReject(rawTitle, rawText string) string {
	preparedTitle := textmatch.Prepare(rawTitle)
	preparedText := textmatch.Prepare(rawText)

	for _, phrase := range c.HardRejectTitle {
		if textmatch.PhraseIn(preparedTitle, phrase) {
			return "hard_reject_title:" + phrase
		}
	}
	for _, phrase := range c.HardRejectText {
		if textmatch.PhraseIn(preparedText, phrase) {
			return "hard_reject_text:" + phrase
		}
	}
	if textmatch.PhraseIn(preparedText, "cold calling") {
		if textmatch.FindHits(preparedText, c.HardRejectColdCallingContext).Count() > 0 {
			return "hard_reject_text:cold calling sales context"
		}
	}
	return ""
}
