package sleeves

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sleevescout/internal/domain"
	"sleevescout/internal/textmatch"
)

// ScoreAbroad scores the work-from-abroad signal groups against the combined
// text. Each group contributes hit-count times weight; the sum is clamped to
// [0, AbroadScoreCap]. A badge is emitted per group with at least one
// positive hit, in fixed group order.
func (c *Catalog) ScoreAbroad(rawText string) (int, []string) {
	prepared := textmatch.Prepare(rawText)
	score := 0
	var badges []string
	for _, g := range c.AbroadGroups {
		positive := textmatch.FindHits(prepared, g.Positive).Count()
		negative := textmatch.FindHits(prepared, g.Negative).Count()
		score += positive*g.PositiveWeight + negative*g.NegativeWeight
		if positive > 0 {
			badges = append(badges, g.Name)
		}
	}
	if score < 0 {
		score = 0
	}
	if score > AbroadScoreCap {
		score = AbroadScoreCap
	}
	return score, badges
}

var (
	percentRangeRe  = regexp.MustCompile(`(?i)(\d{1,3})\s*(?:-|to|tot)\s*(\d{1,3})\s*(?:%|percent|procent|percentage|pct)`)
	percentSingleRe = regexp.MustCompile(`(?i)(\d{1,3})\s*(?:%|percent|procent|percentage|pct)`)
)

var abroadPercentContextKeywords = []string{
	"travel",
	"travelling",
	"traveling",
	"international",
	"abroad",
	"buitenland",
	"overseas",
	"cross-border",
	"multi-country",
	"site visit",
	"site visits",
	"client site",
	"client sites",
	"on site",
	"on-site",
	"onsite",
	"op locatie",
	"klantlocatie",
	"reisbereid",
	"reizen",
	"internationaal reizen",
}

var abroadContextTerms = []string{
	"international",
	"internationaal",
	"global",
	"wereldwijd",
	"abroad",
	"buitenland",
	"overseas",
	"travel",
	"travelling",
	"traveling",
	"reizen",
	"cross-border",
	"multi-country",
	"site visit",
	"client site",
	"op locatie",
	"klantlocatie",
	"emea",
	"apac",
	"relocation",
	"european union",
	"europe",
	"europa",
}

type geoTerm struct {
	label   string
	aliases []string
}

var geoCountries = []geoTerm{
	{"Netherlands", []string{"netherlands", "nederland"}},
	{"Belgium", []string{"belgium", "belgie"}},
	{"Germany", []string{"germany", "deutschland", "duitsland"}},
	{"France", []string{"france", "frankrijk"}},
	{"Spain", []string{"spain", "spanje"}},
	{"Italy", []string{"italy", "italie"}},
	{"Portugal", []string{"portugal"}},
	{"Poland", []string{"poland", "polen"}},
	{"Romania", []string{"romania", "roemenie"}},
	{"Czech Republic", []string{"czech republic", "czechia", "tsjechie"}},
	{"Austria", []string{"austria", "oostenrijk"}},
	{"Switzerland", []string{"switzerland", "zwitserland"}},
	{"United Kingdom", []string{"united kingdom", "uk", "england", "verenigd koninkrijk"}},
	{"Ireland", []string{"ireland", "ierland"}},
	{"United States", []string{"usa", "united states", "verenigde staten"}},
	{"Canada", []string{"canada"}},
	{"Mexico", []string{"mexico"}},
	{"Brazil", []string{"brazil"}},
	{"India", []string{"india"}},
	{"Singapore", []string{"singapore"}},
	{"Japan", []string{"japan"}},
	{"China", []string{"china"}},
	{"South Korea", []string{"south korea", "zuid korea"}},
	{"United Arab Emirates", []string{"uae", "united arab emirates"}},
	{"South Africa", []string{"south africa", "zuid afrika"}},
	{"Australia", []string{"australia", "australie"}},
	{"New Zealand", []string{"new zealand", "nieuw zeeland"}},
}

var geoRegions = []geoTerm{
	{"EU", []string{"eu", "european union", "europese unie"}},
	{"EMEA", []string{"emea"}},
	{"Benelux", []string{"benelux"}},
	{"DACH", []string{"dach"}},
	{"Nordics", []string{"nordics", "scandinavia", "scandinavie"}},
	{"APAC", []string{"apac", "asia pacific"}},
	{"LATAM", []string{"latam", "latin america", "latijns amerika"}},
	{"Middle East", []string{"middle east", "mena", "midden oosten"}},
}

var geoContinents = []geoTerm{
	{"Europe", []string{"europe", "europa"}},
	{"Asia", []string{"asia", "azie"}},
	{"Africa", []string{"africa", "afrika"}},
	{"North America", []string{"north america", "noord amerika"}},
	{"South America", []string{"south america", "zuid amerika"}},
	{"Oceania", []string{"oceania"}},
}

// ExtractAbroadMetadata pulls display-only hints out of the raw text: a
// travel percentage (context-gated, range upper bound wins) and geography
// mentions grouped as countries, regions, and continents. The home country
// is never reported as a destination.
func (c *Catalog) ExtractAbroadMetadata(rawText string) domain.AbroadMetadata {
	meta := domain.AbroadMetadata{
		Countries:  []string{},
		Regions:    []string{},
		Continents: []string{},
	}
	if rawText == "" {
		return meta
	}
	text := strings.NewReplacer("–", "-", "—", "-").Replace(rawText)

	if value, display, ok := extractTravelPercentage(text); ok {
		meta.Percentage = value
		meta.HasPercentage = true
		meta.PercentageText = display
	}

	prepared := textmatch.Prepare(text)
	hasContext := hasAbroadContext(prepared)
	collect := func(terms []geoTerm, out *[]string) {
		for _, term := range terms {
			if term.label == "Netherlands" {
				continue
			}
			hits := textmatch.FindHits(prepared, term.aliases)
			if hits.Count() == 0 {
				continue
			}
			if hasContext || aliasNearAbroadKeyword(text, term.aliases) {
				*out = append(*out, term.label)
			}
		}
	}
	collect(geoCountries, &meta.Countries)
	collect(geoRegions, &meta.Regions)
	collect(geoContinents, &meta.Continents)
	return meta
}

func hasAbroadContext(prepared string) bool {
	for _, term := range abroadContextTerms {
		if textmatch.PhraseIn(prepared, term) {
			return true
		}
	}
	return false
}

// aliasNearAbroadKeyword reports whether any alias occurs within 64 bytes of
// an abroad keyword, so an isolated country mention without travel context
// stays out of the metadata.
func aliasNearAbroadKeyword(text string, aliases []string) bool {
	lower := strings.ToLower(text)
	for _, alias := range aliases {
		idx := 0
		for {
			pos := strings.Index(lower[idx:], alias)
			if pos < 0 {
				break
			}
			start := idx + pos
			end := start + len(alias)
			if spanHasAbroadKeyword(lower, start, end) {
				return true
			}
			idx = end
		}
	}
	return false
}

func spanHasAbroadKeyword(lower string, start, end int) bool {
	left := start - 64
	if left < 0 {
		left = 0
	}
	right := end + 64
	if right > len(lower) {
		right = len(lower)
	}
	window := textmatch.Normalize(lower[left:right])
	for _, keyword := range abroadPercentContextKeywords {
		if strings.Contains(window, textmatch.Normalize(keyword)) {
			return true
		}
	}
	return false
}

// extractTravelPercentage scans for percentage mentions near travel/abroad
// keywords. Ranges report their upper bound; the largest candidate wins.
func extractTravelPercentage(text string) (int, string, bool) {
	type candidate struct {
		value   int
		display string
	}
	var candidates []candidate
	var rangeSpans [][2]int

	for _, m := range percentRangeRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if !spanHasAbroadKeyword(strings.ToLower(text), start, end) {
			continue
		}
		first, _ := strconv.Atoi(text[m[2]:m[3]])
		second, _ := strconv.Atoi(text[m[4]:m[5]])
		low, high := first, second
		if low > high {
			low, high = high, low
		}
		low = clampPercent(low)
		high = clampPercent(high)
		candidates = append(candidates, candidate{high, fmt.Sprintf("%d-%d%%", low, high)})
		rangeSpans = append(rangeSpans, [2]int{start, end})
	}

	for _, m := range percentSingleRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		overlaps := false
		for _, span := range rangeSpans {
			if start < span[1] && end > span[0] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		if !spanHasAbroadKeyword(strings.ToLower(text), start, end) {
			continue
		}
		value, _ := strconv.Atoi(text[m[2]:m[3]])
		value = clampPercent(value)
		candidates = append(candidates, candidate{value, fmt.Sprintf("%d%%", value)})
	}

	if len(candidates) == 0 {
		return 0, "", false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.value > best.value {
			best = c
		}
	}
	return best.value, best.display, true
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
