// Package sleeves holds the career-sleeve catalog and every text scorer the
// ranking engine runs per job: sleeve fit, abroad signals, synergy, soft
// penalties, hard rejects, and language flags. All tables are built once at
// startup and never mutated afterwards.
package sleeves

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"sleevescout/internal/textmatch"
)

const (
	SchemaVersion = "2.0"

	AbroadScoreCap = 4
	SynergyCap     = 5

	MinPrimaryScoreToShow  = 3
	MinTotalHitsToShow     = 2
	MinPrimaryScoreToMaybe = 2
	MinTotalHitsToMaybe    = 1
)

// GateMode selects how must-have gates behave. Soft gates (the default) turn
// a met gate into bonus points so near misses still surface; hard gates
// zero the sleeve score outright when a gate fails.
type GateMode string

const (
	GateSoft GateMode = "soft"
	GateHard GateMode = "hard"
)

// Keywords are the phrase bags of one sleeve.
type Keywords struct {
	TitlePositive   []string `validate:"required,min=1"`
	ContextPositive []string `validate:"required,min=1"`
	Negative        []string
}

// MustHaves are the gate requirements of one sleeve.
type MustHaves struct {
	MinTitleHits int `validate:"min=0"`
	MinTotalHits int `validate:"min=0"`
	BonusSignals []string
}

// Points are the per-hit weights of one sleeve.
type Points struct {
	TitleHit        int
	ContextHit      int
	BonusHit        int
	NegativeHit     int
	TitleGateBonus  int
	CoverageBonus   int
}

// Sleeve is one career archetype: a named keyword catalog with scoring rules.
type Sleeve struct {
	ID            string `validate:"required,len=1"`
	Name          string `validate:"required"`
	Tagline       string `validate:"required"`
	Keywords      Keywords
	MustHaves     MustHaves
	Points        Points
	CapMax        int      `validate:"gt=0"`
	SearchQueries []string
}

// SignalGroup is one named abroad signal bucket with its phrase lists and
// per-hit weights.
type SignalGroup struct {
	Name           string `validate:"required"`
	Positive       []string
	Negative       []string
	PositiveWeight int
	NegativeWeight int
}

// PenaltyRule demotes but never rejects.
type PenaltyRule struct {
	IfAny         []string `validate:"required,min=1"`
	PenaltyPoints int      `validate:"gt=0"`
	Reason        string   `validate:"required"`
}

// Catalog is the immutable configuration value every scorer reads from.
// Build it once with NewCatalog.
type Catalog struct {
	Sleeves   map[string]Sleeve
	SleeveIDs []string // sorted

	AbroadGroups []SignalGroup
	Synergy      []string

	SoftPenalties []PenaltyRule

	HardRejectTitle              []string
	HardRejectText               []string
	HardRejectColdCallingContext []string

	AllowLanguages   []string
	languageIndex    []languageEntry // sorted by normalized name
	requiredMarkers  []string
}

type languageEntry struct {
	name string // normalized surface name
	code string
}

// NewCatalog builds and validates the default catalog.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{
		Sleeves:       defaultSleeves(),
		AbroadGroups:  defaultAbroadGroups(),
		Synergy:       synergySignals,
		SoftPenalties: softPenalties,

		HardRejectTitle:              hardRejectTitlePatterns,
		HardRejectText:               hardRejectTextPatterns,
		HardRejectColdCallingContext: hardRejectColdCallingContext,

		AllowLanguages:  []string{"nl", "en"},
		requiredMarkers: languageRequiredMarkers,
	}

	for id := range c.Sleeves {
		c.SleeveIDs = append(c.SleeveIDs, id)
	}
	sort.Strings(c.SleeveIDs)

	allow := make(map[string]bool, len(c.AllowLanguages))
	for _, code := range c.AllowLanguages {
		allow[code] = true
	}
	seen := make(map[string]bool)
	for _, lang := range languageCatalog {
		if allow[lang.code] {
			continue
		}
		for _, name := range lang.names {
			normalized := textmatch.Normalize(name)
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			c.languageIndex = append(c.languageIndex, languageEntry{name: normalized, code: lang.code})
		}
	}
	sort.Slice(c.languageIndex, func(i, j int) bool {
		return c.languageIndex[i].name < c.languageIndex[j].name
	})

	v := validator.New()
	for id, s := range c.Sleeves {
		if s.ID != id {
			return nil, fmt.Errorf("sleeve %q: id mismatch (%q)", id, s.ID)
		}
		if err := v.Struct(s); err != nil {
			return nil, fmt.Errorf("sleeve %q: %w", id, err)
		}
	}
	for _, g := range c.AbroadGroups {
		if err := v.Struct(g); err != nil {
			return nil, fmt.Errorf("abroad group %q: %w", g.Name, err)
		}
	}
	for i, p := range c.SoftPenalties {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("soft penalty %d: %w", i, err)
		}
	}
	return c, nil
}

// MustCatalog is NewCatalog for wiring paths where a broken built-in catalog
// is a programming error.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// ValidSleeve reports whether id names a configured sleeve.
func (c *Catalog) ValidSleeve(id string) bool {
	_, ok := c.Sleeves[id]
	return ok
}
