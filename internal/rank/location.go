package rank

import (
	"sort"
	"strings"

	"sleevescout/internal/textmatch"
)

// LocationMode is one location filter: postings matching an allow marker
// pass outright, reject markers fail unless a remote escape applies, and
// unrecognized locations pass so sparse listings are not lost.
type LocationMode struct {
	ID            string   `yaml:"id"`
	Label         string   `yaml:"label"`
	AllowMarkers  []string `yaml:"allow_markers"`
	RejectMarkers []string `yaml:"reject_markers"`
}

var netherlandsMarkers = []string{
	"netherlands", "nederland", "dutch", "holland",
	"amsterdam", "rotterdam", "utrecht", "the hague", "den haag",
	"eindhoven", "groningen", "tilburg", "breda", "arnhem",
	"nijmegen", "haarlem", "leiden", "maastricht", "zwolle",
	"almere", "delft", "s hertogenbosch", "den bosch", "enschede",
}

var euCountryMarkers = []string{
	"belgium", "belgie", "germany", "deutschland", "duitsland",
	"france", "frankrijk", "spain", "spanje", "italy", "italie",
	"portugal", "poland", "polen", "romania", "roemenie",
	"czech republic", "czechia", "austria", "oostenrijk",
	"ireland", "ierland", "sweden", "zweden", "denmark", "denemarken",
	"finland", "hungary", "hongarije", "greece", "griekenland",
	"luxembourg", "luxemburg", "european union", "benelux",
}

var nonEUCountryMarkers = []string{
	"usa", "united states", "canada", "australia", "new zealand",
	"india", "singapore", "philippines", "mexico", "brazil",
	"argentina", "chile", "colombia", "japan", "china",
	"hong kong", "south korea", "korea", "uae", "saudi",
	"egypt", "south africa", "nigeria", "united kingdom", "uk",
	"england", "switzerland", "zwitserland", "norway", "noorwegen",
	"turkey", "turkije",
}

var remoteMarkers = []string{
	"remote", "hybrid", "hybride", "wfh", "work from home", "thuiswerk", "op afstand",
}

var remoteTargetHints = []string{
	"international", "global", "worldwide", "work from abroad",
	"relocation", "work permit", "expat", "emea", "europe", "europa",
}

// DefaultLocationModes returns the built-in location filters.
func DefaultLocationModes() []LocationMode {
	return []LocationMode{
		{
			ID:            "nl_only",
			Label:         "Netherlands only",
			AllowMarkers:  netherlandsMarkers,
			RejectMarkers: append(append([]string{}, euCountryMarkers...), nonEUCountryMarkers...),
		},
		{
			ID:            "nl_eu",
			Label:         "Netherlands + EU",
			AllowMarkers:  append(append([]string{}, netherlandsMarkers...), euCountryMarkers...),
			RejectMarkers: nonEUCountryMarkers,
		},
		{
			ID:    "global",
			Label: "Anywhere",
		},
	}
}

// LocationModeSet indexes modes by id.
type LocationModeSet map[string]LocationMode

// NewLocationModeSet builds a set, falling back to the defaults when modes
// is empty.
func NewLocationModeSet(modes []LocationMode) LocationModeSet {
	if len(modes) == 0 {
		modes = DefaultLocationModes()
	}
	set := make(LocationModeSet, len(modes))
	for _, m := range modes {
		set[m.ID] = m
	}
	return set
}

func (s LocationModeSet) Valid(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the configured mode ids sorted.
func (s LocationModeSet) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

var unknownLocationValues = map[string]bool{
	"unknown":    true,
	"not listed": true,
	"n a":        true,
	"na":         true,
}

// locationGateText narrows the text the gate inspects: a known location
// field wins, the work mode hint is appended, and only when both are
// useless does the full text stand in.
func locationGateText(location, workModeHint, rawText string) string {
	var parts []string
	loc := textmatch.Normalize(location)
	if loc != "" && !unknownLocationValues[loc] {
		parts = append(parts, loc)
	}
	hint := textmatch.Normalize(workModeHint)
	if hint != "" && !unknownLocationValues[hint] {
		parts = append(parts, hint)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return textmatch.Normalize(rawText)
}

// PassesLocationGate applies one mode to a posting. An unrecognized
// location passes: rejecting on silence would drop most aggregator rows.
func PassesLocationGate(mode LocationMode, location, workModeHint, rawText string) bool {
	text := locationGateText(location, workModeHint, rawText)
	if text == "" {
		return true
	}
	for _, marker := range mode.AllowMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	rejected := false
	for _, marker := range mode.RejectMarkers {
		if strings.Contains(text, marker) {
			rejected = true
			break
		}
	}
	if !rejected {
		return true
	}
	// A rejected country can still pass when the role is explicitly remote
	// with an international scope.
	full := textmatch.Normalize(rawText)
	if full == "" {
		return false
	}
	isRemote := false
	for _, marker := range remoteMarkers {
		if strings.Contains(full, marker) {
			isRemote = true
			break
		}
	}
	if !isRemote {
		return false
	}
	for _, hint := range remoteTargetHints {
		if strings.Contains(full, hint) {
			return true
		}
	}
	return false
}
