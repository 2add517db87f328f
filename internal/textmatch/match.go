// Package textmatch holds the shared text-preparation and whole-token phrase
// matching used by every scorer. All matching runs against "prepared" text:
// lowercased, punctuation folded to spaces, padded with sentinel spaces so a
// boundary check is always a space check.
package textmatch

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize lowercases, folds every run of non-word characters into a single
// space, and trims. Idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Prepare normalizes and pads with single spaces so boundary matches work
// uniformly. Empty input prepares to a single space.
func Prepare(s string) string {
	n := Normalize(s)
	if n == "" {
		return " "
	}
	return " " + n + " "
}

// PhraseIn reports whether phrase occurs as whole tokens in prepared text.
// Multiword phrases match literally. Single tokens tolerate a conservative
// English plural: trailing "s"/"es", or "-y" -> "-ies" for tokens longer
// than three runes. No stemming beyond that; "sales" must not match
// "salesforce".
func PhraseIn(prepared, phrase string) bool {
	p := Normalize(phrase)
	if p == "" {
		return false
	}
	if strings.Contains(p, " ") {
		return strings.Contains(prepared, " "+p+" ")
	}
	variants := [3]string{p, "", ""}
	if strings.HasSuffix(p, "y") && utf8.RuneCountInString(p) > 3 {
		variants[1] = p[:len(p)-1] + "ies"
	} else {
		variants[1] = p + "s"
		variants[2] = p + "es"
	}
	for _, v := range variants {
		if v != "" && strings.Contains(prepared, " "+v+" ") {
			return true
		}
	}
	return false
}

// Hits is the set of phrases that matched a prepared text.
type Hits map[string]struct{}

// FindHits returns the subset of phrases present in prepared text. Iteration
// order of the result is unspecified; call Sorted when stability matters.
func FindHits(prepared string, phrases []string) Hits {
	hits := make(Hits)
	for _, phrase := range phrases {
		if PhraseIn(prepared, phrase) {
			hits[phrase] = struct{}{}
		}
	}
	return hits
}

func (h Hits) Count() int { return len(h) }

func (h Hits) Has(phrase string) bool {
	_, ok := h[phrase]
	return ok
}

func (h Hits) Sorted() []string {
	out := make([]string, 0, len(h))
	for phrase := range h {
		out = append(out, phrase)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set with the members of both.
func (h Hits) Union(other Hits) Hits {
	out := make(Hits, len(h)+len(other))
	for p := range h {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// CleanText collapses whitespace (including non-breaking spaces) without
// touching case or punctuation. Used on scraped field values before they
// enter a job record.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
