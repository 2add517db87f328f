package sleeves

import (
	"fmt"
	"regexp"
	"strings"

	"sleevescout/internal/domain"
	"sleevescout/internal/textmatch"
)

var clauseSplitRe = regexp.MustCompile(`[.;:!\n\r]+`)

// DetectLanguageFlags scans for languages outside the allow-set (Dutch and
// English). A mention counts as required only when the same clause also
// carries a requirement marker; otherwise the language is flagged as
// preferred so the caller can surface a softer note.
func (c *Catalog) DetectLanguageFlags(rawText string) (domain.LanguageFlags, []string) {
	prepared := textmatch.Prepare(rawText)

	var mentioned, required []string
	for _, entry := range c.languageIndex {
		if !textmatch.PhraseIn(prepared, entry.name) {
			continue
		}
		mentioned = append(mentioned, entry.name)
		if c.languageRequiredInContext(rawText, entry.name) {
			required = append(required, entry.name)
		}
	}

	flags := domain.LanguageFlags{
		ExtraLanguageRequired:  len(required) > 0,
		ExtraLanguagePreferred: len(mentioned) > 0 && len(required) == 0,
		ExtraLanguages:         mentioned,
		AllowLanguages:         append([]string(nil), c.AllowLanguages...),
	}
	if flags.ExtraLanguages == nil {
		flags.ExtraLanguages = []string{}
	}

	var notes []string
	switch {
	case flags.ExtraLanguageRequired:
		notes = append(notes, fmt.Sprintf("Let op: vereist ook %s (naast NL/EN).", strings.Join(required, ", ")))
	case flags.ExtraLanguagePreferred:
		notes = append(notes, fmt.Sprintf("Kanttekening: extra taal genoemd (%s); check of het vereist is.", strings.Join(mentioned, ", ")))
	}
	return flags, notes
}

// languageRequiredInContext splits the raw text into clauses and looks for a
// clause that names the language and a requirement marker together.
func (c *Catalog) languageRequiredInContext(rawText, languageName string) bool {
	for _, clause := range clauseSplitRe.Split(strings.ToLower(rawText), -1) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		prepared := textmatch.Prepare(clause)
		if !textmatch.PhraseIn(prepared, languageName) {
			continue
		}
		for _, marker := range c.requiredMarkers {
			if textmatch.PhraseIn(prepared, marker) {
				return true
			}
		}
	}
	return false
}
