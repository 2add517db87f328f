package sleeves

import "sleevescout/internal/textmatch"

var blockedStrongMarkers = []string{
	"captcha",
	"are you a robot",
	"access denied",
	"security check",
	"unusual traffic",
	"verify you are human",
}

var blockedWeakMarkers = []string{
	"blocked",
	"sign in to continue",
}

// DetectBlockedHTML reports whether a scraped page looks like an
// anti-bot interstitial rather than real results. One strong marker is
// enough; weak markers need to co-occur.
func DetectBlockedHTML(htmlText string) bool {
	prepared := textmatch.Prepare(htmlText)
	if prepared == " " {
		return false
	}
	for _, marker := range blockedStrongMarkers {
		if textmatch.PhraseIn(prepared, marker) {
			return true
		}
	}
	weak := 0
	for _, marker := range blockedWeakMarkers {
		if textmatch.PhraseIn(prepared, marker) {
			weak++
		}
	}
	return weak >= 2
}
