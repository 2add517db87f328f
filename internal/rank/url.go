package rank

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"sleevescout/internal/textmatch"
)

// Query params that only identify a posting. Everything else in the query
// string is noise for dedupe purposes.
var canonicalQueryParams = []string{"jk", "vjk", "jobId", "currentJobId", "id"}

var trackingQueryParams = map[string]bool{
	"gclid":    true,
	"fbclid":   true,
	"msclkid":  true,
	"mc_cid":   true,
	"mc_eid":   true,
	"mkt_tok":  true,
	"trk":      true,
	"trkemail": true,
}

var (
	multiSlashRe = regexp.MustCompile(`/{2,}`)
	jobIDDigits  = regexp.MustCompile(`\d{5,}`)
)

// CanonicalizeURL reduces a job link to a stable dedupe anchor: lowercased
// host, collapsed path, no fragment, and only identifying query params in
// sorted order. Returns "" for unparseable or hostless input.
func CanonicalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		scheme = "https"
	}
	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	path := multiSlashRe.ReplaceAllString(u.Path, "/")
	u.Path = strings.TrimRight(path, "/")

	q := u.Query()
	kept := url.Values{}
	for _, key := range canonicalQueryParams {
		if v := q.Get(key); v != "" {
			kept.Set(key, v)
		}
	}
	for k := range kept {
		vals := kept[k]
		sort.Strings(vals)
		kept[k] = vals
	}
	u.RawQuery = kept.Encode()
	return u.String()
}

// StripTrackingParams removes marketing params without otherwise touching
// the URL, for links that go back to the user.
func StripTrackingParams(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	q := u.Query()
	changed := false
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || trackingQueryParams[lk] {
			q.Del(k)
			changed = true
		}
	}
	if !changed {
		return raw
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ExtractJobID pulls a source job id out of a link: identifying query params
// win, otherwise the last path segment carrying five or more consecutive
// digits.
func ExtractJobID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	q := u.Query()
	for _, key := range canonicalQueryParams {
		if v := q.Get(key); v != "" {
			return v
		}
	}
	parts := strings.Split(u.Path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && jobIDDigits.MatchString(parts[i]) {
			return parts[i]
		}
	}
	return ""
}

// DedupeKey identifies one posting across sources.
type DedupeKey struct {
	Title   string
	Company string
	Anchor  string
}

// BuildDedupeKey derives the dedupe identity of a posting from its link plus
// normalized title and company. The anchor prefers a job id over the
// canonical URL so the same posting matches across link shapes.
func BuildDedupeKey(title, company, link, location, date string) (DedupeKey, string, string) {
	canonical := CanonicalizeURL(link)
	jobID := ExtractJobID(link)
	anchor := jobID
	if anchor == "" {
		anchor = canonical
	}
	if anchor == "" {
		anchor = textmatch.Normalize(location) + "|" + textmatch.Normalize(date)
	}
	return DedupeKey{
		Title:   textmatch.Normalize(title),
		Company: textmatch.Normalize(company),
		Anchor:  anchor,
	}, canonical, jobID
}
