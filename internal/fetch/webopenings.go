package fetch

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sleevescout/internal/domain"
	"sleevescout/internal/textmatch"
)

const webOpeningsSearchURL = "https://duckduckgo.com/html/"

// Hints that a search result is actually a vacancy page and not a blog post
// or aggregator index.
var openingHints = []string{
	"job opening",
	"job openings",
	"vacature",
	"vacatures",
	"baan",
	"banen",
	"werken bij",
	"solliciteer",
	"sollicitatie",
	"hiring",
	"join our team",
	"careers",
}

// WebOpenings searches the open web for Dutch vacancy pages, catching direct
// employer postings the aggregators miss.
type WebOpenings struct {
	client *Client
}

func NewWebOpenings(client *Client) *WebOpenings {
	return &WebOpenings{client: client}
}

func (s *WebOpenings) ID() string { return "nl_web_openings" }

func (s *WebOpenings) Fetch(ctx context.Context, q Query) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	seen := map[string]bool{}

	for _, term := range q.Terms {
		if len(out) >= q.TargetRaw {
			break
		}
		query := term + " vacature"
		if q.Location != "" {
			query += " " + q.Location
		}
		doc, err := s.client.GetDocument(ctx, s.ID(), webOpeningsSearchURL+"?"+url.Values{"q": {query}}.Encode())
		if err != nil {
			if len(out) > 0 {
				break
			}
			return nil, err
		}

		doc.Find("div.result").Each(func(_ int, result *goquery.Selection) {
			job, ok := s.parseResult(result)
			if !ok || seen[job.Link] {
				return
			}
			seen[job.Link] = true
			out = append(out, job)
		})
	}
	return out, nil
}

func (s *WebOpenings) parseResult(result *goquery.Selection) (domain.JobPosting, bool) {
	anchor := result.Find("a.result__a").First()
	href, _ := anchor.Attr("href")
	href = resolveRedirect(strings.TrimSpace(href))
	if href == "" {
		return domain.JobPosting{}, false
	}

	title := textmatch.CleanText(anchor.Text())
	snippet := textmatch.CleanText(result.Find("a.result__snippet, div.result__snippet").First().Text())
	if title == "" {
		return domain.JobPosting{}, false
	}
	if !looksLikeOpening(title + " " + snippet + " " + href) {
		return domain.JobPosting{}, false
	}

	return domain.JobPosting{
		Title:   title,
		Company: hostAsCompany(href),
		Snippet: snippet,
		Link:    href,
		Source:  "nl_web_openings",
	}, true
}

// resolveRedirect unwraps the uddg redirect wrapper around result links.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

func looksLikeOpening(text string) bool {
	lower := strings.ToLower(text)
	for _, hint := range openingHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// hostAsCompany approximates the employer from the link host; direct
// postings rarely carry a separate company field in search results.
func hostAsCompany(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if i := strings.IndexByte(host, '.'); i > 0 {
		host = host[:i]
	}
	return host
}
