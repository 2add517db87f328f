package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sleevescout/internal/domain"
	"sleevescout/internal/textmatch"
)

const indeedSearchURL = "https://nl.indeed.com/jobs"
const indeedPageSize = 10

// Indeed scrapes the Dutch Indeed search results pages.
type Indeed struct {
	client *Client
}

func NewIndeed(client *Client) *Indeed {
	return &Indeed{client: client}
}

func (s *Indeed) ID() string { return "indeed_web" }

func (s *Indeed) Fetch(ctx context.Context, q Query) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	seen := map[string]bool{}

	for _, term := range q.Terms {
		for page := 0; page < q.MaxPages; page++ {
			if len(out) >= q.TargetRaw {
				return out, nil
			}
			pageURL := s.searchURL(term, q.Location, page)
			doc, err := s.client.GetDocument(ctx, s.ID(), pageURL)
			if err != nil {
				if len(out) > 0 {
					// Partial results beat a dead page.
					return out, nil
				}
				return nil, err
			}

			added := 0
			doc.Find("div.job_seen_beacon, div[data-testid='jobSeenBeacon']").Each(func(_ int, card *goquery.Selection) {
				job, ok := s.parseCard(card)
				if !ok || seen[job.Link] {
					return
				}
				seen[job.Link] = true
				out = append(out, job)
				added++
			})
			if added == 0 {
				break
			}
		}
	}
	return out, nil
}

func (s *Indeed) searchURL(term, location string, page int) string {
	v := url.Values{}
	v.Set("q", term)
	if location != "" {
		v.Set("l", location)
	}
	if page > 0 {
		v.Set("start", fmt.Sprintf("%d", page*indeedPageSize))
	}
	return indeedSearchURL + "?" + v.Encode()
}

func (s *Indeed) parseCard(card *goquery.Selection) (domain.JobPosting, bool) {
	anchor := card.Find("a.jcs-JobTitle").First()
	if anchor.Length() == 0 {
		anchor = card.Find("h2.jobTitle a").First()
	}
	href, _ := anchor.Attr("href")
	href = strings.TrimSpace(href)
	if href == "" {
		return domain.JobPosting{}, false
	}
	if strings.HasPrefix(href, "/") {
		href = "https://nl.indeed.com" + href
	}

	title := textmatch.CleanText(anchor.Find("span").First().Text())
	if title == "" {
		title = textmatch.CleanText(anchor.Text())
	}
	if title == "" {
		return domain.JobPosting{}, false
	}

	company := textmatch.CleanText(card.Find("[data-testid='company-name']").First().Text())
	if company == "" {
		company = textmatch.CleanText(card.Find("span.companyName").First().Text())
	}
	location := textmatch.CleanText(card.Find("[data-testid='text-location']").First().Text())
	if location == "" {
		location = textmatch.CleanText(card.Find("div.companyLocation").First().Text())
	}
	snippet := textmatch.CleanText(card.Find("div.job-snippet, [data-testid='text-snippet']").First().Text())
	salary := textmatch.CleanText(card.Find("[data-testid='attribute_snippet_testid'], div.salary-snippet-container").First().Text())
	date := textmatch.CleanText(card.Find("span.date, span[data-testid='myJobsStateDate']").First().Text())

	return domain.JobPosting{
		Title:    title,
		Company:  company,
		Location: location,
		Snippet:  snippet,
		Link:     href,
		Date:     date,
		Salary:   salary,
		Source:   "indeed_web",
	}, true
}
