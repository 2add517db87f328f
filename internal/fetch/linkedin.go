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

const (
	linkedinSearchURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"
	linkedinDetailURL = "https://www.linkedin.com/jobs-guest/jobs/api/jobPosting/%s"
	linkedinPageSize  = 25
)

// LinkedIn scrapes the guest job search API, which serves plain HTML
// fragments without authentication.
type LinkedIn struct {
	client        *Client
	detailLimiter *HostLimiter
}

func NewLinkedIn(client *Client, detailLimiter *HostLimiter) *LinkedIn {
	return &LinkedIn{client: client, detailLimiter: detailLimiter}
}

func (s *LinkedIn) ID() string { return "linkedin_web" }

func (s *LinkedIn) Fetch(ctx context.Context, q Query) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	seen := map[string]bool{}

	for _, term := range q.Terms {
		for page := 0; page < q.MaxPages; page++ {
			if len(out) >= q.TargetRaw {
				break
			}
			doc, err := s.client.GetDocument(ctx, s.ID(), s.searchURL(term, q.Location, page))
			if err != nil {
				if len(out) > 0 {
					break
				}
				return nil, err
			}

			added := 0
			doc.Find("li").Each(func(_ int, card *goquery.Selection) {
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

	if q.FullProfile {
		s.hydrate(ctx, out)
	}
	return out, nil
}

func (s *LinkedIn) searchURL(term, location string, page int) string {
	v := url.Values{}
	v.Set("keywords", term)
	if location != "" {
		v.Set("location", location)
	}
	if page > 0 {
		v.Set("start", fmt.Sprintf("%d", page*linkedinPageSize))
	}
	return linkedinSearchURL + "?" + v.Encode()
}

func (s *LinkedIn) parseCard(card *goquery.Selection) (domain.JobPosting, bool) {
	href, _ := card.Find("a.base-card__full-link").First().Attr("href")
	if href == "" {
		href, _ = card.Find("a").First().Attr("href")
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return domain.JobPosting{}, false
	}

	title := textmatch.CleanText(card.Find("h3.base-search-card__title").First().Text())
	if title == "" {
		title = textmatch.CleanText(card.Find("h3").First().Text())
	}
	if title == "" {
		return domain.JobPosting{}, false
	}

	company := textmatch.CleanText(card.Find("h4.base-search-card__subtitle").First().Text())
	location := textmatch.CleanText(card.Find("span.job-search-card__location").First().Text())
	date, _ := card.Find("time").First().Attr("datetime")
	if date == "" {
		date = textmatch.CleanText(card.Find("time").First().Text())
	}

	return domain.JobPosting{
		Title:    title,
		Company:  company,
		Location: location,
		Link:     href,
		Date:     strings.TrimSpace(date),
		Source:   "linkedin_web",
	}, true
}

// hydrate fetches detail pages for postings whose id is recoverable. Errors
// are ignored per job: a missing description is not worth losing the row.
func (s *LinkedIn) hydrate(ctx context.Context, jobs []domain.JobPosting) {
	for i := range jobs {
		jobID := linkedinJobID(jobs[i].Link)
		if jobID == "" {
			continue
		}
		detailURL := fmt.Sprintf(linkedinDetailURL, jobID)
		if err := s.detailLimiter.WaitURL(ctx, detailURL); err != nil {
			return
		}
		doc, err := s.client.GetDocument(ctx, s.ID(), detailURL)
		if err != nil {
			continue
		}
		desc := textmatch.CleanText(doc.Find("div.show-more-less-html__markup").First().Text())
		if desc == "" {
			desc = textmatch.CleanText(doc.Find("div.description__text").First().Text())
		}
		jobs[i].FullDescription = desc
	}
}

// linkedinJobID pulls the numeric id out of /jobs/view/<slug>-<id> links.
func linkedinJobID(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	if v := u.Query().Get("currentJobId"); v != "" {
		return v
	}
	path := strings.TrimRight(u.Path, "/")
	idx := strings.LastIndexAny(path, "-/")
	if idx < 0 || idx+1 >= len(path) {
		return ""
	}
	id := path[idx+1:]
	for _, r := range id {
		if r < '0' || r > '9' {
			return ""
		}
	}
	if len(id) < 5 {
		return ""
	}
	return id
}
