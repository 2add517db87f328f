// Package fetch collects job postings from public web sources. Every source
// is best-effort: a blocked or broken source reports an error and the run
// carries on with whatever the others returned.
package fetch

import (
	"context"

	"sleevescout/internal/domain"
)

// Query is one scrape request fanned out to every enabled source.
type Query struct {
	Terms    []string
	Location string
	MaxPages int
	// TargetRaw stops paging once a source has produced this many rows.
	TargetRaw int
	// FullProfile also fetches detail pages to fill FullDescription.
	FullProfile bool
}

// Fetcher is one job source.
type Fetcher interface {
	ID() string
	Fetch(ctx context.Context, q Query) ([]domain.JobPosting, error)
}

// ErrBlocked marks a source that served an anti-bot page instead of results.
type ErrBlocked struct {
	Source string
}

func (e *ErrBlocked) Error() string {
	return e.Source + ": blocked by anti-bot page"
}
