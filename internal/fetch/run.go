package fetch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"sleevescout/internal/domain"
)

// Runner fans one query out to every enabled source in parallel. A failing
// source lands in the error map instead of failing the run; the scrape as a
// whole only stops at the outer deadline.
type Runner struct {
	fetchers []Fetcher
	deadline time.Duration
	log      zerolog.Logger
}

func NewRunner(fetchers []Fetcher, deadline time.Duration, log zerolog.Logger) *Runner {
	return &Runner{fetchers: fetchers, deadline: deadline, log: log}
}

// Run returns everything the sources produced plus a per-source error map.
// Results keep source submission order so downstream dedupe is
// deterministic.
func (r *Runner) Run(ctx context.Context, q Query) ([]domain.JobPosting, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, r.deadline)
	defer cancel()

	results := make([][]domain.JobPosting, len(r.fetchers))
	sourceErrors := make(map[string]string)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range r.fetchers {
		i, f := i, f
		g.Go(func() error {
			start := time.Now()
			jobs, err := f.Fetch(ctx, q)
			elapsed := time.Since(start)
			if err != nil {
				r.log.Warn().
					Str("source", f.ID()).
					Dur("elapsed", elapsed).
					Err(err).
					Msg("source failed")
				msg := err.Error()
				var blocked *ErrBlocked
				if errors.As(err, &blocked) {
					msg = "source_blocked"
				}
				mu.Lock()
				sourceErrors[f.ID()] = msg
				mu.Unlock()
				return nil
			}
			r.log.Info().
				Str("source", f.ID()).
				Int("jobs", len(jobs)).
				Dur("elapsed", elapsed).
				Msg("source done")
			results[i] = jobs
			return nil
		})
	}
	// Errors never propagate; the group is only used for ctx plumbing.
	_ = g.Wait()

	var merged []domain.JobPosting
	for _, jobs := range results {
		merged = append(merged, jobs...)
	}
	return merged, sourceErrors
}
