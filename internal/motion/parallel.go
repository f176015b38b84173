package motion

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MetricFactory builds a fresh set of metrics for one run of a sweep.
type MetricFactory func() []Metric

// Sweep runs every profile with cfg concurrently. Results keep the order of
// profiles. The first error cancels the remaining runs.
func Sweep(ctx context.Context, profiles []Profile, cfg Config, newMetrics MetricFactory) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(profiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, p := range profiles {
		g.Go(func() error {
			s := New()
			if newMetrics != nil {
				for _, m := range newMetrics() {
					s.AddMetric(m)
				}
			}
			res, err := s.Run(ctx, p, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
