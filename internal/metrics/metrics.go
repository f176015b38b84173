// Package metrics provides motion.Metric implementations that summarise a
// sampled trajectory while it runs.
package metrics

import "github.com/san-kum/suvat/internal/motion"

// Default returns the metric set recorded for every stored run.
func Default() []motion.Metric {
	return []motion.Metric{
		NewPeakSpeed(),
		NewMeanSpeed(),
		NewDisplacement(),
		NewPathLength(),
		NewStopTime(),
	}
}
