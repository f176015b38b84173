package motion

import "github.com/san-kum/suvat/internal/quantity"

// Approach returns from followed by successive Step results toward target,
// stopping once target is reached or after maxSteps steps. A zero stepSize
// never reaches a distinct target, so maxSteps bounds the series.
func Approach[D quantity.Dimension](from, target, stepSize quantity.Quantity[D], maxSteps int) []quantity.Quantity[D] {
	series := []quantity.Quantity[D]{from}
	q := from
	for i := 0; i < maxSteps && q != target; i++ {
		q = q.Step(target, stepSize)
		series = append(series, q)
	}
	return series
}

// StepSize converts a rate of change into the per-frame step for dt, e.g.
// an acceleration limit into the largest speed change allowed per frame.
func StepSize(rate quantity.Acceleration, dt quantity.Time) quantity.Speed {
	return Profile{Accel: rate}.At(dt).V
}
