package quantity

import "math"

// Step moves q toward target by at most |stepSize| without overshooting.
// Calling it once per frame with stepSize = rate·dt gives a frame-rate
// independent approach.
func (q Quantity[D]) Step(target, stepSize Quantity[D]) Quantity[D] {
	if q.value < target.value {
		return q.Add(stepSize.Abs()).Min(target)
	} else if q.value > target.value {
		return q.Sub(stepSize.Abs()).Max(target)
	}
	return target
}

// Lerp interpolates linearly from a to b. The factor is clamped to [0, 1]
// first, so the result always lies between a and b.
func Lerp[D Dimension](a, b Quantity[D], factor float64) Quantity[D] {
	return a.Add(b.Sub(a).Scale(math.Min(math.Max(factor, 0), 1)))
}
