// Package motion samples constant-acceleration trajectories.
//
// A [Profile] fixes the start speed and acceleration; a [Simulator] evaluates
// the closed-form SUVAT solutions at evenly spaced times and feeds each
// [Sample] to its metrics and observers. Nothing is integrated numerically, so
// a sample at time t is exact regardless of the step size.
//
//	sim := motion.New()
//	sim.AddMetric(metrics.NewPeakSpeed())
//	res, err := sim.Run(ctx, motion.Profile{Start: u, Accel: a}, cfg)
//
// [Approach] builds the frame-by-frame series of [quantity.Quantity.Step]
// calls, and [Sweep] runs several profiles concurrently.
package motion
