// Package analysis summarises sampled trajectories and answers closed-form
// questions about a constant-acceleration profile.
//
//   - [Summarize]: descriptive statistics of a run's speed and distance
//   - [Crossing]: first time a profile reaches a given displacement
//   - [StopTime] and [Apex]: when and where the speed passes through zero
//   - [GeneratePhasePortrait]: the (s, v) trajectory of a run
//
// # Crossing times
//
// Crossing uses t = s/u when the profile does not accelerate and the
// quadratic root of s = ut + ½at² otherwise:
//
//	t, ok := analysis.Crossing(p, quantity.NewDistance(15))
//	if !ok {
//	    // the body never gets there
//	}
package analysis
