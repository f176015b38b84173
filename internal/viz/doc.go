// Package viz replays a sampled trajectory in the terminal using Bubble Tea.
//
// The replay shows the body moving along a one-dimensional track drawn on a
// Braille [Canvas], a stats panel with t, s, v and a, and a speed chart.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from t = 0
//	+/-   - Double/halve playback rate
//	T     - Cycle color themes
//	Q     - Quit
package viz
