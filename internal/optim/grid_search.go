// Package optim searches a grid of start speeds and accelerations for the
// profile whose run best matches a metric target.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

var (
	ErrEmptyGrid = errors.New("optim: empty grid")

	// ErrNoCandidate indicates every grid point scored NaN.
	ErrNoCandidate = errors.New("optim: no candidate produced a finite score")

	ErrBadRange = errors.New("optim: bad range")
)

// maxRangePoints bounds a single parsed axis.
const maxRangePoints = 10_000

// Objective scores a run; lower is better. NaN scores are never chosen.
type Objective func(res *motion.Result) float64

// MetricTarget scores a run by |metric − target|.
func MetricTarget(metric string, target float64) Objective {
	return func(res *motion.Result) float64 {
		v, ok := res.Metrics[metric]
		if !ok {
			return math.NaN()
		}
		return math.Abs(v - target)
	}
}

type GridSearch struct {
	starts []float64
	accels []float64
}

func NewGridSearch(starts, accels []float64) *GridSearch {
	return &GridSearch{starts: starts, accels: accels}
}

// Size is the number of grid points.
func (g *GridSearch) Size() int { return len(g.starts) * len(g.accels) }

type Candidate struct {
	Profile motion.Profile
	Score   float64
	Result  *motion.Result
}

// Search runs every (u, a) pair concurrently with cfg and returns the
// lowest-scoring candidate. Ties keep the earliest grid point.
func (g *GridSearch) Search(ctx context.Context, cfg motion.Config, newMetrics motion.MetricFactory, score Objective) (Candidate, error) {
	if g.Size() == 0 {
		return Candidate{}, ErrEmptyGrid
	}

	profiles := make([]motion.Profile, 0, g.Size())
	for _, u := range g.starts {
		for _, a := range g.accels {
			profiles = append(profiles, motion.Profile{
				Name:  fmt.Sprintf("u=%g,a=%g", u, a),
				Start: quantity.NewSpeed(u),
				Accel: quantity.NewAcceleration(a),
			})
		}
	}

	results, err := motion.Sweep(ctx, profiles, cfg, newMetrics)
	if err != nil {
		return Candidate{}, err
	}

	best := Candidate{Score: math.Inf(1)}
	found := false
	for i, res := range results {
		s := score(res)
		if math.IsNaN(s) {
			continue
		}
		if !found || s < best.Score {
			best = Candidate{Profile: profiles[i], Score: s, Result: res}
			found = true
		}
	}
	if !found {
		return Candidate{}, ErrNoCandidate
	}
	return best, nil
}

// ParseRange reads "x" or "lo:hi:step" into the inclusive list of values.
func ParseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		return vals, nil
	case 3:
	default:
		return nil, fmt.Errorf("%w: %q: want x or lo:hi:step", ErrBadRange, s)
	}

	lo, hi, step := vals[0], vals[1], vals[2]
	if !(step > 0) || hi < lo || math.IsInf(hi-lo, 0) {
		return nil, fmt.Errorf("%w: %q: need lo <= hi and step > 0", ErrBadRange, s)
	}
	n := int(math.Floor((hi-lo)/step+1e-9)) + 1
	if n > maxRangePoints {
		return nil, fmt.Errorf("%w: %q: %d points exceeds %d", ErrBadRange, s, n, maxRangePoints)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out, nil
}
