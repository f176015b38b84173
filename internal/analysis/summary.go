package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/san-kum/suvat/internal/motion"
)

// ErrNoSamples indicates an empty run.
var ErrNoSamples = errors.New("analysis: run has no samples")

// Summary holds descriptive statistics of a run.
type Summary struct {
	Samples  int     `json:"samples"`
	Duration float64 `json:"duration"`

	MeanSpeed   float64 `json:"mean_speed"`
	MedianSpeed float64 `json:"median_speed"`
	MinSpeed    float64 `json:"min_speed"`
	MaxSpeed    float64 `json:"max_speed"`
	StdDevSpeed float64 `json:"stddev_speed"`

	// MaxDistance is the largest |s| reached.
	MaxDistance   float64 `json:"max_distance"`
	FinalDistance float64 `json:"final_distance"`
	FinalSpeed    float64 `json:"final_speed"`
}

// Finite reports whether every statistic is a finite number. A run whose
// speed overflows float64 summarises to ±Inf or NaN.
func (s Summary) Finite() bool {
	for _, v := range []float64{
		s.Duration,
		s.MeanSpeed, s.MedianSpeed, s.MinSpeed, s.MaxSpeed, s.StdDevSpeed,
		s.MaxDistance, s.FinalDistance, s.FinalSpeed,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func Summarize(res *motion.Result) (Summary, error) {
	if res == nil || len(res.Samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	speeds := stats.Float64Data(res.Speeds())
	dists := res.Distances()

	sum := Summary{Samples: len(res.Samples)}
	var err error
	if sum.MeanSpeed, err = speeds.Mean(); err != nil {
		return Summary{}, fmt.Errorf("mean speed: %w", err)
	}
	if sum.MedianSpeed, err = speeds.Median(); err != nil {
		return Summary{}, fmt.Errorf("median speed: %w", err)
	}
	if sum.MinSpeed, err = speeds.Min(); err != nil {
		return Summary{}, fmt.Errorf("min speed: %w", err)
	}
	if sum.MaxSpeed, err = speeds.Max(); err != nil {
		return Summary{}, fmt.Errorf("max speed: %w", err)
	}
	if sum.StdDevSpeed, err = stats.StandardDeviation(speeds); err != nil {
		return Summary{}, fmt.Errorf("speed deviation: %w", err)
	}

	for _, s := range dists {
		sum.MaxDistance = math.Max(sum.MaxDistance, math.Abs(s))
	}

	final := res.Final()
	sum.Duration = final.T.Value()
	sum.FinalDistance = final.S.Value()
	sum.FinalSpeed = final.V.Value()

	return sum, nil
}
