package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/suvat/internal/quantity"
)

var (
	// ErrInvalidConfig indicates a non-positive or non-finite step or duration.
	ErrInvalidConfig = errors.New("motion: invalid sampling config")

	// ErrTooManySamples indicates Duration/Dt exceeds MaxSamples.
	ErrTooManySamples = errors.New("motion: too many samples")
)

// MaxSamples caps a single run.
const MaxSamples = 1_000_000

// Profile describes motion under constant acceleration from s = 0.
type Profile struct {
	Name  string
	Start quantity.Speed
	Accel quantity.Acceleration
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (u=%s, a=%s)", p.Name, p.Start.WithUnit(), p.Accel.WithUnit())
}

type Config struct {
	Dt       quantity.Time
	Duration quantity.Time
}

func DefaultConfig() Config {
	return Config{
		Dt:       quantity.NewTime(0.01),
		Duration: quantity.NewTime(10),
	}
}

func (c Config) Validate() error {
	if !c.Dt.IsFinite() || c.Dt.Sign() <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %s", ErrInvalidConfig, c.Dt)
	}
	if !c.Duration.IsFinite() || c.Duration.Sign() <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidConfig, c.Duration)
	}
	// bound the float quotient first; Steps converts it to int
	if n := c.Duration.Div(c.Dt); !n.IsFinite() || n.Value() > MaxSamples+1 {
		return fmt.Errorf("%w: %s steps exceeds %d", ErrTooManySamples, n, MaxSamples)
	}
	if c.Steps() > MaxSamples {
		return fmt.Errorf("%w: %d steps exceeds %d", ErrTooManySamples, c.Steps(), MaxSamples)
	}
	return nil
}

// Steps is the number of intervals; a run yields Steps()+1 samples. A
// quotient within rounding noise of an integer is taken as that integer, so
// 1.1s at 0.1s is 11 steps rather than 12. Only meaningful once Validate
// has passed.
func (c Config) Steps() int {
	n := c.Duration.Div(c.Dt).Value()
	if r := math.Round(n); math.Abs(n-r) <= 1e-9*math.Max(1, r) {
		return int(r)
	}
	return int(math.Ceil(n))
}

// Sample is the state of the body at time T.
type Sample struct {
	T quantity.Time
	S quantity.Distance
	V quantity.Speed
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnSample(s Sample)
}

type Result struct {
	Profile Profile
	Config  Config
	Samples []Sample
	Metrics map[string]float64
}

// Final returns the last sample, or the zero sample for an empty result.
func (r *Result) Final() Sample {
	if len(r.Samples) == 0 {
		return Sample{}
	}
	return r.Samples[len(r.Samples)-1]
}

func (r *Result) Times() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.T.Value()
	}
	return out
}

func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.S.Value()
	}
	return out
}

func (r *Result) Speeds() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.V.Value()
	}
	return out
}
