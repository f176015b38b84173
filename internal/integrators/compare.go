package integrators

import (
	"context"
	"math"

	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

// Integrate steps p from s = 0 on the same time grid motion.Simulator
// samples, so the last step is shortened to land on Duration.
func Integrate(ctx context.Context, p motion.Profile, cfg motion.Config, integ Integrator) ([]motion.Sample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := ConstantAcceleration(p.Accel.Value())
	steps := cfg.Steps()
	samples := make([]motion.Sample, 0, steps+1)

	x := State{S: 0, V: p.Start.Value()}
	var prev quantity.Time
	for i := 0; i <= steps; i++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}

		t := cfg.Dt.Scale(float64(i)).Min(cfg.Duration)
		if i == steps {
			t = cfg.Duration
		}
		if i > 0 {
			x = integ.Step(f, x, prev.Value(), t.Sub(prev).Value())
		}
		prev = t

		samples = append(samples, motion.Sample{
			T: t,
			S: quantity.NewDistance(x.S),
			V: quantity.NewSpeed(x.V),
		})
	}
	return samples, nil
}

// Deviation is how far an integrator drifts from the closed-form profile.
type Deviation struct {
	Integrator  string
	MaxDistance float64
	MaxSpeed    float64
	Final       motion.Sample
}

// Compare integrates p and measures the largest |Δs| and |Δv| against
// Profile.At over the run.
func Compare(ctx context.Context, p motion.Profile, cfg motion.Config, integ Integrator) (Deviation, error) {
	samples, err := Integrate(ctx, p, cfg, integ)
	if err != nil {
		return Deviation{}, err
	}

	dev := Deviation{Integrator: integ.Name()}
	for _, s := range samples {
		exact := p.At(s.T)
		dev.MaxDistance = math.Max(dev.MaxDistance, s.S.Dist(exact.S).Value())
		dev.MaxSpeed = math.Max(dev.MaxSpeed, s.V.Dist(exact.V).Value())
	}
	dev.Final = samples[len(samples)-1]
	return dev, nil
}
