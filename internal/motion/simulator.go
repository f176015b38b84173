package motion

import (
	"context"
	"log/slog"

	"github.com/san-kum/suvat/internal/kinematics"
	"github.com/san-kum/suvat/internal/quantity"
)

type Simulator struct {
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    slog.Default().With("component", "motion"),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// SetLogger replaces the default logger.
func (s *Simulator) SetLogger(l *slog.Logger) { s.logger = l }

// At evaluates the profile at time t.
func (p Profile) At(t quantity.Time) Sample {
	return Sample{
		T: t,
		S: kinematics.DistanceFromUAT(p.Start, p.Accel, t),
		V: kinematics.EndSpeedFromUAT(p.Start, p.Accel, t),
	}
}

// Run samples p at t = i·dt for i = 0..Steps, with the last sample placed on
// Duration exactly. A cancelled ctx returns the samples taken so far along
// with ctx.Err().
func (s *Simulator) Run(ctx context.Context, p Profile, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	steps := cfg.Steps()
	result := &Result{
		Profile: p,
		Config:  cfg,
		Samples: make([]Sample, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.logger.Debug("sampling profile", "profile", p.Name, "steps", steps, "dt", cfg.Dt.Value())

	for i := 0; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := cfg.Dt.Scale(float64(i)).Min(cfg.Duration)
		if i == steps {
			t = cfg.Duration
		}
		sample := p.At(t)

		for _, m := range s.metrics {
			m.Observe(sample)
		}
		for _, obs := range s.observers {
			obs.OnSample(sample)
		}

		result.Samples = append(result.Samples, sample)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback streams samples to callback until it returns false, the
// duration is reached or ctx is cancelled.
func (s *Simulator) RunWithCallback(ctx context.Context, p Profile, cfg Config, callback func(Sample) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	steps := cfg.Steps()
	for i := 0; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t := cfg.Dt.Scale(float64(i)).Min(cfg.Duration)
		if i == steps {
			t = cfg.Duration
		}
		if !callback(p.At(t)) {
			return nil
		}
	}
	return nil
}
