package motion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/san-kum/suvat/internal/quantity"
)

func TestSweepKeepsOrder(t *testing.T) {
	var profiles []Profile
	for i := 0; i < 10; i++ {
		profiles = append(profiles, Profile{
			Name:  fmt.Sprintf("p%d", i),
			Accel: quantity.NewAcceleration(float64(i)),
		})
	}

	cfg := Config{Dt: quantity.NewTime(0.1), Duration: quantity.NewTime(1)}
	results, err := Sweep(context.Background(), profiles, cfg, func() []Metric {
		return []Metric{&countMetric{}}
	})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(results) != len(profiles) {
		t.Fatalf("expected %d results, got %d", len(profiles), len(results))
	}
	for i, res := range results {
		if res.Profile.Name != profiles[i].Name {
			t.Errorf("result %d is for %s", i, res.Profile.Name)
		}
		if got := res.Final().V.Value(); got != float64(i) {
			t.Errorf("result %d final speed = %v, want %d", i, got, i)
		}
		if res.Metrics["count"] != 11 {
			t.Errorf("result %d count = %v, want 11", i, res.Metrics["count"])
		}
	}
}

func TestSweepInvalidConfig(t *testing.T) {
	_, err := Sweep(context.Background(), []Profile{freefall()}, Config{}, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
