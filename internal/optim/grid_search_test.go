package optim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/suvat/internal/metrics"
	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

func sampling() motion.Config {
	return motion.Config{Dt: quantity.NewTime(0.5), Duration: quantity.NewTime(10)}
}

func TestSearchStopTime(t *testing.T) {
	// from 10 m/s, a = -2 stops at t = 5
	g := NewGridSearch([]float64{10}, []float64{-1, -2, -4})

	best, err := g.Search(context.Background(), sampling(), metrics.Default, MetricTarget("stop_time", 5))
	require.NoError(t, err)

	assert.Equal(t, -2.0, best.Profile.Accel.Value())
	assert.InDelta(t, 0, best.Score, 1e-9)
	require.NotNil(t, best.Result)
	assert.Len(t, best.Result.Samples, 21)
}

func TestSearchSkipsNaNScores(t *testing.T) {
	// positive accelerations never stop, so only a = -5 scores
	g := NewGridSearch([]float64{10}, []float64{1, 2, -5})

	best, err := g.Search(context.Background(), sampling(), metrics.Default, MetricTarget("stop_time", 0))
	require.NoError(t, err)
	assert.Equal(t, -5.0, best.Profile.Accel.Value())
	assert.InDelta(t, 2, best.Score, 1e-9)
}

func TestSearchErrors(t *testing.T) {
	_, err := NewGridSearch(nil, []float64{1}).Search(context.Background(), sampling(), nil, MetricTarget("x", 0))
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGridSearch([]float64{1}, []float64{1}).Search(context.Background(), sampling(), metrics.Default, MetricTarget("missing", 0))
	assert.ErrorIs(t, err, ErrNoCandidate)

	_, err = NewGridSearch([]float64{1}, []float64{1}).Search(context.Background(), motion.Config{}, nil, MetricTarget("x", 0))
	assert.ErrorIs(t, err, motion.ErrInvalidConfig)
}

func TestMetricTarget(t *testing.T) {
	res := &motion.Result{Metrics: map[string]float64{"peak_speed": 12}}
	assert.Equal(t, 2.0, MetricTarget("peak_speed", 10)(res))
	assert.True(t, math.IsNaN(MetricTarget("path_length", 10)(res)))
}

func TestParseRange(t *testing.T) {
	got, err := ParseRange("-10:-8:0.5")
	require.NoError(t, err)
	assert.Equal(t, []float64{-10, -9.5, -9, -8.5, -8}, got)

	got, err = ParseRange("3")
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, got)

	got, err = ParseRange("0:1:0.1")
	require.NoError(t, err)
	assert.Len(t, got, 11)

	for _, bad := range []string{"", "1:2", "2:1:1", "0:1:0", "0:1:-1", "a:b:c", "0:1e9:1e-3"} {
		_, err := ParseRange(bad)
		assert.True(t, errors.Is(err, ErrBadRange), "ParseRange(%q) = %v", bad, err)
	}
}
