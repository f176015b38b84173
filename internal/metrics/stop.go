package metrics

import (
	"math"

	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

// StopTime reports the first sampled time at which v reaches zero or changes
// sign, or NaN if it never does.
type StopTime struct {
	name    string
	prev    quantity.Speed
	at      float64
	started bool
}

func NewStopTime() *StopTime {
	return &StopTime{name: "stop_time", at: math.NaN()}
}

func (st *StopTime) Name() string { return st.name }

func (st *StopTime) Observe(s motion.Sample) {
	if !math.IsNaN(st.at) {
		return
	}
	if st.started && (s.V.Sign() == 0 || s.V.Sign() != st.prev.Sign()) && st.prev.Sign() != 0 {
		st.at = s.T.Value()
	}
	st.prev = s.V
	st.started = true
}

func (st *StopTime) Value() float64 { return st.at }

func (st *StopTime) Reset() {
	st.prev = quantity.Speed{}
	st.at = math.NaN()
	st.started = false
}
