package analysis

import (
	"github.com/san-kum/suvat/internal/kinematics"
	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

// Crossing returns the first non-negative time at which p reaches target.
// ok is false when the profile never gets there.
func Crossing(p motion.Profile, target quantity.Distance) (quantity.Time, bool) {
	if target.Sign() == 0 {
		return quantity.NewTime(0), true
	}
	if p.Accel.Sign() == 0 {
		t := kinematics.TimeFromSV(target, p.Start)
		return t, usable(t)
	}

	// the speed at target is ±√(u² + 2as); each sign gives one root
	v := kinematics.EndSpeedFromSUA(target, p.Start, p.Accel)
	var first quantity.Time
	found := false
	for _, end := range []quantity.Speed{v, v.Neg()} {
		t := kinematics.TimeFromVUA(end, p.Start, p.Accel)
		if usable(t) && (!found || t.Lt(first)) {
			first, found = t, true
		}
	}
	return first, found
}

func usable(t quantity.Time) bool {
	return t.IsFinite() && t.Sign() >= 0
}

// StopTime returns when the speed of p passes through zero. ok is false if
// it never does at t > 0.
func StopTime(p motion.Profile) (quantity.Time, bool) {
	t := kinematics.TimeFromVUA(quantity.NewSpeed(0), p.Start, p.Accel)
	return t, t.IsFinite() && t.Sign() > 0
}

// Apex returns the displacement at StopTime, the furthest point reached
// before the body turns around.
func Apex(p motion.Profile) (quantity.Distance, bool) {
	if _, ok := StopTime(p); !ok {
		return quantity.Distance{}, false
	}
	return kinematics.DistanceFromUVA(p.Start, quantity.NewSpeed(0), p.Accel), true
}
