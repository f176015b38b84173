package kinematics

import (
	"math"

	"github.com/san-kum/suvat/internal/quantity"
)

// TimeFromSV is t = s / v for motion without acceleration.
func TimeFromSV(s quantity.Distance, v quantity.Speed) quantity.Time {
	return quantity.NewTime(s.Value() / v.Value())
}

// TimeFromSVU is t = 2s / (u + v).
func TimeFromSVU(s quantity.Distance, v, u quantity.Speed) quantity.Time {
	return quantity.NewTime(2 * s.Value() / (v.Value() + u.Value()))
}

// TimeFromVUA is t = (v − u) / a.
func TimeFromVUA(v, u quantity.Speed, a quantity.Acceleration) quantity.Time {
	return quantity.NewTime((v.Value() - u.Value()) / a.Value())
}

// TimeFromASU solves s = u·t + ½a·t² for t, returning only the root
// (√(2as + u²) − u) / a. A body that reaches s twice, such as a projectile
// passing a height on the way up and down, reports the first crossing when
// a < 0 and u > 0.
func TimeFromASU(a quantity.Acceleration, s quantity.Distance, u quantity.Speed) quantity.Time {
	return quantity.NewTime((math.Sqrt(2*a.Value()*s.Value()+sq(u.Value())) - u.Value()) / a.Value())
}

// TimeFromVAS solves s = v·t − ½a·t² for t, returning only the root
// (v − √(v² − 2as)) / a.
func TimeFromVAS(v quantity.Speed, a quantity.Acceleration, s quantity.Distance) quantity.Time {
	return quantity.NewTime((v.Value() - math.Sqrt(sq(v.Value())-2*a.Value()*s.Value())) / a.Value())
}
