package kinematics

import (
	"math"

	"github.com/san-kum/suvat/internal/quantity"
)

// ConstSpeedFromST is v = s / t for motion without acceleration.
func ConstSpeedFromST(s quantity.Distance, t quantity.Time) quantity.Speed {
	return quantity.NewSpeed(s.Value() / t.Value())
}

// EndSpeedFromUAT is v = u + a·t.
func EndSpeedFromUAT(u quantity.Speed, a quantity.Acceleration, t quantity.Time) quantity.Speed {
	return quantity.NewSpeed(u.Value() + a.Value()*t.Value())
}

// StartSpeedFromVAT is u = v − a·t.
func StartSpeedFromVAT(v quantity.Speed, a quantity.Acceleration, t quantity.Time) quantity.Speed {
	return quantity.NewSpeed(v.Value() - a.Value()*t.Value())
}

// EndSpeedFromSUT is v = 2s/t − u.
func EndSpeedFromSUT(s quantity.Distance, u quantity.Speed, t quantity.Time) quantity.Speed {
	return quantity.NewSpeed(2*s.Value()/t.Value() - u.Value())
}

// StartSpeedFromSVT is u = 2s/t − v.
func StartSpeedFromSVT(s quantity.Distance, v quantity.Speed, t quantity.Time) quantity.Speed {
	return quantity.NewSpeed(2*s.Value()/t.Value() - v.Value())
}

// EndSpeedFromSUA is v = √(u² + 2as), the principal root. A negative
// radicand gives NaN.
func EndSpeedFromSUA(s quantity.Distance, u quantity.Speed, a quantity.Acceleration) quantity.Speed {
	return quantity.NewSpeed(math.Sqrt(sq(u.Value()) + 2*a.Value()*s.Value()))
}

// StartSpeedFromSVA is u = √(v² − 2as), the principal root.
func StartSpeedFromSVA(s quantity.Distance, v quantity.Speed, a quantity.Acceleration) quantity.Speed {
	return quantity.NewSpeed(math.Sqrt(sq(v.Value()) - 2*a.Value()*s.Value()))
}

// StartSpeedFromSAT is u = s/t − ½a·t.
func StartSpeedFromSAT(s quantity.Distance, a quantity.Acceleration, t quantity.Time) quantity.Speed {
	return quantity.NewSpeed(s.Value()/t.Value() - 0.5*a.Value()*t.Value())
}

// EndSpeedFromSAT is v = s/t + ½a·t.
func EndSpeedFromSAT(s quantity.Distance, a quantity.Acceleration, t quantity.Time) quantity.Speed {
	return quantity.NewSpeed(s.Value()/t.Value() + 0.5*a.Value()*t.Value())
}

func sq(x float64) float64 { return x * x }
