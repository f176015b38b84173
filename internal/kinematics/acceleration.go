package kinematics

import "github.com/san-kum/suvat/internal/quantity"

// AccelerationFromUVT is a = (v − u) / t.
func AccelerationFromUVT(u, v quantity.Speed, t quantity.Time) quantity.Acceleration {
	return quantity.NewAcceleration((v.Value() - u.Value()) / t.Value())
}

// AccelerationFromSUV is a = (v² − u²) / 2s.
func AccelerationFromSUV(s quantity.Distance, u, v quantity.Speed) quantity.Acceleration {
	return quantity.NewAcceleration((sq(v.Value()) - sq(u.Value())) / (2 * s.Value()))
}

// AccelerationFromSUT is a = 2s/t² − 2u/t.
func AccelerationFromSUT(s quantity.Distance, u quantity.Speed, t quantity.Time) quantity.Acceleration {
	return quantity.NewAcceleration(2*s.Value()/sq(t.Value()) - 2*u.Value()/t.Value())
}

// AccelerationFromSVT is a = 2(v·t − s) / t².
func AccelerationFromSVT(s quantity.Distance, v quantity.Speed, t quantity.Time) quantity.Acceleration {
	return quantity.NewAcceleration(-2 * (s.Value() - v.Value()*t.Value()) / sq(t.Value()))
}
