package kinematics

import "github.com/san-kum/suvat/internal/quantity"

// DistanceFromVT is s = v·t for motion without acceleration.
func DistanceFromVT(v quantity.Speed, t quantity.Time) quantity.Distance {
	return quantity.NewDistance(v.Value() * t.Value())
}

// DistanceFromUVT is s = ½(u + v)·t.
func DistanceFromUVT(u, v quantity.Speed, t quantity.Time) quantity.Distance {
	return quantity.NewDistance(0.5 * (u.Value() + v.Value()) * t.Value())
}

// DistanceFromUVA is s = (v² − u²) / 2a.
func DistanceFromUVA(u, v quantity.Speed, a quantity.Acceleration) quantity.Distance {
	return quantity.NewDistance((sq(v.Value()) - sq(u.Value())) / (2 * a.Value()))
}

// DistanceFromUAT is s = u·t + ½a·t².
func DistanceFromUAT(u quantity.Speed, a quantity.Acceleration, t quantity.Time) quantity.Distance {
	return quantity.NewDistance(u.Value()*t.Value() + 0.5*a.Value()*sq(t.Value()))
}

// DistanceFromVAT is s = v·t − ½a·t².
func DistanceFromVAT(v quantity.Speed, a quantity.Acceleration, t quantity.Time) quantity.Distance {
	return quantity.NewDistance(v.Value()*t.Value() - 0.5*a.Value()*sq(t.Value()))
}
