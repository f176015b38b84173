// Package vector aggregates per-axis quantities into 2D and 3D values.
//
// Vectors only store and return their components; they do not combine them.
package vector

import (
	"fmt"

	"github.com/san-kum/suvat/internal/quantity"
)

// Axis names a coordinate axis.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

type Vec2[D quantity.Dimension] struct {
	x, y quantity.Quantity[D]
}

func New2[D quantity.Dimension](x, y quantity.Quantity[D]) Vec2[D] {
	return Vec2[D]{x: x, y: y}
}

func (v Vec2[D]) X() quantity.Quantity[D] { return v.x }
func (v Vec2[D]) Y() quantity.Quantity[D] { return v.y }

// Component returns the quantity along axis. Z is not part of a 2D vector
// and reports false.
func (v Vec2[D]) Component(axis Axis) (quantity.Quantity[D], bool) {
	switch axis {
	case X:
		return v.x, true
	case Y:
		return v.y, true
	}
	return quantity.Quantity[D]{}, false
}

func (v Vec2[D]) String() string {
	return fmt.Sprintf("(%s, %s) %s", v.x, v.y, v.x.Unit())
}

type Vec3[D quantity.Dimension] struct {
	x, y, z quantity.Quantity[D]
}

func New3[D quantity.Dimension](x, y, z quantity.Quantity[D]) Vec3[D] {
	return Vec3[D]{x: x, y: y, z: z}
}

func (v Vec3[D]) X() quantity.Quantity[D] { return v.x }
func (v Vec3[D]) Y() quantity.Quantity[D] { return v.y }
func (v Vec3[D]) Z() quantity.Quantity[D] { return v.z }

func (v Vec3[D]) Component(axis Axis) (quantity.Quantity[D], bool) {
	switch axis {
	case X:
		return v.x, true
	case Y:
		return v.y, true
	case Z:
		return v.z, true
	}
	return quantity.Quantity[D]{}, false
}

func (v Vec3[D]) String() string {
	return fmt.Sprintf("(%s, %s, %s) %s", v.x, v.y, v.z, v.x.Unit())
}

type (
	Distance2     = Vec2[quantity.DistanceDim]
	Velocity2     = Vec2[quantity.SpeedDim]
	Acceleration2 = Vec2[quantity.AccelerationDim]
	Distance3     = Vec3[quantity.DistanceDim]
	Velocity3     = Vec3[quantity.SpeedDim]
	Acceleration3 = Vec3[quantity.AccelerationDim]
)
