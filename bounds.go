package rigid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds represents an axis-aligned bounded volume, e.g. the tracked area of
// a play space
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the bounds
func (b Bounds) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Min.Z() && point.Z() <= b.Max.Z()
}

// Overlaps checks if two bounds overlap
func (b Bounds) Overlaps(other Bounds) bool {
	// Bounds overlap if they overlap on all three axes
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// Transformed returns the axis-aligned bounds of the volume after applying a
// rigid transform: the 8 corners are transformed and a new min/max derived.
func (b Bounds) Transformed(t Transform) Bounds {
	corners := [8]mgl64.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}

	min := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, corner := range corners {
		world := t.TransformPoint(corner)

		min = mgl64.Vec3{
			math.Min(min.X(), world.X()),
			math.Min(min.Y(), world.Y()),
			math.Min(min.Z(), world.Z()),
		}
		max = mgl64.Vec3{
			math.Max(max.X(), world.X()),
			math.Max(max.Y(), world.Y()),
			math.Max(max.Z(), world.Z()),
		}
	}

	return Bounds{Min: min, Max: max}
}
