package rigid

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a pointing ray: an origin and a direction vector
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Transformed returns the ray expressed in the parent space of the given
// transform. The origin takes the full transform, the direction only the
// rotation; a rigid transform preserves the direction's length.
func (r Ray) Transformed(t Transform) Ray {
	return Ray{
		Origin:    t.TransformPoint(r.Origin),
		Direction: t.Orientation().Rotate(r.Direction),
	}
}
