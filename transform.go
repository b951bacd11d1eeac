package rigid

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a rigid transform in 3D space: a rotation followed by
// a translation. It is immutable once constructed; Inverse and Mul return new
// values and never mutate the receiver.
type Transform struct {
	position    mgl64.Vec3
	orientation mgl64.Quat

	// Derived at construction, never mutated afterwards
	translate mgl64.Mat4
	rotate    mgl64.Mat4
}

// New creates a transform from a position and an orientation quaternion.
//
// The orientation must be unit-length. A non-unit quaternion produces a
// scaled, non-rigid rotation matrix and Inverse is undefined on the result;
// the caller is responsible for normalizing beforehand.
func New(position mgl64.Vec3, orientation mgl64.Quat) Transform {
	return Transform{
		position:    position,
		orientation: orientation,
		translate:   mgl64.Translate3D(position.X(), position.Y(), position.Z()),
		rotate:      orientation.Mat4(),
	}
}

// Identity creates the identity transform: zero translation, identity rotation
func Identity() Transform {
	return New(mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent())
}

// Position returns the translation component
func (t Transform) Position() mgl64.Vec3 {
	return t.position
}

// Orientation returns the rotation component as a quaternion
func (t Transform) Orientation() mgl64.Quat {
	return t.orientation
}

// Matrix returns the composed homogeneous matrix T * R: a point is rotated
// first, then translated. The ordering is a fixed contract; the orientation
// is intrinsic to the local frame and resolves before the frame is positioned
// in the parent space.
func (t Transform) Matrix() mgl64.Mat4 {
	return t.translate.Mul4(t.rotate)
}

// Inverse returns the transform that undoes this one, expressed again as a
// (position, orientation) pair.
//
// The forward transform is M = T * R, so M^-1 = R^-1 * T^-1. That product is
// already rigid but not in the canonical translation-of-rotation order, so it
// is re-associated:
//
//	M^-1 = R^-1 * T^-1 * (R * R^-1) = (R^-1 * T^-1 * R) * R^-1 = T' * R'
//
// Conjugating a translation by a rotation yields another pure translation, so
// T' = R^-1 * T^-1 * R decomposes exactly: its translation column is the new
// position, and R' = R^-1 is the quaternion conjugate. No iterative or
// approximate matrix decomposition is involved.
func (t Transform) Inverse() Transform {
	inverseOrientation := t.orientation.Conjugate()

	if t.translate.Det() == 0 {
		// Translate3D always has determinant 1; reaching this is a bug,
		// not a runtime condition the caller could handle.
		panic("rigid: translation matrix is not invertible")
	}
	inverseTranslate := t.translate.Inv()

	shifted := inverseOrientation.Mat4().Mul4(inverseTranslate).Mul4(t.rotate)
	position := shifted.Col(3).Vec3()

	return New(position, inverseOrientation)
}

// Mul composes two rigid transforms: other applies first, then t. The result
// equals t.Matrix() * other.Matrix() decomposed back into a rigid pair.
func (t Transform) Mul(other Transform) Transform {
	position := t.position.Add(t.orientation.Rotate(other.position))
	orientation := t.orientation.Mul(other.orientation)

	return New(position, orientation)
}

// TransformPoint maps a point from the local space into the parent space
func (t Transform) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return t.orientation.Rotate(point).Add(t.position)
}
