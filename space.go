package rigid

// Space represents a coordinate space located in a base space by a rigid
// transform. Tracked poses are reported in the base space; a Space expresses
// them relative to its own origin.
type Space struct {
	origin Transform
}

// NewSpace creates a space whose origin sits at the given transform in the
// base space
func NewSpace(origin Transform) Space {
	return Space{origin: origin}
}

// Origin returns the transform locating this space in the base space
func (s Space) Origin() Transform {
	return s.origin
}

// OffsetBy returns a space whose origin is this space's origin composed with
// the given offset
func (s Space) OffsetBy(offset Transform) Space {
	return Space{origin: s.origin.Mul(offset)}
}

// PoseIn expresses a base-space transform, e.g. a tracked viewer pose,
// relative to this space
func (s Space) PoseIn(target Transform) Transform {
	return s.origin.Inverse().Mul(target)
}
