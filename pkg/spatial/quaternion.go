package spatial

import "math"

// UnitQuat is a unit quaternion associated with the coordinate frame F,
// stored as (x, y, z, w) with w the scalar part. Every value produced by
// this package satisfies x²+y²+z²+w² = 1 up to floating-point rounding.
type UnitQuat[F Frame] struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewUnitQuat builds a unit quaternion from raw components, normalizing
// them. It returns ErrNonFinite if any component is NaN or infinite, and
// ErrZeroNorm if all components are exactly zero. The zero-norm test is an
// exact comparison, not a tolerance band: very small nonzero inputs are
// normalized even though the result may be numerically unstable.
func NewUnitQuat[F Frame](x, y, z, w float64) (UnitQuat[F], error) {
	for _, c := range [4]float64{x, y, z, w} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return UnitQuat[F]{}, ErrNonFinite
		}
	}

	normSq := x*x + y*y + z*z + w*w
	if normSq == 0 {
		return UnitQuat[F]{}, ErrZeroNorm
	}

	norm := math.Sqrt(normSq)
	return UnitQuat[F]{
		X: x / norm,
		Y: y / norm,
		Z: z / norm,
		W: w / norm,
	}, nil
}

// NewUnitQuatUnchecked builds a unit quaternion from components taken
// verbatim, with no validation or normalization. The caller must guarantee
// the unit-norm invariant already holds, for example after a sequence of
// invariant-preserving operations. Prefer NewUnitQuat everywhere else; this
// entry point exists so review tooling can flag its call sites.
func NewUnitQuatUnchecked[F Frame](x, y, z, w float64) UnitQuat[F] {
	return UnitQuat[F]{X: x, Y: y, Z: z, W: w}
}

// IdentityQuat returns the identity rotation (0, 0, 0, 1) in frame F.
func IdentityQuat[F Frame]() UnitQuat[F] {
	return UnitQuat[F]{W: 1}
}

// FrameName returns the display name of the quaternion's frame.
func (UnitQuat[F]) FrameName() string { return frameName[F]() }
