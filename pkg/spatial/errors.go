package spatial

import "errors"

// Quaternion construction errors. NewUnitQuat is the only fallible
// operation in the package; it returns exactly one of these two values.
var (
	// ErrNonFinite reports that a component was NaN or infinite where a
	// finite number was required.
	ErrNonFinite = errors.New("component is not finite")

	// ErrZeroNorm reports that all four quaternion components were zero,
	// so no unit quaternion can be produced by normalization.
	ErrZeroNorm = errors.New("quaternion norm is zero")
)
