package spatial

// Transform converts coordinates expressed in the frame From into
// coordinates expressed in the frame To. It carries a row-major 4x4
// homogeneous matrix and is immutable once constructed; applying it never
// mutates it.
//
// The frame pair is the safety contract of the package: Apply only accepts
// a Point[From] and only produces a Point[To], so using a transform on a
// point from an unrelated frame, or treating its output as still being in
// the source frame, does not compile. No runtime frame check exists because
// none is needed.
//
// The matrix content is not validated. Whether it is a rigid transform
// (orthonormal rotation plus translation) is the caller's responsibility.
type Transform[From, To Frame] struct {
	// M is the row-major 4x4 transform matrix.
	M [4][4]float64
}

// Identity returns the identity transform from From to To. Applying it
// reproduces the input coordinates exactly.
func Identity[From, To Frame]() Transform[From, To] {
	return Transform[From, To]{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// FromMatrix returns a transform wrapping the given row-major 4x4 matrix
// verbatim. No validation is performed.
func FromMatrix[From, To Frame](m [4][4]float64) Transform[From, To] {
	return Transform[From, To]{M: m}
}

// FromTranslation returns a pure translation by (tx, ty, tz), with the
// identity rotation.
func FromTranslation[From, To Frame](tx, ty, tz float64) Transform[From, To] {
	t := Identity[From, To]()
	t.M[0][3] = tx
	t.M[1][3] = ty
	t.M[2][3] = tz
	return t
}

// Apply converts a point from the From frame to the To frame using
// homogeneous coordinates with an implicit w = 1. Only the first three rows
// of the matrix are read; the fourth row is conventionally (0,0,0,1) for
// affine transforms and is ignored. Apply is total: non-finite matrix
// entries or overflow propagate through ordinary floating-point arithmetic
// rather than failing.
func (t Transform[From, To]) Apply(p Point[From]) Point[To] {
	m := &t.M
	return NewPoint[To](
		m[0][0]*p.X+m[0][1]*p.Y+m[0][2]*p.Z+m[0][3],
		m[1][0]*p.X+m[1][1]*p.Y+m[1][2]*p.Z+m[1][3],
		m[2][0]*p.X+m[2][1]*p.Y+m[2][2]*p.Z+m[2][3],
	)
}

// ApplyVector converts a displacement from the From frame to the To frame.
// A displacement is homogeneous with w = 0, so the translation column does
// not contribute; only the rotation block of the matrix is read.
func (t Transform[From, To]) ApplyVector(v Vector[From]) Vector[To] {
	m := &t.M
	return NewVector[To](
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

// SourceFrame returns the display name of the transform's source frame.
func (Transform[From, To]) SourceFrame() string { return frameName[From]() }

// DestFrame returns the display name of the transform's destination frame.
func (Transform[From, To]) DestFrame() string { return frameName[To]() }
