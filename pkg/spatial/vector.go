package spatial

// Vector is a 3D displacement or direction expressed in the coordinate
// frame F. It has the same storage as Point but is deliberately a distinct
// type, so a displacement cannot be mistaken for a position.
type Vector[F Frame] struct {
	X float64
	Y float64
	Z float64
}

// NewVector returns the vector (x, y, z) in frame F. Construction cannot
// fail.
func NewVector[F Frame](x, y, z float64) Vector[F] {
	return Vector[F]{X: x, Y: y, Z: z}
}

// FrameName returns the display name of the vector's frame.
func (Vector[F]) FrameName() string { return frameName[F]() }
