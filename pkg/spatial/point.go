package spatial

// Point is a 3D position expressed in the coordinate frame F. The frame
// parameter is phantom: it occupies no storage, and two points in different
// frames are distinct types. A point changes frame only by applying a
// Transform whose source frame is F.
type Point[F Frame] struct {
	X float64
	Y float64
	Z float64
}

// NewPoint returns the point (x, y, z) in frame F. Construction cannot
// fail; finiteness of the coordinates is the caller's concern.
func NewPoint[F Frame](x, y, z float64) Point[F] {
	return Point[F]{X: x, Y: y, Z: z}
}

// FrameName returns the display name of the point's frame.
func (Point[F]) FrameName() string { return frameName[F]() }
