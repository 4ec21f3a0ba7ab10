package spatial

// Frame is the constraint satisfied by coordinate-frame tag types. A frame
// tag is a zero-size type declared once per physical frame in the domain;
// it exists only to make two structurally identical values incompatible to
// the type checker.
//
// FrameName returns a short display name for the frame. It is used for
// output and capture records only; frame identity is the type itself, never
// the name.
//
//	type Rig struct{}
//
//	func (Rig) FrameName() string { return "rig" }
type Frame interface {
	FrameName() string
}

// frameName returns the display name of the frame tag F without requiring
// a value from the caller.
func frameName[F Frame]() string {
	var f F
	return f.FrameName()
}
