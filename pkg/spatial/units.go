package spatial

// Unit is the constraint satisfied by physical-unit tag types. Like Frame,
// a unit tag is a zero-size type declared once per unit; UnitSymbol returns
// a short display symbol and carries no semantic weight.
type Unit interface {
	UnitSymbol() string
}

// LengthUnit groups unit tags that measure length. The grouping is
// advisory: Quantity is constrained on Unit only, so the length/angle
// distinction is not enforced at the Quantity level.
type LengthUnit interface {
	Unit
	IsLength()
}

// AngleUnit groups unit tags that measure angle. Advisory, as with
// LengthUnit.
type AngleUnit interface {
	Unit
	IsAngle()
}

// Meters is the length unit tag for meters.
type Meters struct{}

// UnitSymbol returns the display symbol for the unit.
func (Meters) UnitSymbol() string { return "m" }

// IsLength marks Meters as a length unit.
func (Meters) IsLength() {}

// Radians is the angle unit tag for radians.
type Radians struct{}

// UnitSymbol returns the display symbol for the unit.
func (Radians) UnitSymbol() string { return "rad" }

// IsAngle marks Radians as an angle unit.
func (Radians) IsAngle() {}

// Degrees is the angle unit tag for degrees.
type Degrees struct{}

// UnitSymbol returns the display symbol for the unit.
func (Degrees) UnitSymbol() string { return "deg" }

// IsAngle marks Degrees as an angle unit.
func (Degrees) IsAngle() {}
