package spatial

// Quantity is a scalar value tagged with the physical unit U. Arithmetic is
// only defined between quantities of the identical unit, so adding meters
// to radians does not compile. No scaling or cross-unit conversion is
// exposed; conversions belong in explicit, checked operations rather than
// implicit coercions.
type Quantity[U Unit] struct {
	Value float64
}

// NewQuantity returns a quantity of v in the unit U.
func NewQuantity[U Unit](v float64) Quantity[U] {
	return Quantity[U]{Value: v}
}

// Add returns the sum of q and other, in the same unit.
func (q Quantity[U]) Add(other Quantity[U]) Quantity[U] {
	return Quantity[U]{Value: q.Value + other.Value}
}

// Sub returns the difference of q and other, in the same unit.
func (q Quantity[U]) Sub(other Quantity[U]) Quantity[U] {
	return Quantity[U]{Value: q.Value - other.Value}
}

// UnitSymbol returns the display symbol of the quantity's unit.
func (Quantity[U]) UnitSymbol() string {
	var u U
	return u.UnitSymbol()
}
