package spatial

import (
	"math"
	"testing"
)

func TestQuantityAddSub(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"positive", 1500, 42},
		{"negative", -3.5, -0.25},
		{"mixed", 1e6, -1e-6},
		{"zero operand", 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewQuantity[Meters](tt.a)
			b := NewQuantity[Meters](tt.b)

			sum := a.Add(b)
			if sum.Value != tt.a+tt.b {
				t.Errorf("Add = %v, want %v", sum.Value, tt.a+tt.b)
			}

			// (a+b)-b recovers a within tolerance.
			back := sum.Sub(b)
			if math.Abs(back.Value-tt.a) > 1e-9 {
				t.Errorf("(a+b)-b = %v, want %v within 1e-9", back.Value, tt.a)
			}
		})
	}
}

func TestQuantityZeroIdentity(t *testing.T) {
	a := NewQuantity[Radians](1.5708)
	zero := NewQuantity[Radians](0)

	if got := a.Add(zero); got != a {
		t.Errorf("a + 0 = %v, want %v", got.Value, a.Value)
	}
	if got := zero.Add(a); got != a {
		t.Errorf("0 + a = %v, want %v", got.Value, a.Value)
	}
}

func TestUnitSymbols(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"meters", NewQuantity[Meters](1).UnitSymbol(), "m"},
		{"radians", NewQuantity[Radians](1).UnitSymbol(), "rad"},
		{"degrees", NewQuantity[Degrees](1).UnitSymbol(), "deg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("UnitSymbol() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
