package spatial

import "testing"

func TestNewPoint(t *testing.T) {
	p := NewPoint[World](1.5, -2.0, 3.25)
	if p.X != 1.5 || p.Y != -2.0 || p.Z != 3.25 {
		t.Errorf("NewPoint = (%v, %v, %v), want (1.5, -2, 3.25)", p.X, p.Y, p.Z)
	}
	if p.FrameName() != "world" {
		t.Errorf("FrameName() = %q, want %q", p.FrameName(), "world")
	}
}

func TestPointEquality(t *testing.T) {
	a := NewPoint[Body](1, 2, 3)
	b := NewPoint[Body](1, 2, 3)
	c := NewPoint[Body](1, 2, 3.0000001)

	if a != b {
		t.Error("identical points compare unequal")
	}
	if a == c {
		t.Error("distinct points compare equal; equality must be exact")
	}
}

func TestNewVector(t *testing.T) {
	v := NewVector[Sensor](0, 1, 0)
	if v.X != 0 || v.Y != 1 || v.Z != 0 {
		t.Errorf("NewVector = (%v, %v, %v), want (0, 1, 0)", v.X, v.Y, v.Z)
	}
	if v.FrameName() != "sensor" {
		t.Errorf("FrameName() = %q, want %q", v.FrameName(), "sensor")
	}
}

func TestPointCopyIsIndependent(t *testing.T) {
	a := NewPoint[World](4, 5, 6)
	b := a
	b.X = 40

	if a.X != 4 {
		t.Errorf("copy mutated the original: a.X = %v, want 4", a.X)
	}
}
