package visual

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewField(t *testing.T) {
	f := NewField(DefaultCount, rand.New(rand.NewPCG(1, 1)))
	if f.Count != DefaultCount || len(f.Positions) != DefaultCount*3 {
		t.Fatalf("count=%d positions=%d", f.Count, len(f.Positions))
	}
	for _, p := range f.Positions {
		if p < -7.5 || p >= 7.5 {
			t.Fatalf("coordinate %v outside [-7.5, 7.5)", p)
		}
	}
	if f.Color != "#38bdf8" || f.Size != 0.02 || f.Opacity != 0.8 || f.CameraZ != 3 {
		t.Errorf("unexpected material %+v", f)
	}
}

func TestNewFieldDeterministicForSeed(t *testing.T) {
	a := NewField(10, rand.New(rand.NewPCG(42, 0)))
	b := NewField(10, rand.New(rand.NewPCG(42, 0)))
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatal("same seed should give the same field")
		}
	}
}

func TestClampCount(t *testing.T) {
	tests := map[int]int{-5: 1, 0: 1, 1: 1, 2000: 2000, 20000: MaxCount}
	for in, want := range tests {
		if got := ClampCount(in); got != want {
			t.Errorf("ClampCount(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestRotation(t *testing.T) {
	x, y := Rotation(10, 200, -100)
	if math.Abs(y-(0.5+0.01)) > 1e-12 {
		t.Errorf("y = %v", y)
	}
	if math.Abs(x-(0.2-0.005)) > 1e-12 {
		t.Errorf("x = %v", x)
	}
}

func TestRotationPointerAtOrigin(t *testing.T) {
	// the top-left corner adds no tilt; the viewport centre does
	x0, y0 := Rotation(4, 0, 0)
	if math.Abs(x0-4*spinX) > 1e-12 || math.Abs(y0-4*spinY) > 1e-12 {
		t.Errorf("origin = (%v, %v)", x0, y0)
	}
	x, y := Rotation(4, 960, 540)
	if x <= x0 || y <= y0 {
		t.Errorf("centre of a 1920x1080 viewport should tilt the field, got (%v, %v)", x, y)
	}
}
