package easel

import (
	"math"
	"testing"
)

func TestLocalTransformTranslateOnly(t *testing.T) {
	o := NewRect("r", 10, 20, 5, 5)
	m := localTransform(o)
	want := [6]float64{1, 0, 0, 1, 10, 20}
	if m != want {
		t.Errorf("localTransform = %v, want %v", m, want)
	}
}

func TestLocalTransformScale(t *testing.T) {
	o := NewRect("r", 0, 0, 5, 5)
	o.ScaleX = 2
	o.ScaleY = 3
	m := localTransform(o)
	want := [6]float64{2, 0, 0, 3, 0, 0}
	if m != want {
		t.Errorf("localTransform = %v, want %v", m, want)
	}
}

func TestLocalTransformRotation(t *testing.T) {
	o := NewRect("r", 0, 0, 5, 5)
	o.Rotation = math.Pi / 2

	x, y := transformPoint(localTransform(o), 1, 0)
	if !almostEqual(x, 0) || !almostEqual(y, 1) {
		t.Errorf("(1,0) rotated 90deg = (%v, %v), want (0, 1)", x, y)
	}
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -0.5, 3, 7, -4}
	if got := multiplyAffine(identityTransform, m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
	if got := multiplyAffine(m, identityTransform); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
}

func TestMultiplyAffineTranslateThenScale(t *testing.T) {
	scale := [6]float64{2, 0, 0, 2, 0, 0}
	translate := [6]float64{1, 0, 0, 1, 10, 5}

	// parent scale, child translate: point first translated, then scaled.
	m := multiplyAffine(scale, translate)
	x, y := transformPoint(m, 1, 1)
	if x != 22 || y != 12 {
		t.Errorf("point = (%v, %v), want (22, 12)", x, y)
	}
}

func TestInvertAffineRoundTrip(t *testing.T) {
	o := NewRect("r", 12, -7, 5, 5)
	o.ScaleX = 1.5
	o.ScaleY = 0.5
	o.Rotation = 0.7
	m := localTransform(o)
	inv := invertAffine(m)

	x, y := transformPoint(m, 3, 4)
	bx, by := transformPoint(inv, x, y)
	if !almostEqual(bx, 3) || !almostEqual(by, 4) {
		t.Errorf("round trip = (%v, %v), want (3, 4)", bx, by)
	}
}

func TestInvertAffineSingular(t *testing.T) {
	singular := [6]float64{0, 0, 0, 0, 5, 5}
	if got := invertAffine(singular); got != identityTransform {
		t.Errorf("invertAffine(singular) = %v, want identity", got)
	}
}

func TestTransformPoint(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	x, y := transformPoint(m, 4, 5)
	if x != 18 || y != 35 {
		t.Errorf("point = (%v, %v), want (18, 35)", x, y)
	}
}
