package ui

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearPoint(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestMatrixCompositionOrder(t *testing.T) {
	// Translate is applied first, then scale.
	m := Identity().Translate(5, 0).Scale(0, 0, 2, 2)
	got := m.TransformPoint(Pt(1, 0))
	if !nearPoint(got, Pt(12, 0)) {
		t.Errorf("Translate(5,0).Scale(2,2) on (1,0) = %v, want (12,0)", got)
	}

	// The reverse order gives a different result.
	m = Identity().Scale(0, 0, 2, 2).Translate(5, 0)
	got = m.TransformPoint(Pt(1, 0))
	if !nearPoint(got, Pt(7, 0)) {
		t.Errorf("Scale(2,2).Translate(5,0) on (1,0) = %v, want (7,0)", got)
	}
}

func TestMatrixMultiply(t *testing.T) {
	a := Identity().Rotate(3, 4, 0.7).Translate(1, -2)
	b := Identity().Scale(1, 1, 2, 0.5).Skew(0, 0, 0.2, 0.1)
	p := Pt(7, -3)

	got := a.Multiply(b).TransformPoint(p)
	want := b.TransformPoint(a.TransformPoint(p))
	if !nearPoint(got, want) {
		t.Errorf("a.Multiply(b)(p) = %v, want b(a(p)) = %v", got, want)
	}
}

func TestMatrixOperations(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Identity().Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale about origin", Identity().Scale(0, 0, 2, 3), Pt(1, 1), Pt(2, 3)},
		{"scale about center keeps center", Identity().Scale(10, 10, 2, 2), Pt(10, 10), Pt(10, 10)},
		{"scale about center", Identity().Scale(10, 10, 2, 2), Pt(11, 10), Pt(12, 10)},
		// Counter-clockwise on screen with y pointing down.
		{"rotate 90", Identity().Rotate(0, 0, math.Pi/2), Pt(1, 0), Pt(0, -1)},
		{"rotate 90 about center", Identity().Rotate(5, 5, math.Pi/2), Pt(6, 5), Pt(5, 4)},
		{"rotate keeps center", Identity().Rotate(5, 5, 1.3), Pt(5, 5), Pt(5, 5)},
		{"translate then rotate", Identity().Translate(5, 0).Rotate(0, 0, math.Pi/2), Pt(1, 0), Pt(0, -6)},
		{"skew x", Identity().Skew(0, 0, math.Pi/4, 0), Pt(0, 1), Pt(1, 1)},
		{"skew y", Identity().Skew(0, 0, 0, math.Pi/4), Pt(1, 0), Pt(1, 1)},
		{"skew about center", Identity().Skew(0, 2, math.Pi/4, 0), Pt(0, 2), Pt(0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !nearPoint(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Identity().Translate(3, 4).Rotate(1, 1, 0.5).Scale(0, 0, 2, 3)
	if !m.Invertible() {
		t.Fatal("expected matrix to be invertible")
	}
	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("Invert() error = %v", err)
	}
	p := Pt(-2, 9)
	if got := inv.TransformPoint(m.TransformPoint(p)); !nearPoint(got, p) {
		t.Errorf("inverse round trip = %v, want %v", got, p)
	}
	if got := m.Multiply(inv); !nearPoint(got.TransformPoint(p), p) {
		t.Errorf("m.Multiply(inv) is not identity: %+v", got)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero scale", Identity().Scale(0, 0, 0, 1)},
		{"zero matrix", Matrix{}},
		{"collinear rows", Matrix{M11: 1, M12: 2, M21: 2, M22: 4}},
		{"infinite", Matrix{M11: math.Inf(1), M22: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.m.Invertible() {
				t.Error("Invertible() = true, want false")
			}
			got, err := tt.m.Invert()
			if !errors.Is(err, ErrNotInvertible) {
				t.Errorf("Invert() error = %v, want ErrNotInvertible", err)
			}
			if got != tt.m && !math.IsInf(tt.m.M11, 0) {
				t.Errorf("Invert() changed the matrix: %+v", got)
			}
		})
	}
}

func TestMatrixTransformSize(t *testing.T) {
	m := Identity().Translate(100, 100).Scale(0, 0, 2, 3)
	got := m.TransformSize(Size{Width: 1, Height: 1})
	if !near(got.Width, 2) || !near(got.Height, 3) {
		t.Errorf("TransformSize = %v, want {2 3}", got)
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Identity().Translate(1, 0).IsIdentity() {
		t.Error("translation reported as identity")
	}
	if !Identity().Translate(1, 2).IsTranslation() {
		t.Error("Translate().IsTranslation() = false")
	}
	if Identity().Rotate(0, 0, 0.1).IsTranslation() {
		t.Error("rotation reported as translation")
	}
}
