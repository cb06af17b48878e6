package ui

import "testing"

func TestSolidBrush(t *testing.T) {
	b := Solid(Red)
	if got := b.ColorAt(123, -4); got != Red {
		t.Errorf("ColorAt = %+v, want Red", got)
	}
	if got := b.WithAlpha(0.5).Color.A; got != 0.5 {
		t.Errorf("WithAlpha alpha = %v", got)
	}
	if TypeOf(b) != BrushSolid {
		t.Errorf("TypeOf = %v, want Solid", TypeOf(b))
	}
}

func TestLinearGradientBrush(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0).
		AddColorStop(0, Black).
		AddColorStop(1, White)

	if TypeOf(g) != BrushLinearGradient {
		t.Errorf("TypeOf = %v, want LinearGradient", TypeOf(g))
	}

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"start", 0, 0, Black},
		{"end", 100, 0, White},
		{"before start pads", -50, 0, Black},
		{"after end pads", 500, 0, White},
		{"perpendicular offset", 0, 40, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.x, tt.y)
			if !near(got.R, tt.want.R) || !near(got.A, tt.want.A) {
				t.Errorf("ColorAt(%v,%v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	mid := g.ColorAt(50, 0)
	if mid.R <= 0 || mid.R >= 1 {
		t.Errorf("midpoint = %+v, want a gray", mid)
	}
}

func TestGradientStopsKeepGivenOrder(t *testing.T) {
	// Out-of-order stops are not sorted: the first stop whose position is
	// reached wins.
	g := NewLinearGradientBrush(0, 0, 1, 0).
		AddColorStop(0.5, Red).
		AddColorStop(0.2, Blue).
		AddColorStop(1, Green)

	if len(g.Stops) != 3 || g.Stops[1].Color != Blue {
		t.Fatalf("stops reordered: %+v", g.Stops)
	}
	if got := g.ColorAt(0.3, 0); got != Red {
		t.Errorf("ColorAt(0.3) = %+v, want Red (first stop)", got)
	}
	if got := g.ColorAt(0.5, 0); got != Red {
		t.Errorf("ColorAt(0.5) = %+v, want Red", got)
	}
	// Past the first stop, evaluation continues from the out-of-order stop.
	if got := g.ColorAt(0.6, 0); got == Red {
		t.Errorf("ColorAt(0.6) = %+v, should have left the first stop", got)
	}
}

func TestRadialGradientBrush(t *testing.T) {
	g := NewRadialGradientBrush(50, 50, 50, 50, 10).
		AddColorStop(0, White).
		AddColorStop(1, Black)

	if TypeOf(g) != BrushRadialGradient {
		t.Errorf("TypeOf = %v, want RadialGradient", TypeOf(g))
	}
	if got := g.ColorAt(50, 50); !near(got.R, 1) {
		t.Errorf("center = %+v, want White", got)
	}
	if got := g.ColorAt(60, 50); !near(got.R, 0) {
		t.Errorf("on circle = %+v, want Black", got)
	}
	if got := g.ColorAt(50, 80); !near(got.R, 0) {
		t.Errorf("outside circle = %+v, want Black", got)
	}
	a := g.ColorAt(53, 50)
	b := g.ColorAt(50, 53)
	if !near(a.R, b.R) {
		t.Errorf("concentric gradient not symmetric: %v vs %v", a.R, b.R)
	}
}

func TestRadialGradientOffsetStart(t *testing.T) {
	// Start point off center: t=0 at the start point, t=1 on the circle.
	g := NewRadialGradientBrush(5, 0, 0, 0, 10).
		AddColorStop(0, White).
		AddColorStop(1, Black)

	if got := g.ColorAt(5, 0); !near(got.R, 1) {
		t.Errorf("start point = %+v, want White", got)
	}
	if got := g.ColorAt(-10, 0); !near(got.R, 0) {
		t.Errorf("far side of circle = %+v, want Black", got)
	}
	if got := g.ColorAt(10, 0); !near(got.R, 0) {
		t.Errorf("near side of circle = %+v, want Black", got)
	}
}

func TestGradientNoStops(t *testing.T) {
	if got := NewLinearGradientBrush(0, 0, 1, 1).ColorAt(0, 0); got != Transparent {
		t.Errorf("no stops = %+v, want Transparent", got)
	}
}

func TestStrokeParams(t *testing.T) {
	s := DefaultStroke()
	if s.EffectiveMiterLimit() != DefaultMiterLimit {
		t.Errorf("miter limit = %v", s.EffectiveMiterLimit())
	}
	if (StrokeParams{}).EffectiveMiterLimit() != DefaultMiterLimit {
		t.Error("zero miter limit should fall back to the default")
	}
	if s.IsDashed() {
		t.Error("default stroke is dashed")
	}
	d := s.WithDashes(1, 4, 2)
	if !d.IsDashed() || d.DashPhase != 1 {
		t.Errorf("WithDashes = %+v", d)
	}
	c := d.Clone()
	c.Dashes[0] = 99
	if d.Dashes[0] != 4 {
		t.Error("Clone shares dash storage")
	}
	if JoinBevel.String() != "Bevel" || CapSquare.String() != "Square" {
		t.Error("unexpected String() values")
	}
}
