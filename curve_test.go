package ui

import (
	"math"
	"slices"
	"testing"
)

func TestSolveQuadraticUnit(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -1, 0.1875, []float64{0.25, 0.75}},
		{"one outside", 1, -0.5, -0.5, []float64{1}},
		{"double root", 1, -1, 0.25, []float64{0.5}},
		{"complex", 1, 0, 1, nil},
		{"linear", 0, 2, -1, []float64{0.5}},
		{"outside", 1, -5, 6, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solveQuadraticUnit(tt.a, tt.b, tt.c)
			slices.Sort(got)
			if len(got) != len(tt.want) {
				t.Fatalf("roots = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Errorf("roots = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCubicEval(t *testing.T) {
	c := cubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(5, 7.5)},
		{1, Pt(10, 0)},
	}
	for _, tt := range tests {
		if got := c.eval(tt.t); !nearPoint(got, tt.want) {
			t.Errorf("eval(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPathBoundsAreTight(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		want  Rect
	}{
		{
			name: "arch",
			build: func(p *Path) {
				p.NewFigure(0, 0)
				p.BezierTo(0, 10, 10, 10, 10, 0)
			},
			want: Rect{Width: 10, Height: 7.5},
		},
		{
			name: "circle",
			build: func(p *Path) {
				p.NewFigureWithArc(0, 0, 10, 0, 2*math.Pi, false)
			},
			want: Rect{X: -10, Y: -10, Width: 20, Height: 20},
		},
		{
			name: "quarter arc",
			build: func(p *Path) {
				p.NewFigureWithArc(0, 0, 10, 0, math.Pi/2, false)
			},
			want: Rect{X: 0, Y: -10, Width: 10, Height: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath(FillWinding)
			tt.build(p)
			p.End()
			b := p.Bounds()
			if !near(b.X, tt.want.X) || !near(b.Y, tt.want.Y) ||
				!near(b.Width, tt.want.Width) || !near(b.Height, tt.want.Height) {
				t.Errorf("Bounds() = %+v, want %+v", b, tt.want)
			}
		})
	}
}
