package ui

import "math"

// cubicBez is a cubic Bezier segment with its start point.
type cubicBez struct {
	p0, p1, p2, p3 Point
}

func (c cubicBez) eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.p0.X + b*c.p1.X + d*c.p2.X + e*c.p3.X,
		Y: a*c.p0.Y + b*c.p1.Y + d*c.p2.Y + e*c.p3.Y,
	}
}

// extrema returns the parameters in [0, 1] where the x or y derivative is
// zero.
func (c cubicBez) extrema() []float64 {
	d0 := c.p1.Sub(c.p0)
	d1 := c.p2.Sub(c.p1)
	d2 := c.p3.Sub(c.p2)

	ts := make([]float64, 0, 4)
	ts = append(ts, solveQuadraticUnit(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	ts = append(ts, solveQuadraticUnit(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	return ts
}

// extend grows the running bounds by the tight box of c.
func (c cubicBez) extend(add func(Point)) {
	add(c.p0)
	add(c.p3)
	for _, t := range c.extrema() {
		add(c.eval(t))
	}
}

// solveQuadraticUnit returns the real roots of a*x^2 + b*x + c in [0, 1].
// A vanishing leading coefficient degrades to the linear case.
func solveQuadraticUnit(a, b, c float64) []float64 {
	var roots []float64
	sc0, sc1 := c/a, b/a
	if !isFinite(sc0) || !isFinite(sc1) {
		if r := -c / b; isFinite(r) {
			roots = []float64{r}
		}
	} else {
		disc := sc1*sc1 - 4*sc0
		switch {
		case disc < 0:
		case disc == 0:
			roots = []float64{-0.5 * sc1}
		default:
			// Stable form: avoid cancellation between -b and sqrt(disc).
			r1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
			roots = []float64{r1}
			if r2 := sc0 / r1; isFinite(r2) {
				roots = append(roots, r2)
			}
		}
	}

	const eps = 1e-12
	out := roots[:0]
	for _, r := range roots {
		if r >= -eps && r <= 1+eps {
			out = append(out, math.Min(math.Max(r, 0), 1))
		}
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
