package ui

import (
	"math"
	"slices"
)

// FillMode selects the rule deciding which regions of a self-intersecting
// path are inside.
type FillMode int

const (
	// FillWinding fills regions with a non-zero winding number.
	FillWinding FillMode = iota
	// FillAlternate fills regions crossed an odd number of times (even-odd).
	FillAlternate
)

// String returns the string representation of the fill mode.
func (f FillMode) String() string {
	switch f {
	case FillWinding:
		return "Winding"
	case FillAlternate:
		return "Alternate"
	default:
		return "Unknown"
	}
}

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new figure at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ArcTo draws a circular arc. The current point is already at the arc's
// start point when an ArcTo appears in a path.
type ArcTo struct {
	Arc Arc
}

func (ArcTo) isPathElement() {}

// Close closes the current figure with a line back to its start point.
type Close struct{}

func (Close) isPathElement() {}

// Arc is a normalized circular arc.
//
// Angles are in radians. The point at angle a is
// (Center.X + Radius*cos(a), Center.Y - Radius*sin(a)), so a positive Sweep
// runs counter-clockwise on screen whatever the backend's native
// convention. A negative Sweep runs clockwise. |Sweep| never exceeds 2π.
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

// PointAt returns the point on the arc's circle at angle a.
func (a Arc) PointAt(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: a.Center.X + a.Radius*cos,
		Y: a.Center.Y - a.Radius*sin,
	}
}

// StartPoint returns the first point of the arc.
func (a Arc) StartPoint() Point { return a.PointAt(a.Start) }

// EndPoint returns the last point of the arc.
func (a Arc) EndPoint() Point { return a.PointAt(a.Start + a.Sweep) }

// Beziers approximates the arc with cubic Bezier curves of at most 90
// degrees each, for backends without native arc support.
func (a Arc) Beziers() []CubicTo {
	if a.Sweep == 0 || a.Radius == 0 {
		return nil
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(a.Sweep) / maxAngle))
	step := a.Sweep / float64(n)
	// Control point distance for a circular segment of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4) * a.Radius

	out := make([]CubicTo, 0, n)
	for i := 0; i < n; i++ {
		a1 := a.Start + float64(i)*step
		a2 := a1 + step
		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)
		p0 := a.PointAt(a1)
		p3 := a.PointAt(a2)
		out = append(out, CubicTo{
			Control1: Point{X: p0.X - k*sin1, Y: p0.Y - k*cos1},
			Control2: Point{X: p3.X + k*sin2, Y: p3.Y + k*cos2},
			Point:    p3,
		})
	}
	return out
}

// Path is a vector path built from figures.
//
// A path is a strict sequence: figures are started with NewFigure or
// NewFigureWithArc, extended with LineTo, ArcTo and BezierTo, optionally
// closed with CloseFigure, and the whole path is finalized once with End.
// Only an ended path may be stroked, filled or used as a clip, and an ended
// path may not be modified. Breaking either rule is a contract violation.
type Path struct {
	mode     FillMode
	elements []PathElement
	ended    bool
	inFigure bool
	start    Point // Starting point of current figure
	current  Point // Current point
}

// NewPath creates a new empty path with the given fill mode.
func NewPath(mode FillMode) *Path {
	return &Path{
		mode:     mode,
		elements: make([]PathElement, 0, 16),
	}
}

// FillMode returns the fill mode the path was created with.
func (p *Path) FillMode() FillMode {
	return p.mode
}

// NewFigure starts a new figure at (x, y).
func (p *Path) NewFigure(x, y float64) {
	p.mutable("Path.NewFigure")
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.inFigure = true
}

// NewFigureWithArc starts a new figure at the start of an arc and draws
// the arc. Angles are in radians; sweep must be non-negative and runs
// counter-clockwise unless negative is set.
func (p *Path) NewFigureWithArc(xCenter, yCenter, radius, startAngle, sweep float64, negative bool) {
	p.mutable("Path.NewFigureWithArc")
	arc := normalizeArc("Path.NewFigureWithArc", xCenter, yCenter, radius, startAngle, sweep, negative)
	start := arc.StartPoint()
	p.elements = append(p.elements, MoveTo{Point: start}, ArcTo{Arc: arc})
	p.start = start
	p.current = arc.EndPoint()
	p.inFigure = true
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segment("Path.LineTo")
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo draws a line from the current point to the start of the arc, then
// the arc itself. See NewFigureWithArc for the angle conventions.
func (p *Path) ArcTo(xCenter, yCenter, radius, startAngle, sweep float64, negative bool) {
	p.segment("Path.ArcTo")
	arc := normalizeArc("Path.ArcTo", xCenter, yCenter, radius, startAngle, sweep, negative)
	if start := arc.StartPoint(); start != p.current {
		p.elements = append(p.elements, LineTo{Point: start})
	}
	p.elements = append(p.elements, ArcTo{Arc: arc})
	p.current = arc.EndPoint()
}

// BezierTo draws a cubic Bezier curve from the current point.
func (p *Path) BezierTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segment("Path.BezierTo")
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// CloseFigure closes the current figure. A new figure must be started
// before drawing further segments.
func (p *Path) CloseFigure() {
	p.segment("Path.CloseFigure")
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.inFigure = false
}

// AddRectangle adds a closed rectangular figure. Any open figure is left
// as it is; the rectangle does not connect to it.
func (p *Path) AddRectangle(x, y, width, height float64) {
	p.mutable("Path.AddRectangle")
	p.elements = append(p.elements,
		MoveTo{Point: Pt(x, y)},
		LineTo{Point: Pt(x+width, y)},
		LineTo{Point: Pt(x+width, y+height)},
		LineTo{Point: Pt(x, y+height)},
		Close{},
	)
	p.start = Pt(x, y)
	p.current = p.start
	p.inFigure = false
}

// End finalizes the path. After End the path can be drawn but no longer
// modified.
func (p *Path) End() {
	p.mutable("Path.End")
	p.ended = true
	Logger().Debug("path ended", "elements", len(p.elements), "mode", p.mode.String())
}

// Ended reports whether End has been called.
func (p *Path) Ended() bool {
	return p.ended
}

// Elements returns a copy of the path elements.
func (p *Path) Elements() []PathElement {
	return slices.Clone(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Transform returns a new, ended path with every point transformed by m.
// Arcs are converted to Bezier curves since an affine transform does not
// preserve circles in general.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath(p.mode)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case CubicTo:
			result.elements = append(result.elements, transformCubic(m, e))
		case ArcTo:
			for _, c := range e.Arc.Beziers() {
				result.elements = append(result.elements, transformCubic(m, c))
			}
		case Close:
			result.elements = append(result.elements, Close{})
		}
	}
	result.start = m.TransformPoint(p.start)
	result.current = m.TransformPoint(p.current)
	result.ended = true
	return result
}

// Bounds returns the tight bounding box of the path. Curves contribute
// their extreme points, not their control points.
func (p *Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}

	var cur Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
			cur = e.Point
		case LineTo:
			add(e.Point)
			cur = e.Point
		case CubicTo:
			cubicBez{cur, e.Control1, e.Control2, e.Point}.extend(add)
			cur = e.Point
		case ArcTo:
			start := e.Arc.StartPoint()
			add(start)
			cur = start
			for _, c := range e.Arc.Beziers() {
				cubicBez{cur, c.Control1, c.Control2, c.Point}.extend(add)
				cur = c.Point
			}
		}
	}

	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// mutable checks that the path can still be modified.
func (p *Path) mutable(op string) {
	if p.ended {
		Violation(op, "path already ended")
	}
}

// segment checks that the path can be extended from an open figure.
func (p *Path) segment(op string) {
	p.mutable(op)
	if !p.inFigure {
		Violation(op, "no figure is open; call NewFigure first")
	}
}

func normalizeArc(op string, xCenter, yCenter, radius, startAngle, sweep float64, negative bool) Arc {
	if radius < 0 {
		Violation(op, "negative radius %v", radius)
	}
	if sweep < 0 {
		Violation(op, "negative sweep %v; use the negative flag for clockwise arcs", sweep)
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	if negative {
		sweep = -sweep
	}
	return Arc{
		Center: Pt(xCenter, yCenter),
		Radius: radius,
		Start:  startAngle,
		Sweep:  sweep,
	}
}

func transformCubic(m Matrix, c CubicTo) CubicTo {
	return CubicTo{
		Control1: m.TransformPoint(c.Control1),
		Control2: m.TransformPoint(c.Control2),
		Point:    m.TransformPoint(c.Point),
	}
}
