package ui

import "math"

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - LinearGradientBrush: colors along the line between two points
//   - RadialGradientBrush: colors from a start point out to a circle
//
// Example usage:
//
//	ctx.Fill(path, ui.Solid(ui.Red))
//	ctx.Fill(path, ui.NewLinearGradientBrush(0, 0, 100, 0).
//	    AddColorStop(0, ui.White).
//	    AddColorStop(1, ui.Black))
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	ColorAt(x, y float64) RGBA
}

// BrushType tags the concrete kind of a Brush.
type BrushType int

const (
	// BrushSolid is a SolidBrush.
	BrushSolid BrushType = iota
	// BrushLinearGradient is a LinearGradientBrush.
	BrushLinearGradient
	// BrushRadialGradient is a RadialGradientBrush.
	BrushRadialGradient
)

// String returns the string representation of the brush type.
func (t BrushType) String() string {
	switch t {
	case BrushSolid:
		return "Solid"
	case BrushLinearGradient:
		return "LinearGradient"
	case BrushRadialGradient:
		return "RadialGradient"
	default:
		return "Unknown"
	}
}

// TypeOf returns the tag of a brush.
func TypeOf(b Brush) BrushType {
	switch b.(type) {
	case SolidBrush, *SolidBrush:
		return BrushSolid
	case *LinearGradientBrush:
		return BrushLinearGradient
	case *RadialGradientBrush:
		return BrushRadialGradient
	default:
		return -1
	}
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidHex creates a SolidBrush from a hex color string.
//
// Example:
//
//	brush := ui.SolidHex("#FF5733")
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	c := b.Color
	c.A = alpha
	return SolidBrush{Color: c}
}

// GradientStop is a color at a position in a gradient.
type GradientStop struct {
	Pos   float64 // Position in gradient, 0.0 to 1.0
	Color RGBA
}

// LinearGradientBrush represents a linear color transition between two
// points.
//
// Stops are kept in the order they were added. Positions are expected to be
// non-decreasing, but this is not enforced: stops are evaluated in the given
// order, as a backend would apply them.
type LinearGradientBrush struct {
	Start Point
	End   Point
	Stops []GradientStop
}

// NewLinearGradientBrush creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start: Pt(x0, y0),
		End:   Pt(x1, y1),
	}
}

// AddColorStop appends a color stop.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(pos float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, GradientStop{Pos: pos, Color: c})
	return g
}

func (*LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	d := g.End.Sub(g.Start)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return colorAtStop(g.Stops, 0)
	}
	p := Pt(x, y).Sub(g.Start)
	t := (p.X*d.X + p.Y*d.Y) / lenSq
	return colorAtStop(g.Stops, t)
}

// RadialGradientBrush represents a radial color transition from a start
// point to an outer circle. The start point need not be the circle's
// center.
type RadialGradientBrush struct {
	Start       Point // Where the gradient begins (t=0)
	Center      Point // Center of the outer circle (t=1)
	OuterRadius float64
	Stops       []GradientStop
}

// NewRadialGradientBrush creates a radial gradient that starts at (x0, y0)
// and ends on the circle of the given radius around (cx, cy).
func NewRadialGradientBrush(x0, y0, cx, cy, outerRadius float64) *RadialGradientBrush {
	return &RadialGradientBrush{
		Start:       Pt(x0, y0),
		Center:      Pt(cx, cy),
		OuterRadius: outerRadius,
	}
}

// AddColorStop appends a color stop.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(pos float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, GradientStop{Pos: pos, Color: c})
	return g
}

func (*RadialGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
//
// The gradient parameter t is the smallest non-negative value for which the
// point lies on the circle interpolated between the start point (radius 0)
// and the outer circle.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.OuterRadius <= 0 {
		return colorAtStop(g.Stops, 1)
	}

	d := g.Center.Sub(g.Start)
	p := Pt(x, y).Sub(g.Start)
	// |p - t*d| = t*R
	a := d.X*d.X + d.Y*d.Y - g.OuterRadius*g.OuterRadius
	b := -2 * (p.X*d.X + p.Y*d.Y)
	c := p.X*p.X + p.Y*p.Y

	var t float64
	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return colorAtStop(g.Stops, 0)
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return colorAtStop(g.Stops, 0)
		}
		sq := math.Sqrt(disc)
		t1 := (-b + sq) / (2 * a)
		t2 := (-b - sq) / (2 * a)
		t = math.Max(t1, t2)
		if t < 0 {
			t = math.Min(t1, t2)
		}
	}
	return colorAtStop(g.Stops, t)
}

// colorAtStop evaluates stops in their given order at parameter t, padding
// with the edge colors outside [0, 1].
func colorAtStop(stops []GradientStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = clamp01(t)
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		s1, s2 := stops[i-1], stops[i]
		if t > s2.Pos {
			continue
		}
		if s2.Pos <= s1.Pos {
			return s2.Color
		}
		return s1.Color.LerpLinear(s2.Color, (t-s1.Pos)/(s2.Pos-s1.Pos))
	}
	return stops[len(stops)-1].Color
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
