package draw

import (
	"math"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/text"
)

// Context is the drawing context handed to Draw handlers. It checks the
// preconditions of every call, tracks the current transform and save
// depth, and forwards the call to its Backend.
//
// A Context is only valid for the duration of the Draw call it was created
// for, and like everything else it must be used on the UI thread.
type Context struct {
	backend   Backend
	transform ui.Matrix
	saved     []ui.Matrix
}

// NewContext returns a Context drawing to b with an identity transform.
func NewContext(b Backend) *Context {
	if b == nil {
		ui.Violation("draw.NewContext", "nil backend")
	}
	return &Context{backend: b, transform: ui.Identity()}
}

// Backend returns the backend the context draws to.
func (c *Context) Backend() Backend {
	return c.backend
}

// Save pushes the current transform and clip.
func (c *Context) Save() {
	c.saved = append(c.saved, c.transform)
	c.backend.Save()
}

// Restore pops the state pushed by the matching Save. Calling Restore
// without a matching Save is a contract violation.
func (c *Context) Restore() {
	n := len(c.saved)
	if n == 0 {
		ui.Violation("draw.Context.Restore", "Restore without matching Save")
	}
	c.transform = c.saved[n-1]
	c.saved = c.saved[:n-1]
	c.backend.Restore()
}

// Depth returns the number of Saves not yet restored.
func (c *Context) Depth() int {
	return len(c.saved)
}

// Transform applies m to everything drawn afterwards, before the current
// transform. The most recently applied transform is innermost.
func (c *Context) Transform(m ui.Matrix) {
	c.transform = m.Multiply(c.transform)
	c.backend.Transform(m)
}

// CurrentTransform returns the transform from user space to the
// backend's device space.
func (c *Context) CurrentTransform() ui.Matrix {
	return c.transform
}

// Clip intersects the clip region with the fill area of path.
func (c *Context) Clip(path *ui.Path) {
	checkPath("draw.Context.Clip", path)
	c.backend.Clip(path)
}

// Fill paints the inside of path with brush.
func (c *Context) Fill(path *ui.Path, brush ui.Brush) {
	const op = "draw.Context.Fill"
	checkPath(op, path)
	checkBrush(op, brush)
	c.backend.Fill(path, brush)
}

// Stroke paints the outline of path with brush.
func (c *Context) Stroke(path *ui.Path, brush ui.Brush, params ui.StrokeParams) {
	const op = "draw.Context.Stroke"
	checkPath(op, path)
	checkBrush(op, brush)
	checkStroke(op, params)
	c.backend.Stroke(path, brush, params)
}

// Text draws layout with its top-left corner at (x, y).
func (c *Context) Text(layout *text.Layout, x, y float64) {
	if layout == nil {
		ui.Violation("draw.Context.Text", "nil layout")
	}
	c.backend.Text(layout, x, y)
}

func checkPath(op string, path *ui.Path) {
	switch {
	case path == nil:
		ui.Violation(op, "nil path")
	case !path.Ended():
		ui.Violation(op, "path is not ended")
	}
}

func checkBrush(op string, brush ui.Brush) {
	if brush == nil {
		ui.Violation(op, "nil brush")
	}
	if g, ok := brush.(*ui.LinearGradientBrush); ok && g == nil {
		ui.Violation(op, "nil brush")
	}
	if g, ok := brush.(*ui.RadialGradientBrush); ok && g == nil {
		ui.Violation(op, "nil brush")
	}
}

func checkStroke(op string, p ui.StrokeParams) {
	if !(p.Thickness > 0) || math.IsInf(p.Thickness, 0) {
		ui.Violation(op, "stroke thickness %v is not positive", p.Thickness)
	}
	if p.MiterLimit < 0 {
		ui.Violation(op, "negative miter limit %v", p.MiterLimit)
	}
	for i, d := range p.Dashes {
		if d < 0 || math.IsNaN(d) {
			ui.Violation(op, "dash %d has invalid length %v", i, d)
		}
	}
}
