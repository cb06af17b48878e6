package control

import (
	"math"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/draw"
)

// AreaDrawParams are passed to AreaHandler.Draw.
type AreaDrawParams struct {
	Context *draw.Context

	// AreaWidth and AreaHeight are the size of a plain area; both are
	// zero for scrolling areas.
	AreaWidth, AreaHeight float64

	// Clip is the region that needs to be redrawn.
	Clip ui.Rect
}

// AreaHandler receives the paint and input callbacks of an Area.
type AreaHandler interface {
	Draw(a *Area, p *AreaDrawParams)
	MouseEvent(a *Area, e *MouseEvent)
	// MouseCrossed is called when the pointer enters (left false) or
	// leaves (left true) the area.
	MouseCrossed(a *Area, left bool)
	// DragBroken is called when the system interrupts a drag.
	DragBroken(a *Area)
	// KeyEvent returns whether it handled the event.
	KeyEvent(a *Area, e *KeyEvent) bool
}

// Area is a canvas drawn by an AreaHandler. A scrolling area has its own
// content size, larger than what is shown; a plain area is drawn at the
// size the host allocates to it.
type Area struct {
	Base

	handler   AreaHandler
	scrolling bool
	// content size of a scrolling area, allocated size of a plain one
	width, height float64
	visible       ui.Rect
	dirty         bool
}

// NewArea creates a plain area.
func NewArea(h AreaHandler) *Area {
	return newArea(h, false, 0, 0)
}

// NewScrollingArea creates a scrolling area with the given content size.
func NewScrollingArea(h AreaHandler, width, height float64) *Area {
	checkSize("NewScrollingArea", width, height)
	return newArea(h, true, width, height)
}

func newArea(h AreaHandler, scrolling bool, width, height float64) *Area {
	if h == nil {
		ui.Violation("NewArea", "nil handler")
	}
	a := &Area{handler: h, scrolling: scrolling, width: width, height: height, dirty: true}
	a.init(a, "Area", false)
	return a
}

func checkSize(op string, width, height float64) {
	if !(width >= 0) || !(height >= 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		ui.Violation(op, "invalid size %vx%v", width, height)
	}
}

// Scrolling reports whether the area scrolls.
func (a *Area) Scrolling() bool { return a.scrolling }

// Size returns the content size of a scrolling area or the allocated size
// of a plain one.
func (a *Area) Size() ui.Size {
	return ui.Size{Width: a.width, Height: a.height}
}

// SetSize changes the content size of a scrolling area. Calling it on a
// plain area is a contract violation.
func (a *Area) SetSize(width, height float64) {
	const op = "Area.SetSize"
	if !a.scrolling {
		ui.Violation(op, "area is not scrolling")
	}
	checkSize(op, width, height)
	a.width, a.height = width, height
	a.QueueRedrawAll()
}

// Allocate records the size the host gives a plain area.
func (a *Area) Allocate(width, height float64) {
	const op = "Area.Allocate"
	if a.scrolling {
		ui.Violation(op, "scrolling areas size themselves")
	}
	checkSize(op, width, height)
	a.width, a.height = width, height
	a.QueueRedrawAll()
}

// ScrollTo asks the host to make the given rectangle of a scrolling area
// visible.
func (a *Area) ScrollTo(x, y, width, height float64) {
	const op = "Area.ScrollTo"
	if !a.scrolling {
		ui.Violation(op, "area is not scrolling")
	}
	checkSize(op, width, height)
	a.visible = ui.Rect{X: x, Y: y, Width: width, Height: height}
}

// VisibleRect returns the rectangle last passed to ScrollTo.
func (a *Area) VisibleRect() ui.Rect { return a.visible }

// QueueRedrawAll marks the whole area for redrawing.
func (a *Area) QueueRedrawAll() { a.dirty = true }

// NeedsRedraw reports whether a redraw was queued since the last Paint.
func (a *Area) NeedsRedraw() bool { return a.dirty }

// Paint has the handler draw the clip region to b. Every Save the handler
// makes must be restored before it returns.
func (a *Area) Paint(b draw.Backend, clip ui.Rect) {
	const op = "Area.Paint"
	a.checkAlive(op)
	p := &AreaDrawParams{Context: draw.NewContext(b), Clip: clip}
	if !a.scrolling {
		p.AreaWidth, p.AreaHeight = a.width, a.height
	}
	a.handler.Draw(a, p)
	if d := p.Context.Depth(); d != 0 {
		ui.Violation(op, "Draw returned with %d unrestored saves", d)
	}
	a.dirty = false
}

// DispatchMouse delivers a mouse event. The area fills in AreaWidth and
// AreaHeight. It reports whether the event was delivered.
func (a *Area) DispatchMouse(e MouseEvent) bool {
	a.checkAlive("Area.DispatchMouse")
	if !a.EnabledToUser() {
		return false
	}
	e.AreaWidth, e.AreaHeight = 0, 0
	if !a.scrolling {
		e.AreaWidth, e.AreaHeight = a.width, a.height
	}
	a.handler.MouseEvent(a, &e)
	return true
}

// DispatchCrossed reports the pointer entering or leaving the area.
func (a *Area) DispatchCrossed(left bool) bool {
	a.checkAlive("Area.DispatchCrossed")
	if !a.EnabledToUser() {
		return false
	}
	a.handler.MouseCrossed(a, left)
	return true
}

// DispatchDragBroken reports an interrupted drag.
func (a *Area) DispatchDragBroken() {
	a.checkAlive("Area.DispatchDragBroken")
	a.handler.DragBroken(a)
}

// DispatchKey delivers a key event and returns whether the handler
// handled it. Events for an area that is not EnabledToUser are not
// handled.
func (a *Area) DispatchKey(e KeyEvent) bool {
	const op = "Area.DispatchKey"
	a.checkAlive(op)
	if !e.valid() {
		ui.Violation(op, "key event must carry exactly one of Key, ExtKey and Modifier")
	}
	if !a.EnabledToUser() {
		return false
	}
	return a.handler.KeyEvent(a, &e)
}
