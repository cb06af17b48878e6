package control

import "github.com/gogpu/ui"

// Window is a top-level window holding at most one child.
type Window struct {
	Base

	title                string
	width, height        int
	x, y                 int
	hasMenubar           bool
	fullscreen           bool
	borderless           bool
	margined             bool
	resizeable           bool
	focused              bool
	child                Control
	onClosing            func(*Window) bool
	onContentSizeChanged func(*Window)
	onPositionChanged    func(*Window)
	onFocusChanged       func(*Window)
}

// NewWindow creates a hidden, resizeable window with the given content
// size.
func NewWindow(title string, width, height int, hasMenubar bool) *Window {
	w := &Window{
		title:      title,
		width:      width,
		height:     height,
		hasMenubar: hasMenubar,
		resizeable: true,
	}
	w.init(w, "Window", true)
	w.hidden = true
	w.release = func() { w.child = nil }
	return w
}

func (w *Window) Title() string         { return w.title }
func (w *Window) SetTitle(title string) { w.title = title }
func (w *Window) HasMenubar() bool      { return w.hasMenubar }

// ContentSize returns the size of the client area.
func (w *Window) ContentSize() (width, height int) {
	return w.width, w.height
}

// SetContentSize resizes the client area. It does not call the
// OnContentSizeChanged handler, which reports changes made by the user.
func (w *Window) SetContentSize(width, height int) {
	if width < 0 || height < 0 {
		ui.Violation("Window.SetContentSize", "negative size %dx%d", width, height)
	}
	w.width, w.height = width, height
}

// Position returns the window's position on screen.
func (w *Window) Position() (x, y int) {
	return w.x, w.y
}

// SetPosition moves the window without calling OnPositionChanged.
func (w *Window) SetPosition(x, y int) {
	w.x, w.y = x, y
}

func (w *Window) Fullscreen() bool     { return w.fullscreen }
func (w *Window) SetFullscreen(v bool) { w.fullscreen = v }
func (w *Window) Borderless() bool     { return w.borderless }
func (w *Window) SetBorderless(v bool) { w.borderless = v }
func (w *Window) Margined() bool       { return w.margined }
func (w *Window) SetMargined(v bool)   { w.margined = v }
func (w *Window) Resizeable() bool     { return w.resizeable }
func (w *Window) SetResizeable(v bool) { w.resizeable = v }
func (w *Window) Focused() bool        { return w.focused }
func (w *Window) Child() Control       { return w.child }

// SetChild makes c the window's content, detaching any previous child.
// A nil c only detaches.
func (w *Window) SetChild(c Control) {
	const op = "Window.SetChild"
	w.checkAlive(op)
	if c != nil {
		if c == w.child {
			return
		}
		checkAdopt(op, w, c)
	}
	if w.child != nil {
		SetParent(w.child, nil)
	}
	if c != nil {
		adopt(op, w, c)
		w.child = c
	}
}

// OnClosing sets the handler asked when the user tries to close the
// window. Returning true destroys the window; returning false keeps it.
func (w *Window) OnClosing(fn func(*Window) bool) { w.onClosing = fn }

// OnContentSizeChanged sets the handler called after the user resizes the
// window.
func (w *Window) OnContentSizeChanged(fn func(*Window)) { w.onContentSizeChanged = fn }

// OnPositionChanged sets the handler called after the user moves the
// window.
func (w *Window) OnPositionChanged(fn func(*Window)) { w.onPositionChanged = fn }

// OnFocusChanged sets the handler called when the window gains or loses
// focus.
func (w *Window) OnFocusChanged(fn func(*Window)) { w.onFocusChanged = fn }

// RequestClose delivers a close request. Without an OnClosing handler the
// window stays open. It reports whether the window was destroyed.
func (w *Window) RequestClose() bool {
	w.checkAlive("RequestClose")
	if w.onClosing == nil || !w.onClosing(w) {
		return false
	}
	// The handler may have destroyed the window itself.
	if !w.destroyed {
		Destroy(w)
	}
	return true
}

// NotifyContentSize records a size change made by the user and calls
// OnContentSizeChanged.
func (w *Window) NotifyContentSize(width, height int) {
	w.checkAlive("NotifyContentSize")
	w.width, w.height = width, height
	if w.onContentSizeChanged != nil {
		w.onContentSizeChanged(w)
	}
}

// NotifyPosition records a move made by the user and calls
// OnPositionChanged.
func (w *Window) NotifyPosition(x, y int) {
	w.checkAlive("NotifyPosition")
	w.x, w.y = x, y
	if w.onPositionChanged != nil {
		w.onPositionChanged(w)
	}
}

// NotifyFocus records a focus change and calls OnFocusChanged when the
// state changed.
func (w *Window) NotifyFocus(focused bool) {
	w.checkAlive("NotifyFocus")
	if w.focused == focused {
		return
	}
	w.focused = focused
	if w.onFocusChanged != nil {
		w.onFocusChanged(w)
	}
}

func (w *Window) children() []Control {
	if w.child == nil {
		return nil
	}
	return []Control{w.child}
}

func (w *Window) attach(c Control) { w.SetChild(c) }

func (w *Window) detach(c Control) {
	if w.child == c {
		w.child = nil
	}
}
