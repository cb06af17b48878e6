package app

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/control"
	"github.com/gogpu/ui/text"
)

// ErrNotInitialized is returned by loop entry points called before Init or
// after Uninit.
var ErrNotInitialized = errors.New("app: not initialized")

type state int

const (
	stateNew state = iota
	stateRunning
	stateDone
)

// Context is one host event loop.
type Context struct {
	opts   options
	driver Driver
	state  state
	font   text.FontDescriptor

	stepping   bool
	quitting   atomic.Bool
	shouldQuit func() bool
	baseline   int64
	tracked    map[*control.Window]struct{}

	mu     sync.Mutex
	queue  []func()
	timers map[*Timer]struct{}
	closed bool
}

// New creates a context. Nothing touches the platform until Init.
func New(opts ...Option) *Context {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.driver == "" {
		o.driver = o.cfg.Driver
	}
	return &Context{
		opts:    o,
		tracked: make(map[*control.Window]struct{}),
		timers:  make(map[*Timer]struct{}),
	}
}

// Init validates the configuration and starts the driver. A context can be
// initialized only once.
func (c *Context) Init() error {
	const op = "Context.Init"
	if c.state != stateNew {
		ui.Violation(op, "Init called twice")
	}
	cfg := c.opts.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch {
	case c.opts.logger != nil:
		ui.SetLogger(c.opts.logger)
	case cfg.LogLevel != "":
		l, err := cfg.Logger()
		if err != nil {
			return err
		}
		ui.SetLogger(l)
	}
	font, err := cfg.ControlFont.Descriptor()
	if err != nil {
		return err
	}
	d, err := newDriver(c.opts.driver)
	if err != nil {
		return err
	}
	if err := d.Init(); err != nil {
		return fmt.Errorf("app: init driver %q: %w", c.opts.driver, err)
	}

	c.font = font
	c.mu.Lock()
	c.driver = d
	c.queue = append(make([]func(), 0, cfg.QueueCapacity), c.queue...)
	c.mu.Unlock()
	c.baseline = control.LiveCount()
	c.state = stateRunning
	ui.Logger().Info("app initialized", "driver", c.opts.driver)
	return nil
}

// Uninit stops timers, drops queued work and releases the driver.
// Controls still alive are reported as leaked.
func (c *Context) Uninit() {
	const op = "Context.Uninit"
	switch c.state {
	case stateNew:
		ui.Violation(op, "Uninit before Init")
	case stateDone:
		ui.Violation(op, "Uninit called twice")
	}
	c.mu.Lock()
	c.closed = true
	for t := range c.timers {
		t.t.Stop()
	}
	c.timers = nil
	dropped := len(c.queue)
	c.queue = nil
	c.mu.Unlock()

	if leaked := control.LiveCount() - c.baseline; leaked > 0 {
		ui.Logger().Warn("controls not destroyed before Uninit", "count", leaked)
	}
	c.driver.Uninit()
	c.state = stateDone
	ui.Logger().Info("app uninitialized", "dropped", dropped)
}

// Initialized reports whether the context is between Init and Uninit.
func (c *Context) Initialized() bool { return c.state == stateRunning }

// ControlFont returns the font controls use by default.
func (c *Context) ControlFont() text.FontDescriptor {
	if c.state == stateNew {
		f, err := c.opts.cfg.ControlFont.Descriptor()
		if err != nil {
			return text.DefaultFont()
		}
		return f
	}
	return c.font
}

// Main runs the loop until Quit.
func (c *Context) Main() error {
	if err := c.MainSteps(); err != nil {
		return err
	}
	for c.MainStep(true) {
	}
	return nil
}

// MainSteps prepares the context for a host that calls MainStep from its
// own loop.
func (c *Context) MainSteps() error {
	if c.state != stateRunning {
		return ErrNotInitialized
	}
	c.stepping = true
	return nil
}

// MainStep runs one loop iteration: it pumps the driver, blocking for
// events when wait is set and no work is queued, then runs the work queued
// so far in FIFO order. Work queued while the batch runs waits for the
// next step. MainStep reports whether the loop should keep going.
func (c *Context) MainStep(wait bool) bool {
	const op = "Context.MainStep"
	if c.state != stateRunning || !c.stepping {
		ui.Violation(op, "MainStep without Init and MainSteps")
	}
	if c.quitting.Load() {
		return false
	}
	if c.driver.Pump(wait && c.pending() == 0) {
		c.RequestQuit()
	}
	c.drain()
	return !c.quitting.Load()
}

func (c *Context) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

func (c *Context) drain() {
	c.mu.Lock()
	batch := c.queue
	c.queue = make([]func(), 0, max(c.opts.cfg.QueueCapacity, len(batch)))
	c.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	if len(batch) > 0 {
		ui.Logger().Debug("main queue drained", "count", len(batch))
	}
}

// Quit makes the loop stop after the current step. It may be called from
// any goroutine.
func (c *Context) Quit() {
	if c.quitting.Swap(true) {
		return
	}
	c.wake()
	ui.Logger().Debug("quit requested")
}

func (c *Context) wake() {
	c.mu.Lock()
	d := c.driver
	c.mu.Unlock()
	if d != nil {
		d.Wake()
	}
}

// Quitting reports whether Quit was called.
func (c *Context) Quitting() bool { return c.quitting.Load() }

// OnShouldQuit sets the handler RequestQuit consults. Returning false
// vetoes the quit.
func (c *Context) OnShouldQuit(fn func() bool) { c.shouldQuit = fn }

// RequestQuit asks to quit as a Quit menu item would: the OnShouldQuit
// handler may veto. It reports whether the loop is quitting.
func (c *Context) RequestQuit() bool {
	if c.shouldQuit != nil && !c.shouldQuit() {
		ui.Logger().Debug("quit vetoed")
		return false
	}
	c.Quit()
	return true
}

// QueueMain schedules fn to run on the loop goroutine. It may be called
// from any goroutine. Work queued after Uninit is dropped.
func (c *Context) QueueMain(fn func()) {
	if fn == nil {
		ui.Violation("Context.QueueMain", "nil function")
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		ui.Logger().Warn("QueueMain after Uninit; dropped")
		return
	}
	c.queue = append(c.queue, fn)
	c.mu.Unlock()
	c.wake()
}

// Timer is a repeating callback created by Context.Timer.
type Timer struct {
	ctx     *Context
	t       *time.Timer
	d       time.Duration
	fn      func() bool
	stopped bool
}

// Timer runs fn on the loop goroutine every d until fn returns false or
// the timer is stopped. It may be called from any goroutine.
func (c *Context) Timer(d time.Duration, fn func() bool) *Timer {
	const op = "Context.Timer"
	if d <= 0 {
		ui.Violation(op, "non-positive interval %v", d)
	}
	if fn == nil {
		ui.Violation(op, "nil function")
	}
	t := &Timer{ctx: c, d: d, fn: fn}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		ui.Logger().Warn("Timer after Uninit; ignored")
		t.stopped = true
		return t
	}
	c.timers[t] = struct{}{}
	t.t = time.AfterFunc(d, t.fire)
	return t
}

// fire runs on the runtime timer goroutine and hands the callback to the
// loop.
func (t *Timer) fire() {
	t.ctx.QueueMain(func() {
		if t.stopped {
			return
		}
		if !t.fn() {
			t.Stop()
			return
		}
		t.ctx.mu.Lock()
		defer t.ctx.mu.Unlock()
		if !t.stopped && !t.ctx.closed {
			t.t.Reset(t.d)
		}
	})
}

// Stop cancels the timer. Call it on the loop goroutine.
func (t *Timer) Stop() {
	c := t.ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	t.stopped = true
	if t.t != nil {
		t.t.Stop()
	}
	delete(c.timers, t)
}

// Track closes the loop once every tracked window is destroyed, typically
// by RequestClose.
func (c *Context) Track(w *control.Window) {
	const op = "Context.Track"
	if w == nil || w.Destroyed() {
		ui.Violation(op, "nil or destroyed window")
	}
	if _, dup := c.tracked[w]; dup {
		ui.Violation(op, "window %q tracked twice", w.Title())
	}
	c.tracked[w] = struct{}{}
	control.AfterDestroy(w, func() {
		delete(c.tracked, w)
		if len(c.tracked) == 0 {
			ui.Logger().Debug("last window destroyed")
			c.Quit()
		}
	})
}
