package control

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/ui"
)

// Control is the capability set every widget satisfies.
type Control interface {
	// TypeName returns the widget type, such as "Button", so that
	// backends can downcast safely.
	TypeName() string

	// Parent returns the parent control, or nil for a detached control
	// or a top-level window.
	Parent() Control

	// Toplevel reports whether the control is a top-level window.
	Toplevel() bool

	Visible() bool
	Show()
	Hide()

	// Enabled returns the intrinsic enabled flag.
	Enabled() bool
	Enable()
	Disable()

	// EnabledToUser reports whether the control and all its ancestors are
	// enabled.
	EnabledToUser() bool

	Destroyed() bool

	base() *Base
}

var live atomic.Int64

// LiveCount returns the number of controls created and not yet destroyed.
func LiveCount() int64 {
	return live.Load()
}

// Base holds the state shared by every control. Widgets embed it.
type Base struct {
	self      Control
	typeName  string
	toplevel  bool
	parent    Control
	hidden    bool
	disabled  bool
	destroyed bool

	release    func()
	afterHooks []func()
}

func (b *Base) init(self Control, typeName string, toplevel bool) {
	b.self = self
	b.typeName = typeName
	b.toplevel = toplevel
	live.Add(1)
	ui.Logger().Debug("control created", "type", typeName)
}

// Init prepares b for a widget defined in another package. self is the
// widget that embeds b; typeName is what TypeName reports. Init must be
// called once, from the widget's constructor.
func (b *Base) Init(self Control, typeName string) {
	if self == nil || self.base() != b {
		ui.Violation("Base.Init", "self must embed this Base")
	}
	b.init(self, typeName, false)
}

func (b *Base) base() *Base { return b }

// TypeName implements Control.
func (b *Base) TypeName() string { return b.typeName }

// Parent implements Control.
func (b *Base) Parent() Control { return b.parent }

// Toplevel implements Control.
func (b *Base) Toplevel() bool { return b.toplevel }

// Visible implements Control.
func (b *Base) Visible() bool { return !b.hidden }

// Show implements Control.
func (b *Base) Show() {
	b.checkAlive("Show")
	b.hidden = false
}

// Hide implements Control.
func (b *Base) Hide() {
	b.checkAlive("Hide")
	b.hidden = true
}

// Enabled implements Control.
func (b *Base) Enabled() bool { return !b.disabled }

// Enable implements Control. Descendants keep their own flags.
func (b *Base) Enable() {
	b.checkAlive("Enable")
	b.disabled = false
}

// Disable implements Control. Descendants keep their own flags but are no
// longer EnabledToUser.
func (b *Base) Disable() {
	b.checkAlive("Disable")
	b.disabled = true
}

// EnabledToUser implements Control.
func (b *Base) EnabledToUser() bool {
	for c := b.self; c != nil; c = c.Parent() {
		if !c.Enabled() {
			return false
		}
	}
	return true
}

// Destroyed implements Control.
func (b *Base) Destroyed() bool { return b.destroyed }

func (b *Base) checkAlive(op string) {
	if b.destroyed {
		ui.Violation(b.typeName+"."+op, "use of destroyed %s", b.typeName)
	}
}

// container is implemented by controls that own children.
type container interface {
	Control
	// children returns a copy of the owned children in order.
	children() []Control
	// attach places c, which has no parent, at the container's default
	// position.
	attach(c Control)
	// detach removes c's slot. The parent link is cleared by the caller.
	detach(c Control)
}

func describe(c Control) string {
	if c == nil {
		return "<nil>"
	}
	return c.TypeName()
}

// adopt links c to parent after checking that c may be placed there.
// Containers call it before recording the child.
func adopt(op string, parent, c Control) {
	checkAdopt(op, parent, c)
	c.base().parent = parent
}

// checkAdopt validates giving c the parent without linking them.
func checkAdopt(op string, parent, c Control) {
	if c == nil {
		ui.Violation(op, "nil child")
	}
	parent.base().checkAlive(op)
	cb := c.base()
	cb.checkAlive(op)
	if c.Toplevel() {
		ui.Violation(op, "top-level %s cannot have a parent", c.TypeName())
	}
	if cb.parent != nil {
		ui.Violation(op, "%s already belongs to %s; detach it first", c.TypeName(), describe(cb.parent))
	}
	for a := parent; a != nil; a = a.Parent() {
		if a == c {
			ui.Violation(op, "%s cannot contain itself", c.TypeName())
		}
	}
}

// SetParent moves c under parent, detaching it from its current parent
// first. A nil parent only detaches. The child is placed at parent's
// default position: appended for multi-child containers, as the child of
// single-child ones.
//
// Giving a top-level control a parent, or choosing a parent that cannot
// hold children, is a contract violation. Setting the current parent
// again is a no-op.
func SetParent(c, parent Control) {
	const op = "control.SetParent"
	if c == nil {
		ui.Violation(op, "nil control")
	}
	c.base().checkAlive(op)
	if c.Toplevel() {
		ui.Violation(op, "top-level %s cannot have a parent", c.TypeName())
	}
	if c.Parent() == parent {
		return
	}
	var target container
	if parent != nil {
		var ok bool
		if target, ok = parent.(container); !ok {
			ui.Violation(op, "%s cannot hold children", parent.TypeName())
		}
		for a := parent; a != nil; a = a.Parent() {
			if a == c {
				ui.Violation(op, "%s cannot contain itself", c.TypeName())
			}
		}
	}
	detachFromParent(c)
	if target != nil {
		target.attach(c)
	}
}

func detachFromParent(c Control) {
	cb := c.base()
	if cb.parent == nil {
		return
	}
	if p, ok := cb.parent.(container); ok {
		p.detach(c)
	}
	cb.parent = nil
}

// Destroy releases c and, for containers, every child it owns.
//
// Destroying a control that still has a parent, or one that was already
// destroyed, is a contract violation.
func Destroy(c Control) {
	const op = "control.Destroy"
	if c == nil {
		ui.Violation(op, "nil control")
	}
	b := c.base()
	if b.destroyed {
		ui.Violation(op, "%s destroyed twice", c.TypeName())
	}
	if b.parent != nil {
		ui.Violation(op, "%s is still a child of %s; detach it before destroying", c.TypeName(), b.parent.TypeName())
	}
	if ct, ok := c.(container); ok {
		for _, ch := range ct.children() {
			ch.base().parent = nil
			Destroy(ch)
		}
	}
	if b.release != nil {
		b.release()
	}
	b.destroyed = true
	live.Add(-1)
	ui.Logger().Debug("control destroyed", "type", b.typeName)

	hooks := b.afterHooks
	b.afterHooks = nil
	for _, fn := range hooks {
		fn()
	}
}

// AfterDestroy registers fn to run once c has been destroyed. Unlike
// event handlers, any number of functions may be registered.
func AfterDestroy(c Control, fn func()) {
	b := c.base()
	b.checkAlive("AfterDestroy")
	b.afterHooks = append(b.afterHooks, fn)
}

// Children returns the children of c in order, or nil if c is not a
// container.
func Children(c Control) []Control {
	if ct, ok := c.(container); ok {
		return ct.children()
	}
	return nil
}

// ErrInconsistentTree is wrapped by the errors Verify returns.
var ErrInconsistentTree = errors.New("control: inconsistent tree")

// Verify checks the hierarchy rooted at c: every child links back to its
// container, appears once, and is alive.
func Verify(c Control) error {
	seen := make(map[Control]bool)
	var walk func(c Control) error
	walk = func(c Control) error {
		if c.Destroyed() {
			return fmt.Errorf("%w: %s is destroyed", ErrInconsistentTree, c.TypeName())
		}
		if seen[c] {
			return fmt.Errorf("%w: %s appears twice", ErrInconsistentTree, c.TypeName())
		}
		seen[c] = true
		for _, ch := range Children(c) {
			if ch.Parent() != c {
				return fmt.Errorf("%w: %s in %s has parent %s",
					ErrInconsistentTree, ch.TypeName(), c.TypeName(), describe(ch.Parent()))
			}
			if err := walk(ch); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(c)
}

func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		ui.Violation(op, "index %d outside [0, %d)", i, n)
	}
}

// removeControl deletes the first occurrence of c from a slot slice.
func removeControl[T any](slots []T, c Control, get func(T) Control) []T {
	for i, s := range slots {
		if get(s) == c {
			return append(slots[:i], slots[i+1:]...)
		}
	}
	return slots
}
