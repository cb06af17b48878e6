package control

type boxChild struct {
	c        Control
	stretchy bool
}

// Box lays its children out in a row or a column.
type Box struct {
	Base

	vertical bool
	padded   bool
	slots    []boxChild
}

// NewHorizontalBox creates a box that places children left to right.
func NewHorizontalBox() *Box { return newBox(false) }

// NewVerticalBox creates a box that places children top to bottom.
func NewVerticalBox() *Box { return newBox(true) }

func newBox(vertical bool) *Box {
	b := &Box{vertical: vertical}
	b.init(b, "Box", false)
	b.release = func() { b.slots = nil }
	return b
}

// Vertical reports whether the box is a column.
func (b *Box) Vertical() bool { return b.vertical }

// Append adds c as the last child. Stretchy children share the space left
// over by the others.
func (b *Box) Append(c Control, stretchy bool) {
	adopt("Box.Append", b, c)
	b.slots = append(b.slots, boxChild{c: c, stretchy: stretchy})
}

// Delete detaches the child at index i. The child is not destroyed.
func (b *Box) Delete(i int) {
	checkIndex("Box.Delete", i, len(b.slots))
	SetParent(b.slots[i].c, nil)
}

func (b *Box) NumChildren() int { return len(b.slots) }

// Child returns the child at index i.
func (b *Box) Child(i int) Control {
	checkIndex("Box.Child", i, len(b.slots))
	return b.slots[i].c
}

// Stretchy reports whether the child at index i is stretchy.
func (b *Box) Stretchy(i int) bool {
	checkIndex("Box.Stretchy", i, len(b.slots))
	return b.slots[i].stretchy
}

func (b *Box) Padded() bool     { return b.padded }
func (b *Box) SetPadded(v bool) { b.padded = v }

func (b *Box) children() []Control {
	out := make([]Control, len(b.slots))
	for i, s := range b.slots {
		out[i] = s.c
	}
	return out
}

func (b *Box) attach(c Control) { b.Append(c, false) }

func (b *Box) detach(c Control) {
	b.slots = removeControl(b.slots, c, func(s boxChild) Control { return s.c })
}
