package control

import "github.com/gogpu/ui"

type tabPage struct {
	name     string
	c        Control
	margined bool
}

// Tab shows one of several named pages.
type Tab struct {
	Base

	pages      []tabPage
	selected   int
	onSelected func(*Tab)
}

// NewTab creates a tab without pages.
func NewTab() *Tab {
	t := &Tab{selected: -1}
	t.init(t, "Tab", false)
	t.release = func() { t.pages = nil }
	return t
}

// Append adds a page after the existing ones.
func (t *Tab) Append(name string, c Control) {
	t.insert("Tab.Append", name, len(t.pages), c)
}

// InsertAt adds a page before the page at index before. before may equal
// NumPages to append.
func (t *Tab) InsertAt(name string, before int, c Control) {
	const op = "Tab.InsertAt"
	if before < 0 || before > len(t.pages) {
		ui.Violation(op, "index %d outside [0, %d]", before, len(t.pages))
	}
	t.insert(op, name, before, c)
}

func (t *Tab) insert(op, name string, at int, c Control) {
	adopt(op, t, c)
	t.pages = append(t.pages, tabPage{})
	copy(t.pages[at+1:], t.pages[at:])
	t.pages[at] = tabPage{name: name, c: c}
	switch {
	case t.selected < 0:
		t.selected = 0
	case at <= t.selected:
		t.selected++
	}
}

// Delete detaches the page at index i. Its control is not destroyed.
func (t *Tab) Delete(i int) {
	checkIndex("Tab.Delete", i, len(t.pages))
	SetParent(t.pages[i].c, nil)
}

func (t *Tab) NumPages() int { return len(t.pages) }

// PageName returns the name of page i.
func (t *Tab) PageName(i int) string {
	checkIndex("Tab.PageName", i, len(t.pages))
	return t.pages[i].name
}

// Child returns the control of page i.
func (t *Tab) Child(i int) Control {
	checkIndex("Tab.Child", i, len(t.pages))
	return t.pages[i].c
}

// Margined reports whether page i has a margin.
func (t *Tab) Margined(i int) bool {
	checkIndex("Tab.Margined", i, len(t.pages))
	return t.pages[i].margined
}

// SetMargined sets the margin of page i.
func (t *Tab) SetMargined(i int, v bool) {
	checkIndex("Tab.SetMargined", i, len(t.pages))
	t.pages[i].margined = v
}

// Selected returns the index of the shown page, or -1 without pages.
func (t *Tab) Selected() int { return t.selected }

// SetSelected shows page i without calling OnSelected.
func (t *Tab) SetSelected(i int) {
	checkIndex("Tab.SetSelected", i, len(t.pages))
	t.selected = i
}

// OnSelected sets the handler called when the user switches pages.
func (t *Tab) OnSelected(fn func(*Tab)) { t.onSelected = fn }

// Select switches to page i as the user would.
func (t *Tab) Select(i int) bool {
	checkIndex("Tab.Select", i, len(t.pages))
	if !t.EnabledToUser() || i == t.selected {
		return false
	}
	t.selected = i
	if t.onSelected != nil {
		t.onSelected(t)
	}
	return true
}

func (t *Tab) children() []Control {
	out := make([]Control, len(t.pages))
	for i, p := range t.pages {
		out[i] = p.c
	}
	return out
}

func (t *Tab) attach(c Control) { t.Append("", c) }

func (t *Tab) detach(c Control) {
	for i, p := range t.pages {
		if p.c != c {
			continue
		}
		t.pages = append(t.pages[:i], t.pages[i+1:]...)
		switch {
		case len(t.pages) == 0:
			t.selected = -1
		case i < t.selected || t.selected == len(t.pages):
			t.selected--
		}
		return
	}
}
