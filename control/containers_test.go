package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {
	b := NewHorizontalBox()
	assert.False(t, b.Vertical())
	l1, l2, l3 := NewLabel("1"), NewLabel("2"), NewLabel("3")
	b.Append(l1, false)
	b.Append(l2, true)
	b.Append(l3, false)

	assert.True(t, b.Stretchy(1))
	assert.False(t, b.Stretchy(2))

	b.Delete(1)
	assert.Equal(t, 2, b.NumChildren())
	assert.Equal(t, Control(l3), b.Child(1))
	assert.False(t, b.Stretchy(1))
	assert.Nil(t, l2.Parent())
	assert.False(t, l2.Destroyed(), "Delete detaches without destroying")

	b.SetPadded(true)
	assert.True(t, b.Padded())

	assertViolation(t, func() { b.Delete(2) })
	assertViolation(t, func() { b.Child(-1) })
}

func TestTabPagesAndSelection(t *testing.T) {
	tab := NewTab()
	assert.Equal(t, -1, tab.Selected())

	a, b, c := NewLabel("a"), NewLabel("b"), NewLabel("c")
	tab.Append("A", a)
	assert.Equal(t, 0, tab.Selected())
	tab.Append("C", c)
	tab.InsertAt("B", 1, b)
	assert.Equal(t, []string{"A", "B", "C"}, []string{tab.PageName(0), tab.PageName(1), tab.PageName(2)})

	tab.SetSelected(2)
	tab.InsertAt("Z", 0, NewLabel("z"))
	assert.Equal(t, 3, tab.Selected(), "selection follows its page")

	tab.Delete(0)
	assert.Equal(t, 2, tab.Selected())
	tab.Delete(2) // the selected last page
	assert.Equal(t, 1, tab.Selected())

	tab.SetMargined(0, true)
	assert.True(t, tab.Margined(0))
	assert.False(t, tab.Margined(1))

	var selected []int
	tab.OnSelected(func(t *Tab) { selected = append(selected, t.Selected()) })
	assert.True(t, tab.Select(0))
	assert.False(t, tab.Select(0), "already selected")
	tab.Disable()
	assert.False(t, tab.Select(1))
	assert.Equal(t, []int{0}, selected)

	assertViolation(t, func() { tab.InsertAt("x", 5, NewLabel("x")) })
}

func TestForm(t *testing.T) {
	f := NewForm()
	name, age := NewEntry(), NewEntry()
	f.Append("Name", name, false)
	f.Append("Age", age, true)

	require.Equal(t, 2, f.NumChildren())
	assert.Equal(t, "Age", f.Label(1))
	assert.True(t, f.Stretchy(1))

	f.Delete(0)
	assert.Equal(t, "Age", f.Label(0))
	assert.Equal(t, Control(age), f.Child(0))
	assert.Nil(t, name.Parent())
}

func TestGridInsertAt(t *testing.T) {
	g := NewGrid()
	center := NewLabel("center")
	g.Append(center, 2, 2, 2, 1, false, AlignFill, false, AlignFill)

	tests := []struct {
		at       At
		wantLeft int
		wantTop  int
	}{
		{AtLeading, 1, 2},
		{AtTop, 2, 1},
		{AtTrailing, 4, 2},
		{AtBottom, 2, 3},
	}
	for i, tt := range tests {
		g.InsertAt(NewLabel("x"), center, tt.at, 1, 1, true, AlignCenter, false, AlignEnd)
		cell := g.Cell(i + 1)
		assert.Equal(t, tt.wantLeft, cell.Left, "at %d", tt.at)
		assert.Equal(t, tt.wantTop, cell.Top, "at %d", tt.at)
		assert.True(t, cell.HExpand)
		assert.Equal(t, AlignCenter, cell.HAlign)
	}

	assertViolation(t, func() {
		g.InsertAt(NewLabel("y"), NewLabel("stranger"), AtTop, 1, 1, false, AlignFill, false, AlignFill)
	})
	assertViolation(t, func() { g.Append(NewLabel("z"), 0, 0, 0, 1, false, AlignFill, false, AlignFill) })
	assertViolation(t, func() { g.Append(NewLabel("z"), 0, 0, 1, 1, false, Align(9), false, AlignFill) })
	require.NoError(t, Verify(g))
}

func TestSingleChildContainersReplace(t *testing.T) {
	w := NewWindow("w", 10, 10, false)
	first, second := NewLabel("1"), NewLabel("2")
	w.SetChild(first)
	w.SetChild(second)
	assert.Nil(t, first.Parent())
	assert.Equal(t, Control(second), w.Child())

	w.SetChild(nil)
	assert.Nil(t, w.Child())
	assert.Nil(t, second.Parent())
}

func TestSetChildKeepsOldChildOnViolation(t *testing.T) {
	box := NewVerticalBox()
	taken := NewLabel("taken")
	box.Append(taken, false)

	w := NewWindow("w", 10, 10, false)
	g := NewGroup("g")
	wChild, gChild := NewLabel("w"), NewLabel("g")
	w.SetChild(wChild)
	g.SetChild(gChild)

	assertViolation(t, func() { w.SetChild(taken) })
	assertViolation(t, func() { g.SetChild(taken) })
	assertViolation(t, func() { g.SetChild(w) })
	assert.Equal(t, Control(wChild), w.Child())
	assert.Equal(t, Control(w), wChild.Parent())
	assert.Equal(t, Control(gChild), g.Child())
	assert.Equal(t, Control(g), gChild.Parent())
	assert.Equal(t, Control(box), taken.Parent())

	w.SetChild(wChild)
	assert.Equal(t, Control(wChild), w.Child(), "setting the same child is a no-op")
}

func TestWindowClosing(t *testing.T) {
	w := NewWindow("w", 10, 10, false)
	assert.False(t, w.RequestClose(), "no handler keeps the window")

	allow := false
	w.OnClosing(func(*Window) bool { return allow })
	assert.False(t, w.RequestClose())
	assert.False(t, w.Destroyed())

	allow = true
	assert.True(t, w.RequestClose())
	assert.True(t, w.Destroyed())
}

func TestWindowNotifications(t *testing.T) {
	w := NewWindow("w", 640, 480, true)
	assert.True(t, w.HasMenubar())
	assert.True(t, w.Resizeable())

	var events []string
	w.OnContentSizeChanged(func(*Window) { events = append(events, "size") })
	w.OnPositionChanged(func(*Window) { events = append(events, "pos") })
	w.OnFocusChanged(func(w *Window) {
		if w.Focused() {
			events = append(events, "focus")
		} else {
			events = append(events, "blur")
		}
	})

	w.SetContentSize(800, 600)
	w.SetPosition(5, 5)
	assert.Empty(t, events, "programmatic changes do not notify")

	w.NotifyContentSize(1024, 768)
	w.NotifyPosition(10, 20)
	w.NotifyFocus(true)
	w.NotifyFocus(true)
	w.NotifyFocus(false)
	assert.Equal(t, []string{"size", "pos", "focus", "blur"}, events)

	width, height := w.ContentSize()
	assert.Equal(t, 1024, width)
	assert.Equal(t, 768, height)
	x, y := w.Position()
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)

	assertViolation(t, func() { w.SetContentSize(-1, 10) })
}

func TestHandlersLastRegistrationWins(t *testing.T) {
	b := NewButton("b")
	var got []string
	b.OnClicked(func(*Button) { got = append(got, "first") })
	b.OnClicked(func(*Button) { got = append(got, "second") })
	assert.True(t, b.Click())
	assert.Equal(t, []string{"second"}, got)

	b.OnClicked(nil)
	assert.True(t, b.Click())
	assert.Equal(t, []string{"second"}, got)
}

func TestLeafInput(t *testing.T) {
	box := NewVerticalBox()
	cb := NewCheckbox("check")
	e := NewEntry()
	box.Append(cb, false)
	box.Append(e, false)

	toggles := 0
	cb.OnToggled(func(*Checkbox) { toggles++ })
	cb.SetChecked(true)
	assert.Zero(t, toggles)
	assert.True(t, cb.Toggle())
	assert.False(t, cb.Checked())
	assert.Equal(t, 1, toggles)

	changes := 0
	e.OnChanged(func(*Entry) { changes++ })
	e.SetText("programmatic")
	assert.True(t, e.Edit("typed"))
	assert.Equal(t, "typed", e.Text())
	e.SetReadOnly(true)
	assert.False(t, e.Edit("ignored"))
	e.SetReadOnly(false)

	box.Disable()
	assert.False(t, cb.Toggle())
	assert.False(t, e.Edit("ignored"))
	assert.Equal(t, 1, toggles)
	assert.Equal(t, 1, changes)
	assert.Equal(t, "typed", e.Text())

	assert.Equal(t, EntryPassword, NewPasswordEntry().Kind())
	assert.Equal(t, EntrySearch, NewSearchEntry().Kind())
}
