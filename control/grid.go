package control

import "github.com/gogpu/ui"

// Align is the alignment of a grid cell's control within its area.
type Align int

const (
	AlignFill Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignFill:
		return "Fill"
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// At is the side of an existing grid child next to which InsertAt places
// a new one.
type At int

const (
	AtLeading At = iota
	AtTop
	AtTrailing
	AtBottom
)

// GridCell describes where a grid child is placed.
type GridCell struct {
	Left, Top    int
	XSpan, YSpan int
	HExpand      bool
	HAlign       Align
	VExpand      bool
	VAlign       Align
}

type gridChild struct {
	c    Control
	cell GridCell
}

// Grid places children in cells of a table that may span rows and
// columns.
type Grid struct {
	Base

	padded bool
	cells  []gridChild
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	g := &Grid{}
	g.init(g, "Grid", false)
	g.release = func() { g.cells = nil }
	return g
}

// Append places c at the given cell.
func (g *Grid) Append(c Control, left, top, xspan, yspan int, hexpand bool, halign Align, vexpand bool, valign Align) {
	g.add("Grid.Append", c, GridCell{
		Left: left, Top: top, XSpan: xspan, YSpan: yspan,
		HExpand: hexpand, HAlign: halign, VExpand: vexpand, VAlign: valign,
	})
}

// InsertAt places c next to existing, which must be a child of g, on the
// given side. The new cell is aligned with existing's row or column.
func (g *Grid) InsertAt(c, existing Control, at At, xspan, yspan int, hexpand bool, halign Align, vexpand bool, valign Align) {
	const op = "Grid.InsertAt"
	idx := g.index(existing)
	if idx < 0 {
		ui.Violation(op, "%s is not a child of this grid", describe(existing))
	}
	ref := g.cells[idx].cell
	cell := GridCell{
		Left: ref.Left, Top: ref.Top, XSpan: xspan, YSpan: yspan,
		HExpand: hexpand, HAlign: halign, VExpand: vexpand, VAlign: valign,
	}
	switch at {
	case AtLeading:
		cell.Left = ref.Left - xspan
	case AtTop:
		cell.Top = ref.Top - yspan
	case AtTrailing:
		cell.Left = ref.Left + ref.XSpan
	case AtBottom:
		cell.Top = ref.Top + ref.YSpan
	default:
		ui.Violation(op, "invalid side %d", at)
	}
	g.add(op, c, cell)
}

func (g *Grid) add(op string, c Control, cell GridCell) {
	if cell.XSpan < 1 || cell.YSpan < 1 {
		ui.Violation(op, "span %dx%d is not positive", cell.XSpan, cell.YSpan)
	}
	if cell.HAlign < AlignFill || cell.HAlign > AlignEnd || cell.VAlign < AlignFill || cell.VAlign > AlignEnd {
		ui.Violation(op, "invalid alignment %d/%d", cell.HAlign, cell.VAlign)
	}
	adopt(op, g, c)
	g.cells = append(g.cells, gridChild{c: c, cell: cell})
}

func (g *Grid) index(c Control) int {
	if c == nil {
		return -1
	}
	for i, gc := range g.cells {
		if gc.c == c {
			return i
		}
	}
	return -1
}

func (g *Grid) NumChildren() int { return len(g.cells) }

// Child returns the i-th child in insertion order.
func (g *Grid) Child(i int) Control {
	checkIndex("Grid.Child", i, len(g.cells))
	return g.cells[i].c
}

// Cell returns the placement of the i-th child.
func (g *Grid) Cell(i int) GridCell {
	checkIndex("Grid.Cell", i, len(g.cells))
	return g.cells[i].cell
}

// Delete detaches the i-th child.
func (g *Grid) Delete(i int) {
	checkIndex("Grid.Delete", i, len(g.cells))
	SetParent(g.cells[i].c, nil)
}

func (g *Grid) Padded() bool     { return g.padded }
func (g *Grid) SetPadded(v bool) { g.padded = v }

func (g *Grid) children() []Control {
	out := make([]Control, len(g.cells))
	for i, gc := range g.cells {
		out[i] = gc.c
	}
	return out
}

// attach places c in a new row below every existing child.
func (g *Grid) attach(c Control) {
	top := 0
	for _, gc := range g.cells {
		top = max(top, gc.cell.Top+gc.cell.YSpan)
	}
	g.Append(c, 0, top, 1, 1, false, AlignFill, false, AlignFill)
}

func (g *Grid) detach(c Control) {
	g.cells = removeControl(g.cells, c, func(gc gridChild) Control { return gc.c })
}
