package table

import (
	"slices"

	"github.com/gogpu/ui"
)

// SelectionMode limits how many rows can be selected.
type SelectionMode int

const (
	// SelectionNone allows no selection.
	SelectionNone SelectionMode = iota
	// SelectionZeroOrOne allows at most one selected row.
	SelectionZeroOrOne
	// SelectionOne keeps exactly one row selected while the table has
	// rows.
	SelectionOne
	// SelectionZeroOrMany allows any number of selected rows.
	SelectionZeroOrMany
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionNone:
		return "None"
	case SelectionZeroOrOne:
		return "ZeroOrOne"
	case SelectionOne:
		return "One"
	case SelectionZeroOrMany:
		return "ZeroOrMany"
	default:
		return "SelectionMode(?)"
	}
}

// SelectionMode returns the current mode.
func (t *Table) SelectionMode() SelectionMode { return t.selectionMode }

// SetSelectionMode changes the mode, trimming the selection to what the
// new mode allows without calling OnSelectionChanged. Switching to
// SelectionOne with nothing selected selects the first row.
func (t *Table) SetSelectionMode(m SelectionMode) {
	const op = "Table.SetSelectionMode"
	if m < SelectionNone || m > SelectionZeroOrMany {
		ui.Violation(op, "invalid selection mode %d", int(m))
	}
	t.selectionMode = m
	switch {
	case m == SelectionNone:
		t.selection = nil
	case m != SelectionZeroOrMany && len(t.selection) > 1:
		t.selection = t.selection[:1]
	case m == SelectionOne && len(t.selection) == 0 && t.model.NumRows() > 0:
		t.selection = []int{0}
	}
}

// Selection returns the selected rows in increasing order. The slice is a
// copy.
func (t *Table) Selection() []int {
	return slices.Clone(t.selection)
}

// SetSelection replaces the selection without calling OnSelectionChanged.
// Rows out of range, duplicates, or more rows than the mode allows are
// contract violations. An empty slice clears the selection, except in
// SelectionOne mode while the table has rows.
func (t *Table) SetSelection(rows []int) {
	const op = "Table.SetSelection"
	sel := slices.Clone(rows)
	slices.Sort(sel)
	for i, r := range sel {
		t.model.checkRow(op, r)
		if i > 0 && sel[i-1] == r {
			ui.Violation(op, "row %d selected twice", r)
		}
	}
	switch t.selectionMode {
	case SelectionNone:
		if len(sel) > 0 {
			ui.Violation(op, "selection mode is None")
		}
	case SelectionZeroOrOne:
		if len(sel) > 1 {
			ui.Violation(op, "%d rows selected in mode ZeroOrOne", len(sel))
		}
	case SelectionOne:
		if len(sel) > 1 || (len(sel) == 0 && t.model.NumRows() > 0) {
			ui.Violation(op, "%d rows selected in mode One", len(sel))
		}
	}
	if len(sel) == 0 {
		sel = nil
	}
	t.selection = sel
}

// OnSelectionChanged sets the handler called when the user changes the
// selection, when deleting rows removes selected ones, or when row
// changes move the selection of a SelectionOne table.
func (t *Table) OnSelectionChanged(fn func(*Table)) { t.onSelectionChanged = fn }

func (t *Table) changeSelection(sel []int) {
	if slices.Equal(sel, t.selection) {
		return
	}
	t.selection = sel
	if t.onSelectionChanged != nil {
		t.onSelectionChanged(t)
	}
}

func (t *Table) rowInserted(row int) {
	if t.selectionMode == SelectionOne && len(t.selection) == 0 {
		t.changeSelection([]int{row})
		return
	}
	for i, r := range t.selection {
		if r >= row {
			t.selection[i] = r + 1
		}
	}
}

func (t *Table) rowDeleted(row int) {
	if len(t.selection) == 0 {
		return
	}
	sel := make([]int, 0, len(t.selection))
	for _, r := range t.selection {
		switch {
		case r < row:
			sel = append(sel, r)
		case r > row:
			sel = append(sel, r-1)
		}
	}
	if len(sel) == len(t.selection) {
		t.selection = sel
		return
	}
	switch rows := t.model.NumRows(); {
	case len(sel) > 0:
	case t.selectionMode == SelectionOne && rows > 0:
		sel = append(sel, min(row, rows-1))
	default:
		sel = nil
	}
	t.changeSelection(sel)
}
