package table

import (
	"testing"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		assert.True(t, ui.IsContractError(r), "expected contract violation, got %v", r)
	}()
	fn()
}

const (
	colName = iota
	colCount
	colDone
	colBackground
	colEditable
	colIcon
	colAction
	numCols
)

type edit struct {
	row, col int
	v        Value
}

type task struct {
	name     string
	count    int
	done     bool
	editable bool
}

type taskHandler struct {
	tasks     []task
	typeCalls int
	edits     []edit
	icon      *ui.Image
}

func (h *taskHandler) NumColumns(*Model) int { return numCols }
func (h *taskHandler) NumRows(*Model) int    { return len(h.tasks) }

func (h *taskHandler) ColumnType(_ *Model, col int) ValueType {
	h.typeCalls++
	switch col {
	case colName, colAction:
		return TypeString
	case colBackground:
		return TypeColor
	case colIcon:
		return TypeImage
	default:
		return TypeInt
	}
}

func (h *taskHandler) CellValue(_ *Model, row, col int) Value {
	tk := h.tasks[row]
	switch col {
	case colName:
		return String(tk.name)
	case colCount:
		return Int(tk.count)
	case colDone:
		return Bool(tk.done)
	case colBackground:
		if row%2 == 1 {
			return nil
		}
		return Color(ui.Green)
	case colEditable:
		return Bool(tk.editable)
	case colIcon:
		return ImageValue{Image: h.icon}
	default:
		return String("Run")
	}
}

func (h *taskHandler) SetCellValue(_ *Model, row, col int, v Value) {
	h.edits = append(h.edits, edit{row, col, v})
	switch col {
	case colName:
		h.tasks[row].name = TextOf(v)
	case colDone:
		h.tasks[row].done = IntOf(v) != 0
	}
}

func newTasks() (*taskHandler, *Model) {
	h := &taskHandler{
		tasks: []task{
			{name: "write", count: 3, editable: true},
			{name: "test", count: 50, done: true},
			{name: "ship", count: -1},
		},
		icon: ui.NewImage(16, 16),
	}
	return h, NewModel(h)
}

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, "x", TextOf(String("x")))
	assert.Equal(t, 7, IntOf(Int(7)))
	assert.Equal(t, ui.Red, ColorOf(Color(ui.Red)))
	img := ui.NewImage(1, 1)
	assert.Same(t, img, ImageOf(ImageValue{Image: img}))
	assert.Equal(t, Int(1), Bool(true))
	assert.Equal(t, Int(0), Bool(false))
	assert.Equal(t, "Color", TypeColor.String())
	assert.Equal(t, "ValueType(9)", ValueType(9).String())

	tests := []struct {
		name string
		fn   func()
	}{
		{"TextOf Int", func() { TextOf(Int(1)) }},
		{"IntOf String", func() { IntOf(String("1")) }},
		{"ColorOf nil", func() { ColorOf(nil) }},
		{"ImageOf Color", func() { ImageOf(Color(ui.Black)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertViolation(t, tt.fn)
		})
	}
}

type intHandler struct{ sets int }

func (intHandler) NumColumns(*Model) int                   { return 1 }
func (intHandler) ColumnType(*Model, int) ValueType        { return TypeInt }
func (intHandler) NumRows(*Model) int                      { return 3 }
func (intHandler) CellValue(_ *Model, row, _ int) Value    { return Int(row * 10) }
func (h *intHandler) SetCellValue(*Model, int, int, Value) { h.sets++ }

func TestIntColumnRejectsText(t *testing.T) {
	h := &intHandler{}
	m := NewModel(h)
	require.Equal(t, 3, m.NumRows())

	v := m.CellValue(1, 0)
	assert.Equal(t, TypeInt, v.Type())
	assert.Equal(t, 10, IntOf(v))

	assertViolation(t, func() { m.SetCellValue(1, 0, String("ten")) })
	assert.Zero(t, h.sets)

	m.SetCellValue(1, 0, Int(11))
	assert.Equal(t, 1, h.sets)
}

type badHandler struct{ v Value }

func (badHandler) NumColumns(*Model) int                { return 1 }
func (badHandler) ColumnType(*Model, int) ValueType     { return TypeString }
func (badHandler) NumRows(*Model) int                   { return 1 }
func (h badHandler) CellValue(*Model, int, int) Value   { return h.v }
func (badHandler) SetCellValue(*Model, int, int, Value) {}

func TestCellValueTagChecked(t *testing.T) {
	assertViolation(t, func() { NewModel(badHandler{v: Int(1)}).CellValue(0, 0) })
	assertViolation(t, func() { NewModel(badHandler{v: nil}).CellValue(0, 0) })
	assert.Equal(t, "ok", TextOf(NewModel(badHandler{v: String("ok")}).CellValue(0, 0)))
}

func TestModelBasics(t *testing.T) {
	h, m := newTasks()
	assert.Equal(t, numCols, m.NumColumns())

	assert.Equal(t, TypeString, m.ColumnType(colName))
	assert.Equal(t, TypeString, m.ColumnType(colName))
	assert.Equal(t, 1, h.typeCalls, "column types are cached")

	assert.Nil(t, m.CellValue(1, colBackground), "color columns may be empty")
	assert.Equal(t, Color(ui.Green), m.CellValue(0, colBackground))

	assertViolation(t, func() { m.CellValue(3, colName) })
	assertViolation(t, func() { m.CellValue(0, numCols) })
	assertViolation(t, func() { m.ColumnType(-1) })
	assertViolation(t, func() { NewModel(nil) })
}

func TestModelNotifications(t *testing.T) {
	h, m := newTasks()

	h.tasks = append(h.tasks, task{name: "celebrate"})
	m.RowInserted(3)
	assert.Equal(t, 4, m.NumRows())

	h.tasks = append([]task{{name: "plan"}}, h.tasks...)
	m.RowInserted(0)

	h.tasks[2].count = 99
	m.RowChanged(2)

	h.tasks = h.tasks[1:]
	m.RowDeleted(0)
	assert.Equal(t, 4, m.NumRows())

	// A row added without a notification is caught at the next cell read.
	h.tasks = append(h.tasks, task{name: "a"}, task{name: "b"})
	m.RowInserted(4)
	assertViolation(t, func() { m.CellValue(0, colName) })
	m.RowInserted(5)
	assert.Equal(t, String("a"), m.CellValue(4, colName))

	assertViolation(t, func() { m.RowInserted(8) })
	assertViolation(t, func() { m.RowDeleted(6) })

	h.tasks = h.tasks[:4]
	m.RowDeleted(5)
	assertViolation(t, func() { m.SetCellValue(0, colName, String("x")) })
}

func TestModelBatchedNotifications(t *testing.T) {
	h, m := newTasks()

	h.tasks = append(h.tasks, task{name: "a"}, task{name: "b"})
	m.RowInserted(3)
	m.RowInserted(4)
	assert.Equal(t, 5, m.NumRows())
	assert.Equal(t, String("b"), m.CellValue(4, colName))

	h.tasks = append(h.tasks[:1], h.tasks[3:]...)
	m.RowDeleted(1)
	m.RowDeleted(1)
	assert.Equal(t, 3, m.NumRows())
	assert.Equal(t, String("a"), m.CellValue(1, colName))

	// Mixed batches only have to add up.
	h.tasks = append(h.tasks[1:], task{name: "c"})
	m.RowInserted(3)
	m.RowDeleted(0)
	assert.Equal(t, String("c"), m.CellValue(2, colName))
}

func TestModelClose(t *testing.T) {
	_, m := newTasks()
	tbl := NewTable(Params{Model: m, RowBackgroundColorModelColumn: NoColumn})

	assertViolation(t, m.Close)
	assert.False(t, m.Closed())

	control.Destroy(tbl)
	m.Close()
	assert.True(t, m.Closed())

	assertViolation(t, func() { m.CellValue(0, 0) })
	assertViolation(t, func() { m.RowChanged(0) })
	assertViolation(t, func() { NewTable(Params{Model: m, RowBackgroundColorModelColumn: NoColumn}) })
}

func newTaskTable(t *testing.T) (*taskHandler, *Model, *Table) {
	t.Helper()
	h, m := newTasks()
	tbl := NewTable(Params{Model: m, RowBackgroundColorModelColumn: colBackground})
	tbl.AppendTextColumn("Name", colName, colEditable, &TextColumnParams{ColorModelColumn: colBackground})
	tbl.AppendCheckboxTextColumn("Done", colDone, AlwaysEditable, colName, NeverEditable, nil)
	tbl.AppendProgressBarColumn("Progress", colCount)
	tbl.AppendImageColumn("Icon", colIcon)
	tbl.AppendButtonColumn("Action", colAction, colEditable)
	t.Cleanup(func() {
		if !tbl.Destroyed() && tbl.Parent() == nil {
			control.Destroy(tbl)
		}
	})
	return h, m, tbl
}

func TestTableIsControl(t *testing.T) {
	before := control.LiveCount()
	_, m := newTasks()
	tbl := NewTable(Params{Model: m, RowBackgroundColorModelColumn: NoColumn})
	assert.Equal(t, "Table", tbl.TypeName())
	assert.Equal(t, before+1, control.LiveCount())

	box := control.NewVerticalBox()
	box.Append(tbl, true)
	assert.Equal(t, control.Control(box), tbl.Parent())

	control.Destroy(box)
	assert.True(t, tbl.Destroyed())
	assert.Equal(t, before, control.LiveCount())
	m.Close()
}

func TestAppendColumnChecksTypes(t *testing.T) {
	_, m := newTasks()
	tbl := NewTable(Params{Model: m, RowBackgroundColorModelColumn: NoColumn})
	defer control.Destroy(tbl)

	tests := []struct {
		name string
		fn   func()
	}{
		{"text over int", func() { tbl.AppendTextColumn("x", colCount, NeverEditable, nil) }},
		{"editable over string", func() { tbl.AppendTextColumn("x", colName, colName, nil) }},
		{"color over string", func() {
			tbl.AppendTextColumn("x", colName, NeverEditable, &TextColumnParams{ColorModelColumn: colName})
		}},
		{"image over string", func() { tbl.AppendImageColumn("x", colName) }},
		{"checkbox over color", func() { tbl.AppendCheckboxColumn("x", colBackground, NeverEditable) }},
		{"progress over string", func() { tbl.AppendProgressBarColumn("x", colAction) }},
		{"button over int", func() { tbl.AppendButtonColumn("x", colCount, AlwaysEditable) }},
		{"missing column", func() { tbl.AppendImageTextColumn("x", numCols, colName, NeverEditable, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertViolation(t, tt.fn)
		})
	}
	assert.Zero(t, tbl.NumColumns())
	assertViolation(t, func() { NewTable(Params{Model: m, RowBackgroundColorModelColumn: colName}) })
}

func TestCellView(t *testing.T) {
	h, _, tbl := newTaskTable(t)
	require.Equal(t, 5, tbl.NumColumns())
	assert.Equal(t, ColumnCheckboxText, tbl.ColumnKind(1))
	assert.Equal(t, "Progress", tbl.ColumnName(2))

	name := tbl.Cell(0, 0)
	assert.Equal(t, "write", name.Text)
	assert.True(t, name.TextEditable)
	assert.True(t, name.HasTextColor)
	assert.Equal(t, ui.Green, name.TextColor)
	assert.False(t, tbl.Cell(1, 0).HasTextColor)

	done := tbl.Cell(1, 1)
	assert.True(t, done.Checked)
	assert.True(t, done.CheckboxEditable)
	assert.False(t, done.TextEditable)
	assert.Equal(t, "test", done.Text)

	assert.Equal(t, 50, tbl.Cell(1, 2).Progress)
	assert.Equal(t, -1, tbl.Cell(2, 2).Progress)
	assert.Same(t, h.icon, tbl.Cell(0, 3).Image)

	btn := tbl.Cell(0, 4)
	assert.Equal(t, "Run", btn.ButtonText)
	assert.True(t, btn.ButtonClickable)
	assert.False(t, tbl.Cell(1, 4).ButtonClickable)

	bg, ok := tbl.RowBackground(0)
	assert.True(t, ok)
	assert.Equal(t, ui.Green, bg)
	_, ok = tbl.RowBackground(1)
	assert.False(t, ok)

	h.tasks[0].count = 101
	assertViolation(t, func() { tbl.Cell(0, 2) })
	assertViolation(t, func() { tbl.Cell(0, 5) })
}

func TestEdits(t *testing.T) {
	h, _, tbl := newTaskTable(t)

	assert.True(t, tbl.EditText(0, 0, "rewrite"))
	assert.Equal(t, "rewrite", h.tasks[0].name)
	assert.False(t, tbl.EditText(1, 0, "nope"), "row 1 is not editable")
	assert.False(t, tbl.EditText(0, 1, "nope"), "checkbox text is never editable")

	assert.True(t, tbl.ToggleCheckbox(1, 1))
	assert.False(t, h.tasks[1].done)
	assert.True(t, tbl.ToggleCheckbox(1, 1))
	assert.True(t, h.tasks[1].done)

	assert.True(t, tbl.ClickButton(0, 4))
	assert.False(t, tbl.ClickButton(1, 4))
	last := h.edits[len(h.edits)-1]
	assert.Equal(t, edit{row: 0, col: colAction, v: nil}, last)

	tbl.Disable()
	assert.False(t, tbl.EditText(0, 0, "disabled"))
	assert.False(t, tbl.ToggleCheckbox(0, 1))
	assert.Len(t, h.edits, 4)

	assertViolation(t, func() { tbl.EditText(0, 2, "x") })
	assertViolation(t, func() { tbl.ToggleCheckbox(0, 0) })
	assertViolation(t, func() { tbl.ClickButton(0, 0) })
}

func TestHeader(t *testing.T) {
	_, _, tbl := newTaskTable(t)
	assert.True(t, tbl.HeaderVisible())

	var clicked []int
	tbl.OnHeaderClicked(func(_ *Table, col int) { clicked = append(clicked, col) })
	assert.True(t, tbl.ClickHeader(2))

	tbl.SetHeaderSortIndicator(2, SortDescending)
	assert.Equal(t, SortDescending, tbl.HeaderSortIndicator(2))
	assert.Equal(t, SortNone, tbl.HeaderSortIndicator(0))

	tbl.SetHeaderVisible(false)
	assert.False(t, tbl.ClickHeader(0))
	assert.Equal(t, []int{2}, clicked)

	assert.Equal(t, -1, tbl.ColumnWidth(0))
	tbl.SetColumnWidth(0, 120)
	assert.Equal(t, 120, tbl.ColumnWidth(0))

	assertViolation(t, func() { tbl.SetColumnWidth(0, -2) })
	assertViolation(t, func() { tbl.SetHeaderSortIndicator(0, SortIndicator(3)) })
	assertViolation(t, func() { tbl.ClickHeader(9) })
}

func TestSelection(t *testing.T) {
	_, _, tbl := newTaskTable(t)
	assert.Equal(t, SelectionZeroOrOne, tbl.SelectionMode())
	assert.Empty(t, tbl.Selection())

	changes := 0
	tbl.OnSelectionChanged(func(*Table) { changes++ })

	tbl.SetSelection([]int{1})
	assert.Equal(t, []int{1}, tbl.Selection())
	assert.Zero(t, changes, "programmatic selection does not notify")

	assertViolation(t, func() { tbl.SetSelection([]int{0, 1}) })
	assertViolation(t, func() { tbl.SetSelection([]int{3}) })

	tbl.SetSelectionMode(SelectionZeroOrMany)
	tbl.SetSelection([]int{2, 0})
	assert.Equal(t, []int{0, 2}, tbl.Selection())
	assertViolation(t, func() { tbl.SetSelection([]int{1, 1}) })

	sel := tbl.Selection()
	sel[0] = 99
	assert.Equal(t, []int{0, 2}, tbl.Selection(), "Selection returns a copy")

	tbl.SetSelectionMode(SelectionOne)
	assert.Equal(t, []int{0}, tbl.Selection())
	assertViolation(t, func() { tbl.SetSelection(nil) })

	tbl.SetSelectionMode(SelectionNone)
	assert.Empty(t, tbl.Selection())
	assertViolation(t, func() { tbl.SetSelection([]int{0}) })
	assertViolation(t, func() { tbl.SetSelectionMode(SelectionMode(7)) })
}

func TestRowClicks(t *testing.T) {
	_, _, tbl := newTaskTable(t)
	var events []string
	tbl.OnSelectionChanged(func(tb *Table) { events = append(events, "selection") })
	tbl.OnRowClicked(func(_ *Table, row int) { events = append(events, "click") })
	tbl.OnRowDoubleClicked(func(_ *Table, row int) { events = append(events, "double") })

	assert.True(t, tbl.ClickRow(2))
	assert.True(t, tbl.ClickRow(2))
	assert.True(t, tbl.DoubleClickRow(2))
	assert.Equal(t, []string{"selection", "click", "click", "double"}, events)
	assert.Equal(t, []int{2}, tbl.Selection())

	tbl.SetSelectionMode(SelectionNone)
	events = nil
	assert.True(t, tbl.ClickRow(0))
	assert.Equal(t, []string{"click"}, events)
	assert.Empty(t, tbl.Selection())

	tbl.Disable()
	assert.False(t, tbl.ClickRow(0))
	assert.False(t, tbl.DoubleClickRow(0))
	assertViolation(t, func() { tbl.ClickRow(3) })
}

func TestSelectionFollowsRows(t *testing.T) {
	h, m, tbl := newTaskTable(t)
	tbl.SetSelectionMode(SelectionZeroOrMany)
	tbl.SetSelection([]int{0, 2})
	changes := 0
	tbl.OnSelectionChanged(func(*Table) { changes++ })

	h.tasks = append([]task{{name: "first"}}, h.tasks...)
	m.RowInserted(0)
	assert.Equal(t, []int{1, 3}, tbl.Selection())

	h.tasks = append(h.tasks[:2], h.tasks[3:]...)
	m.RowDeleted(2)
	assert.Equal(t, []int{1, 2}, tbl.Selection())
	assert.Zero(t, changes)

	h.tasks = h.tasks[:2]
	m.RowDeleted(2)
	assert.Equal(t, []int{1}, tbl.Selection())
	assert.Equal(t, 1, changes)

	h.tasks = h.tasks[1:]
	m.RowDeleted(0)
	assert.Equal(t, []int{0}, tbl.Selection())
	assert.Equal(t, 1, changes)
}

func TestSelectionOneKeepsARow(t *testing.T) {
	h := &taskHandler{icon: ui.NewImage(16, 16)}
	m := NewModel(h)
	tbl := NewTable(Params{Model: m, RowBackgroundColorModelColumn: NoColumn})
	t.Cleanup(func() { control.Destroy(tbl) })
	tbl.SetSelectionMode(SelectionOne)
	assert.Empty(t, tbl.Selection())
	var seen [][]int
	tbl.OnSelectionChanged(func(tb *Table) { seen = append(seen, tb.Selection()) })

	h.tasks = append(h.tasks, task{name: "a"})
	m.RowInserted(0)
	assert.Equal(t, []int{0}, tbl.Selection())

	h.tasks = append(h.tasks, task{name: "b"}, task{name: "c"})
	m.RowInserted(1)
	m.RowInserted(2)
	tbl.SetSelection([]int{2})

	h.tasks = h.tasks[:2]
	m.RowDeleted(2)
	assert.Equal(t, []int{1}, tbl.Selection(), "the last row's neighbour takes over")

	h.tasks = h.tasks[1:]
	m.RowDeleted(0)
	assert.Equal(t, []int{0}, tbl.Selection(), "a later row shifts up")

	h.tasks = nil
	m.RowDeleted(0)
	assert.Empty(t, tbl.Selection())
	assert.Equal(t, [][]int{{0}, {1}, nil}, seen)
}

func TestSelectionOneModeSelectsFirstRow(t *testing.T) {
	_, _, tbl := newTaskTable(t)
	tbl.SetSelectionMode(SelectionOne)
	assert.Equal(t, []int{0}, tbl.Selection())
}
