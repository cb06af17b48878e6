package table

import (
	"fmt"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/control"
)

// Editable model columns that are not real columns.
const (
	// NeverEditable marks a part of a column that cannot be edited.
	NeverEditable = -1
	// AlwaysEditable marks a part of a column that can always be edited.
	AlwaysEditable = -2
)

// NoColumn leaves an optional model column unset.
const NoColumn = -1

// ColumnKind is what a table column shows.
type ColumnKind int

const (
	ColumnText ColumnKind = iota
	ColumnImage
	ColumnImageText
	ColumnCheckbox
	ColumnCheckboxText
	ColumnProgressBar
	ColumnButton
)

var columnKindNames = [...]string{
	ColumnText:         "Text",
	ColumnImage:        "Image",
	ColumnImageText:    "ImageText",
	ColumnCheckbox:     "Checkbox",
	ColumnCheckboxText: "CheckboxText",
	ColumnProgressBar:  "ProgressBar",
	ColumnButton:       "Button",
}

func (k ColumnKind) String() string {
	if k >= 0 && int(k) < len(columnKindNames) {
		return columnKindNames[k]
	}
	return fmt.Sprintf("ColumnKind(%d)", int(k))
}

// SortIndicator is the arrow shown in a column header.
type SortIndicator int

const (
	SortNone SortIndicator = iota
	SortAscending
	SortDescending
)

// TextColumnParams are the optional settings of columns that show text.
type TextColumnParams struct {
	// ColorModelColumn is a Color model column for the text color, or
	// NoColumn.
	ColorModelColumn int
}

// Params configure a new Table.
type Params struct {
	Model *Model
	// RowBackgroundColorModelColumn is a Color model column for row
	// backgrounds, or NoColumn.
	RowBackgroundColorModelColumn int
}

// column maps one view column to the model columns it reads. Unused
// fields hold NoColumn.
type column struct {
	name  string
	kind  ColumnKind
	width int
	sort  SortIndicator

	text, textEditable, textColor int
	image                         int
	checkbox, checkboxEditable    int
	progress                      int
	button, buttonClickable       int
}

// Table shows the rows of a Model.
type Table struct {
	control.Base

	model         *Model
	rowBackground int
	columns       []column
	headerVisible bool

	selectionMode SelectionMode
	selection     []int

	onHeaderClicked    func(*Table, int)
	onRowClicked       func(*Table, int)
	onRowDoubleClicked func(*Table, int)
	onSelectionChanged func(*Table)
}

// NewTable creates a table over p.Model with no columns.
func NewTable(p Params) *Table {
	const op = "table.NewTable"
	if p.Model == nil {
		ui.Violation(op, "nil model")
	}
	p.Model.checkOpen(op)
	t := &Table{
		model:         p.Model,
		rowBackground: NoColumn,
		headerVisible: true,
		selectionMode: SelectionZeroOrOne,
	}
	if p.RowBackgroundColorModelColumn != NoColumn {
		t.expect(op, p.RowBackgroundColorModelColumn, TypeColor)
		t.rowBackground = p.RowBackgroundColorModelColumn
	}
	t.Init(t, "Table")
	p.Model.attach(t)
	control.AfterDestroy(t, func() { t.model.detach(t) })
	return t
}

// Model returns the table's model.
func (t *Table) Model() *Model { return t.model }

// expect checks that a model column exists and has type want.
func (t *Table) expect(op string, modelColumn int, want ValueType) {
	if got := t.model.ColumnType(modelColumn); got != want {
		ui.Violation(op, "model column %d is %s, want %s", modelColumn, got, want)
	}
}

// expectEditable checks an editable setting: NeverEditable,
// AlwaysEditable, or an Int model column.
func (t *Table) expectEditable(op string, modelColumn int) {
	if modelColumn == NeverEditable || modelColumn == AlwaysEditable {
		return
	}
	t.expect(op, modelColumn, TypeInt)
}

func (t *Table) textColor(op string, p *TextColumnParams) int {
	if p == nil || p.ColorModelColumn == NoColumn {
		return NoColumn
	}
	t.expect(op, p.ColorModelColumn, TypeColor)
	return p.ColorModelColumn
}

func (t *Table) add(c column) {
	c.width = -1
	t.columns = append(t.columns, c)
	ui.Logger().Debug("table column appended", "name", c.name, "kind", c.kind.String())
}

func blankColumn(name string, kind ColumnKind) column {
	return column{
		name: name, kind: kind,
		text: NoColumn, textEditable: NeverEditable, textColor: NoColumn,
		image:    NoColumn,
		checkbox: NoColumn, checkboxEditable: NeverEditable,
		progress: NoColumn,
		button:   NoColumn, buttonClickable: NeverEditable,
	}
}

// AppendTextColumn adds a column showing a String model column.
func (t *Table) AppendTextColumn(name string, textModelColumn, textEditableModelColumn int, p *TextColumnParams) {
	const op = "Table.AppendTextColumn"
	t.expect(op, textModelColumn, TypeString)
	t.expectEditable(op, textEditableModelColumn)
	c := blankColumn(name, ColumnText)
	c.text, c.textEditable, c.textColor = textModelColumn, textEditableModelColumn, t.textColor(op, p)
	t.add(c)
}

// AppendImageColumn adds a column showing an Image model column.
func (t *Table) AppendImageColumn(name string, imageModelColumn int) {
	const op = "Table.AppendImageColumn"
	t.expect(op, imageModelColumn, TypeImage)
	c := blankColumn(name, ColumnImage)
	c.image = imageModelColumn
	t.add(c)
}

// AppendImageTextColumn adds a column showing an image followed by text.
func (t *Table) AppendImageTextColumn(name string, imageModelColumn, textModelColumn, textEditableModelColumn int, p *TextColumnParams) {
	const op = "Table.AppendImageTextColumn"
	t.expect(op, imageModelColumn, TypeImage)
	t.expect(op, textModelColumn, TypeString)
	t.expectEditable(op, textEditableModelColumn)
	c := blankColumn(name, ColumnImageText)
	c.image = imageModelColumn
	c.text, c.textEditable, c.textColor = textModelColumn, textEditableModelColumn, t.textColor(op, p)
	t.add(c)
}

// AppendCheckboxColumn adds a column showing an Int model column as a
// checkbox.
func (t *Table) AppendCheckboxColumn(name string, checkboxModelColumn, checkboxEditableModelColumn int) {
	const op = "Table.AppendCheckboxColumn"
	t.expect(op, checkboxModelColumn, TypeInt)
	t.expectEditable(op, checkboxEditableModelColumn)
	c := blankColumn(name, ColumnCheckbox)
	c.checkbox, c.checkboxEditable = checkboxModelColumn, checkboxEditableModelColumn
	t.add(c)
}

// AppendCheckboxTextColumn adds a column showing a checkbox followed by
// text.
func (t *Table) AppendCheckboxTextColumn(name string, checkboxModelColumn, checkboxEditableModelColumn, textModelColumn, textEditableModelColumn int, p *TextColumnParams) {
	const op = "Table.AppendCheckboxTextColumn"
	t.expect(op, checkboxModelColumn, TypeInt)
	t.expectEditable(op, checkboxEditableModelColumn)
	t.expect(op, textModelColumn, TypeString)
	t.expectEditable(op, textEditableModelColumn)
	c := blankColumn(name, ColumnCheckboxText)
	c.checkbox, c.checkboxEditable = checkboxModelColumn, checkboxEditableModelColumn
	c.text, c.textEditable, c.textColor = textModelColumn, textEditableModelColumn, t.textColor(op, p)
	t.add(c)
}

// AppendProgressBarColumn adds a column showing an Int model column as a
// progress bar.
func (t *Table) AppendProgressBarColumn(name string, progressModelColumn int) {
	const op = "Table.AppendProgressBarColumn"
	t.expect(op, progressModelColumn, TypeInt)
	c := blankColumn(name, ColumnProgressBar)
	c.progress = progressModelColumn
	t.add(c)
}

// AppendButtonColumn adds a column of buttons labelled by a String model
// column. Clicks reach the model as SetCellValue with a nil value.
func (t *Table) AppendButtonColumn(name string, buttonModelColumn, buttonClickableModelColumn int) {
	const op = "Table.AppendButtonColumn"
	t.expect(op, buttonModelColumn, TypeString)
	t.expectEditable(op, buttonClickableModelColumn)
	c := blankColumn(name, ColumnButton)
	c.button, c.buttonClickable = buttonModelColumn, buttonClickableModelColumn
	t.add(c)
}

func (t *Table) col(op string, i int) *column {
	if i < 0 || i >= len(t.columns) {
		ui.Violation(op, "column %d outside [0, %d)", i, len(t.columns))
	}
	return &t.columns[i]
}

// NumColumns returns the number of view columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// ColumnName returns the header text of a column.
func (t *Table) ColumnName(i int) string { return t.col("Table.ColumnName", i).name }

// ColumnKind returns what a column shows.
func (t *Table) ColumnKind(i int) ColumnKind { return t.col("Table.ColumnKind", i).kind }

// ColumnWidth returns a column's width, or -1 for the default.
func (t *Table) ColumnWidth(i int) int { return t.col("Table.ColumnWidth", i).width }

// SetColumnWidth sets a column's width; -1 restores the default.
func (t *Table) SetColumnWidth(i, width int) {
	const op = "Table.SetColumnWidth"
	c := t.col(op, i)
	if width < -1 {
		ui.Violation(op, "invalid width %d", width)
	}
	c.width = width
}

func (t *Table) HeaderVisible() bool     { return t.headerVisible }
func (t *Table) SetHeaderVisible(v bool) { t.headerVisible = v }

// HeaderSortIndicator returns the sort arrow of a column.
func (t *Table) HeaderSortIndicator(i int) SortIndicator {
	return t.col("Table.HeaderSortIndicator", i).sort
}

// SetHeaderSortIndicator sets the sort arrow of a column. The table does
// not sort; the application reorders its data and notifies the model.
func (t *Table) SetHeaderSortIndicator(i int, s SortIndicator) {
	const op = "Table.SetHeaderSortIndicator"
	c := t.col(op, i)
	if s < SortNone || s > SortDescending {
		ui.Violation(op, "invalid sort indicator %d", int(s))
	}
	c.sort = s
}

// OnHeaderClicked sets the handler for clicks on a column header.
func (t *Table) OnHeaderClicked(fn func(*Table, int)) { t.onHeaderClicked = fn }

// OnRowClicked sets the handler for clicks on a row.
func (t *Table) OnRowClicked(fn func(*Table, int)) { t.onRowClicked = fn }

// OnRowDoubleClicked sets the handler for double clicks on a row.
func (t *Table) OnRowDoubleClicked(fn func(*Table, int)) { t.onRowDoubleClicked = fn }

// ClickHeader reports a click on a column header.
func (t *Table) ClickHeader(i int) bool {
	const op = "Table.ClickHeader"
	t.col(op, i)
	if !t.headerVisible || !t.EnabledToUser() {
		return false
	}
	if t.onHeaderClicked != nil {
		t.onHeaderClicked(t, i)
	}
	return true
}

// ClickRow reports a click on a row. The click selects the row when the
// selection mode allows it, then OnRowClicked runs.
func (t *Table) ClickRow(row int) bool {
	const op = "Table.ClickRow"
	t.model.checkRow(op, row)
	if !t.EnabledToUser() {
		return false
	}
	if t.selectionMode != SelectionNone {
		t.changeSelection([]int{row})
	}
	if t.onRowClicked != nil {
		t.onRowClicked(t, row)
	}
	return true
}

// DoubleClickRow reports a double click on a row.
func (t *Table) DoubleClickRow(row int) bool {
	const op = "Table.DoubleClickRow"
	t.model.checkRow(op, row)
	if !t.EnabledToUser() {
		return false
	}
	if t.onRowDoubleClicked != nil {
		t.onRowDoubleClicked(t, row)
	}
	return true
}

func (t *Table) rowChanged(row int) {
	ui.Logger().Debug("table row changed", "row", row)
}
