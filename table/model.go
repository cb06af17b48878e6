package table

import (
	"slices"

	"github.com/gogpu/ui"
)

// ModelHandler supplies the data behind a Model. The model passes itself
// so that one handler can serve several models.
type ModelHandler interface {
	NumColumns(m *Model) int
	// ColumnType must return the same type for a column every time it is
	// asked.
	ColumnType(m *Model, column int) ValueType
	NumRows(m *Model) int
	// CellValue returns the value of a cell, tagged as ColumnType
	// declares. Color columns may return nil for the default color.
	CellValue(m *Model, row, column int) Value
	// SetCellValue persists a committed edit. A nil value reports a click
	// on a button column.
	SetCellValue(m *Model, row, column int, v Value)
}

// Model is the callback indirection between a ModelHandler and the tables
// that display it.
type Model struct {
	handler ModelHandler
	columns int
	types   []ValueType
	known   []bool
	rows    int
	pending bool
	tables  []*Table
	closed  bool
}

// NewModel creates a model over h. The handler is asked for its column and
// row counts immediately.
func NewModel(h ModelHandler) *Model {
	const op = "table.NewModel"
	if h == nil {
		ui.Violation(op, "nil handler")
	}
	m := &Model{handler: h}
	m.columns = h.NumColumns(m)
	if m.columns < 0 {
		ui.Violation(op, "negative column count %d", m.columns)
	}
	m.types = make([]ValueType, m.columns)
	m.known = make([]bool, m.columns)
	m.rows = h.NumRows(m)
	if m.rows < 0 {
		ui.Violation(op, "negative row count %d", m.rows)
	}
	ui.Logger().Debug("table model created", "columns", m.columns, "rows", m.rows)
	return m
}

func (m *Model) checkOpen(op string) {
	if m.closed {
		ui.Violation(op, "model is closed")
	}
}

// NumColumns returns the column count, fixed when the model was created.
func (m *Model) NumColumns() int { return m.columns }

// NumRows returns the row count implied by the notifications so far.
func (m *Model) NumRows() int { return m.rows }

// ColumnType returns the type of a column. The handler is asked once per
// column.
func (m *Model) ColumnType(column int) ValueType {
	const op = "Model.ColumnType"
	m.checkOpen(op)
	m.checkColumn(op, column)
	if !m.known[column] {
		t := m.handler.ColumnType(m, column)
		if !t.valid() {
			ui.Violation(op, "column %d has invalid type %d", column, int(t))
		}
		m.types[column], m.known[column] = t, true
	}
	return m.types[column]
}

// CellValue asks the handler for a cell and checks its tag.
func (m *Model) CellValue(row, column int) Value {
	const op = "Model.CellValue"
	m.checkOpen(op)
	m.verify(op)
	m.checkRow(op, row)
	want := m.ColumnType(column)
	v := m.handler.CellValue(m, row, column)
	if v == nil && want == TypeColor {
		return nil
	}
	if v == nil || v.Type() != want {
		ui.Violation(op, "cell (%d, %d) is %s, column type is %s", row, column, typeOf(v), want)
	}
	return v
}

// SetCellValue hands an edit to the handler. v must carry the column's
// type, or be nil to report a button click.
func (m *Model) SetCellValue(row, column int, v Value) {
	const op = "Model.SetCellValue"
	m.checkOpen(op)
	m.verify(op)
	m.checkRow(op, row)
	want := m.ColumnType(column)
	if v != nil && v.Type() != want {
		ui.Violation(op, "value for column %d is %s, column type is %s", column, v.Type(), want)
	}
	ui.Logger().Debug("table cell edited", "row", row, "column", column, "type", typeOf(v))
	m.handler.SetCellValue(m, row, column, v)
}

// RowInserted reports that a row now exists at index, shifting the rows at
// and after it down.
func (m *Model) RowInserted(index int) {
	const op = "Model.RowInserted"
	m.checkOpen(op)
	if index < 0 || index > m.rows {
		ui.Violation(op, "index %d outside [0, %d]", index, m.rows)
	}
	m.notified(op, m.rows+1)
	for _, t := range m.tables {
		t.rowInserted(index)
	}
}

// RowChanged reports that the row at index has new values.
func (m *Model) RowChanged(index int) {
	const op = "Model.RowChanged"
	m.checkOpen(op)
	m.checkRow(op, index)
	m.notified(op, m.rows)
	for _, t := range m.tables {
		t.rowChanged(index)
	}
}

// RowDeleted reports that the row at index was removed, shifting the rows
// after it up.
func (m *Model) RowDeleted(index int) {
	const op = "Model.RowDeleted"
	m.checkOpen(op)
	m.checkRow(op, index)
	m.notified(op, m.rows-1)
	for _, t := range m.tables {
		t.rowDeleted(index)
	}
}

// notified records the row count a notification implies. The handler is
// compared against it at the next cell pull, so a batch of changes may be
// applied to the backing data before the first of its notifications.
func (m *Model) notified(op string, rows int) {
	m.rows = rows
	m.pending = true
	ui.Logger().Debug("table model notified", "op", op, "rows", rows)
}

// verify checks the handler's row count against the notified count once
// per batch of notifications.
func (m *Model) verify(op string) {
	if !m.pending {
		return
	}
	if got := m.handler.NumRows(m); got != m.rows {
		ui.Violation(op, "handler reports %d rows, notifications account for %d; a change notification is missing", got, m.rows)
	}
	m.pending = false
}

// Close releases the model. Tables still showing it must be destroyed
// first.
func (m *Model) Close() {
	const op = "Model.Close"
	m.checkOpen(op)
	if n := len(m.tables); n > 0 {
		ui.Violation(op, "model is still used by %d tables", n)
	}
	m.closed = true
}

// Closed reports whether Close was called.
func (m *Model) Closed() bool { return m.closed }

func (m *Model) attach(t *Table) { m.tables = append(m.tables, t) }

func (m *Model) detach(t *Table) {
	if i := slices.Index(m.tables, t); i >= 0 {
		m.tables = slices.Delete(m.tables, i, i+1)
	}
}

func (m *Model) checkRow(op string, row int) {
	if row < 0 || row >= m.rows {
		ui.Violation(op, "row %d outside [0, %d)", row, m.rows)
	}
}

func (m *Model) checkColumn(op string, column int) {
	if column < 0 || column >= m.columns {
		ui.Violation(op, "column %d outside [0, %d)", column, m.columns)
	}
}
