package table

import "github.com/gogpu/ui"

// CellView is what a table cell shows, pulled from the model on demand.
// Only the fields the column kind uses are set.
type CellView struct {
	Kind ColumnKind

	Text         string
	TextColor    ui.RGBA
	HasTextColor bool
	TextEditable bool

	Image *ui.Image

	Checked          bool
	CheckboxEditable bool

	// Progress is a percentage in [0, 100], or -1 for indeterminate.
	Progress int

	ButtonText      string
	ButtonClickable bool
}

// Cell returns the view of a cell.
func (t *Table) Cell(row, col int) CellView {
	const op = "Table.Cell"
	c := t.col(op, col)
	t.model.checkRow(op, row)
	v := CellView{Kind: c.kind}
	if c.text != NoColumn {
		v.Text = TextOf(t.model.CellValue(row, c.text))
		v.TextEditable = t.editable(row, c.textEditable)
		if c.textColor != NoColumn {
			if cv := t.model.CellValue(row, c.textColor); cv != nil {
				v.TextColor, v.HasTextColor = ColorOf(cv), true
			}
		}
	}
	if c.image != NoColumn {
		v.Image = ImageOf(t.model.CellValue(row, c.image))
	}
	if c.checkbox != NoColumn {
		v.Checked = IntOf(t.model.CellValue(row, c.checkbox)) != 0
		v.CheckboxEditable = t.editable(row, c.checkboxEditable)
	}
	if c.progress != NoColumn {
		v.Progress = IntOf(t.model.CellValue(row, c.progress))
		if v.Progress < -1 || v.Progress > 100 {
			ui.Violation(op, "progress %d outside [-1, 100]", v.Progress)
		}
	}
	if c.button != NoColumn {
		v.ButtonText = TextOf(t.model.CellValue(row, c.button))
		v.ButtonClickable = t.editable(row, c.buttonClickable)
	}
	return v
}

// RowBackground returns the background color of a row, if the table has a
// background color column and the model supplies a color for the row.
func (t *Table) RowBackground(row int) (ui.RGBA, bool) {
	t.model.checkRow("Table.RowBackground", row)
	if t.rowBackground == NoColumn {
		return ui.RGBA{}, false
	}
	v := t.model.CellValue(row, t.rowBackground)
	if v == nil {
		return ui.RGBA{}, false
	}
	return ColorOf(v), true
}

func (t *Table) editable(row, modelColumn int) bool {
	switch modelColumn {
	case NeverEditable:
		return false
	case AlwaysEditable:
		return true
	default:
		return IntOf(t.model.CellValue(row, modelColumn)) != 0
	}
}

// EditText commits a text edit made by the user. It reports whether the
// edit reached the model.
func (t *Table) EditText(row, col int, text string) bool {
	const op = "Table.EditText"
	c := t.col(op, col)
	t.model.checkRow(op, row)
	if c.text == NoColumn {
		ui.Violation(op, "%s column %d has no text", c.kind, col)
	}
	if !t.EnabledToUser() || !t.editable(row, c.textEditable) {
		return false
	}
	t.model.SetCellValue(row, c.text, String(text))
	return true
}

// ToggleCheckbox flips a checkbox as the user would. It reports whether the
// change reached the model.
func (t *Table) ToggleCheckbox(row, col int) bool {
	const op = "Table.ToggleCheckbox"
	c := t.col(op, col)
	t.model.checkRow(op, row)
	if c.checkbox == NoColumn {
		ui.Violation(op, "%s column %d has no checkbox", c.kind, col)
	}
	if !t.EnabledToUser() || !t.editable(row, c.checkboxEditable) {
		return false
	}
	checked := IntOf(t.model.CellValue(row, c.checkbox)) != 0
	t.model.SetCellValue(row, c.checkbox, Bool(!checked))
	return true
}

// ClickButton presses a button cell. It reports whether the click reached
// the model.
func (t *Table) ClickButton(row, col int) bool {
	const op = "Table.ClickButton"
	c := t.col(op, col)
	t.model.checkRow(op, row)
	if c.button == NoColumn {
		ui.Violation(op, "%s column %d has no button", c.kind, col)
	}
	if !t.EnabledToUser() || !t.editable(row, c.buttonClickable) {
		return false
	}
	t.model.SetCellValue(row, c.button, nil)
	return true
}
