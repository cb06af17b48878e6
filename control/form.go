package control

type formRow struct {
	label    string
	c        Control
	stretchy bool
}

// Form lays out labelled controls in rows.
type Form struct {
	Base

	padded bool
	rows   []formRow
}

// NewForm creates an empty form.
func NewForm() *Form {
	f := &Form{}
	f.init(f, "Form", false)
	f.release = func() { f.rows = nil }
	return f
}

// Append adds a labelled row.
func (f *Form) Append(label string, c Control, stretchy bool) {
	adopt("Form.Append", f, c)
	f.rows = append(f.rows, formRow{label: label, c: c, stretchy: stretchy})
}

// Delete detaches the control of row i and removes the row.
func (f *Form) Delete(i int) {
	checkIndex("Form.Delete", i, len(f.rows))
	SetParent(f.rows[i].c, nil)
}

func (f *Form) NumChildren() int { return len(f.rows) }

// Label returns the label of row i.
func (f *Form) Label(i int) string {
	checkIndex("Form.Label", i, len(f.rows))
	return f.rows[i].label
}

// Child returns the control of row i.
func (f *Form) Child(i int) Control {
	checkIndex("Form.Child", i, len(f.rows))
	return f.rows[i].c
}

// Stretchy reports whether row i is stretchy.
func (f *Form) Stretchy(i int) bool {
	checkIndex("Form.Stretchy", i, len(f.rows))
	return f.rows[i].stretchy
}

func (f *Form) Padded() bool     { return f.padded }
func (f *Form) SetPadded(v bool) { f.padded = v }

func (f *Form) children() []Control {
	out := make([]Control, len(f.rows))
	for i, r := range f.rows {
		out[i] = r.c
	}
	return out
}

func (f *Form) attach(c Control) { f.Append("", c, false) }

func (f *Form) detach(c Control) {
	f.rows = removeControl(f.rows, c, func(r formRow) Control { return r.c })
}
