package control

// Button is a push button.
type Button struct {
	Base

	text      string
	onClicked func(*Button)
}

// NewButton creates a button with the given label.
func NewButton(text string) *Button {
	b := &Button{text: text}
	b.init(b, "Button", false)
	return b
}

func (b *Button) Text() string        { return b.text }
func (b *Button) SetText(text string) { b.text = text }

// OnClicked sets the click handler.
func (b *Button) OnClicked(fn func(*Button)) { b.onClicked = fn }

// Click delivers a user click. It reports whether the click was
// delivered, which requires the button to be EnabledToUser.
func (b *Button) Click() bool {
	b.checkAlive("Click")
	if !b.EnabledToUser() {
		return false
	}
	if b.onClicked != nil {
		b.onClicked(b)
	}
	return true
}

// Label is a static text.
type Label struct {
	Base

	text string
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.init(l, "Label", false)
	return l
}

func (l *Label) Text() string        { return l.text }
func (l *Label) SetText(text string) { l.text = text }

// Checkbox is a labelled check box.
type Checkbox struct {
	Base

	text      string
	checked   bool
	onToggled func(*Checkbox)
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(text string) *Checkbox {
	c := &Checkbox{text: text}
	c.init(c, "Checkbox", false)
	return c
}

func (c *Checkbox) Text() string        { return c.text }
func (c *Checkbox) SetText(text string) { c.text = text }
func (c *Checkbox) Checked() bool       { return c.checked }

// SetChecked changes the state without calling OnToggled.
func (c *Checkbox) SetChecked(v bool) { c.checked = v }

// OnToggled sets the handler called when the user toggles the box.
func (c *Checkbox) OnToggled(fn func(*Checkbox)) { c.onToggled = fn }

// Toggle flips the state as a user click would.
func (c *Checkbox) Toggle() bool {
	c.checkAlive("Toggle")
	if !c.EnabledToUser() {
		return false
	}
	c.checked = !c.checked
	if c.onToggled != nil {
		c.onToggled(c)
	}
	return true
}

// EntryKind selects the flavor of an Entry.
type EntryKind int

const (
	EntryNormal EntryKind = iota
	EntryPassword
	EntrySearch
)

// Entry is a single-line text field.
type Entry struct {
	Base

	kind      EntryKind
	text      string
	readOnly  bool
	onChanged func(*Entry)
}

// NewEntry creates an empty text field.
func NewEntry() *Entry { return newEntry(EntryNormal) }

// NewPasswordEntry creates a text field that hides its contents.
func NewPasswordEntry() *Entry { return newEntry(EntryPassword) }

// NewSearchEntry creates a search field.
func NewSearchEntry() *Entry { return newEntry(EntrySearch) }

func newEntry(kind EntryKind) *Entry {
	e := &Entry{kind: kind}
	e.init(e, "Entry", false)
	return e
}

func (e *Entry) Kind() EntryKind    { return e.kind }
func (e *Entry) Text() string       { return e.text }
func (e *Entry) ReadOnly() bool     { return e.readOnly }
func (e *Entry) SetReadOnly(v bool) { e.readOnly = v }

// SetText replaces the text without calling OnChanged.
func (e *Entry) SetText(text string) { e.text = text }

// OnChanged sets the handler called after the user edits the text.
func (e *Entry) OnChanged(fn func(*Entry)) { e.onChanged = fn }

// Edit replaces the text as user typing would. Read-only entries and
// entries that are not EnabledToUser ignore it.
func (e *Entry) Edit(text string) bool {
	e.checkAlive("Edit")
	if e.readOnly || !e.EnabledToUser() {
		return false
	}
	e.text = text
	if e.onChanged != nil {
		e.onChanged(e)
	}
	return true
}
