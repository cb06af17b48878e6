package control

// Group is a titled frame around a single child.
type Group struct {
	Base

	title    string
	margined bool
	child    Control
}

// NewGroup creates an empty group.
func NewGroup(title string) *Group {
	g := &Group{title: title}
	g.init(g, "Group", false)
	g.release = func() { g.child = nil }
	return g
}

func (g *Group) Title() string         { return g.title }
func (g *Group) SetTitle(title string) { g.title = title }
func (g *Group) Margined() bool        { return g.margined }
func (g *Group) SetMargined(v bool)    { g.margined = v }
func (g *Group) Child() Control        { return g.child }

// SetChild makes c the group's content, detaching any previous child.
// A nil c only detaches.
func (g *Group) SetChild(c Control) {
	const op = "Group.SetChild"
	g.checkAlive(op)
	if c != nil {
		if c == g.child {
			return
		}
		checkAdopt(op, g, c)
	}
	if g.child != nil {
		SetParent(g.child, nil)
	}
	if c != nil {
		adopt(op, g, c)
		g.child = c
	}
}

func (g *Group) children() []Control {
	if g.child == nil {
		return nil
	}
	return []Control{g.child}
}

func (g *Group) attach(c Control) { g.SetChild(c) }

func (g *Group) detach(c Control) {
	if g.child == c {
		g.child = nil
	}
}
