// Command uidemo builds a small window on the headless driver, drives it
// with simulated input and prints what its canvas drew.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/app"
	"github.com/gogpu/ui/control"
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/table"
	"github.com/gogpu/ui/text"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		backend    = flag.String("backend", draw.RecordingBackend, "draw backend")
		ticks      = flag.Int("ticks", 3, "timer ticks before closing the window")
	)
	flag.Parse()

	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = app.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	ctx := app.New(app.WithConfig(cfg))
	if err := ctx.Init(); err != nil {
		log.Fatalf("Failed to init: %v", err)
	}
	defer ctx.Uninit()

	b, err := draw.NewBackend(*backend)
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}

	d := newDemo(ctx, b)
	ctx.Track(d.window)
	d.window.Show()

	n := 0
	ctx.Timer(10*time.Millisecond, func() bool {
		n++
		d.tick(n)
		if n < *ticks {
			return true
		}
		d.window.RequestClose()
		return false
	})

	ctx.QueueMain(d.paint)

	if err := ctx.Main(); err != nil {
		log.Fatalf("Main loop failed: %v", err)
	}

	if rec, ok := b.(*draw.Recorder); ok {
		r := rec.Finish()
		log.Printf("Canvas recorded %d commands: %d fills, %d strokes, %d texts",
			len(r.Commands()), r.Count(draw.CmdFill), r.Count(draw.CmdStroke), r.Count(draw.CmdText))
	}
	log.Printf("Table has %d rows, selection %v", d.model.NumRows(), d.table.Selection())
}

type demo struct {
	ctx     *app.Context
	backend draw.Backend
	window  *control.Window
	entry   *control.Entry
	canvas  *control.Area
	model   *table.Model
	table   *table.Table
	items   *itemHandler
}

func newDemo(ctx *app.Context, b draw.Backend) *demo {
	d := &demo{ctx: ctx, backend: b, items: &itemHandler{}}
	d.window = control.NewWindow("uidemo", 640, 480, false)
	d.window.SetMargined(true)
	d.window.OnClosing(func(*control.Window) bool { return true })
	control.AfterDestroy(d.window, func() { d.model.Close() })

	vbox := control.NewVerticalBox()
	vbox.SetPadded(true)
	d.window.SetChild(vbox)

	form := control.NewForm()
	d.entry = control.NewEntry()
	d.entry.OnChanged(func(e *control.Entry) {
		d.items.add(e.Text())
		d.model.RowInserted(len(d.items.rows) - 1)
	})
	form.Append("New item", d.entry, false)
	vbox.Append(form, false)

	d.model = table.NewModel(d.items)
	d.table = table.NewTable(table.Params{Model: d.model, RowBackgroundColorModelColumn: table.NoColumn})
	d.table.AppendTextColumn("Item", 0, table.AlwaysEditable, nil)
	d.table.AppendCheckboxColumn("Done", 1, table.AlwaysEditable)
	d.table.AppendProgressBarColumn("Progress", 2)
	vbox.Append(d.table, true)

	d.canvas = control.NewArea(&canvas{font: ctx.ControlFont(), items: d.items})
	d.canvas.Allocate(400, 300)
	vbox.Append(d.canvas, true)
	return d
}

// tick plays one round of user input.
func (d *demo) tick(n int) {
	d.entry.Edit("item " + string(rune('A'+n-1)))
	last := len(d.items.rows) - 1
	d.table.ToggleCheckbox(last, 1)
	d.table.ClickRow(last)
	d.canvas.QueueRedrawAll()
	d.paint()
}

func (d *demo) paint() {
	if d.canvas.NeedsRedraw() {
		size := d.canvas.Size()
		d.canvas.Paint(d.backend, ui.Rect{Width: size.Width, Height: size.Height})
	}
}

type item struct {
	name string
	done bool
}

// itemHandler backs the table: a text column, a checkbox column and a
// computed progress column.
type itemHandler struct {
	rows []item
}

func (h *itemHandler) add(name string) { h.rows = append(h.rows, item{name: name}) }

func (h *itemHandler) NumColumns(*table.Model) int { return 3 }
func (h *itemHandler) NumRows(*table.Model) int    { return len(h.rows) }

func (h *itemHandler) ColumnType(_ *table.Model, col int) table.ValueType {
	if col == 0 {
		return table.TypeString
	}
	return table.TypeInt
}

func (h *itemHandler) CellValue(_ *table.Model, row, col int) table.Value {
	switch col {
	case 0:
		return table.String(h.rows[row].name)
	case 1:
		return table.Bool(h.rows[row].done)
	default:
		return table.Int(h.progress())
	}
}

func (h *itemHandler) SetCellValue(m *table.Model, row, col int, v table.Value) {
	switch col {
	case 0:
		h.rows[row].name = table.TextOf(v)
	case 1:
		h.rows[row].done = table.IntOf(v) != 0
	}
	for i := range h.rows {
		m.RowChanged(i)
	}
}

func (h *itemHandler) progress() int {
	if len(h.rows) == 0 {
		return 0
	}
	done := 0
	for _, it := range h.rows {
		if it.done {
			done++
		}
	}
	return done * 100 / len(h.rows)
}

// canvas draws a progress ring and a caption.
type canvas struct {
	font  text.FontDescriptor
	items *itemHandler
}

func (c *canvas) Draw(_ *control.Area, p *control.AreaDrawParams) {
	dc := p.Context
	cx, cy := p.AreaWidth/2, p.AreaHeight/2

	bg := ui.NewPath(ui.FillWinding)
	bg.AddRectangle(0, 0, p.AreaWidth, p.AreaHeight)
	bg.End()
	grad := ui.NewLinearGradientBrush(0, 0, 0, p.AreaHeight).
		AddColorStop(0, ui.HSL(210, 0.5, 0.2)).
		AddColorStop(1, ui.HSL(210, 0.5, 0.4))
	dc.Fill(bg, grad)

	ring := ui.NewPath(ui.FillWinding)
	sweep := 2 * math.Pi * float64(c.items.progress()) / 100
	if sweep > 0 {
		ring.NewFigureWithArc(cx, cy, 80, -math.Pi/2, sweep, false)
	} else {
		ring.NewFigure(cx, cy-80)
	}
	ring.End()
	stroke := ui.DefaultStroke()
	stroke.Thickness = 12
	stroke.Cap = ui.CapRound
	dc.Stroke(ring, ui.Solid(ui.Green), stroke)

	caption := text.NewAttributedString("")
	for i, it := range c.items.rows {
		if i > 0 {
			caption.AppendUnattributed("\n")
		}
		start := caption.Len()
		caption.AppendUnattributed(it.name)
		if it.done {
			caption.SetAttribute(text.NewWeightAttribute(text.WeightBold), start, caption.Len())
		}
	}
	layout, err := text.NewLayout(text.LayoutParams{
		String:      caption,
		DefaultFont: c.font,
		Width:       p.AreaWidth - 20,
		Align:       text.AlignCenter,
	})
	if err != nil {
		ui.Logger().Warn("caption layout failed", "err", err)
		return
	}
	dc.Save()
	dc.Transform(ui.Identity().Translate(10, cy+100))
	dc.Text(layout, 0, 0)
	dc.Restore()
}

func (c *canvas) MouseEvent(*control.Area, *control.MouseEvent)  {}
func (c *canvas) MouseCrossed(*control.Area, bool)               {}
func (c *canvas) DragBroken(*control.Area)                       {}
func (c *canvas) KeyEvent(*control.Area, *control.KeyEvent) bool { return false }
