package draw

import (
	"github.com/gogpu/ui"
	"github.com/gogpu/ui/text"
)

// Recorder is a Backend that captures drawing operations as commands
// instead of rendering them. Use Finish to obtain an immutable Recording
// that can be inspected or replayed to another backend.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
}

var _ Backend = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Finish returns the recorded commands and resets the Recorder.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{commands: r.commands, resources: r.resources}
	r.commands = make([]Command, 0, 64)
	r.resources = NewResourcePool()
	return rec
}

// Save implements Backend.
func (r *Recorder) Save() {
	r.commands = append(r.commands, SaveCommand{})
}

// Restore implements Backend.
func (r *Recorder) Restore() {
	r.commands = append(r.commands, RestoreCommand{})
}

// Transform implements Backend.
func (r *Recorder) Transform(m ui.Matrix) {
	r.commands = append(r.commands, TransformCommand{Matrix: m})
}

// Clip implements Backend.
func (r *Recorder) Clip(path *ui.Path) {
	r.commands = append(r.commands, ClipCommand{Path: r.resources.AddPath(path)})
}

// Fill implements Backend.
func (r *Recorder) Fill(path *ui.Path, brush ui.Brush) {
	r.commands = append(r.commands, FillCommand{
		Path:  r.resources.AddPath(path),
		Brush: r.resources.AddBrush(brush),
	})
}

// Stroke implements Backend.
func (r *Recorder) Stroke(path *ui.Path, brush ui.Brush, params ui.StrokeParams) {
	r.commands = append(r.commands, StrokeCommand{
		Path:   r.resources.AddPath(path),
		Brush:  r.resources.AddBrush(brush),
		Params: params.Clone(),
	})
}

// Text implements Backend.
func (r *Recorder) Text(layout *text.Layout, x, y float64) {
	r.commands = append(r.commands, TextCommand{Layout: r.resources.AddLayout(layout), X: x, Y: y})
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool the commands refer to.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to b.
func (r *Recording) Playback(b Backend) {
	res := r.resources
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			b.Save()
		case RestoreCommand:
			b.Restore()
		case TransformCommand:
			b.Transform(c.Matrix)
		case ClipCommand:
			b.Clip(res.Path(c.Path))
		case FillCommand:
			b.Fill(res.Path(c.Path), res.Brush(c.Brush))
		case StrokeCommand:
			b.Stroke(res.Path(c.Path), res.Brush(c.Brush), c.Params)
		case TextCommand:
			b.Text(res.Layout(c.Layout), c.X, c.Y)
		}
	}
	ui.Logger().Debug("recording played back", "commands", len(r.commands))
}
