package draw

import "github.com/gogpu/ui"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSave      CommandType = iota // Save current state
	CmdRestore                      // Restore previous state
	CmdTransform                    // Apply a transform
	CmdClip                         // Intersect the clip with a path
	CmdFill                         // Fill a path
	CmdStroke                       // Stroke a path
	CmdText                         // Draw a text layout
)

var commandTypeNames = [...]string{
	CmdSave:      "Save",
	CmdRestore:   "Restore",
	CmdTransform: "Transform",
	CmdClip:      "Clip",
	CmdFill:      "Fill",
	CmdStroke:    "Stroke",
	CmdText:      "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded backend call.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// LayoutRef is a reference to a text layout in the resource pool.
type LayoutRef uint32

// SaveCommand records Backend.Save.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand records Backend.Restore.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TransformCommand records Backend.Transform.
type TransformCommand struct {
	Matrix ui.Matrix
}

// Type implements Command.
func (TransformCommand) Type() CommandType { return CmdTransform }

// ClipCommand records Backend.Clip.
type ClipCommand struct {
	Path PathRef
}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

// FillCommand records Backend.Fill.
type FillCommand struct {
	Path  PathRef
	Brush BrushRef
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand records Backend.Stroke.
type StrokeCommand struct {
	Path   PathRef
	Brush  BrushRef
	Params ui.StrokeParams
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// TextCommand records Backend.Text.
type TextCommand struct {
	Layout LayoutRef
	X, Y   float64
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
