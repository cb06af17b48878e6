package draw

import (
	"github.com/gogpu/ui"
	"github.com/gogpu/ui/text"
)

// Backend receives drawing operations and renders them to its output.
//
// A Backend keeps its own state stack for Save and Restore. Its
// Transform composes m with the current transform so that m applies
// first, and its Clip intersects the current clip with the path's fill
// area.
//
// Backends never see a path that is not ended, an unbalanced Restore or a
// nil brush; Context rejects those before they reach the backend.
type Backend interface {
	// Save pushes the current transform and clip.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// Transform applies m before the current transform.
	Transform(m ui.Matrix)

	// Clip intersects the clip region with the path, using its fill mode.
	Clip(path *ui.Path)

	// Fill paints the inside of the path with the brush.
	Fill(path *ui.Path, brush ui.Brush)

	// Stroke paints the outline of the path.
	Stroke(path *ui.Path, brush ui.Brush, params ui.StrokeParams)

	// Text draws a laid-out text with its top-left corner at (x, y).
	Text(layout *text.Layout, x, y float64)
}
