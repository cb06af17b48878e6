// Package draw is the boundary between the toolkit core and a rendering
// backend.
//
// An Area's Draw handler receives a Context. The Context forwards the
// only operations the core ever issues (Save, Restore, Transform, Clip,
// Fill, Stroke and Text) to a Backend after checking their preconditions:
// paths must be ended, every Restore must match a Save, brushes must be
// set and stroke thickness must be positive.
//
// # Backends
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	func init() {
//	    draw.Register("cairo", func() draw.Backend { return newCairoBackend() })
//	}
//
// The "recording" backend is always available. It captures the calls as
// typed commands that can be inspected or replayed to another backend:
//
//	rec := draw.NewRecorder()
//	ctx := draw.NewContext(rec)
//	ctx.Fill(path, ui.Solid(ui.Red))
//	rec.Finish().Playback(otherBackend)
package draw
