// Package ui is the backend-agnostic core of a cross-platform desktop UI toolkit.
//
// # Overview
//
// The toolkit presents one control hierarchy, one 2-D vector drawing model,
// one rich-text model and one tabular-data model, and maps all of them onto
// native windowing and drawing backends. This package holds the geometry
// kernel that every other package builds on:
//
//   - Point, Size, Rect: small value records
//   - RGBA: normalized colors
//   - Matrix: 2x3 affine transforms
//   - Path: figures of lines, arcs and Bezier curves, finalized with End
//   - Brush: solid, linear-gradient and radial-gradient paint
//   - StrokeParams: line caps, joins, thickness and dashes
//   - Image: a logical size with one or more pixel representations
//
// The rest of the toolkit lives in sub-packages:
//
//   - text: attributed strings, fonts and text layout
//   - draw: the draw context handed to Area handlers and the backend registry
//   - control: the Control interface, containers, leaves and the Area
//   - table: the virtualized table data model and the Table control
//   - app: the event loop context (Init, Main, QueueMain, Timer)
//
// # Quick Start
//
//	p := ui.NewPath(ui.FillWinding)
//	p.NewFigure(0, 0)
//	p.LineTo(10, 0)
//	p.LineTo(10, 10)
//	p.CloseFigure()
//	p.End()
//
//	m := ui.Identity().Translate(5, 0).Scale(0, 0, 2, 2)
//	pt := m.TransformPoint(ui.Pt(1, 0)) // (12, 0)
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, arcs sweep counter-clockwise on screen
//
// # Contract Violations
//
// Misuse of the API (stroking an unfinished path, parenting a window,
// reading a table value with the wrong tag, out-of-range text offsets) is
// not recoverable. It is reported through Violation, which logs and panics
// with a *ContractError. Environment failures (a matrix that cannot be
// inverted, a backend that fails to initialize) are returned as errors.
package ui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
