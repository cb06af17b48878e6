package draw

import (
	"slices"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/text"
)

// ResourcePool stores the resources referenced by recorded commands.
//
// Ended paths and layouts are immutable and stored as is. Gradient brushes
// can still gain stops after they were drawn with, so they are copied.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths   []*ui.Path
	brushes []ui.Brush
	layouts []*text.Layout
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:   make([]*ui.Path, 0, 16),
		brushes: make([]ui.Brush, 0, 8),
	}
}

// AddPath adds a path to the pool and returns its reference. Adding the
// same path twice returns the first reference.
func (p *ResourcePool) AddPath(path *ui.Path) PathRef {
	if i := slices.Index(p.paths, path); i >= 0 {
		return PathRef(uint32(i)) // #nosec G115 -- bounded by memory
	}
	p.paths = append(p.paths, path)
	return PathRef(uint32(len(p.paths) - 1)) // #nosec G115 -- bounded by memory
}

// Path returns the path for ref, or nil if ref is out of range.
func (p *ResourcePool) Path(ref PathRef) *ui.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// AddBrush adds a copy of brush to the pool and returns its reference.
func (p *ResourcePool) AddBrush(brush ui.Brush) BrushRef {
	p.brushes = append(p.brushes, cloneBrush(brush))
	return BrushRef(uint32(len(p.brushes) - 1)) // #nosec G115 -- bounded by memory
}

// Brush returns the brush for ref, or nil if ref is out of range.
func (p *ResourcePool) Brush(ref BrushRef) ui.Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// AddLayout adds a text layout to the pool and returns its reference.
func (p *ResourcePool) AddLayout(layout *text.Layout) LayoutRef {
	p.layouts = append(p.layouts, layout)
	return LayoutRef(uint32(len(p.layouts) - 1)) // #nosec G115 -- bounded by memory
}

// Layout returns the layout for ref, or nil if ref is out of range.
func (p *ResourcePool) Layout(ref LayoutRef) *text.Layout {
	if int(ref) >= len(p.layouts) {
		return nil
	}
	return p.layouts[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}

func cloneBrush(b ui.Brush) ui.Brush {
	switch g := b.(type) {
	case *ui.LinearGradientBrush:
		c := *g
		c.Stops = slices.Clone(g.Stops)
		return &c
	case *ui.RadialGradientBrush:
		c := *g
		c.Stops = slices.Clone(g.Stops)
		return &c
	default:
		return b
	}
}
