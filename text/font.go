package text

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/ui"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Built-in font families.
const (
	FamilyGo          = "Go"
	FamilyGoMono      = "Go Mono"
	FamilyGoSmallcaps = "Go Smallcaps"
)

// FontDescriptor describes a font by family, size and style.
type FontDescriptor struct {
	Family  string
	Size    float64
	Weight  TextWeight
	Italic  TextItalic
	Stretch TextStretch
}

// DefaultFont returns a 12pt regular "Go" descriptor.
func DefaultFont() FontDescriptor {
	return FontDescriptor{
		Family:  FamilyGo,
		Size:    12,
		Weight:  WeightNormal,
		Italic:  ItalicNormal,
		Stretch: StretchNormal,
	}
}

// check reports a contract violation for an unusable descriptor.
func (d FontDescriptor) check(op string) {
	if !(d.Size > 0) {
		ui.Violation(op, "font size %v is not positive", d.Size)
	}
}

// apply overrides descriptor fields with font attributes.
func (d FontDescriptor) apply(attrs []Attribute) FontDescriptor {
	for _, a := range attrs {
		switch a.typ {
		case AttrFamily:
			d.Family = a.family
		case AttrSize:
			d.Size = a.size
		case AttrWeight:
			d.Weight = TextWeight(a.enum)
		case AttrItalic:
			d.Italic = TextItalic(a.enum)
		case AttrStretch:
			d.Stretch = TextStretch(a.enum)
		}
	}
	return d
}

// registeredFace is one style of a family.
type registeredFace struct {
	weight TextWeight
	italic bool
	data   []byte

	once   sync.Once
	source *FontSource
	err    error
}

func (f *registeredFace) load() (*FontSource, error) {
	f.once.Do(func() {
		f.source, f.err = NewFontSource(f.data)
	})
	return f.source, f.err
}

// FontRegistry maps family names to font files. Families are matched
// case-insensitively; each file is parsed the first time it is resolved.
//
// FontRegistry is safe for concurrent use.
type FontRegistry struct {
	mu       sync.RWMutex
	families map[string][]*registeredFace
}

// NewFontRegistry returns an empty registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{families: make(map[string][]*registeredFace)}
}

// Register adds font data for a family at the given weight and slant.
// A later registration for the same family, weight and slant replaces the
// earlier one.
func (r *FontRegistry) Register(family string, weight TextWeight, italic bool, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	key := strings.ToLower(family)

	r.mu.Lock()
	defer r.mu.Unlock()
	faces := r.families[key]
	for i, f := range faces {
		if f.weight == weight && f.italic == italic {
			faces[i] = &registeredFace{weight: weight, italic: italic, data: data}
			return nil
		}
	}
	r.families[key] = append(faces, &registeredFace{weight: weight, italic: italic, data: data})
	return nil
}

// Families returns the registered family keys.
func (r *FontRegistry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	return names
}

// Lookup returns the font of the descriptor's family that best matches
// its weight and slant. Faces of the requested slant are preferred; among
// them the closest weight wins, the heavier one on a tie. Italic and
// oblique requests both match italic faces.
func (r *FontRegistry) Lookup(desc FontDescriptor) (*FontSource, error) {
	r.mu.RLock()
	faces := r.families[strings.ToLower(desc.Family)]
	r.mu.RUnlock()
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, desc.Family)
	}

	wantItalic := desc.Italic != ItalicNormal
	var best *registeredFace
	bestScore := -1
	for _, f := range faces {
		score := weightDistance(f.weight, desc.Weight) * 2
		if f.weight < desc.Weight {
			score++
		}
		if f.italic != wantItalic {
			score += 10000
		}
		if best == nil || score < bestScore {
			best, bestScore = f, score
		}
	}

	src, err := best.load()
	if err != nil {
		return nil, fmt.Errorf("text: loading %q: %w", desc.Family, err)
	}
	return src, nil
}

// Resolve is Lookup with a fallback to the "Go" family for unknown
// families.
func (r *FontRegistry) Resolve(desc FontDescriptor) (*FontSource, error) {
	src, err := r.Lookup(desc)
	if err == nil {
		return src, nil
	}
	if strings.EqualFold(desc.Family, FamilyGo) {
		return nil, err
	}
	ui.Logger().Debug("font family not found, using fallback", "family", desc.Family, "fallback", FamilyGo)
	desc.Family = FamilyGo
	return r.Lookup(desc)
}

func weightDistance(a, b TextWeight) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// registerGoFonts adds the Go font families to r.
func registerGoFonts(r *FontRegistry) {
	builtin := []struct {
		family string
		weight TextWeight
		italic bool
		data   []byte
	}{
		{FamilyGo, WeightNormal, false, goregular.TTF},
		{FamilyGo, WeightNormal, true, goitalic.TTF},
		{FamilyGo, WeightMedium, false, gomedium.TTF},
		{FamilyGo, WeightMedium, true, gomediumitalic.TTF},
		{FamilyGo, WeightBold, false, gobold.TTF},
		{FamilyGo, WeightBold, true, gobolditalic.TTF},
		{FamilyGoMono, WeightNormal, false, gomono.TTF},
		{FamilyGoMono, WeightNormal, true, gomonoitalic.TTF},
		{FamilyGoMono, WeightBold, false, gomonobold.TTF},
		{FamilyGoMono, WeightBold, true, gomonobolditalic.TTF},
		{FamilyGoSmallcaps, WeightNormal, false, gosmallcaps.TTF},
		{FamilyGoSmallcaps, WeightNormal, true, gosmallcapsitalic.TTF},
	}
	for _, f := range builtin {
		_ = r.Register(f.family, f.weight, f.italic, f.data)
	}
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *FontRegistry
)

// DefaultRegistry returns the process-wide registry, which starts out with
// the Go font families.
func DefaultRegistry() *FontRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewFontRegistry()
		registerGoFonts(defaultRegistry)
	})
	return defaultRegistry
}

// RegisterFont adds font data to the default registry.
func RegisterFont(family string, weight TextWeight, italic bool, data []byte) error {
	return DefaultRegistry().Register(family, weight, italic, data)
}
