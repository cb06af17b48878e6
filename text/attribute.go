package text

import (
	"fmt"
	"math"

	"github.com/gogpu/ui"
)

// AttributeType is the category of an Attribute. Setting an attribute over
// a range replaces attributes of the same category there; attributes of
// different categories coexist.
type AttributeType int

const (
	AttrFamily AttributeType = iota
	AttrSize
	AttrWeight
	AttrItalic
	AttrStretch
	AttrColor
	AttrBackground
	AttrUnderline
	AttrUnderlineColor
	AttrFeatures
)

// String returns the string representation of the attribute type.
func (t AttributeType) String() string {
	switch t {
	case AttrFamily:
		return "Family"
	case AttrSize:
		return "Size"
	case AttrWeight:
		return "Weight"
	case AttrItalic:
		return "Italic"
	case AttrStretch:
		return "Stretch"
	case AttrColor:
		return "Color"
	case AttrBackground:
		return "Background"
	case AttrUnderline:
		return "Underline"
	case AttrUnderlineColor:
		return "UnderlineColor"
	case AttrFeatures:
		return "Features"
	default:
		return unknownStr
	}
}

// TextWeight is a font weight on the usual 0..1000 scale.
type TextWeight int

const (
	WeightMinimum    TextWeight = 0
	WeightThin       TextWeight = 100
	WeightUltraLight TextWeight = 200
	WeightLight      TextWeight = 300
	WeightBook       TextWeight = 350
	WeightNormal     TextWeight = 400
	WeightMedium     TextWeight = 500
	WeightSemiBold   TextWeight = 600
	WeightBold       TextWeight = 700
	WeightUltraBold  TextWeight = 800
	WeightHeavy      TextWeight = 900
	WeightUltraHeavy TextWeight = 950
	WeightMaximum    TextWeight = 1000
)

// TextItalic selects an upright or slanted style.
type TextItalic int

const (
	ItalicNormal TextItalic = iota
	ItalicOblique
	ItalicItalic
)

// String returns the string representation of the italic style.
func (i TextItalic) String() string {
	switch i {
	case ItalicNormal:
		return "Normal"
	case ItalicOblique:
		return "Oblique"
	case ItalicItalic:
		return "Italic"
	default:
		return unknownStr
	}
}

// TextStretch is a font width class.
type TextStretch int

const (
	StretchUltraCondensed TextStretch = iota
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

// Underline is an underline style.
type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	// UnderlineSuggestion is the wavy or dotted line used for spelling and
	// grammar suggestions.
	UnderlineSuggestion
)

// UnderlineColor selects the underline color. Only UnderlineColorCustom
// uses an explicit color; the others follow the platform's conventions.
type UnderlineColor int

const (
	UnderlineColorCustom UnderlineColor = iota
	UnderlineColorSpelling
	UnderlineColorGrammar
	UnderlineColorAuxiliary
)

// Attribute is an immutable text attribute value of one AttributeType.
// The zero value is not a valid attribute; use the New*Attribute
// constructors.
type Attribute struct {
	typ      AttributeType
	family   string
	size     float64
	enum     int
	color    ui.RGBA
	features *OpenTypeFeatures
}

// NewFamilyAttribute returns a font family attribute.
func NewFamilyAttribute(family string) Attribute {
	if family == "" {
		ui.Violation("NewFamilyAttribute", "empty family name")
	}
	return Attribute{typ: AttrFamily, family: family}
}

// NewSizeAttribute returns a font size attribute. size is in points and
// must be positive.
func NewSizeAttribute(size float64) Attribute {
	if !(size > 0) || math.IsInf(size, 0) {
		ui.Violation("NewSizeAttribute", "size %v is not a positive finite number", size)
	}
	return Attribute{typ: AttrSize, size: size}
}

// NewWeightAttribute returns a font weight attribute.
func NewWeightAttribute(w TextWeight) Attribute {
	if w < WeightMinimum || w > WeightMaximum {
		ui.Violation("NewWeightAttribute", "weight %d outside [%d, %d]", w, WeightMinimum, WeightMaximum)
	}
	return Attribute{typ: AttrWeight, enum: int(w)}
}

// NewItalicAttribute returns an italic style attribute.
func NewItalicAttribute(i TextItalic) Attribute {
	if i < ItalicNormal || i > ItalicItalic {
		ui.Violation("NewItalicAttribute", "invalid italic style %d", i)
	}
	return Attribute{typ: AttrItalic, enum: int(i)}
}

// NewStretchAttribute returns a font stretch attribute.
func NewStretchAttribute(s TextStretch) Attribute {
	if s < StretchUltraCondensed || s > StretchUltraExpanded {
		ui.Violation("NewStretchAttribute", "invalid stretch %d", s)
	}
	return Attribute{typ: AttrStretch, enum: int(s)}
}

// NewColorAttribute returns a foreground color attribute.
func NewColorAttribute(c ui.RGBA) Attribute {
	checkColor("NewColorAttribute", c)
	return Attribute{typ: AttrColor, color: c}
}

// NewBackgroundAttribute returns a background color attribute.
func NewBackgroundAttribute(c ui.RGBA) Attribute {
	checkColor("NewBackgroundAttribute", c)
	return Attribute{typ: AttrBackground, color: c}
}

// NewUnderlineAttribute returns an underline style attribute.
func NewUnderlineAttribute(u Underline) Attribute {
	if u < UnderlineNone || u > UnderlineSuggestion {
		ui.Violation("NewUnderlineAttribute", "invalid underline style %d", u)
	}
	return Attribute{typ: AttrUnderline, enum: int(u)}
}

// NewUnderlineColorAttribute returns an underline color attribute. c is
// only used, and only checked, for UnderlineColorCustom.
func NewUnderlineColorAttribute(u UnderlineColor, c ui.RGBA) Attribute {
	if u < UnderlineColorCustom || u > UnderlineColorAuxiliary {
		ui.Violation("NewUnderlineColorAttribute", "invalid underline color kind %d", u)
	}
	if u != UnderlineColorCustom {
		c = ui.RGBA{}
	} else {
		checkColor("NewUnderlineColorAttribute", c)
	}
	return Attribute{typ: AttrUnderlineColor, enum: int(u), color: c}
}

// NewFeaturesAttribute returns an OpenType features attribute. The set is
// copied, so later changes to f do not affect the attribute.
func NewFeaturesAttribute(f *OpenTypeFeatures) Attribute {
	if f == nil {
		ui.Violation("NewFeaturesAttribute", "nil feature set")
	}
	return Attribute{typ: AttrFeatures, features: f.Clone()}
}

func checkColor(op string, c ui.RGBA) {
	if !c.Valid() {
		ui.Violation(op, "color %+v has components outside [0, 1]", c)
	}
}

// Type returns the attribute's category.
func (a Attribute) Type() AttributeType {
	return a.typ
}

func (a Attribute) want(op string, t AttributeType) {
	if a.typ != t {
		ui.Violation(op, "attribute is %s, not %s", a.typ, t)
	}
}

// Family returns the family name of an AttrFamily attribute.
func (a Attribute) Family() string {
	a.want("Attribute.Family", AttrFamily)
	return a.family
}

// Size returns the size of an AttrSize attribute.
func (a Attribute) Size() float64 {
	a.want("Attribute.Size", AttrSize)
	return a.size
}

// Weight returns the weight of an AttrWeight attribute.
func (a Attribute) Weight() TextWeight {
	a.want("Attribute.Weight", AttrWeight)
	return TextWeight(a.enum)
}

// Italic returns the style of an AttrItalic attribute.
func (a Attribute) Italic() TextItalic {
	a.want("Attribute.Italic", AttrItalic)
	return TextItalic(a.enum)
}

// Stretch returns the stretch of an AttrStretch attribute.
func (a Attribute) Stretch() TextStretch {
	a.want("Attribute.Stretch", AttrStretch)
	return TextStretch(a.enum)
}

// Color returns the color of an AttrColor or AttrBackground attribute.
func (a Attribute) Color() ui.RGBA {
	if a.typ != AttrColor && a.typ != AttrBackground {
		ui.Violation("Attribute.Color", "attribute is %s, not Color or Background", a.typ)
	}
	return a.color
}

// Underline returns the style of an AttrUnderline attribute.
func (a Attribute) Underline() Underline {
	a.want("Attribute.Underline", AttrUnderline)
	return Underline(a.enum)
}

// UnderlineColor returns the kind and, for UnderlineColorCustom, the color
// of an AttrUnderlineColor attribute.
func (a Attribute) UnderlineColor() (UnderlineColor, ui.RGBA) {
	a.want("Attribute.UnderlineColor", AttrUnderlineColor)
	return UnderlineColor(a.enum), a.color
}

// Features returns a copy of the feature set of an AttrFeatures attribute.
func (a Attribute) Features() *OpenTypeFeatures {
	a.want("Attribute.Features", AttrFeatures)
	return a.features.Clone()
}

// Equal reports whether two attributes have the same category and value.
func (a Attribute) Equal(b Attribute) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case AttrFamily:
		return a.family == b.family
	case AttrSize:
		return a.size == b.size
	case AttrColor, AttrBackground:
		return a.color == b.color
	case AttrUnderlineColor:
		return a.enum == b.enum && a.color == b.color
	case AttrFeatures:
		return a.features.Equal(b.features)
	default:
		return a.enum == b.enum
	}
}

// String returns a short description such as "Weight(700)".
func (a Attribute) String() string {
	var v any
	switch a.typ {
	case AttrFamily:
		v = a.family
	case AttrSize:
		v = a.size
	case AttrColor, AttrBackground:
		v = a.color.Hex()
	case AttrFeatures:
		v = a.features.Len()
	default:
		v = a.enum
	}
	return fmt.Sprintf("%s(%v)", a.typ, v)
}
