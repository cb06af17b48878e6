package table

import (
	"fmt"

	"github.com/gogpu/ui"
)

// ValueType is the tag of a Value.
type ValueType int

const (
	TypeString ValueType = iota
	TypeImage
	TypeInt
	TypeColor
)

// String returns the type name.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeImage:
		return "Image"
	case TypeInt:
		return "Int"
	case TypeColor:
		return "Color"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

func (t ValueType) valid() bool {
	return t >= TypeString && t <= TypeColor
}

// Value is a cell value. The set of implementations is closed.
type Value interface {
	Type() ValueType
	isValue()
}

// String is a text cell value.
type String string

// Int is an integer cell value. Checkbox columns read it as a boolean and
// progress bar columns as a percentage, -1 meaning indeterminate.
type Int int

// Color is a color cell value.
type Color ui.RGBA

// ImageValue is an image cell value.
type ImageValue struct {
	Image *ui.Image
}

func (String) Type() ValueType     { return TypeString }
func (Int) Type() ValueType        { return TypeInt }
func (Color) Type() ValueType      { return TypeColor }
func (ImageValue) Type() ValueType { return TypeImage }

func (String) isValue()     {}
func (Int) isValue()        {}
func (Color) isValue()      {}
func (ImageValue) isValue() {}

// Bool returns the Int a checkbox column stores for v.
func Bool(v bool) Int {
	if v {
		return 1
	}
	return 0
}

func typeOf(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Type().String()
}

func wrongTag(op string, want ValueType, v Value) {
	ui.Violation(op, "value is %s, want %s", typeOf(v), want)
}

// TextOf returns the text of a String value.
func TextOf(v Value) string {
	s, ok := v.(String)
	if !ok {
		wrongTag("table.TextOf", TypeString, v)
	}
	return string(s)
}

// IntOf returns the integer of an Int value.
func IntOf(v Value) int {
	i, ok := v.(Int)
	if !ok {
		wrongTag("table.IntOf", TypeInt, v)
	}
	return int(i)
}

// ColorOf returns the color of a Color value.
func ColorOf(v Value) ui.RGBA {
	c, ok := v.(Color)
	if !ok {
		wrongTag("table.ColorOf", TypeColor, v)
	}
	return ui.RGBA(c)
}

// ImageOf returns the image of an ImageValue.
func ImageOf(v Value) *ui.Image {
	img, ok := v.(ImageValue)
	if !ok {
		wrongTag("table.ImageOf", TypeImage, v)
	}
	return img.Image
}
