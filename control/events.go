package control

import "strings"

// Modifiers is a set of modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

// String returns the held modifiers joined by "+", such as "Ctrl+Shift".
func (m Modifiers) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	for _, p := range []struct {
		mod  Modifiers
		name string
	}{
		{ModCtrl, "Ctrl"}, {ModAlt, "Alt"}, {ModShift, "Shift"}, {ModSuper, "Super"},
	} {
		if m&p.mod != 0 {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "+")
}

// Has reports whether every modifier in mods is held.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

// ExtKey is a key without a character representation.
type ExtKey int

const (
	ExtKeyNone ExtKey = iota
	ExtKeyEscape
	ExtKeyInsert
	ExtKeyDelete
	ExtKeyHome
	ExtKeyEnd
	ExtKeyPageUp
	ExtKeyPageDown
	ExtKeyUp
	ExtKeyDown
	ExtKeyLeft
	ExtKeyRight
	ExtKeyF1
	ExtKeyF2
	ExtKeyF3
	ExtKeyF4
	ExtKeyF5
	ExtKeyF6
	ExtKeyF7
	ExtKeyF8
	ExtKeyF9
	ExtKeyF10
	ExtKeyF11
	ExtKeyF12
	ExtKeyN0
	ExtKeyN1
	ExtKeyN2
	ExtKeyN3
	ExtKeyN4
	ExtKeyN5
	ExtKeyN6
	ExtKeyN7
	ExtKeyN8
	ExtKeyN9
	ExtKeyNDot
	ExtKeyNEnter
	ExtKeyNAdd
	ExtKeyNSubtract
	ExtKeyNMultiply
	ExtKeyNDivide
)

// IsKeypad reports whether the key is on the numeric keypad.
func (k ExtKey) IsKeypad() bool {
	return k >= ExtKeyN0 && k <= ExtKeyNDivide
}

// IsFunction reports whether the key is one of F1 to F12.
func (k ExtKey) IsFunction() bool {
	return k >= ExtKeyF1 && k <= ExtKeyF12
}

// MouseEvent is a mouse event delivered to an Area.
type MouseEvent struct {
	// X and Y are in area coordinates.
	X, Y float64

	// AreaWidth and AreaHeight are the area's size; both are zero for
	// scrolling areas.
	AreaWidth, AreaHeight float64

	// Down is the button pressed by this event and Up the button
	// released, counting from 1. Zero means none.
	Down, Up int

	// Count is the click count of a press: 2 for a double click.
	Count int

	Modifiers Modifiers

	// Held1To64 has bit n-1 set while button n is held.
	Held1To64 uint64
}

// Held reports whether button n is held.
func (e *MouseEvent) Held(n int) bool {
	if n < 1 || n > 64 {
		return false
	}
	return e.Held1To64&(1<<uint(n-1)) != 0
}

// KeyEvent is a keyboard event delivered to an Area. Exactly one of Key,
// ExtKey and Modifier is set.
type KeyEvent struct {
	Key    rune
	ExtKey ExtKey
	// Modifier is set when the event is the press or release of a
	// modifier key itself.
	Modifier Modifiers
	// Modifiers are the modifiers held during the event.
	Modifiers Modifiers
	Up        bool
}

func (e *KeyEvent) valid() bool {
	n := 0
	if e.Key != 0 {
		n++
	}
	if e.ExtKey != ExtKeyNone {
		n++
	}
	if e.Modifier != 0 {
		n++
	}
	return n == 1
}
