package text

import (
	"maps"
	"slices"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/shaping"
)

// Tag is a 4-byte OpenType feature tag such as "liga" or "kern".
type Tag = ot.Tag

// NewTag builds a tag from its four bytes.
func NewTag(a, b, c, d byte) Tag {
	return ot.NewTag(a, b, c, d)
}

// OpenTypeFeatures is a set of OpenType feature tags with their values.
// Each tag appears at most once.
//
// A feature value of 0 turns the feature off, 1 turns it on, and larger
// values select alternates where the feature supports them.
type OpenTypeFeatures struct {
	tags map[Tag]uint32
}

// NewOpenTypeFeatures returns an empty feature set.
func NewOpenTypeFeatures() *OpenTypeFeatures {
	return &OpenTypeFeatures{tags: make(map[Tag]uint32)}
}

// Add sets the value of the feature with tag abcd, replacing any previous
// value.
func (f *OpenTypeFeatures) Add(a, b, c, d byte, value uint32) {
	f.tags[NewTag(a, b, c, d)] = value
}

// Remove deletes the feature with tag abcd. Removing an absent tag is a
// no-op.
func (f *OpenTypeFeatures) Remove(a, b, c, d byte) {
	delete(f.tags, NewTag(a, b, c, d))
}

// Get returns the value of the feature with tag abcd, and whether it is
// present.
func (f *OpenTypeFeatures) Get(a, b, c, d byte) (uint32, bool) {
	v, ok := f.tags[NewTag(a, b, c, d)]
	return v, ok
}

// Len returns the number of features in the set.
func (f *OpenTypeFeatures) Len() int {
	if f == nil {
		return 0
	}
	return len(f.tags)
}

// ForEach calls fn for each feature in ascending tag order until fn
// returns false.
func (f *OpenTypeFeatures) ForEach(fn func(tag Tag, value uint32) bool) {
	if f == nil {
		return
	}
	for _, tag := range slices.Sorted(maps.Keys(f.tags)) {
		if !fn(tag, f.tags[tag]) {
			return
		}
	}
}

// Clone returns an independent copy of the set.
func (f *OpenTypeFeatures) Clone() *OpenTypeFeatures {
	if f == nil {
		return nil
	}
	return &OpenTypeFeatures{tags: maps.Clone(f.tags)}
}

// Equal reports whether both sets hold the same tags with the same values.
// A nil set equals an empty one.
func (f *OpenTypeFeatures) Equal(other *OpenTypeFeatures) bool {
	if f.Len() != other.Len() {
		return false
	}
	if f.Len() == 0 {
		return true
	}
	return maps.Equal(f.tags, other.tags)
}

// shapingFeatures converts the set to the shaper's input form.
func (f *OpenTypeFeatures) shapingFeatures() []shaping.FontFeature {
	if f.Len() == 0 {
		return nil
	}
	out := make([]shaping.FontFeature, 0, f.Len())
	f.ForEach(func(tag Tag, value uint32) bool {
		out = append(out, shaping.FontFeature{Tag: tag, Value: value})
		return true
	})
	return out
}
