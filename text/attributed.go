package text

import (
	"slices"
	"sort"
	"unicode/utf8"

	"github.com/gogpu/ui"
	"github.com/rivo/uniseg"
)

// Span assigns an attribute to the half-open byte range [Start, End).
type Span struct {
	Attr  Attribute
	Start int
	End   int
}

// Run is a maximal byte range [Start, End) over which the set of active
// attributes is constant. Attrs holds at most one attribute per category,
// ordered by category.
type Run struct {
	Start int
	End   int
	Attrs []Attribute
}

// Attr returns the run's attribute of type t, if any.
func (r Run) Attr(t AttributeType) (Attribute, bool) {
	for _, a := range r.Attrs {
		if a.typ == t {
			return a, true
		}
	}
	return Attribute{}, false
}

// AttributedString is a mutable UTF-8 string with attribute spans.
//
// All offsets are byte offsets into String() and must fall on UTF-8
// sequence boundaries; 0 and Len() are always valid. An offset outside the
// string or inside a multi-byte sequence is a contract violation.
//
// Spans of the same category never overlap. Spans of different
// categories overlap freely.
//
// AttributedString is not safe for concurrent use.
type AttributedString struct {
	s     string
	spans []Span // sorted by Start, then Type, then End

	// graphemes holds the byte offset of every grapheme cluster start,
	// followed by len(s). nil means it must be rebuilt.
	graphemes []int
}

// NewAttributedString creates an attributed string holding initial with
// no attributes.
func NewAttributedString(initial string) *AttributedString {
	if !utf8.ValidString(initial) {
		ui.Violation("NewAttributedString", "initial text is not valid UTF-8")
	}
	return &AttributedString{s: initial}
}

// String returns the text.
func (as *AttributedString) String() string {
	return as.s
}

// Len returns the length of the text in bytes.
func (as *AttributedString) Len() int {
	return len(as.s)
}

// AppendUnattributed adds str at the end of the text. Spans ending at the
// old end are not extended, so the new text carries no attributes.
func (as *AttributedString) AppendUnattributed(str string) {
	as.insert("AttributedString.AppendUnattributed", str, len(as.s))
}

// InsertAtUnattributed inserts str at byte offset at.
//
// Spans starting at or after at move right by len(str). A span with
// Start < at < End grows by len(str), so text inserted inside a styled
// range takes on its style.
func (as *AttributedString) InsertAtUnattributed(str string, at int) {
	as.insert("AttributedString.InsertAtUnattributed", str, at)
}

func (as *AttributedString) insert(op, str string, at int) {
	if !utf8.ValidString(str) {
		ui.Violation(op, "inserted text is not valid UTF-8")
	}
	as.checkOffset(op, at)
	if str == "" {
		return
	}

	n := len(str)
	for i := range as.spans {
		sp := &as.spans[i]
		switch {
		case sp.Start >= at:
			sp.Start += n
			sp.End += n
		case sp.End > at:
			sp.End += n
		}
	}
	as.s = as.s[:at] + str + as.s[at:]
	as.invalidate()
}

// Delete removes the byte range [start, end).
//
// Spans are clipped to the remaining text; a span lying entirely inside
// the range is removed, and spans after it move left by end-start.
func (as *AttributedString) Delete(start, end int) {
	const op = "AttributedString.Delete"
	as.checkRange(op, start, end)
	if start == end {
		return
	}

	n := end - start
	adjust := func(x int) int {
		switch {
		case x <= start:
			return x
		case x >= end:
			return x - n
		default:
			return start
		}
	}

	kept := as.spans[:0]
	for _, sp := range as.spans {
		sp.Start = adjust(sp.Start)
		sp.End = adjust(sp.End)
		if sp.Start < sp.End {
			kept = append(kept, sp)
		}
	}
	as.spans = kept
	as.s = as.s[:start] + as.s[end:]
	as.invalidate()
}

// SetAttribute applies attr to the byte range [start, end).
//
// Existing spans of the same category are trimmed, split or removed so
// that attr alone covers the range; spans of other categories and text
// outside the range are unaffected. An adjacent or overlapping span with
// an equal attribute is merged into the new one. An empty range is a no-op.
func (as *AttributedString) SetAttribute(attr Attribute, start, end int) {
	const op = "AttributedString.SetAttribute"
	as.checkRange(op, start, end)
	if start == end {
		return
	}

	out := make([]Span, 0, len(as.spans)+2)
	for _, sp := range as.spans {
		if sp.Attr.typ != attr.typ {
			out = append(out, sp)
			continue
		}
		if sp.Attr.Equal(attr) && sp.Start <= end && sp.End >= start {
			start = min(start, sp.Start)
			end = max(end, sp.End)
			continue
		}
		if sp.End <= start || sp.Start >= end {
			out = append(out, sp)
			continue
		}
		if sp.Start < start {
			out = append(out, Span{Attr: sp.Attr, Start: sp.Start, End: start})
		}
		if sp.End > end {
			out = append(out, Span{Attr: sp.Attr, Start: end, End: sp.End})
		}
	}
	out = append(out, Span{Attr: attr, Start: start, End: end})
	sortSpans(out)
	as.spans = out
	as.invalidate()
}

func sortSpans(spans []Span) {
	slices.SortFunc(spans, func(a, b Span) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		if a.Attr.typ != b.Attr.typ {
			return int(a.Attr.typ) - int(b.Attr.typ)
		}
		return a.End - b.End
	})
}

// Spans returns a snapshot of the attribute spans in start order.
func (as *AttributedString) Spans() []Span {
	return slices.Clone(as.spans)
}

// AttributesAt returns the attributes active at byte offset pos, ordered
// by category. pos must be less than Len().
func (as *AttributedString) AttributesAt(pos int) []Attribute {
	const op = "AttributedString.AttributesAt"
	as.checkOffset(op, pos)
	if pos == len(as.s) {
		ui.Violation(op, "offset %d is the end of the text", pos)
	}
	return as.activeAt(pos)
}

func (as *AttributedString) activeAt(pos int) []Attribute {
	var attrs []Attribute
	for _, sp := range as.spans {
		if sp.Start > pos {
			break
		}
		if pos < sp.End {
			attrs = append(attrs, sp.Attr)
		}
	}
	slices.SortFunc(attrs, func(a, b Attribute) int { return int(a.typ) - int(b.typ) })
	return attrs
}

// ForEachAttribute calls fn for each maximal run of constant attributes in
// increasing offset order, until fn returns false. Runs cover the whole
// text, including ranges with no attributes. An empty string has no runs.
//
// The traversal reads the current state on every call, so it can be
// restarted at any time; fn must not modify the string.
func (as *AttributedString) ForEachAttribute(fn func(Run) bool) {
	if len(as.s) == 0 {
		return
	}

	bounds := make([]int, 0, 2*len(as.spans)+2)
	bounds = append(bounds, 0, len(as.s))
	for _, sp := range as.spans {
		bounds = append(bounds, sp.Start, sp.End)
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	var pending *Run
	for i := 0; i+1 < len(bounds); i++ {
		attrs := as.activeAt(bounds[i])
		if pending != nil && sameAttrs(pending.Attrs, attrs) {
			pending.End = bounds[i+1]
			continue
		}
		if pending != nil && !fn(*pending) {
			return
		}
		pending = &Run{Start: bounds[i], End: bounds[i+1], Attrs: attrs}
	}
	if pending != nil {
		fn(*pending)
	}
}

// Runs collects ForEachAttribute into a slice.
func (as *AttributedString) Runs() []Run {
	var runs []Run
	as.ForEachAttribute(func(r Run) bool {
		runs = append(runs, r)
		return true
	})
	return runs
}

func sameAttrs(a, b []Attribute) bool {
	return slices.EqualFunc(a, b, Attribute.Equal)
}

// NumGraphemes returns the number of grapheme clusters (user-perceived
// characters) in the text.
func (as *AttributedString) NumGraphemes() int {
	return len(as.graphemeIndex()) - 1
}

// ByteIndexToGrapheme returns the index of the grapheme cluster containing
// byte offset pos. Len() maps to NumGraphemes().
func (as *AttributedString) ByteIndexToGrapheme(pos int) int {
	as.checkOffset("AttributedString.ByteIndexToGrapheme", pos)
	g := as.graphemeIndex()
	// Largest i with g[i] <= pos.
	return sort.Search(len(g), func(i int) bool { return g[i] > pos }) - 1
}

// GraphemeToByteIndex returns the byte offset where grapheme cluster g
// starts. NumGraphemes() maps to Len().
func (as *AttributedString) GraphemeToByteIndex(g int) int {
	idx := as.graphemeIndex()
	if g < 0 || g >= len(idx) {
		ui.Violation("AttributedString.GraphemeToByteIndex", "grapheme %d outside [0, %d]", g, len(idx)-1)
	}
	return idx[g]
}

// IsGraphemeBoundary reports whether pos is the start of a grapheme
// cluster or the end of the text.
func (as *AttributedString) IsGraphemeBoundary(pos int) bool {
	if pos < 0 || pos > len(as.s) {
		return false
	}
	_, found := slices.BinarySearch(as.graphemeIndex(), pos)
	return found
}

func (as *AttributedString) graphemeIndex() []int {
	if as.graphemes == nil {
		as.graphemes = graphemeBoundaries(as.s)
	}
	return as.graphemes
}

func (as *AttributedString) invalidate() {
	as.graphemes = nil
}

// graphemeBoundaries returns the start offset of each grapheme cluster in
// s, followed by len(s).
func graphemeBoundaries(s string) []int {
	out := make([]int, 0, len(s)+1)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, _ := g.Positions()
		out = append(out, start)
	}
	return append(out, len(s))
}

func (as *AttributedString) checkOffset(op string, pos int) {
	if pos < 0 || pos > len(as.s) {
		ui.Violation(op, "offset %d outside [0, %d]", pos, len(as.s))
	}
	if pos < len(as.s) && !utf8.RuneStart(as.s[pos]) {
		ui.Violation(op, "offset %d is inside a UTF-8 sequence", pos)
	}
}

func (as *AttributedString) checkRange(op string, start, end int) {
	as.checkOffset(op, start)
	as.checkOffset(op, end)
	if start > end {
		ui.Violation(op, "start %d after end %d", start, end)
	}
}
