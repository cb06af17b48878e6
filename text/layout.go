package text

import (
	"fmt"
	"math"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
	"github.com/gogpu/ui"
	xlanguage "golang.org/x/text/language"
)

// LayoutParams are the inputs of a layout.
type LayoutParams struct {
	// String is the text to lay out. It is read once; later changes to
	// the string do not affect the layout.
	String *AttributedString

	// DefaultFont applies wherever the string has no font attributes.
	DefaultFont FontDescriptor

	// Width is the wrapping width. Zero, negative or infinite disables
	// wrapping: every paragraph becomes a single line.
	Width float64

	// Align places each line within Width, or within the widest line
	// when wrapping is disabled.
	Align Align

	// Language is a BCP 47 tag used for shaping. Empty means "en".
	Language string

	// Direction is the base paragraph direction. Characters with a strong
	// direction still run in their own direction.
	Direction Direction

	// Registry resolves font descriptors. nil means DefaultRegistry().
	Registry *FontRegistry
}

// Style is the resolved style of a run of laid-out text.
type Style struct {
	Font           FontDescriptor
	Color          ui.RGBA
	Background     ui.RGBA
	HasBackground  bool
	Underline      Underline
	UnderlineColor UnderlineColor
	// UnderlineRGBA is the color for UnderlineColorCustom.
	UnderlineRGBA ui.RGBA
	Features      *OpenTypeFeatures
}

// LineRun is a piece of a line with one style and one direction.
type LineRun struct {
	// Start and End delimit the run's text as byte offsets.
	Start, End int
	// X is the left edge of the run in layout coordinates.
	X     float64
	Width float64

	Direction Direction
	Style     Style
	Source    *FontSource

	// Glyphs are in visual order; their X is relative to the run's X.
	Glyphs []Glyph
}

// Line is one visual line of a layout.
type Line struct {
	// Start and End delimit the line's text as byte offsets, including a
	// trailing hard line break.
	Start, End int

	// X is the left edge of the line's visible text and Width its width,
	// not counting trailing white space.
	X, Width float64

	// Y is the top of the line box; Height covers ascent, descent and the
	// line gap.
	Y, Height float64

	Ascent, Descent float64
	// Baseline is Y + Ascent.
	Baseline float64

	// Runs in visual order.
	Runs []LineRun
}

// Layout is an immutable, measured layout of attributed text.
type Layout struct {
	text      string
	lines     []Line
	extents   ui.Size
	advance   []float64 // advance per byte offset, set on rune starts
	graphemes []int
}

// styledRun is a style run with its font resolved.
type styledRun struct {
	start, end int
	style      Style
	source     *FontSource
	metrics    FontMetrics
}

// item is the intersection of a style run and a direction run, shaped as
// a unit.
type item struct {
	start, end int
	dir        Direction
	run        int // index into styled runs
	glyphs     []Glyph
}

// NewLayout lays out params.String.
//
// The result is a pure function of the parameters. It returns an error
// only when a font cannot be loaded or the language tag is malformed.
func NewLayout(params LayoutParams) (*Layout, error) {
	const op = "NewLayout"
	if params.String == nil {
		ui.Violation(op, "nil attributed string")
	}
	params.DefaultFont.check(op)
	if params.Registry == nil {
		params.Registry = DefaultRegistry()
	}
	lang, err := shapingLanguage(params.Language)
	if err != nil {
		return nil, err
	}
	wrap := params.Width > 0 && !math.IsInf(params.Width, 1)

	s := params.String.String()
	runs, err := resolveRuns(params.String, params.DefaultFont, params.Registry)
	if err != nil {
		return nil, err
	}
	defaultSrc, err := params.Registry.Resolve(params.DefaultFont)
	if err != nil {
		return nil, err
	}
	defaultMetrics := defaultSrc.Metrics(params.DefaultFont.Size)

	l := &Layout{
		text:      s,
		advance:   make([]float64, len(s)),
		graphemes: graphemeBoundaries(s),
	}

	segs := lineSegments(s)
	items, err := l.shapeItems(runs, directionItems(s, segs, params.Direction), lang)
	if err != nil {
		return nil, err
	}

	ranges := l.breakLines(segs, params.Width, wrap)
	var y, widest float64
	for _, r := range ranges {
		line := l.buildLine(r[0], r[1], items, runs, params.Direction, defaultMetrics)
		line.Y = y
		line.Baseline = y + line.Ascent
		y += line.Height
		widest = max(widest, line.Width)
		l.lines = append(l.lines, line)
	}

	alignWidth := widest
	if wrap {
		alignWidth = params.Width
	}
	for i := range l.lines {
		alignLine(&l.lines[i], params.Align, alignWidth)
	}
	l.extents = ui.Size{Width: widest, Height: y}

	ui.Logger().Debug("layout computed",
		"bytes", len(s), "lines", len(l.lines), "width", widest, "height", y)
	return l, nil
}

// shapingLanguage parses a BCP 47 tag into the shaper's language type.
func shapingLanguage(tag string) (language.Language, error) {
	if tag == "" {
		return language.NewLanguage("en"), nil
	}
	t, err := xlanguage.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("text: invalid language %q: %w", tag, err)
	}
	return language.NewLanguage(t.String()), nil
}

// resolveRuns turns the attribute runs of as into styled runs with fonts.
func resolveRuns(as *AttributedString, def FontDescriptor, reg *FontRegistry) ([]styledRun, error) {
	fonts := make(map[FontDescriptor]*FontSource)
	var runs []styledRun
	var err error
	as.ForEachAttribute(func(r Run) bool {
		st := styleFor(def, r.Attrs)
		src, ok := fonts[st.Font]
		if !ok {
			src, err = reg.Resolve(st.Font)
			if err != nil {
				return false
			}
			fonts[st.Font] = src
		}
		runs = append(runs, styledRun{
			start:   r.Start,
			end:     r.End,
			style:   st,
			source:  src,
			metrics: src.Metrics(st.Font.Size),
		})
		return true
	})
	return runs, err
}

func styleFor(def FontDescriptor, attrs []Attribute) Style {
	st := Style{
		Font:  def.apply(attrs),
		Color: ui.Black,
	}
	for _, a := range attrs {
		switch a.typ {
		case AttrColor:
			st.Color = a.color
		case AttrBackground:
			st.Background = a.color
			st.HasBackground = true
		case AttrUnderline:
			st.Underline = Underline(a.enum)
		case AttrUnderlineColor:
			st.UnderlineColor = UnderlineColor(a.enum)
			st.UnderlineRGBA = a.color
		case AttrFeatures:
			st.Features = a.features.Clone()
		}
	}
	return st
}

// directionItems resolves direction runs paragraph by paragraph. Hard line
// breaks take the base direction.
func directionItems(s string, segs []lineSegment, base Direction) []dirRun {
	var out []dirRun
	add := func(runs ...dirRun) {
		for _, r := range runs {
			if n := len(out); n > 0 && out[n-1].dir == r.dir && out[n-1].end == r.start {
				out[n-1].end = r.end
				continue
			}
			out = append(out, r)
		}
	}

	paraStart := 0
	for _, seg := range segs {
		if !seg.mandatory {
			continue
		}
		nl := trailingNewline(s[seg.start:seg.end])
		add(directionRuns(s[paraStart:seg.end-nl], base, paraStart)...)
		add(dirRun{start: seg.end - nl, end: seg.end, dir: base})
		paraStart = seg.end
	}
	add(directionRuns(s[paraStart:], base, paraStart)...)
	return out
}

// shapeItems splits the text at style and direction changes, shapes each
// piece and records per-character advances.
func (l *Layout) shapeItems(runs []styledRun, dirs []dirRun, lang language.Language) ([]item, error) {
	s := l.text
	runes := []rune(s)
	runeStart := make([]int, 0, len(runes)+1)
	byteToRune := make([]int, len(s)+1)
	for i := range s {
		byteToRune[i] = len(runeStart)
		runeStart = append(runeStart, i)
	}
	byteToRune[len(s)] = len(runes)
	runeStart = append(runeStart, len(s))

	var items []item
	ri, di := 0, 0
	for ri < len(runs) && di < len(dirs) {
		start := max(runs[ri].start, dirs[di].start)
		end := min(runs[ri].end, dirs[di].end)
		if start < end {
			items = append(items, item{start: start, end: end, dir: dirs[di].dir, run: ri})
		}
		if runs[ri].end == end {
			ri++
		}
		if dirs[di].end == end {
			di++
		}
	}

	for i := range items {
		it := &items[i]
		run := &runs[it.run]
		rs, re := byteToRune[it.start], byteToRune[it.end]
		res, err := defaultShaper.shape(shapeRequest{
			text:     runes,
			start:    rs,
			end:      re,
			source:   run.source,
			size:     run.style.Font.Size,
			dir:      it.dir,
			lang:     lang,
			features: run.style.Features.shapingFeatures(),
		})
		if err != nil {
			return nil, fmt.Errorf("text: shaping %q: %w", run.style.Font.Family, err)
		}

		for k, adv := range res.runeAdvance {
			if !isNewlineRune(runes[rs+k]) {
				l.advance[runeStart[rs+k]] = adv
			}
		}
		it.glyphs = res.glyphs[:0]
		for _, g := range res.glyphs {
			g.Cluster = runeStart[g.Cluster]
			if r, _ := utf8.DecodeRuneInString(s[g.Cluster:]); isNewlineRune(r) {
				continue
			}
			it.glyphs = append(it.glyphs, g)
		}
	}
	return items, nil
}

// width returns the advance of the text [start, end).
func (l *Layout) width(start, end int) float64 {
	var w float64
	for _, a := range l.advance[start:end] {
		w += a
	}
	return w
}

// trimSpace returns the start of the trailing white space of [start, end).
func (l *Layout) trimSpace(start, end int) int {
	for end > start {
		r, size := utf8.DecodeLastRuneInString(l.text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return end
}

// breakLines chooses line ranges. Lines break greedily at UAX #14
// opportunities; a segment wider than the whole line breaks between
// grapheme clusters instead. Hard line breaks always end a line.
func (l *Layout) breakLines(segs []lineSegment, width float64, wrap bool) [][2]int {
	var lines [][2]int
	lineStart := 0
	var lineW float64
	emit := func(end int) {
		lines = append(lines, [2]int{lineStart, end})
		lineStart = end
		lineW = 0
	}

	for _, seg := range segs {
		segW := l.width(seg.start, seg.end)
		visible := l.trimSpace(seg.start, seg.end)
		trimW := l.width(seg.start, visible)

		if wrap && lineStart < seg.start && lineW+trimW > width {
			emit(seg.start)
		}
		if wrap && trimW > width {
			l.breakGraphemes(seg.start, visible, width, &lineW, emit, func() int { return lineStart })
			lineW += l.width(visible, seg.end)
		} else {
			lineW += segW
		}
		if seg.mandatory {
			emit(seg.end)
		}
	}
	if lineStart < len(l.text) || len(lines) == 0 || len(segs) > 0 && segs[len(segs)-1].mandatory {
		emit(len(l.text))
	}
	return lines
}

// breakGraphemes distributes [start, end) over lines between grapheme
// clusters.
func (l *Layout) breakGraphemes(start, end int, width float64, lineW *float64, emit func(int), lineStart func() int) {
	i, _ := slices.BinarySearch(l.graphemes, start)
	for ; i+1 < len(l.graphemes) && l.graphemes[i] < end; i++ {
		g0, g1 := l.graphemes[i], l.graphemes[i+1]
		gw := l.width(g0, g1)
		if *lineW+gw > width && lineStart() < g0 {
			emit(g0)
		}
		*lineW += gw
	}
}

// buildLine positions the runs of [start, end) in visual order.
func (l *Layout) buildLine(start, end int, items []item, runs []styledRun, base Direction, def FontMetrics) Line {
	line := Line{Start: start, End: end}
	wsStart := l.trimSpace(start, end)

	type piece struct {
		LineRun
		level int
		item  *item
	}
	var pieces []piece
	for i := range items {
		it := &items[i]
		if it.end <= start || it.start >= end {
			continue
		}
		// Trailing white space takes the paragraph direction.
		cuts := []int{max(it.start, start), min(it.end, end)}
		if wsStart > cuts[0] && wsStart < cuts[1] {
			cuts = []int{cuts[0], wsStart, cuts[1]}
		}
		for c := 0; c+1 < len(cuts); c++ {
			ps, pe := cuts[c], cuts[c+1]
			dir := it.dir
			if ps >= wsStart {
				dir = base
			}
			p := piece{
				LineRun: LineRun{
					Start:     ps,
					End:       pe,
					Width:     l.width(ps, pe),
					Direction: dir,
					Style:     runs[it.run].style,
					Source:    runs[it.run].source,
				},
				level: bidiLevel(dir, base),
				item:  it,
			}
			pieces = append(pieces, p)
		}
	}

	// Reverse sequences of pieces at or above each odd level, highest
	// first.
	maxLevel := 0
	for _, p := range pieces {
		maxLevel = max(maxLevel, p.level)
	}
	for lvl := maxLevel; lvl >= 1; lvl-- {
		for i := 0; i < len(pieces); {
			if pieces[i].level < lvl {
				i++
				continue
			}
			j := i
			for j < len(pieces) && pieces[j].level >= lvl {
				j++
			}
			slices.Reverse(pieces[i:j])
			i = j
		}
	}

	var x, visibleLeft, gap float64
	for _, p := range pieces {
		if p.Start >= wsStart && base == DirectionRTL && x == visibleLeft {
			visibleLeft += p.Width
		}
		p.X = x
		p.Glyphs = l.pieceGlyphs(p.item, p.Start, p.End)
		x += p.Width

		m := runs[p.item.run].metrics
		line.Ascent = max(line.Ascent, m.Ascent)
		line.Descent = max(line.Descent, m.Descent)
		gap = max(gap, m.LineGap)
		line.Runs = append(line.Runs, p.LineRun)
	}
	if len(pieces) == 0 {
		m := def
		if idx := runAt(runs, start); idx >= 0 {
			m = runs[idx].metrics
		}
		line.Ascent, line.Descent, gap = m.Ascent, m.Descent, m.LineGap
	}
	line.Height = line.Ascent + line.Descent + gap

	line.Width = l.width(start, wsStart)
	// Shift so that the visible text starts at 0.
	for i := range line.Runs {
		line.Runs[i].X -= visibleLeft
	}
	return line
}

// pieceGlyphs returns the glyphs of it that belong to [start, end), with X
// relative to the piece's left edge.
func (l *Layout) pieceGlyphs(it *item, start, end int) []Glyph {
	// Offset of the piece's left edge within the item.
	var off float64
	if it.dir == DirectionRTL {
		off = l.width(end, it.end)
	} else {
		off = l.width(it.start, start)
	}
	var out []Glyph
	for _, g := range it.glyphs {
		if g.Cluster < start || g.Cluster >= end {
			continue
		}
		g.X -= off
		out = append(out, g)
	}
	return out
}

// runAt returns the index of the run containing pos, or of the last run
// before it, or -1.
func runAt(runs []styledRun, pos int) int {
	idx := -1
	for i, r := range runs {
		if r.start > pos {
			break
		}
		idx = i
	}
	return idx
}

func bidiLevel(dir, base Direction) int {
	switch {
	case base == DirectionLTR && dir == DirectionLTR:
		return 0
	case dir == DirectionRTL:
		return 1
	default:
		return 2
	}
}

func alignLine(line *Line, align Align, width float64) {
	var off float64
	switch align {
	case AlignCenter:
		off = (width - line.Width) / 2
	case AlignRight:
		off = width - line.Width
	}
	off = max(0, off)
	line.X = off
	for i := range line.Runs {
		line.Runs[i].X += off
	}
}

// Text returns the laid-out text.
func (l *Layout) Text() string {
	return l.text
}

// Extents returns the width of the widest line and the total height.
func (l *Layout) Extents() ui.Size {
	return l.extents
}

// LineCount returns the number of lines. A layout always has at least one
// line, even for empty text.
func (l *Layout) LineCount() int {
	return len(l.lines)
}

// Lines returns a copy of the lines.
func (l *Layout) Lines() []Line {
	return slices.Clone(l.lines)
}

// Line returns line i.
func (l *Layout) Line(i int) Line {
	if i < 0 || i >= len(l.lines) {
		ui.Violation("Layout.Line", "line %d outside [0, %d)", i, len(l.lines))
	}
	return l.lines[i]
}

// LineOf returns the index of the line holding the caret at byte offset
// pos. An offset at a line break belongs to the following line.
func (l *Layout) LineOf(pos int) int {
	if pos < 0 || pos > len(l.text) {
		ui.Violation("Layout.LineOf", "offset %d outside [0, %d]", pos, len(l.text))
	}
	idx := 0
	for i, line := range l.lines {
		if line.Start <= pos {
			idx = i
		}
	}
	return idx
}

// CaretX returns the x position of the caret at byte offset pos and the
// line it is on.
func (l *Layout) CaretX(pos int) (x float64, line int) {
	line = l.LineOf(pos)
	return l.caretInLine(line, pos), line
}

func (l *Layout) caretInLine(li, pos int) float64 {
	line := &l.lines[li]
	var last *LineRun
	for i := range line.Runs {
		r := &line.Runs[i]
		if pos >= r.Start && pos < r.End {
			if r.Direction == DirectionRTL {
				return r.X + r.Width - l.width(r.Start, pos)
			}
			return r.X + l.width(r.Start, pos)
		}
		if last == nil || r.End > last.End {
			last = r
		}
	}
	if last == nil {
		return line.X
	}
	if last.Direction == DirectionRTL {
		return last.X
	}
	return last.X + last.Width
}

// HitTest returns the grapheme boundary closest to the point (x, y) and
// its line. Points above the first line or below the last one hit those
// lines.
func (l *Layout) HitTest(x, y float64) (pos int, line int) {
	line = len(l.lines) - 1
	for i, ln := range l.lines {
		if y < ln.Y+ln.Height {
			line = i
			break
		}
	}

	ln := &l.lines[line]
	end := ln.End - trailingNewline(l.text[ln.Start:ln.End])
	// A soft-wrapped line's end is the next line's start.
	if line+1 < len(l.lines) && end == ln.End && end > ln.Start {
		end = l.prevGrapheme(end)
	}

	i, _ := slices.BinarySearch(l.graphemes, ln.Start)
	pos = ln.Start
	best := math.Inf(1)
	for ; i < len(l.graphemes) && l.graphemes[i] <= end; i++ {
		b := l.graphemes[i]
		if d := math.Abs(l.caretInLine(line, b) - x); d < best {
			pos, best = b, d
		}
	}
	return pos, line
}

func (l *Layout) prevGrapheme(pos int) int {
	i, _ := slices.BinarySearch(l.graphemes, pos)
	if i == 0 {
		return 0
	}
	return l.graphemes[i-1]
}
