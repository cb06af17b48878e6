package text

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/bidi"
)

// lineSegment is the text between two line-break opportunities.
type lineSegment struct {
	start, end int
	// mandatory is set when the line must break after this segment.
	mandatory bool
}

// lineSegments splits s at the break opportunities of UAX #14.
func lineSegments(s string) []lineSegment {
	var segs []lineSegment
	state := -1
	pos := 0
	rest := s
	for len(rest) > 0 {
		var seg string
		seg, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
		segs = append(segs, lineSegment{start: pos, end: pos + len(seg), mandatory: trailingNewline(seg) > 0})
		pos += len(seg)
	}
	return segs
}

// trailingNewline returns the byte length of the hard line break that
// ends s, or 0.
func trailingNewline(s string) int {
	n := len(s)
	switch {
	case n >= 2 && s[n-2:] == "\r\n":
		return 2
	case n >= 1 && (s[n-1] == '\n' || s[n-1] == '\r' || s[n-1] == '\v' || s[n-1] == '\f'):
		return 1
	case n >= 2 && s[n-2:] == "\u0085":
		return 2
	case n >= 3 && (s[n-3:] == "\u2028" || s[n-3:] == "\u2029"):
		return 3
	}
	return 0
}

// isNewlineRune reports whether r is a hard line break character.
func isNewlineRune(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// dirRun is a range of text with one resolved direction.
type dirRun struct {
	start, end int
	dir        Direction
}

// directionRuns resolves the direction of every character of one
// paragraph with the Unicode bidirectional algorithm and returns the
// maximal same-direction byte ranges in logical order. offset is added to
// every returned position.
func directionRuns(para string, base Direction, offset int) []dirRun {
	if para == "" {
		return nil
	}
	fallback := []dirRun{{start: offset, end: offset + len(para), dir: base}}

	defaultDir := bidi.LeftToRight
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(para, bidi.DefaultDirection(defaultDir)); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil {
		return fallback
	}

	// Per-rune direction; run.Pos() returns rune indices, end inclusive.
	runeDirs := make([]Direction, 0, len(para))
	for range para {
		runeDirs = append(runeDirs, base)
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		d := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			d = DirectionRTL
		}
		for j := startRune; j <= endRune && j < len(runeDirs); j++ {
			runeDirs[j] = d
		}
	}

	var runs []dirRun
	ri := 0
	for i := range para {
		d := runeDirs[ri]
		ri++
		if n := len(runs); n > 0 && runs[n-1].dir == d {
			continue
		}
		if n := len(runs); n > 0 {
			runs[n-1].end = offset + i
		}
		runs = append(runs, dirRun{start: offset + i, dir: d})
	}
	runs[len(runs)-1].end = offset + len(para)
	return runs
}
