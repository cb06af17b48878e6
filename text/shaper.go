package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Glyph is a positioned glyph in a laid-out run.
type Glyph struct {
	// ID is the glyph index in the run's font.
	ID uint32
	// X is the pen position relative to the start of the run, Y the
	// vertical offset from the baseline (positive is down).
	X, Y float64
	// Advance is the horizontal advance.
	Advance float64
	// Cluster is the byte offset of the first character the glyph was
	// shaped from.
	Cluster int
}

// shapeResult is the output of shaping one run of text.
type shapeResult struct {
	// glyphs in visual order, cluster set to the rune index.
	glyphs []Glyph
	// runeAdvance holds the advance attributed to each rune of the run.
	// A cluster's advance is spread evenly over its runes.
	runeAdvance []float64
	advance     float64
}

// shapeRequest describes one run to shape. text is the whole paragraph,
// so the shaper sees the context around [start, end).
type shapeRequest struct {
	text     []rune
	start    int
	end      int
	source   *FontSource
	size     float64
	dir      Direction
	lang     language.Language
	features []shaping.FontFeature
}

// Shaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It applies ligatures, kerning, contextual alternates and the OpenType
// features of each run, and shapes right-to-left and complex scripts.
//
// Shaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// shape call (font.Face is NOT safe for concurrent use). The
// HarfbuzzShaper instances are pooled via sync.Pool since they also are
// not concurrent-safe.
type Shaper struct {
	shaperPool sync.Pool

	// mu protects the font cache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewShaper creates a new Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

var defaultShaper = NewShaper()

// shape converts the runes [req.start, req.end) into positioned glyphs.
func (s *Shaper) shape(req shapeRequest) (shapeResult, error) {
	n := req.end - req.start
	res := shapeResult{runeAdvance: make([]float64, n)}
	if n == 0 {
		return res, nil
	}

	goTextFont, err := s.getOrCreateFont(req.source)
	if err != nil {
		return res, err
	}

	dir := mapDirection(req.dir)
	input := shaping.Input{
		Text:         req.text,
		RunStart:     req.start,
		RunEnd:       req.end,
		Direction:    dir,
		Face:         font.NewFace(goTextFont),
		FontFeatures: req.features,
		Size:         floatToFixed(req.size),
		Script:       detectScript(req.text[req.start:req.end]),
		Language:     req.lang,
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	res.glyphs = make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		res.glyphs[i] = Glyph{
			ID:      uint32(g.GlyphID),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
			Cluster: g.TextIndex(),
		}
		x += adv

		first := g.TextIndex() - req.start
		count := max(1, g.RunesCount())
		for r := first; r < first+count && r < n; r++ {
			if r >= 0 {
				res.runeAdvance[r] += adv / float64(count)
			}
		}
	}
	res.advance = x
	return res, nil
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *Shaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock.
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first rune with a strong script.
// Style runs are not split by script, so mixed-script runs are shaped
// with the script of their first strong character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s.Strong() {
			return s
		}
	}
	return language.Latin
}
