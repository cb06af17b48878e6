package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontMetrics holds the vertical metrics of a font at one size. Descent is
// positive, measured downward from the baseline.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Height returns the distance from the top of one line to the top of the
// next: ascent + descent + line gap.
func (m FontMetrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be shared across the application;
// the registry parses each font once.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data   []byte
	parsed *opentype.Font
	name   string

	mu      sync.Mutex
	metrics map[float64]FontMetrics
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:    dataCopy,
		parsed:  f,
		metrics: make(map[float64]FontMetrics),
	}
	s.name = extractFontName(f)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font's family name as stored in the file.
func (s *FontSource) Name() string {
	return s.name
}

// Metrics returns the vertical metrics at size points (1pt = 1 unit).
func (s *FontSource) Metrics(size float64) FontMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.metrics[size]; ok {
		return m
	}

	var buf sfnt.Buffer
	m, err := s.parsed.Metrics(&buf, fixed.Int26_6(size*64), font.HintingNone)
	if err != nil {
		return FontMetrics{Ascent: size * 0.8, Descent: size * 0.2}
	}

	fm := FontMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}
	fm.LineGap = max(0, fixedToFloat(m.Height)-fm.Ascent-fm.Descent)
	s.metrics[size] = fm
	return fm
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
