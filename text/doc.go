// Package text provides attributed strings and text layout for ui.
//
// The package is split into a model and a layout engine:
//
//   - AttributedString: mutable UTF-8 text with attribute spans, addressed
//     by byte offsets, with a cached byte/grapheme mapping
//   - Attribute: immutable style values (family, size, weight, italic,
//     stretch, colors, underline, OpenType features)
//   - FontRegistry and FontSource: font files by family, weight and slant,
//     with the Go fonts built in
//   - Layout: shaped, wrapped and aligned lines built from an
//     AttributedString, with hit testing
//
// # Example usage
//
//	s := text.NewAttributedString("Hello World")
//	s.SetAttribute(text.NewWeightAttribute(text.WeightBold), 0, 5)
//	s.SetAttribute(text.NewItalicAttribute(text.ItalicItalic), 3, 8)
//
//	layout, err := text.NewLayout(text.LayoutParams{
//	    String:      s,
//	    DefaultFont: text.DefaultFont(),
//	    Width:       200,
//	    Align:       text.AlignCenter,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	size := layout.Extents()
//
// # Shaping
//
// Each run of constant style and direction is shaped with HarfBuzz (via
// github.com/go-text/typesetting) using the run's OpenType features.
// Directions come from the Unicode bidirectional algorithm, line break
// opportunities from UAX #14 and grapheme clusters from UAX #29.
package text
