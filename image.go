package ui

import "math"

// Image is a picture with a logical size in device-independent units and
// one or more pixel representations, for example a 1x and a 2x version.
// Backends pick the representation closest to their backing scale.
type Image struct {
	width  float64
	height float64
	reps   []*Pixmap
}

// NewImage creates an image with the given logical size and no pixel
// representations.
func NewImage(width, height float64) *Image {
	if width <= 0 || height <= 0 {
		Violation("NewImage", "non-positive size %vx%v", width, height)
	}
	return &Image{width: width, height: height}
}

// Size returns the logical size of the image.
func (img *Image) Size() Size {
	return Size{Width: img.width, Height: img.height}
}

// Append adds a pixel representation. pixels holds non-premultiplied RGBA
// rows of byteStride bytes each.
func (img *Image) Append(pixels []byte, pixelWidth, pixelHeight, byteStride int) {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		Violation("Image.Append", "non-positive pixel size %dx%d", pixelWidth, pixelHeight)
	}
	if byteStride < pixelWidth*4 {
		Violation("Image.Append", "stride %d shorter than a row of %d pixels", byteStride, pixelWidth)
	}
	if need := byteStride*(pixelHeight-1) + pixelWidth*4; len(pixels) < need {
		Violation("Image.Append", "have %d bytes, need %d", len(pixels), need)
	}
	img.reps = append(img.reps, newPixmapStride(pixels, pixelWidth, pixelHeight, byteStride))
}

// AppendPixmap adds an existing pixmap as a representation.
func (img *Image) AppendPixmap(p *Pixmap) {
	if p == nil {
		Violation("Image.AppendPixmap", "nil pixmap")
	}
	img.reps = append(img.reps, p)
}

// Len returns the number of pixel representations.
func (img *Image) Len() int {
	return len(img.reps)
}

// Best returns the representation whose pixel density is closest to scale,
// preferring the denser one on ties. It returns nil if the image has no
// representations.
func (img *Image) Best(scale float64) *Pixmap {
	var best *Pixmap
	bestDiff := math.Inf(1)
	bestDensity := 0.0
	for _, p := range img.reps {
		density := float64(p.Width()) / img.width
		diff := math.Abs(density - scale)
		if diff < bestDiff || (diff == bestDiff && density > bestDensity) {
			best, bestDiff, bestDensity = p, diff, density
		}
	}
	return best
}
