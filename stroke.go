package ui

import "math"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// CapFlat ends the line exactly at the endpoint.
	CapFlat LineCap = iota
	// CapRound adds a semicircle at the endpoint.
	CapRound
	// CapSquare extends the line by half its thickness.
	CapSquare
)

// String returns the string representation of the line cap.
func (c LineCap) String() string {
	switch c {
	case CapFlat:
		return "Flat"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// LineJoin specifies the shape of corners where segments meet.
type LineJoin int

const (
	// JoinMiter extends the outer edges until they meet, up to MiterLimit.
	JoinMiter LineJoin = iota
	// JoinRound rounds the corner.
	JoinRound
	// JoinBevel cuts the corner off.
	JoinBevel
)

// String returns the string representation of the line join.
func (j LineJoin) String() string {
	switch j {
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	case JoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}

// DefaultMiterLimit is the miter limit used when StrokeParams.MiterLimit
// is zero.
const DefaultMiterLimit = 10.0

// StrokeParams defines the style for stroking paths.
type StrokeParams struct {
	Cap  LineCap
	Join LineJoin

	// Thickness is the line width. Must be positive when stroking.
	Thickness float64

	// MiterLimit is the limit for miter joins before they become bevels.
	// Zero means DefaultMiterLimit.
	MiterLimit float64

	// Dashes alternates dash and gap lengths. Empty means a solid line.
	Dashes    []float64
	DashPhase float64
}

// DefaultStroke returns a solid 1-unit stroke with flat caps and miter
// joins.
func DefaultStroke() StrokeParams {
	return StrokeParams{
		Cap:        CapFlat,
		Join:       JoinMiter,
		Thickness:  1,
		MiterLimit: DefaultMiterLimit,
	}
}

// WithThickness returns a copy of the params with the given thickness.
func (s StrokeParams) WithThickness(w float64) StrokeParams {
	s.Thickness = w
	return s
}

// WithDashes returns a copy of the params with the given dash pattern.
func (s StrokeParams) WithDashes(phase float64, lengths ...float64) StrokeParams {
	s.Dashes = append([]float64(nil), lengths...)
	s.DashPhase = phase
	return s
}

// EffectiveMiterLimit returns MiterLimit, or DefaultMiterLimit if unset.
func (s StrokeParams) EffectiveMiterLimit() float64 {
	if s.MiterLimit <= 0 {
		return DefaultMiterLimit
	}
	return s.MiterLimit
}

// IsDashed returns true if the stroke has a dash pattern with at least one
// positive length.
func (s StrokeParams) IsDashed() bool {
	for _, l := range s.Dashes {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the params.
func (s StrokeParams) Clone() StrokeParams {
	if s.Dashes != nil {
		s.Dashes = append([]float64(nil), s.Dashes...)
	}
	return s
}

// DashPattern returns the dash lengths a backend should cycle through. An
// odd-length pattern is repeated once so that dashes and gaps alternate.
// It returns nil for a solid line.
func (s StrokeParams) DashPattern() []float64 {
	if !s.IsDashed() {
		return nil
	}
	if len(s.Dashes)%2 == 0 {
		return append([]float64(nil), s.Dashes...)
	}
	out := make([]float64, 2*len(s.Dashes))
	copy(out, s.Dashes)
	copy(out[len(s.Dashes):], s.Dashes)
	return out
}

// DashLength returns the length of one full dash cycle, or 0 for a solid
// line.
func (s StrokeParams) DashLength() float64 {
	var total float64
	for _, l := range s.DashPattern() {
		total += l
	}
	return total
}

// NormalizedDashPhase returns DashPhase reduced into [0, DashLength).
func (s StrokeParams) NormalizedDashPhase() float64 {
	n := s.DashLength()
	if n <= 0 {
		return 0
	}
	phase := math.Mod(s.DashPhase, n)
	if phase < 0 {
		phase += n
	}
	return phase
}
