package ui

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses the row-vector layout of the native drawing APIs:
//
//	| M11  M12  0 |
//	| M21  M22  0 |
//	| M31  M32  1 |
//
// A point (x, y) is transformed as the row vector [x y 1] times the matrix:
//
//	x' = x*M11 + y*M21 + M31
//	y' = x*M12 + y*M22 + M32
//
// # Composition order
//
// Every operation appends a transform that is applied after the transform
// accumulated so far. Identity().Translate(5, 0).Scale(0, 0, 2, 2) first
// translates, then scales, so it maps (1, 0) to (12, 0). a.Multiply(b) is
// the transform "a, then b". Backends receive the composed matrix and never
// reorder it.
type Matrix struct {
	M11, M12 float64
	M21, M22 float64
	M31, M32 float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		M11: 1, M12: 0,
		M21: 0, M22: 1,
		M31: 0, M32: 0,
	}
}

// Multiply returns the transform that applies m first and then other.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		M11: m.M11*other.M11 + m.M12*other.M21,
		M12: m.M11*other.M12 + m.M12*other.M22,
		M21: m.M21*other.M11 + m.M22*other.M21,
		M22: m.M21*other.M12 + m.M22*other.M22,
		M31: m.M31*other.M11 + m.M32*other.M21 + other.M31,
		M32: m.M31*other.M12 + m.M32*other.M22 + other.M32,
	}
}

// Translate appends a translation by (x, y).
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Multiply(Matrix{
		M11: 1, M12: 0,
		M21: 0, M22: 1,
		M31: x, M32: y,
	})
}

// Scale appends a scale by (x, y) about the point (xCenter, yCenter).
func (m Matrix) Scale(xCenter, yCenter, x, y float64) Matrix {
	return m.Multiply(Matrix{
		M11: x, M12: 0,
		M21: 0, M22: y,
		M31: xCenter - x*xCenter,
		M32: yCenter - y*yCenter,
	})
}

// Rotate appends a rotation by amount radians about the point (x, y).
// Positive amounts rotate counter-clockwise on screen (y down), the same
// direction arcs sweep in.
func (m Matrix) Rotate(x, y, amount float64) Matrix {
	sin, cos := math.Sincos(amount)
	return m.Multiply(Matrix{
		M11: cos, M12: -sin,
		M21: sin, M22: cos,
		M31: x - x*cos - y*sin,
		M32: y + x*sin - y*cos,
	})
}

// Skew appends a skew about the point (x, y). xamount and yamount are
// angles in radians: xamount shears x proportionally to the distance from
// y, yamount shears y proportionally to the distance from x.
func (m Matrix) Skew(x, y, xamount, yamount float64) Matrix {
	tx := math.Tan(xamount)
	ty := math.Tan(yamount)
	return m.Multiply(Matrix{
		M11: 1, M12: ty,
		M21: tx, M22: 1,
		M31: -tx * y,
		M32: -ty * x,
	})
}

// Determinant returns the determinant of the linear part of m.
func (m Matrix) Determinant() float64 {
	return m.M11*m.M22 - m.M12*m.M21
}

// Invertible reports whether m has an inverse.
func (m Matrix) Invertible() bool {
	det := m.Determinant()
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// Invert returns the inverse of m.
// It returns ErrNotInvertible, and m unchanged, when the determinant is
// zero or not finite.
func (m Matrix) Invert() (Matrix, error) {
	if !m.Invertible() {
		return m, ErrNotInvertible
	}

	invDet := 1.0 / m.Determinant()
	inv := Matrix{
		M11: m.M22 * invDet,
		M12: -m.M12 * invDet,
		M21: -m.M21 * invDet,
		M22: m.M11 * invDet,
	}
	inv.M31 = -(m.M31*inv.M11 + m.M32*inv.M21)
	inv.M32 = -(m.M31*inv.M12 + m.M32*inv.M22)
	return inv, nil
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: p.X*m.M11 + p.Y*m.M21 + m.M31,
		Y: p.X*m.M12 + p.Y*m.M22 + m.M32,
	}
}

// TransformSize applies the transformation to a size vector; translation
// is ignored.
func (m Matrix) TransformSize(s Size) Size {
	return Size{
		Width:  s.Width*m.M11 + s.Height*m.M21,
		Height: s.Width*m.M12 + s.Height*m.M22,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.M11 == 1 && m.M12 == 0 &&
		m.M21 == 0 && m.M22 == 1 &&
		m.M31 == 0 && m.M32 == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.M11 == 1 && m.M12 == 0 && m.M21 == 0 && m.M22 == 1
}
