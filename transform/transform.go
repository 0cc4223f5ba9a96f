// Package transform builds and manipulates the matrices consumed by the
// warp functions.
//
// Transforms are row-major gonum matrices in pixel coordinates. A
// perspective transform is a 3x3 homography, canonically scaled so its
// bottom-right entry is 1. An affine transform is the top two rows of one,
// a 2x3 matrix whose implicit third row is [0 0 1]. Constructors cover the
// common explicit-parameter cases; estimating a transform from point
// correspondences is out of scope.
package transform

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Identity returns the 3x3 identity transform.
func Identity() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// Translation returns the 3x3 transform that moves points by (dx, dy).
func Translation(dx, dy float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	})
}

// AffineTranslation returns the 2x3 transform that moves points by (dx, dy).
func AffineTranslation(dx, dy float64) *mat.Dense {
	return mat.NewDense(2, 3, []float64{
		1, 0, dx,
		0, 1, dy,
	})
}

// Scale returns the 3x3 transform that scales points by (sx, sy) about the
// origin.
func Scale(sx, sy float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	})
}

// RotationAbout returns the 2x3 transform that rotates by angle degrees
// about (cx, cy) and scales by scale. Positive angles turn
// counter-clockwise on the usual y-down pixel grid.
func RotationAbout(cx, cy, angle, scale float64) *mat.Dense {
	rad := angle * math.Pi / 180
	alpha := scale * math.Cos(rad)
	beta := scale * math.Sin(rad)
	return mat.NewDense(2, 3, []float64{
		alpha, beta, (1-alpha)*cx - beta*cy,
		-beta, alpha, beta*cx + (1-alpha)*cy,
	})
}

// Normalize returns m scaled so its bottom-right entry is exactly 1, the
// canonical form of a homography. A zero or non-finite bottom-right entry
// makes every later projection meaningless, so it is rejected here.
func Normalize(m mat.Matrix) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if rows != 3 || cols != 3 {
		return nil, errors.Errorf("homography must be 3x3, got %dx%d", rows, cols)
	}

	w := m.At(2, 2)
	if w == 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, errors.Errorf("degenerate homography: bottom-right entry is %v", w)
	}

	out := mat.DenseCopyOf(m)
	out.Scale(1/w, out)
	return out, nil
}

// Invert returns the inverse of the 3x3 transform m.
func Invert(m mat.Matrix) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if rows != 3 || cols != 3 {
		return nil, errors.Errorf("transform must be 3x3, got %dx%d", rows, cols)
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, errors.Wrap(err, "transform is not invertible")
	}
	return &inv, nil
}

// InvertAffine returns the inverse of the 2x3 affine transform m. The
// matrix is not square, so the inverse comes from the 2x2 linear part with
// the translation column remapped through it.
func InvertAffine(m mat.Matrix) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		return nil, errors.Errorf("affine transform must be 2x3, got %dx%d", rows, cols)
	}

	a, b, tx := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	c, d, ty := m.At(1, 0), m.At(1, 1), m.At(1, 2)

	det := a*d - b*c
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, errors.Errorf("affine transform is not invertible: determinant is %v", det)
	}

	ia, ib := d/det, -b/det
	ic, id := -c/det, a/det
	return mat.NewDense(2, 3, []float64{
		ia, ib, -(ia*tx + ib*ty),
		ic, id, -(ic*tx + id*ty),
	}), nil
}

// Apply maps the point (x, y) through m, which may be a 2x3 affine or a
// 3x3 perspective transform. Perspective application divides by the
// homogeneous coordinate; a point whose homogeneous coordinate is zero
// maps to infinity and is reported as an error.
func Apply(m mat.Matrix, x, y float64) (float64, float64, error) {
	rows, cols := m.Dims()
	switch {
	case rows == 2 && cols == 3:
		return m.At(0, 0)*x + m.At(0, 1)*y + m.At(0, 2),
			m.At(1, 0)*x + m.At(1, 1)*y + m.At(1, 2),
			nil
	case rows == 3 && cols == 3:
		w := m.At(2, 0)*x + m.At(2, 1)*y + m.At(2, 2)
		if w == 0 {
			return 0, 0, errors.Errorf("point (%v, %v) maps to infinity", x, y)
		}
		return (m.At(0, 0)*x + m.At(0, 1)*y + m.At(0, 2)) / w,
			(m.At(1, 0)*x + m.At(1, 1)*y + m.At(1, 2)) / w,
			nil
	default:
		return 0, 0, errors.Errorf("transform must be 2x3 or 3x3, got %dx%d", rows, cols)
	}
}
