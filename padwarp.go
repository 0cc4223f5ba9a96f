package padwarp

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"

	"github.com/MeKo-Tech/padwarp/transform"
)

// WarpPerspectivePadded warps src with the 3x3 homography transf and pads
// dst so that both results fit one canvas.
//
// The returned images always have identical bounds: paddedDst is dst grown
// by a zero-filled band (left/top by however far the warped source reaches
// into negative coordinates, right/bottom by however far it reaches beyond
// the destination), and warpedSrc is src warped onto a canvas of exactly
// that size. Content never gets clipped and dst pixels keep their original
// positions relative to each other.
//
// transf must be 3x3 with a non-zero bottom-right entry; it is normalized
// to canonical scale first and never modified. With opts.InverseMap the
// matrix is instead interpreted as the destination-to-source mapping and
// inverted before use.
func WarpPerspectivePadded(src, dst image.Image, transf mat.Matrix, opts Options) (paddedDst, warpedSrc image.Image, err error) {
	if src == nil || dst == nil {
		return nil, nil, fmt.Errorf("source and destination images must not be nil")
	}
	if rows, cols := transf.Dims(); rows != 3 || cols != 3 {
		return nil, nil, fmt.Errorf(
			"perspective transform must be 3x3, got %dx%d; use WarpAffinePadded for 2x3 affine transforms",
			rows, cols)
	}

	m, err := transform.Normalize(transf)
	if err != nil {
		return nil, nil, err
	}
	if opts.InverseMap {
		if m, err = transform.Invert(m); err != nil {
			return nil, nil, err
		}
	}

	return paddedWarp(src, dst, &perspectiveWarper{m: m}, opts)
}

// WarpAffinePadded is the 2x3 affine counterpart of WarpPerspectivePadded.
// Corner projection skips the homogeneous divide and the anchor shift is
// added directly to the translation column; everything else behaves the
// same way.
func WarpAffinePadded(src, dst image.Image, transf mat.Matrix, opts Options) (paddedDst, warpedSrc image.Image, err error) {
	if src == nil || dst == nil {
		return nil, nil, fmt.Errorf("source and destination images must not be nil")
	}
	if rows, cols := transf.Dims(); rows != 2 || cols != 3 {
		return nil, nil, fmt.Errorf(
			"affine transform must be 2x3, got %dx%d; use WarpPerspectivePadded for 3x3 perspective transforms",
			rows, cols)
	}

	m := mat.DenseCopyOf(transf)
	if opts.InverseMap {
		if m, err = transform.InvertAffine(m); err != nil {
			return nil, nil, err
		}
	}

	return paddedWarp(src, dst, &affineWarper{m: m}, opts)
}
