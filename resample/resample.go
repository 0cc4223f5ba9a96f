// Package resample maps source pixels onto a freshly allocated canvas
// under an affine or perspective transform.
//
// This is the warp primitive the padded-warp functions delegate to.
// Resampling walks the output grid backwards: each output pixel is
// projected into the source through the inverse transform and sampled
// there. Interpolation, border handling and the output size are
// configurable; the geometry itself is not interpreted further.
package resample

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"

	"github.com/MeKo-Tech/padwarp/internal/imaging"
	"github.com/MeKo-Tech/padwarp/transform"
)

// Interpolation selects how source pixels are sampled. The zero value is
// Bilinear.
type Interpolation int

const (
	// Bilinear blends the four source pixels surrounding the sample point.
	Bilinear Interpolation = iota
	// Nearest picks the single closest source pixel.
	Nearest
)

// BorderMode selects how samples that fall outside the source bounds are
// produced. The zero value is BorderConstant.
type BorderMode int

const (
	// BorderConstant yields the configured border value outside the source.
	BorderConstant BorderMode = iota
	// BorderReplicate repeats the nearest edge pixel: aaaaaa|abcdefgh|hhhhhhh.
	BorderReplicate
	// BorderReflect mirrors the image at its edges without repeating the
	// edge pixel itself: gfedcb|abcdefgh|gfedcba.
	BorderReflect
	// BorderWrap tiles the image: cdefgh|abcdefgh|abcdefg.
	BorderWrap
)

// Options configure a resampling call. The zero value requests bilinear
// interpolation with a constant transparent-black border and a forward
// transform.
type Options struct {
	Interpolation Interpolation
	Border        BorderMode

	// BorderValue is the constant used by BorderConstant. Gray sources
	// take its luminance.
	BorderValue color.NRGBA

	// Inverse marks the transform as already mapping output coordinates
	// to source coordinates, skipping the internal inversion.
	Inverse bool
}

// Perspective resamples src under the 3x3 transform m onto a width x height
// canvas. The transform maps source coordinates to output coordinates
// unless opts.Inverse is set, in which case it is taken as the
// output-to-source map directly. Sampling always runs backwards from the
// output grid, so a forward transform must be invertible.
//
// The output kind follows the source: Gray stays Gray, everything else
// comes back as NRGBA.
func Perspective(src image.Image, m mat.Matrix, width, height int, opts Options) (image.Image, error) {
	if err := validate(src, width, height); err != nil {
		return nil, err
	}
	if rows, cols := m.Dims(); rows != 3 || cols != 3 {
		return nil, fmt.Errorf("perspective resampling needs a 3x3 transform, got %dx%d", rows, cols)
	}

	var inverse mat.Matrix = m
	if !opts.Inverse {
		inv, err := transform.Invert(m)
		if err != nil {
			return nil, fmt.Errorf("deriving the sampling map: %w", err)
		}
		inverse = inv
	}

	return warp(src, perspectiveProjector(inverse), width, height, opts), nil
}

// Affine resamples src under the 2x3 transform m onto a width x height
// canvas. Apart from the transform shape it behaves exactly like
// Perspective.
func Affine(src image.Image, m mat.Matrix, width, height int, opts Options) (image.Image, error) {
	if err := validate(src, width, height); err != nil {
		return nil, err
	}
	if rows, cols := m.Dims(); rows != 2 || cols != 3 {
		return nil, fmt.Errorf("affine resampling needs a 2x3 transform, got %dx%d", rows, cols)
	}

	var inverse mat.Matrix = m
	if !opts.Inverse {
		inv, err := transform.InvertAffine(m)
		if err != nil {
			return nil, fmt.Errorf("deriving the sampling map: %w", err)
		}
		inverse = inv
	}

	return warp(src, affineProjector(inverse), width, height, opts), nil
}

func validate(src image.Image, width, height int) error {
	if src == nil {
		return fmt.Errorf("source image must not be nil")
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("output size must be non-negative, got %dx%d", width, height)
	}
	return nil
}

// warp dispatches on the source kind and runs the sampling loops.
func warp(src image.Image, project projector, width, height int, opts Options) image.Image {
	if gray, ok := src.(*image.Gray); ok {
		return warpGray(gray, project, width, height, opts)
	}
	return warpNRGBA(imaging.ToNRGBA(src), project, width, height, opts)
}
