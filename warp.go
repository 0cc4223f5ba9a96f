package padwarp

import (
	"fmt"
	"image"
	"image/color"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/mat"

	"github.com/MeKo-Tech/padwarp/internal/imaging"
	"github.com/MeKo-Tech/padwarp/resample"
	"github.com/MeKo-Tech/padwarp/transform"
)

// warper is the per-variant strategy under the shared padded-warp
// skeleton: how corners project through the transform, how the anchor
// translation folds into it, and which resampling primitive applies.
type warper interface {
	projectCorners(pts []orb.Point) ([]orb.Point, error)
	shift(anchorX, anchorY int) error
	resample(src image.Image, width, height int, opts resample.Options) (image.Image, error)
}

// paddedWarp runs the skeleton shared by both public variants: project the
// source corners, derive the padded extent, fold the anchor shift into the
// transform, pad the destination and resample the source onto a canvas of
// the same size.
func paddedWarp(src, dst image.Image, w warper, opts Options) (image.Image, image.Image, error) {
	srcBounds := src.Bounds()
	projected, err := w.projectCorners(sourceCorners(srcBounds.Dx(), srcBounds.Dy()))
	if err != nil {
		return nil, nil, err
	}

	ext, err := computeExtent(projected)
	if err != nil {
		return nil, nil, err
	}
	if err := w.shift(ext.anchorX, ext.anchorY); err != nil {
		return nil, nil, err
	}

	dstBounds := dst.Bounds()
	paddedDst, err := imaging.Pad(dst, ext.padWidths(dstBounds.Dx(), dstBounds.Dy()), color.NRGBA{})
	if err != nil {
		return nil, nil, err
	}

	paddedBounds := paddedDst.Bounds()
	warpedSrc, err := w.resample(src, paddedBounds.Dx(), paddedBounds.Dy(), opts.resampleOptions())
	if err != nil {
		return nil, nil, err
	}

	return paddedDst, warpedSrc, nil
}

// perspectiveWarper drives the skeleton with a normalized 3x3 homography.
// When inverse mapping was requested the matrix has already been inverted.
type perspectiveWarper struct {
	m *mat.Dense
}

func (p *perspectiveWarper) projectCorners(pts []orb.Point) ([]orb.Point, error) {
	// One homogeneous column per corner, ones in the third row.
	n := len(pts)
	data := make([]float64, 3*n)
	for i, pt := range pts {
		data[i] = pt.X()
		data[n+i] = pt.Y()
		data[2*n+i] = 1
	}

	var proj mat.Dense
	proj.Mul(p.m, mat.NewDense(3, n, data))

	out := make([]orb.Point, n)
	for i := range out {
		w := proj.At(2, i)
		if w == 0 {
			return nil, fmt.Errorf("source corner %d maps to infinity (homogeneous coordinate is zero)", i)
		}
		out[i] = orb.Point{proj.At(0, i) / w, proj.At(1, i) / w}
	}
	return out, nil
}

func (p *perspectiveWarper) shift(anchorX, anchorY int) error {
	var shifted mat.Dense
	shifted.Mul(transform.Translation(float64(anchorX), float64(anchorY)), p.m)

	// Inversion can leave the matrix unnormalized; restore the canonical scale.
	norm, err := transform.Normalize(&shifted)
	if err != nil {
		return err
	}
	p.m = norm
	return nil
}

func (p *perspectiveWarper) resample(src image.Image, width, height int, opts resample.Options) (image.Image, error) {
	return resample.Perspective(src, p.m, width, height, opts)
}

// affineWarper drives the skeleton with a private copy of a 2x3 affine
// matrix. When inverse mapping was requested it has already been inverted.
type affineWarper struct {
	m *mat.Dense
}

func (a *affineWarper) projectCorners(pts []orb.Point) ([]orb.Point, error) {
	// Linear part times the corner columns, translation added on top.
	n := len(pts)
	data := make([]float64, 2*n)
	for i, pt := range pts {
		data[i] = pt.X()
		data[n+i] = pt.Y()
	}

	var proj mat.Dense
	proj.Mul(a.m.Slice(0, 2, 0, 2), mat.NewDense(2, n, data))

	tx, ty := a.m.At(0, 2), a.m.At(1, 2)
	out := make([]orb.Point, n)
	for i := range out {
		out[i] = orb.Point{proj.At(0, i) + tx, proj.At(1, i) + ty}
	}
	return out, nil
}

func (a *affineWarper) shift(anchorX, anchorY int) error {
	// Composing with a pure translation only moves the translation column.
	a.m.Set(0, 2, a.m.At(0, 2)+float64(anchorX))
	a.m.Set(1, 2, a.m.At(1, 2)+float64(anchorY))
	return nil
}

func (a *affineWarper) resample(src image.Image, width, height int, opts resample.Options) (image.Image, error) {
	return resample.Affine(src, a.m, width, height, opts)
}
