// Package padwarp computes padded geometric image warps.
//
// A plain warp resamples a source image into a destination-sized canvas
// and silently clips everything the transform pushes outside it.
// WarpPerspectivePadded and WarpAffinePadded instead measure how far the
// warped source actually extends, pad the destination canvas to cover
// both that extent and the original destination, and warp the source onto
// the same enlarged canvas. The two results always share one coordinate
// system and one size, so they can be compared, blended or composited
// pixel for pixel with nothing cut off.
//
// Transforms are row-major gonum matrices: a 3x3 homography for the
// perspective variant, a 2x3 affine matrix for the affine one. The
// transform package provides constructors for the common cases, and the
// resample package holds the underlying warp primitive with its
// interpolation and border options.
//
//	src := loadImage()                     // image to warp
//	dst := loadOther()                     // image to align it with
//	m := transform.Translation(120, 40)
//	paddedDst, warpedSrc, err := padwarp.WarpPerspectivePadded(src, dst, m, padwarp.Options{})
//	if err != nil {
//		...
//	}
//	view, err := padwarp.Blend(paddedDst, warpedSrc, 0.5, 0.5)
//
// Grayscale inputs stay grayscale throughout; every other input kind is
// carried as NRGBA.
package padwarp
