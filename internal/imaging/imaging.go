// Package imaging provides the canvas primitives the warp packages build
// on: kind-preserving allocation, conversion between the supported image
// kinds, and constant-fill padding.
//
// Two image kinds flow through the library. Grayscale images stay
// *image.Gray from input to output; everything else is carried as
// *image.NRGBA. Keeping the kind stable means a warp never adds or removes
// channels behind the caller's back.
package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ToNRGBA returns a copy of img in NRGBA form with bounds anchored at the
// origin. The input is never modified, so callers can freely mutate the
// result.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// ToGray returns a copy of img in grayscale form with bounds anchored at
// the origin.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// NewLike allocates a zeroed width x height canvas of the same kind as img:
// Gray stays Gray, every other kind becomes NRGBA.
func NewLike(img image.Image, width, height int) draw.Image {
	rect := image.Rect(0, 0, width, height)
	if _, ok := img.(*image.Gray); ok {
		return image.NewGray(rect)
	}
	return image.NewNRGBA(rect)
}

// Fill sets every pixel of img to c. Gray images receive the luminance of c.
func Fill(img draw.Image, c color.NRGBA) {
	bounds := img.Bounds()

	switch im := img.(type) {
	case *image.Gray:
		gray := color.GrayModel.Convert(c).(color.Gray)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := im.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				im.Pix[i] = gray.Y
				i++
			}
		}
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := im.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				im.Pix[i+0] = c.R
				im.Pix[i+1] = c.G
				im.Pix[i+2] = c.B
				im.Pix[i+3] = c.A
				i += 4
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				img.Set(x, y, c)
			}
		}
	}
}
