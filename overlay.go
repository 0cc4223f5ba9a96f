package padwarp

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/MeKo-Tech/padwarp/internal/imaging"
)

// Blend returns alpha*background + beta*foreground for every channel,
// clamped to the displayable range. With alpha and beta around 0.5 this is
// the classic inspection view for how a padded warp lines up:
//
//	view, err := padwarp.Blend(paddedDst, warpedSrc, 0.5, 0.5)
//
// Both images must have equal width and height, which the padded-warp
// functions guarantee for their two results.
func Blend(background, foreground image.Image, alpha, beta float64) (*image.NRGBA, error) {
	if err := checkPair(background, foreground); err != nil {
		return nil, err
	}

	bg := imaging.ToNRGBA(background)
	fg := imaging.ToNRGBA(foreground)

	bounds := bg.Bounds()
	out := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b := bg.NRGBAAt(x, y)
			f := fg.NRGBAAt(x, y)

			weigh := func(bVal, fVal uint8) uint8 {
				return clampChannel(alpha*float64(bVal) + beta*float64(fVal))
			}

			out.SetNRGBA(x, y, color.NRGBA{
				R: weigh(b.R, f.R),
				G: weigh(b.G, f.G),
				B: weigh(b.B, f.B),
				A: weigh(b.A, f.A),
			})
		}
	}

	return out, nil
}

// Overlay composites foreground over background with standard alpha
// blending and returns the combined view. Warping with a transparent
// border value leaves the background visible outside the warped content.
func Overlay(background, foreground image.Image) (*image.NRGBA, error) {
	if err := checkPair(background, foreground); err != nil {
		return nil, err
	}

	out := imaging.ToNRGBA(background)
	fg := imaging.ToNRGBA(foreground)

	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := fg.NRGBAAt(x, y)
			if s.A == 0 {
				continue
			}

			d := out.NRGBAAt(x, y)

			sa := float64(s.A) / 255.0
			da := float64(d.A) / 255.0

			outA := sa + da*(1.0-sa)
			if outA == 0 {
				out.SetNRGBA(x, y, color.NRGBA{})
				continue
			}

			blend := func(srcVal, dstVal uint8) uint8 {
				srcPremult := float64(srcVal) * sa
				dstPremult := float64(dstVal) * da
				outPremult := srcPremult + dstPremult*(1.0-sa)
				return uint8(math.Round(outPremult / outA))
			}

			out.SetNRGBA(x, y, color.NRGBA{
				R: blend(s.R, d.R),
				G: blend(s.G, d.G),
				B: blend(s.B, d.B),
				A: uint8(math.Round(outA * 255.0)),
			})
		}
	}

	return out, nil
}

func checkPair(background, foreground image.Image) error {
	if background == nil || foreground == nil {
		return fmt.Errorf("images must not be nil")
	}

	bb, fb := background.Bounds(), foreground.Bounds()
	if bb.Dx() != fb.Dx() || bb.Dy() != fb.Dy() {
		return fmt.Errorf("image sizes differ: %dx%d vs %dx%d", bb.Dx(), bb.Dy(), fb.Dx(), fb.Dy())
	}
	return nil
}

func clampChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}
