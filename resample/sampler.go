package resample

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
)

// projector maps an output pixel position to the source position sampled
// for it.
type projector func(x, y float64) (float64, float64)

func affineProjector(m mat.Matrix) projector {
	a, b, tx := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	c, d, ty := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	return func(x, y float64) (float64, float64) {
		return a*x + b*y + tx, c*x + d*y + ty
	}
}

func perspectiveProjector(m mat.Matrix) projector {
	h00, h01, h02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	h10, h11, h12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	h20, h21, h22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)
	return func(x, y float64) (float64, float64) {
		w := h20*x + h21*y + h22
		if w == 0 {
			// The pixel projects to infinity; samplers treat it as outside.
			return math.NaN(), math.NaN()
		}
		return (h00*x + h01*y + h02) / w, (h10*x + h11*y + h12) / w
	}
}

func warpGray(src *image.Gray, project projector, width, height int, opts Options) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, width, height))
	fill := color.GrayModel.Convert(opts.BorderValue).(color.Gray).Y

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx, sy := project(float64(x), float64(y))
			out.SetGray(x, y, color.Gray{Y: sampleGray(src, sx, sy, opts, fill)})
		}
	}
	return out
}

func warpNRGBA(src *image.NRGBA, project projector, width, height int, opts Options) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx, sy := project(float64(x), float64(y))
			out.SetNRGBA(x, y, sampleNRGBA(src, sx, sy, opts))
		}
	}
	return out
}

// sampleGray reads the source at the fractional position (x, y), resolving
// out-of-bounds taps through the border mode.
func sampleGray(src *image.Gray, x, y float64, opts Options, fill uint8) uint8 {
	if !finite(x) || !finite(y) {
		return fill
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if opts.Interpolation == Nearest {
		ix, okX := resolveCoord(int(math.Round(x)), w, opts.Border)
		iy, okY := resolveCoord(int(math.Round(y)), h, opts.Border)
		if !okX || !okY {
			return fill
		}
		return src.GrayAt(bounds.Min.X+ix, bounds.Min.Y+iy).Y
	}

	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(x0), y-float64(y0)

	tap := func(ix, iy int) float64 {
		cx, okX := resolveCoord(ix, w, opts.Border)
		cy, okY := resolveCoord(iy, h, opts.Border)
		if !okX || !okY {
			return float64(fill)
		}
		return float64(src.GrayAt(bounds.Min.X+cx, bounds.Min.Y+cy).Y)
	}

	top := lerp(tap(x0, y0), tap(x0+1, y0), fx)
	bottom := lerp(tap(x0, y0+1), tap(x0+1, y0+1), fx)
	return clampUint8(lerp(top, bottom, fy))
}

// sampleNRGBA is the four-channel counterpart of sampleGray. Channels are
// interpolated independently, the way a warp over a plain multi-channel
// array behaves.
func sampleNRGBA(src *image.NRGBA, x, y float64, opts Options) color.NRGBA {
	if !finite(x) || !finite(y) {
		return opts.BorderValue
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if opts.Interpolation == Nearest {
		ix, okX := resolveCoord(int(math.Round(x)), w, opts.Border)
		iy, okY := resolveCoord(int(math.Round(y)), h, opts.Border)
		if !okX || !okY {
			return opts.BorderValue
		}
		return src.NRGBAAt(bounds.Min.X+ix, bounds.Min.Y+iy)
	}

	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(x0), y-float64(y0)

	tap := func(ix, iy int) [4]float64 {
		cx, okX := resolveCoord(ix, w, opts.Border)
		cy, okY := resolveCoord(iy, h, opts.Border)
		if !okX || !okY {
			return [4]float64{
				float64(opts.BorderValue.R),
				float64(opts.BorderValue.G),
				float64(opts.BorderValue.B),
				float64(opts.BorderValue.A),
			}
		}
		c := src.NRGBAAt(bounds.Min.X+cx, bounds.Min.Y+cy)
		return [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
	}

	p00, p10 := tap(x0, y0), tap(x0+1, y0)
	p01, p11 := tap(x0, y0+1), tap(x0+1, y0+1)

	var px [4]float64
	for i := range px {
		top := lerp(p00[i], p10[i], fx)
		bottom := lerp(p01[i], p11[i], fx)
		px[i] = lerp(top, bottom, fy)
	}

	return color.NRGBA{
		R: clampUint8(px[0]),
		G: clampUint8(px[1]),
		B: clampUint8(px[2]),
		A: clampUint8(px[3]),
	}
}

// resolveCoord maps the tap index i into [0, n) according to the border
// mode. ok is false when the mode is BorderConstant and i falls outside,
// or when the source has no extent to sample at all.
func resolveCoord(i, n int, mode BorderMode) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	if n <= 0 {
		return 0, false
	}

	switch mode {
	case BorderReplicate:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case BorderReflect:
		if n == 1 {
			return 0, true
		}
		period := 2 * (n - 1)
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - i
		}
		return i, true
	case BorderWrap:
		i %= n
		if i < 0 {
			i += n
		}
		return i, true
	default:
		return 0, false
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampUint8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
