package padwarp

import (
	"image/color"

	"github.com/MeKo-Tech/padwarp/resample"
)

// Options configure a padded warp. The zero value reproduces the classic
// warp defaults: bilinear interpolation, constant border with a zero
// border value, forward mapping.
type Options struct {
	// Interpolation and Border are handed through to the resampler
	// untouched.
	Interpolation resample.Interpolation
	Border        resample.BorderMode

	// BorderValue fills output pixels whose sample position falls outside
	// the source when Border is resample.BorderConstant. It does not
	// affect the padding band around the destination, which is always
	// zero-filled.
	BorderValue color.NRGBA

	// InverseMap declares that the supplied transform maps destination
	// coordinates back to source coordinates. The transform is inverted
	// up front, so the whole pipeline after that point works with a
	// forward mapping.
	InverseMap bool
}

func (o Options) resampleOptions() resample.Options {
	return resample.Options{
		Interpolation: o.Interpolation,
		Border:        o.Border,
		BorderValue:   o.BorderValue,
	}
}
