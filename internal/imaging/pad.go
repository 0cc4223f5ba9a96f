package imaging

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// PadWidths are per-side padding amounts in pixels. All widths must be
// non-negative; padding never crops.
type PadWidths struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Total returns the combined horizontal and vertical growth.
func (w PadWidths) Total() (width, height int) {
	return w.Left + w.Right, w.Top + w.Bottom
}

// Pad places img on a canvas enlarged by the given widths. The original
// content sits at (Left, Top) and the surrounding band is filled with the
// constant fill color. The image kind is preserved, so a Gray input yields
// a Gray output and the channel structure is never padded.
func Pad(img image.Image, widths PadWidths, fill color.NRGBA) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("image must not be nil")
	}
	if widths.Top < 0 || widths.Bottom < 0 || widths.Left < 0 || widths.Right < 0 {
		return nil, fmt.Errorf("pad widths must be non-negative, got %+v", widths)
	}

	bounds := img.Bounds()
	growX, growY := widths.Total()
	dst := NewLike(img, bounds.Dx()+growX, bounds.Dy()+growY)

	// Fresh canvases are already zeroed, which is the common fill.
	if fill != (color.NRGBA{}) {
		Fill(dst, fill)
	}

	target := image.Rect(widths.Left, widths.Top, widths.Left+bounds.Dx(), widths.Top+bounds.Dy())
	draw.Draw(dst, target, img, bounds.Min, draw.Src)

	return dst, nil
}
