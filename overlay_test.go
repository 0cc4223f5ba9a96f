package padwarp

import (
	"image"
	"image/color"
	"testing"

	"github.com/MeKo-Tech/padwarp/transform"
)

func uniformNRGBA(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestBlendAveragesChannels(t *testing.T) {
	bg := uniformNRGBA(2, 2, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	fg := uniformNRGBA(2, 2, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	out, err := Blend(bg, fg, 0.5, 0.5)
	if err != nil {
		t.Fatalf("Blend: %v", err)
	}

	want := color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	if c := out.NRGBAAt(1, 1); c != want {
		t.Errorf("blended pixel = %v, want %v", c, want)
	}
}

func TestBlendClampsOverflow(t *testing.T) {
	bg := uniformNRGBA(1, 1, color.NRGBA{R: 100, A: 255})
	fg := uniformNRGBA(1, 1, color.NRGBA{R: 200, A: 255})

	out, err := Blend(bg, fg, 1, 1)
	if err != nil {
		t.Fatalf("Blend: %v", err)
	}

	if c := out.NRGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("blended pixel = %v, want clamped 255", c)
	}
}

func TestBlendRejectsSizeMismatch(t *testing.T) {
	bg := uniformNRGBA(2, 2, color.NRGBA{})
	fg := uniformNRGBA(3, 2, color.NRGBA{})

	if _, err := Blend(bg, fg, 0.5, 0.5); err == nil {
		t.Fatal("expected error for mismatched sizes")
	}
}

func TestBlendRejectsNilImages(t *testing.T) {
	if _, err := Blend(nil, uniformNRGBA(1, 1, color.NRGBA{}), 0.5, 0.5); err == nil {
		t.Fatal("expected error for nil background")
	}
}

func TestOverlayOpaqueForegroundWins(t *testing.T) {
	bg := uniformNRGBA(2, 1, color.NRGBA{R: 255, A: 255})
	fg := uniformNRGBA(2, 1, color.NRGBA{B: 255, A: 255})

	out, err := Overlay(bg, fg)
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}

	want := color.NRGBA{B: 255, A: 255}
	if c := out.NRGBAAt(0, 0); c != want {
		t.Errorf("pixel = %v, want %v", c, want)
	}
}

func TestOverlayTransparentForegroundKeepsBackground(t *testing.T) {
	bg := uniformNRGBA(2, 1, color.NRGBA{R: 255, A: 255})
	fg := uniformNRGBA(2, 1, color.NRGBA{})

	out, err := Overlay(bg, fg)
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}

	want := color.NRGBA{R: 255, A: 255}
	if c := out.NRGBAAt(1, 0); c != want {
		t.Errorf("pixel = %v, want %v", c, want)
	}
}

func TestOverlayBlendsHalfAlpha(t *testing.T) {
	bg := uniformNRGBA(1, 1, color.NRGBA{A: 255})
	fg := uniformNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	out, err := Overlay(bg, fg)
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}

	want := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	if c := out.NRGBAAt(0, 0); c != want {
		t.Errorf("pixel = %v, want %v", c, want)
	}
}

// The headline composite: warp with a transparent border, then lay the
// warped source over the padded destination.
func TestOverlayAfterPaddedWarp(t *testing.T) {
	src := uniformNRGBA(4, 4, color.NRGBA{R: 255, A: 255})
	dst := uniformNRGBA(4, 4, color.NRGBA{B: 255, A: 255})

	paddedDst, warpedSrc, err := WarpAffinePadded(src, dst, transform.AffineTranslation(2, 0), Options{})
	if err != nil {
		t.Fatalf("WarpAffinePadded: %v", err)
	}

	out, err := Overlay(paddedDst, warpedSrc)
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}

	if out.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Fatalf("bounds = %v, want (0,0)-(6,4)", out.Bounds())
	}

	// Left of the shifted source only the destination shows; where the
	// source landed it covers both the destination and the padding band.
	if c := out.NRGBAAt(0, 1); c != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("pixel (0,1) = %v, want destination blue", c)
	}
	if c := out.NRGBAAt(3, 1); c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel (3,1) = %v, want warped red over destination", c)
	}
	if c := out.NRGBAAt(5, 1); c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel (5,1) = %v, want warped red over padding", c)
	}
}
