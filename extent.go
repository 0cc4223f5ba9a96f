package padwarp

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/MeKo-Tech/padwarp/internal/imaging"
)

// extent is the conservative integer bounding box of the projected source
// corners together with the anchor shift that pulls negative coordinates
// onto the canvas.
type extent struct {
	minX, minY int
	maxX, maxY int

	// anchorX and anchorY are how far the warped content must move right
	// and down so none of it sits at negative coordinates. They are zero
	// when the respective minimum is already non-negative.
	anchorX, anchorY int
}

// sourceCorners returns the corners of a width x height pixel grid,
// clockwise from the origin: (0,0), (w,0), (w,h), (0,h).
func sourceCorners(width, height int) []orb.Point {
	fw, fh := float64(width), float64(height)
	return []orb.Point{{0, 0}, {fw, 0}, {fw, fh}, {0, fh}}
}

// computeExtent derives the integer bounding box of the projected corners,
// flooring the minima and ceiling the maxima so the box never undershoots,
// and the anchor offsets that compensate negative minima. Corners must be
// finite; one at infinity would corrupt every later padding computation.
func computeExtent(corners []orb.Point) (extent, error) {
	for _, p := range corners {
		if !isFinite(p.X()) || !isFinite(p.Y()) {
			return extent{}, fmt.Errorf("projected corner (%v, %v) is not finite", p.X(), p.Y())
		}
	}

	box := orb.MultiPoint(corners).Bound()

	e := extent{
		minX: int(math.Floor(box.Min.X())),
		minY: int(math.Floor(box.Min.Y())),
		maxX: int(math.Ceil(box.Max.X())),
		maxY: int(math.Ceil(box.Max.Y())),
	}
	if e.minX < 0 {
		e.anchorX = -e.minX
	}
	if e.minY < 0 {
		e.anchorY = -e.minY
	}
	return e, nil
}

// padWidths returns how much a width x height destination must grow on
// each side: the anchors on the left and top, and on the right and bottom
// whatever remains so the canvas covers both the destination and the
// projected extent.
func (e extent) padWidths(width, height int) imaging.PadWidths {
	right := e.maxX - width
	if right < 0 {
		right = 0
	}
	bottom := e.maxY - height
	if bottom < 0 {
		bottom = 0
	}
	return imaging.PadWidths{
		Top:    e.anchorY,
		Bottom: bottom,
		Left:   e.anchorX,
		Right:  right,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
