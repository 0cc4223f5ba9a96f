package padwarp

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/MeKo-Tech/padwarp/internal/imaging"
)

func TestSourceCornersClockwiseFromOrigin(t *testing.T) {
	got := sourceCorners(10, 4)
	want := []orb.Point{{0, 0}, {10, 0}, {10, 4}, {0, 4}}

	if len(got) != len(want) {
		t.Fatalf("corner count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestComputeExtentFloorsMinimaCeilsMaxima(t *testing.T) {
	corners := []orb.Point{{-1.5, 2.25}, {3.01, -0.99}, {0.5, 0.5}, {2, 1}}

	e, err := computeExtent(corners)
	if err != nil {
		t.Fatalf("computeExtent: %v", err)
	}

	if e.minX != -2 || e.maxX != 4 {
		t.Errorf("x range = [%d, %d], want [-2, 4]", e.minX, e.maxX)
	}
	if e.minY != -1 || e.maxY != 3 {
		t.Errorf("y range = [%d, %d], want [-1, 3]", e.minY, e.maxY)
	}
	if e.anchorX != 2 || e.anchorY != 1 {
		t.Errorf("anchors = (%d, %d), want (2, 1)", e.anchorX, e.anchorY)
	}
}

func TestComputeExtentNoAnchorsForNonNegative(t *testing.T) {
	corners := []orb.Point{{1.2, 0.1}, {5, 3}, {4, 2.5}, {2, 0.4}}

	e, err := computeExtent(corners)
	if err != nil {
		t.Fatalf("computeExtent: %v", err)
	}

	if e.anchorX != 0 || e.anchorY != 0 {
		t.Errorf("anchors = (%d, %d), want (0, 0)", e.anchorX, e.anchorY)
	}
	if e.minX != 1 || e.minY != 0 {
		t.Errorf("minima = (%d, %d), want (1, 0)", e.minX, e.minY)
	}
}

func TestComputeExtentRejectsNonFiniteCorners(t *testing.T) {
	cases := [][]orb.Point{
		{{math.NaN(), 0}, {1, 1}, {2, 2}, {3, 3}},
		{{0, math.Inf(1)}, {1, 1}, {2, 2}, {3, 3}},
	}
	for i, corners := range cases {
		if _, err := computeExtent(corners); err == nil {
			t.Errorf("case %d: expected error for non-finite corner", i)
		}
	}
}

func TestPadWidthsCoverDestinationAndExtent(t *testing.T) {
	e := extent{minX: -2, minY: -1, maxX: 4, maxY: 30, anchorX: 2, anchorY: 1}

	got := e.padWidths(10, 10)
	want := imaging.PadWidths{Top: 1, Bottom: 20, Left: 2, Right: 0}
	if got != want {
		t.Errorf("padWidths = %+v, want %+v", got, want)
	}
}

func TestPadWidthsZeroWhenExtentInsideDestination(t *testing.T) {
	e := extent{minX: 1, minY: 2, maxX: 5, maxY: 6}

	got := e.padWidths(10, 10)
	if got != (imaging.PadWidths{}) {
		t.Errorf("padWidths = %+v, want all zero", got)
	}
}
