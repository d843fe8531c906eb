package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/fontbench/outline"
)

func rectPath(x0, y0, x1, y1 float64) outline.BezPath {
	var p outline.BezPath
	p.MoveTo(outline.Pt(x0, y0))
	p.LineTo(outline.Pt(x1, y0))
	p.LineTo(outline.Pt(x1, y1))
	p.LineTo(outline.Pt(x0, y1))
	p.ClosePath()
	return p
}

func TestCoverageFull(t *testing.T) {
	got, err := Coverage(rectPath(0, 0, 64, 64), 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("got coverage %v, want 1", got)
	}
}

func TestCoverageHalf(t *testing.T) {
	got, err := Coverage(rectPath(0, 0, 32, 64), 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("got coverage %v, want 0.5", got)
	}
}

func TestCoverageHole(t *testing.T) {
	// Outer box wound one way, inner box the other; the hole must not count.
	p := rectPath(0, 0, 64, 64)
	p.MoveTo(outline.Pt(16, 16))
	p.LineTo(outline.Pt(16, 48))
	p.LineTo(outline.Pt(48, 48))
	p.LineTo(outline.Pt(48, 16))
	p.ClosePath()

	got, err := Coverage(p, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.75 {
		t.Errorf("got coverage %v, want 0.75", got)
	}
}

func TestCoverageMatchesQuadrature(t *testing.T) {
	// A circle-ish shape with cubic segments, compared against the
	// occupancy ratio from the area quadrature.
	const k = 0.5522847498307936
	var p outline.BezPath
	p.MoveTo(outline.Pt(64, 32))
	p.CubicTo(outline.Pt(64, 32+32*k), outline.Pt(32+32*k, 64), outline.Pt(32, 64))
	p.CubicTo(outline.Pt(32-32*k, 64), outline.Pt(0, 32+32*k), outline.Pt(0, 32))
	p.CubicTo(outline.Pt(0, 32-32*k), outline.Pt(32-32*k, 0), outline.Pt(32, 0))
	p.CubicTo(outline.Pt(32+32*k, 0), outline.Pt(64, 32-32*k), outline.Pt(64, 32))
	p.ClosePath()

	pixels, err := Coverage(p, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	quad, err := outline.OccupancyRatio(p, 64, 64, outline.DefaultAreaSamples)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(pixels - quad); d > 0.02 {
		t.Errorf("rasterized coverage %v and quadrature %v differ by %v", pixels, quad, d)
	}
}

func TestCoverageEmpty(t *testing.T) {
	got, err := Coverage(nil, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got coverage %v for empty path, want 0", got)
	}

	// A lone MoveTo has no segments either.
	var p outline.BezPath
	p.MoveTo(outline.Pt(1, 1))
	got, err = Coverage(p, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got coverage %v for segmentless path, want 0", got)
	}
}

func TestCoverageInvalidMask(t *testing.T) {
	for _, dims := range [][2]int{{0, 64}, {64, 0}, {-1, 64}} {
		if _, err := Coverage(rectPath(0, 0, 1, 1), dims[0], dims[1]); !errors.Is(err, outline.ErrInvalidParameter) {
			t.Errorf("Coverage with %d×%d mask: got %v, want ErrInvalidParameter", dims[0], dims[1], err)
		}
	}
}
