// Package raster measures ink coverage by actually rasterizing a path into an
// alpha mask. It is the slow, pixel-exact counterpart to the quadrature in
// package outline and is used to cross-check it.
package raster

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/fontbench/outline"
)

// Coverage rasterizes the path into a width×height alpha mask and returns the
// mean pixel coverage in [0, 1]. The path is expected in the y-down frame
// produced by [outline.Normalize], with coordinates inside the mask; ink
// outside it is clipped. An empty path covers nothing.
func Coverage(p outline.BezPath, width, height int) (float64, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("mask %d×%d: %w", width, height, outline.ErrInvalidParameter)
	}
	if !p.HasSegments() {
		return 0, nil
	}

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	for _, el := range p {
		switch el.Kind {
		case outline.MoveToKind:
			r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case outline.LineToKind:
			r.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case outline.QuadToKind:
			r.QuadTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y))
		case outline.CubicToKind:
			r.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y))
		case outline.ClosePathKind:
			r.ClosePath()
		}
	}

	mask := image.NewAlpha(r.Bounds())
	// The source is a uniform, so the sampling origin doesn't matter.
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	var sum uint64
	for _, a := range mask.Pix {
		sum += uint64(a)
	}
	return float64(sum) / 255 / float64(width*height), nil
}
