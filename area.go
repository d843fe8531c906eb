package outline

import (
	"fmt"
	"math"
)

// DefaultAreaSamples is the number of quadrature subintervals used per segment when a
// caller passes a non-positive sample count.
const DefaultAreaSamples = 20

// SignedArea computes the signed area enclosed by the path using Green's theorem,
//
//	A = 1/2 ∮ (x·dy − y·dx)
//
// evaluated per segment with composite Simpson quadrature over samplesPerSegment
// subintervals. A ClosePath element synthesizes the implicit closing line when the
// current point differs from the subpath start; subpaths without a ClosePath contribute
// only their drawn segments, so a subpath must be closed for its ink to be measured as
// a region.
//
// The sign of the result encodes winding: with the non-zero winding convention,
// subpaths wound one way contribute positive area and subpaths wound the other way
// (holes, in well-formed outlines) contribute negative area, so overlapping holes
// cancel ink rather than double-counting it.
//
// [BezPath.ExactArea] computes the same quantity from closed-form per-segment areas;
// the quadrature version exists so the two can validate one another and so that
// integrands other than polynomials stay cheap to add.
func SignedArea(p BezPath, samplesPerSegment int) float64 {
	if samplesPerSegment <= 0 {
		samplesPerSegment = DefaultAreaSamples
	}
	var total float64
	for seg := range p.Segments() {
		total += segmentSignedArea(seg, samplesPerSegment)
	}
	return total
}

func segmentSignedArea(seg PathSegment, n int) float64 {
	return 0.5 * Simpson(func(t float64) float64 {
		pt := seg.Eval(t)
		d := seg.Deriv(t)
		return pt.X*d.Y - pt.Y*d.X
	}, n)
}

// OccupancyRatio returns the fraction of a width×height box covered by the path's ink,
// defined as |SignedArea| divided by the box area. An empty path yields 0. Non-positive
// box dimensions yield an error wrapping [ErrInvalidParameter].
//
// The result is a dimensionless "grayscale" value; it exceeds 1 if the path spills
// outside the box.
func OccupancyRatio(p BezPath, width, height float64, samplesPerSegment int) (float64, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("box %g×%g: %w", width, height, ErrInvalidParameter)
	}
	if !p.HasSegments() {
		return 0, nil
	}
	return math.Abs(SignedArea(p, samplesPerSegment)) / (width * height), nil
}
