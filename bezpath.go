package outline

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a segment of a Bézier path. This type acts as a sort of tagged
// union representing all possible path segments ([Line], [QuadBez], and [CubicBez]).
type PathSegment struct {
	// We don't use an interface for PathSegment because we want {Line, Quad,
	// Cubic}.Transform to return their respective types, not PathSegment. But we cannot
	// encode that in Go interfaces.
	//
	// This also avoids having to allocate for path segments.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when
// Kind == QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		p0 := seg.P0
		p1 := seg.P1
		return CubicBez{p0, p0, p1, p1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	return PathSegment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

func (seg PathSegment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg PathSegment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

// Deriv evaluates the first derivative of the segment at t.
func (seg PathSegment) Deriv(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Deriv(t)
	case QuadKind:
		return seg.Quad().Deriv(t)
	case CubicKind:
		return seg.Cubic().Deriv(t)
	default:
		return Vec2{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.Eval(0)
}

func (seg PathSegment) End() Point {
	return seg.Eval(1)
}

// SignedArea returns the signed area of the region between the segment and the chords
// connecting its endpoints to the origin, computed from the closed form of Green's
// theorem. Summed over the segments of a closed path this yields the path's signed area.
func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		return 0
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.Line().P1)
	case QuadKind:
		return QuadTo(seg.Quad().P1, seg.Quad().P2)
	case CubicKind:
		return CubicTo(seg.Cubic().P1, seg.Cubic().P2, seg.Cubic().P3)
	default:
		return PathElement{}
	}
}

// Reverse returns a new PathSegment describing the same path as this one, but with the
// points reversed.
func (seg PathSegment) Reverse() PathSegment {
	switch seg.Kind {
	case LineKind:
		seg.P0, seg.P1 = seg.P1, seg.P0
		return seg
	case QuadKind:
		seg.P0, seg.P2 = seg.P2, seg.P0
		return seg
	case CubicKind:
		seg.P0, seg.P1, seg.P2, seg.P3 = seg.P3, seg.P2, seg.P1, seg.P0
		return seg
	default:
		return PathSegment{}
	}
}

// BezPath is a Bézier path, consisting of lines, quadratic Béziers and cubic Béziers,
// possibly spanning multiple subpaths.
//
// A path can be represented in terms of either elements ([PathElement]) or segments
// ([PathSegment]). Elements map closely to how Béziers are generally used in
// PostScript-style drawing APIs; they can be thought of as instructions for drawing the
// path. Segments more directly describe the path itself, with each segment being an
// independent line or curve.
//
// Conceptually, a BezPath contains zero or more subpaths. Each subpath always begins
// with a MoveTo, then has zero or more LineTo, QuadTo, and CubicTo elements, and
// optionally ends with a ClosePath.
type BezPath []PathElement

// Transform returns a new path with an affine transformation to the path. See
// [BezPath.ApplyTransform] for a version that modifies the path in-place.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// ApplyTransform destructively applies an affine transformation to the path. See
// [BezPath.Transform] for a version that returns a new path instead.
func (p *BezPath) ApplyTransform(aff Affine) {
	for i := range *p {
		(*p)[i] = (*p)[i].Transform(aff)
	}
}

// Pop removes and returns the last element in the path. If the path contains no more
// elements, false is returned.
func (p *BezPath) Pop() (PathElement, bool) {
	if len(*p) == 0 {
		return PathElement{}, false
	}
	el := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return el, true
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(slices.Values(p)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// ExactArea returns the signed area enclosed by the path, computed from the closed-form
// per-segment areas. The sign follows the non-zero winding convention: in a y-down frame,
// clockwise subpaths contribute positive area.
//
// See [SignedArea] for the quadrature-based equivalent.
func (p BezPath) ExactArea() float64 {
	return SegmentsSignedArea(p.Segments())
}

// Segment returns the segment at the given element index, if any.
//
// If you need to access all segments, [BezPath.Segments] provides a better
// API. This function is intended for random access of specific elements, for clients
// that require this specifically.
//
// This returns the segment that ends at the provided element
// index. In effect this means it is 1-indexed: since no segment ends at
// the first element (which is presumed to be a [MoveTo]) Segment(0) will
// always return false.
func (p BezPath) Segment(idx int) (PathSegment, bool) {
	if idx == 0 || idx >= len(p) {
		return PathSegment{}, false
	}
	var last Point
	switch prev := p[idx-1]; prev.Kind {
	case MoveToKind:
		last = prev.P0
	case LineToKind:
		last = prev.P0
	case QuadToKind:
		last = prev.P1
	case CubicToKind:
		last = prev.P2
	default:
		return PathSegment{}, false
	}

	switch el := p[idx]; el.Kind {
	case LineToKind:
		return Line{last, el.P0}.Seg(), true
	case QuadToKind:
		return QuadBez{last, el.P0, el.P1}.Seg(), true
	case CubicToKind:
		return CubicBez{last, el.P0, el.P1, el.P2}.Seg(), true
	case ClosePathKind:
		for i := idx - 1; i >= 0; i-- {
			el := p[i]
			if el.Kind == MoveToKind && el.P0 != last {
				return Line{last, el.P0}.Seg(), true
			}
		}
		return PathSegment{}, false

	default:
		return PathSegment{}, false
	}
}

// HasSegments reports whether the path contains any segments. A path that consists only
// of MoveTo and ClosePath elements has no segments.
func (p BezPath) HasSegments() bool {
	for i := range p {
		el := p[i]
		if el.Kind != MoveToKind && el.Kind != ClosePathKind {
			return true
		}
	}
	return false
}

func (p BezPath) IsInf() bool {
	for i := range p {
		if p[i].IsInf() {
			return true
		}
	}
	return false
}

func (p BezPath) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

// ControlBox returns a rectangle that conservatively encloses the path, computed from
// the control points directly rather than from tight curve bounds.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}

	return cbox
}

// SVG converts the path to an SVG path string representation.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// Segments converts a sequence of path elements to a sequence of path segments. A
// ClosePath element yields a line segment back to the subpath's start point, unless the
// subpath already ends there.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, last Point
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p0 := last
				last = el.P0
				if !yield(Line{p0, el.P0}.Seg()) {
					return
				}
			case QuadToKind:
				p0 := last
				last = el.P1
				if !yield(QuadBez{p0, el.P0, el.P1}.Seg()) {
					return
				}
			case CubicToKind:
				p0 := last
				last = el.P2
				if !yield(CubicBez{p0, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if last != start {
					p0 := last
					last = start
					if !yield(Line{p0, start}.Seg()) {
						return
					}
				}
			}
		}
	}
}

// SegmentsSignedArea sums the closed-form signed areas of a sequence of segments.
func SegmentsSignedArea(seq iter.Seq[PathSegment]) float64 {
	var sum float64
	for s := range seq {
		sum += s.SignedArea()
	}
	return sum
}
