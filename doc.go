// Package outline measures glyph outlines: how much ink they carry and where their
// outermost edges sit. It was built for comparing interpolation masters of a font
// family, but the geometry is general enough to be useful for any 2D outline work.
//
// # Outlines and paths
//
// Glyph outlines come in node form: [Contour] rings of on- and off-curve [Node]s plus
// transformed [Component] references, grouped into a [Glyph]. [Normalize] converts a
// glyph to a [BezPath], the canonical drawing form: closed subpaths of lines and
// quadratic and cubic Béziers in a y-down frame anchored at the ascender line.
// [ResolveContours] instead flattens a glyph to plain contours for queries that work on
// nodes directly.
//
// A path can be represented in terms of either elements ([PathElement]) or segments
// ([PathSegment]); [Segments] converts between the two. Elements map closely to
// PostScript-style drawing commands, while segments carry explicit start points and can
// be evaluated as parametric curves at t ∈ [0, 1] ([PathSegment.Eval],
// [PathSegment.Deriv]).
//
// # Measurements
//
// [SignedArea] integrates 1/2 ∮ (x·dy − y·dx) per segment with composite Simpson
// quadrature ([Simpson]); [BezPath.ExactArea] computes the same quantity from the
// closed-form per-segment areas. [OccupancyRatio] turns the area into a dimensionless
// ink-coverage value for a bounding box.
//
// [OutermostRange] and [OutermostStrokes] scan a glyph's on-curve nodes for the
// outermost extremum on a given side ([Direction]) and describe the nodes that sit
// exactly on it. [ScanCache] memoizes these scans across a font family.
//
// # Interchange
//
// [SVG] and [WriteSVG] emit paths as absolute SVG path commands; [ParseSVG] reads the
// same dialect back. [Document] wraps a path in a minimal standalone SVG document,
// which is the form consumed by external rasterizers.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Calculating Area of Closed Curves in ℝ²]
//   - [Green's theorem]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Calculating Area of Closed Curves in ℝ²]: http://ich.deanmcnamee.com/graphics/2016/03/30/CurveArea.html
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
package outline
