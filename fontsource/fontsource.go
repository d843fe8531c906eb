// Package fontsource adapts parsed OpenType faces to the inputs of package
// outline. Parsing, component resolution and variable-font interpolation are
// left to go-text/typesetting; this package only converts the face's glyph
// segments and metrics into canonical paths, node contours and measurements.
package fontsource

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/fontbench/outline"
)

// ErrNoOutline is returned for glyphs whose data is not an outline, such as
// bitmap or SVG color glyphs.
var ErrNoOutline = errors.New("glyph has no outline data")

// Master is a named location in a variable font's design space.
type Master struct {
	Name       string
	Variations []font.Variation
}

// Variation builds a single axis setting from its four-letter tag.
func Variation(tag string, value float32) font.Variation {
	return font.Variation{Tag: ot.MustNewTag(tag), Value: value}
}

// Apply moves the face to the master's design-space location. Axes the master
// doesn't name return to their defaults.
func Apply(face *font.Face, m Master) {
	face.SetVariations(m.Variations)
}

// Lookup maps a rune to its glyph through the face's character map.
func Lookup(face *font.Face, r rune) (font.GID, bool) {
	return face.Cmap.Lookup(r)
}

// Metrics returns the face's ascender and descender in font units, plus the
// units per em. The descender is negative for ink below the baseline. Faces
// without horizontal extents fall back to an upem-sized ascender.
func Metrics(face *font.Face) (ascender, descender float64, upem int) {
	upem = int(face.Upem())
	ext, ok := face.FontHExtents()
	if !ok {
		return float64(upem), 0, upem
	}
	return float64(ext.Ascender), float64(ext.Descender), upem
}

// BoxSize returns the dimensions of the glyph's advance box: the horizontal
// advance by the ascender-to-descender body height.
func BoxSize(face *font.Face, gid font.GID) (width, height float64) {
	asc, desc, _ := Metrics(face)
	return float64(face.HorizontalAdvance(gid)), asc - desc
}

func glyphSegments(face *font.Face, gid font.GID) ([]ot.Segment, error) {
	data := face.GlyphData(gid)
	out, ok := data.(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("glyph %d: %w", gid, ErrNoOutline)
	}
	return out.Segments, nil
}

// GlyphPath returns the glyph's outline as a canonical y-down path: x grows
// right, y grows down from the ascender line. Components and quadratic
// splines are already expanded by the face.
func GlyphPath(face *font.Face, gid font.GID) (outline.BezPath, error) {
	segs, err := glyphSegments(face, gid)
	if err != nil {
		return nil, err
	}
	asc, _, _ := Metrics(face)
	return pathFromSegments(segs, asc), nil
}

func pathFromSegments(segs []ot.Segment, ascender float64) outline.BezPath {
	flip := func(p ot.SegmentPoint) outline.Point {
		return outline.Pt(float64(p.X), ascender-float64(p.Y))
	}
	var path outline.BezPath
	started := false
	for _, s := range segs {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if started {
				path.ClosePath()
			}
			path.MoveTo(flip(s.Args[0]))
			started = true
		case ot.SegmentOpLineTo:
			path.LineTo(flip(s.Args[0]))
		case ot.SegmentOpQuadTo:
			path.QuadTo(flip(s.Args[0]), flip(s.Args[1]))
		case ot.SegmentOpCubeTo:
			path.CubicTo(flip(s.Args[0]), flip(s.Args[1]), flip(s.Args[2]))
		}
	}
	if started {
		path.ClosePath()
	}
	return path
}

// GlyphContours returns the glyph's outline as node contours in y-up font
// units, the form the extremum scans consume.
func GlyphContours(face *font.Face, gid font.GID) ([]outline.Contour, error) {
	segs, err := glyphSegments(face, gid)
	if err != nil {
		return nil, err
	}
	return contoursFromSegments(segs), nil
}

func contoursFromSegments(segs []ot.Segment) []outline.Contour {
	pt := func(p ot.SegmentPoint) outline.Point {
		return outline.Pt(float64(p.X), float64(p.Y))
	}
	var contours []outline.Contour
	var nodes []outline.Node
	var start outline.Point
	// Each on-curve node describes the segment arriving at it, so the
	// subpath's start point becomes the node terminating the closing
	// segment. When the last drawn segment already ends on the start point
	// that node doubles as the closing node.
	flush := func() {
		if nodes == nil {
			return
		}
		last := nodes[len(nodes)-1]
		if !last.Type.OnCurve() || last.Pos != start {
			nodes = append(nodes, outline.Node{Pos: start, Type: outline.NodeLine})
		}
		contours = append(contours, outline.Contour{Nodes: nodes})
		nodes = nil
	}
	for _, s := range segs {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			flush()
			start = pt(s.Args[0])
		case ot.SegmentOpLineTo:
			nodes = append(nodes, outline.Node{Pos: pt(s.Args[0]), Type: outline.NodeLine})
		case ot.SegmentOpQuadTo:
			nodes = append(nodes,
				outline.Node{Pos: pt(s.Args[0]), Type: outline.NodeOffCurve},
				outline.Node{Pos: pt(s.Args[1]), Type: outline.NodeQCurve})
		case ot.SegmentOpCubeTo:
			nodes = append(nodes,
				outline.Node{Pos: pt(s.Args[0]), Type: outline.NodeOffCurve},
				outline.Node{Pos: pt(s.Args[1]), Type: outline.NodeOffCurve},
				outline.Node{Pos: pt(s.Args[2]), Type: outline.NodeCurve})
		}
	}
	flush()
	return contours
}

// Grayscale measures how much of the glyph's advance box its outline covers,
// as a ratio in [0, 1]. samplesPerSegment tunes the quadrature as in
// [outline.OccupancyRatio].
func Grayscale(face *font.Face, gid font.GID, samplesPerSegment int) (float64, error) {
	path, err := GlyphPath(face, gid)
	if err != nil {
		return 0, err
	}
	w, h := BoxSize(face, gid)
	return outline.OccupancyRatio(path, w, h, samplesPerSegment)
}

// SideBearings are the ink margins of a glyph: the distances from the
// outline's bounding box to the advance box on each side, in font units.
type SideBearings struct {
	Left, Right, Top, Bottom float64
}

// Bearings measures the glyph's side bearings from its on-curve bounds.
// Glyphs without on-curve nodes have no bearings.
func Bearings(face *font.Face, gid font.GID) (SideBearings, error) {
	contours, err := GlyphContours(face, gid)
	if err != nil {
		return SideBearings{}, err
	}
	bounds, ok := outline.OnCurveBounds(contours)
	if !ok {
		return SideBearings{}, fmt.Errorf("glyph %d has no on-curve nodes: %w", gid, outline.ErrMalformedOutline)
	}
	asc, desc, _ := Metrics(face)
	adv := float64(face.HorizontalAdvance(gid))
	return SideBearings{
		Left:   bounds.MinX(),
		Right:  adv - bounds.MaxX(),
		Top:    asc - bounds.MaxY(),
		Bottom: bounds.MinY() - desc,
	}, nil
}

// OutermostStrokes scans the glyph's contours for the strokes on its outermost
// extremum in the given direction. See [outline.OutermostStrokes].
func OutermostStrokes(face *font.Face, gid font.GID, dir outline.Direction) ([]outline.Stroke, error) {
	contours, err := GlyphContours(face, gid)
	if err != nil {
		return nil, err
	}
	return outline.OutermostStrokes(contours, dir)
}
