package outline

import "fmt"

// Component graphs in real fonts are shallow; anything deeper than this is a cycle.
const maxComponentDepth = 64

// Normalize converts a glyph to a single canonical Bézier path. Contours become closed
// subpaths, component references are resolved recursively and placed with their
// transforms, and the result is flipped into a y-down frame with the origin at the
// ascender line (y' = ascender − y), matching SVG conventions.
//
// Malformed contours are recovered at subpath granularity: a contour that cannot be
// converted is dropped, and an error wrapping [ErrMalformedOutline] is returned only if
// nothing drawable survives. Component failures are not recoverable: an unknown
// reference yields an error wrapping [ErrUnresolvedComponent], and errors from within a
// referenced glyph propagate.
func Normalize(g *Glyph, ascender float64, resolve ResolveFunc) (BezPath, error) {
	path, err := glyphPath(g, resolve, 0)
	if err != nil {
		return nil, err
	}
	// Flip once after all component transforms have been applied in the y-up frame.
	path.ApplyTransform(Affine{1, 0, 0, -1, 0, ascender})
	return path, nil
}

func glyphPath(g *Glyph, resolve ResolveFunc, depth int) (BezPath, error) {
	if depth > maxComponentDepth {
		return nil, fmt.Errorf("component nesting exceeds %d levels: %w", maxComponentDepth, ErrMalformedOutline)
	}
	var (
		path     BezPath
		contours int
		kept     int
		firstErr error
	)
	for _, s := range g.Shapes {
		switch s.Kind {
		case ContourKind:
			if len(s.Contour.Nodes) == 0 {
				continue
			}
			contours++
			els, err := contourElements(s.Contour)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			kept++
			path = append(path, els...)
		case ComponentKind:
			if resolve == nil {
				return nil, fmt.Errorf("component %q: no resolver: %w", s.Component.Name, ErrUnresolvedComponent)
			}
			ref, ok := resolve(s.Component.Name)
			if !ok {
				return nil, fmt.Errorf("component %q: %w", s.Component.Name, ErrUnresolvedComponent)
			}
			sub, err := glyphPath(ref, resolve, depth+1)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", s.Component.Name, err)
			}
			sub.ApplyTransform(s.Component.Transform)
			path = append(path, sub...)
		default:
			return nil, fmt.Errorf("shape kind %d: %w", s.Kind, ErrMalformedOutline)
		}
	}
	if contours > 0 && kept == 0 && len(path) == 0 {
		return nil, firstErr
	}
	return path, nil
}

// contourElements converts a single closed contour to path elements. The contour is
// rotated so that it ends on an on-curve node; the pen starts there, and every on-curve
// node terminates the segment built from the off-curve nodes collected since the
// previous one:
//
//	0 off-curves            line (or explicit NodeLine)
//	1 off-curve             quadratic
//	2 off-curves + curve    cubic
//	2+ off-curves + qcurve  quadratic spline with implied on-curve midpoints
//	3+ off-curves + curve   malformed
func contourElements(c Contour) ([]PathElement, error) {
	if c.Open {
		return nil, fmt.Errorf("open contour: %w", ErrMalformedOutline)
	}

	last := -1
	for i := len(c.Nodes) - 1; i >= 0; i-- {
		if c.Nodes[i].Type.OnCurve() {
			last = i
			break
		}
	}
	if last == -1 {
		return nil, fmt.Errorf("contour with no on-curve nodes: %w", ErrMalformedOutline)
	}
	nodes := make([]Node, 0, len(c.Nodes))
	nodes = append(nodes, c.Nodes[last+1:]...)
	nodes = append(nodes, c.Nodes[:last+1]...)

	start := nodes[len(nodes)-1].Pos
	els := []PathElement{MoveTo(start)}
	prevOn := start
	var pending []Point
	for _, n := range nodes {
		if n.Type == NodeOffCurve {
			pending = append(pending, n.Pos)
			continue
		}
		switch n.Type {
		case NodeLine:
			if len(pending) != 0 {
				return nil, fmt.Errorf("line node preceded by %d off-curve nodes: %w", len(pending), ErrMalformedOutline)
			}
			els = append(els, LineTo(n.Pos))
		case NodeCurve:
			switch len(pending) {
			case 0:
				els = append(els, LineTo(n.Pos))
			case 1:
				els = append(els, QuadTo(pending[0], n.Pos))
			case 2:
				els = append(els, CubicTo(pending[0], pending[1], n.Pos))
			default:
				return nil, fmt.Errorf("curve node preceded by %d off-curve nodes: %w", len(pending), ErrMalformedOutline)
			}
		case NodeQCurve:
			switch len(pending) {
			case 0:
				els = append(els, LineTo(n.Pos))
			case 1:
				els = append(els, QuadTo(pending[0], n.Pos))
			default:
				spline := make(QuadBSpline, 0, len(pending)+2)
				spline = append(spline, prevOn)
				spline = append(spline, pending...)
				spline = append(spline, n.Pos)
				for q := range spline.Quads() {
					els = append(els, QuadTo(q.P1, q.P2))
				}
			}
		default:
			return nil, fmt.Errorf("node type %d: %w", n.Type, ErrMalformedOutline)
		}
		prevOn = n.Pos
		pending = pending[:0]
	}
	els = append(els, ClosePath())
	return els, nil
}

// ResolveContours flattens a glyph to its plain contours, recursively inlining
// component references with their transforms applied to node positions. The result
// stays in the y-up font-unit frame; it is the input the extremum scanner works on.
func ResolveContours(g *Glyph, resolve ResolveFunc) ([]Contour, error) {
	return resolveContours(g, resolve, 0)
}

func resolveContours(g *Glyph, resolve ResolveFunc, depth int) ([]Contour, error) {
	if depth > maxComponentDepth {
		return nil, fmt.Errorf("component nesting exceeds %d levels: %w", maxComponentDepth, ErrMalformedOutline)
	}
	var out []Contour
	for _, s := range g.Shapes {
		switch s.Kind {
		case ContourKind:
			out = append(out, s.Contour)
		case ComponentKind:
			if resolve == nil {
				return nil, fmt.Errorf("component %q: no resolver: %w", s.Component.Name, ErrUnresolvedComponent)
			}
			ref, ok := resolve(s.Component.Name)
			if !ok {
				return nil, fmt.Errorf("component %q: %w", s.Component.Name, ErrUnresolvedComponent)
			}
			sub, err := resolveContours(ref, resolve, depth+1)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", s.Component.Name, err)
			}
			for _, c := range sub {
				nodes := make([]Node, len(c.Nodes))
				for i, n := range c.Nodes {
					nodes[i] = Node{Pos: n.Pos.Transform(s.Component.Transform), Type: n.Type}
				}
				out = append(out, Contour{Nodes: nodes, Open: c.Open})
			}
		default:
			return nil, fmt.Errorf("shape kind %d: %w", s.Kind, ErrMalformedOutline)
		}
	}
	return out, nil
}
