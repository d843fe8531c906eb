package outline

// NodeType describes the role of a node in a glyph contour.
type NodeType uint8

const (
	// NodeLine is an on-curve node terminating a straight segment.
	NodeLine NodeType = iota + 1
	// NodeCurve is an on-curve node terminating a cubic segment.
	NodeCurve
	// NodeQCurve is an on-curve node terminating a quadratic segment or spline.
	NodeQCurve
	// NodeOffCurve is an off-curve Bézier control point.
	NodeOffCurve
)

// OnCurve reports whether the node lies on the outline.
func (nt NodeType) OnCurve() bool {
	return nt != NodeOffCurve && nt != 0
}

func (nt NodeType) String() string {
	switch nt {
	case NodeLine:
		return "line"
	case NodeCurve:
		return "curve"
	case NodeQCurve:
		return "qcurve"
	case NodeOffCurve:
		return "offcurve"
	default:
		return "invalid"
	}
}

// Node is a single point of a glyph contour, in y-up font units.
type Node struct {
	Pos  Point
	Type NodeType
}

// NodeAt returns a node of the given type at (x, y).
func NodeAt(x, y float64, typ NodeType) Node {
	return Node{Pos: Pt(x, y), Type: typ}
}

// Contour is an ordered ring of nodes. The segment terminated by the first node starts
// at the last on-curve node, so traversal wraps around the end of the slice. Open
// contours don't wrap; they occur in interpolation masters and auxiliary layers and
// cannot be normalized to a drawable path.
type Contour struct {
	Nodes []Node
	Open  bool
}

// OnCurvePoints returns the positions of the contour's on-curve nodes, in traversal
// order.
func (c Contour) OnCurvePoints() []Point {
	var pts []Point
	for _, n := range c.Nodes {
		if n.Type.OnCurve() {
			pts = append(pts, n.Pos)
		}
	}
	return pts
}

// Component is a reference to another glyph, placed with an affine transform.
type Component struct {
	Name      string
	Transform Affine
}

// ShapeKind discriminates the variants of [Shape].
type ShapeKind uint8

const (
	ContourKind ShapeKind = iota + 1
	ComponentKind
)

// Shape is one drawable element of a glyph: either a contour or a component
// reference. It acts as a tagged union; only the field matching Kind is meaningful.
type Shape struct {
	Kind      ShapeKind
	Contour   Contour
	Component Component
}

// ContourShape wraps a contour as a Shape.
func ContourShape(c Contour) Shape {
	return Shape{Kind: ContourKind, Contour: c}
}

// ComponentShape wraps a component reference as a Shape.
func ComponentShape(c Component) Shape {
	return Shape{Kind: ComponentKind, Component: c}
}

// Glyph is a named glyph layer: its advance widths and its shapes, in y-up font units.
// VertWidth is zero for glyphs without vertical metrics.
type Glyph struct {
	Name      string
	Width     float64
	VertWidth float64
	Shapes    []Shape
}

// ResolveFunc maps a component's target name to its glyph. It returns false when the
// name is unknown.
type ResolveFunc func(name string) (*Glyph, bool)

// OnCurveBounds returns the bounding box of all on-curve points in the given contours.
// It returns false if there are none.
func OnCurveBounds(contours []Contour) (Rect, bool) {
	first := true
	var bounds Rect
	for _, c := range contours {
		for _, n := range c.Nodes {
			if !n.Type.OnCurve() {
				continue
			}
			if first {
				first = false
				bounds = NewRectFromPoints(n.Pos, n.Pos)
			} else {
				bounds = bounds.UnionPoint(n.Pos)
			}
		}
	}
	return bounds, !first
}
