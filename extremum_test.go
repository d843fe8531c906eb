package outline

import (
	"errors"
	"testing"
)

// squareContour returns a closed square with corners (x0, y0) and (x1, y1), built from
// line nodes.
func squareContour(x0, y0, x1, y1 float64) Contour {
	return contourOf(
		NodeAt(x0, y0, NodeLine),
		NodeAt(x1, y0, NodeLine),
		NodeAt(x1, y1, NodeLine),
		NodeAt(x0, y1, NodeLine),
	)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"left", Left},
		{"lsb", Left},
		{"right", Right},
		{"rsb", Right},
		{"top", Top},
		{"tsb", Top},
		{"bottom", Bottom},
		{"bsb", Bottom},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "up", "LEFT", "xsb"} {
		if _, err := ParseDirection(in); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseDirection(%q): got error %v, want ErrInvalidParameter", in, err)
		}
	}
}

func TestOutermostRangePolarity(t *testing.T) {
	contours := []Contour{squareContour(1, 2, 11, 22)}

	tests := []struct {
		dir  Direction
		want Range
	}{
		{Left, Range{2, 22}},   // min x edge spans y 2..22
		{Right, Range{2, 22}},  // max x edge spans y 2..22
		{Top, Range{1, 11}},    // max y edge spans x 1..11
		{Bottom, Range{1, 11}}, // min y edge spans x 1..11
	}
	for _, tt := range tests {
		got, err := OutermostRange(contours, tt.dir)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.want, got)
	}
}

func TestOutermostStrokesTwoFeet(t *testing.T) {
	// Two separate feet touching the baseline, like an H: the bottom scan must
	// report two strokes but a single overall range.
	contours := []Contour{
		squareContour(0, 0, 2, 10),
		squareContour(8, 0, 10, 10),
	}

	strokes, err := OutermostStrokes(contours, Bottom)
	if err != nil {
		t.Fatal(err)
	}
	if len(strokes) != 2 {
		t.Fatalf("got %d strokes, want 2", len(strokes))
	}
	diff(t, Pt(1, 0), strokes[0].Mid)
	diff(t, Pt(9, 0), strokes[1].Mid)
	diff(t, Range{0, 2}, strokes[0].Extent)
	diff(t, Range{8, 10}, strokes[1].Extent)

	rng, err := OutermostRange(contours, Bottom)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Range{0, 10}, rng)
}

func TestOutermostStrokesWraparound(t *testing.T) {
	// The bottom edge's nodes straddle the slice boundary of a closed contour:
	// last and first node both sit at y=0. That is one stroke, not two.
	c := contourOf(
		NodeAt(10, 0, NodeLine),
		NodeAt(10, 10, NodeLine),
		NodeAt(0, 10, NodeLine),
		NodeAt(0, 0, NodeLine),
	)
	strokes, err := OutermostStrokes([]Contour{c}, Bottom)
	if err != nil {
		t.Fatal(err)
	}
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	diff(t, Pt(5, 0), strokes[0].Mid)
	diff(t, Range{0, 10}, strokes[0].Extent)
}

func TestOutermostStrokesNoWraparoundWhenOpen(t *testing.T) {
	c := Contour{
		Nodes: []Node{
			NodeAt(10, 0, NodeLine),
			NodeAt(10, 10, NodeLine),
			NodeAt(0, 10, NodeLine),
			NodeAt(0, 0, NodeLine),
		},
		Open: true,
	}
	strokes, err := OutermostStrokes([]Contour{c}, Bottom)
	if err != nil {
		t.Fatal(err)
	}
	if len(strokes) != 2 {
		t.Fatalf("got %d strokes, want 2", len(strokes))
	}
}

func TestOutermostIgnoresOffCurveNodes(t *testing.T) {
	// The off-curve control dips below the baseline but must not move the record.
	c := contourOf(
		NodeAt(0, 0, NodeQCurve),
		NodeAt(5, -4, NodeOffCurve),
		NodeAt(10, 0, NodeQCurve),
		NodeAt(5, 10, NodeLine),
	)
	rng, err := OutermostRange([]Contour{c}, Bottom)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Range{0, 10}, rng)
}

func TestOutermostRecordImprovement(t *testing.T) {
	// A later contour that beats the record discards earlier strokes.
	contours := []Contour{
		squareContour(0, 5, 10, 15),
		squareContour(4, 0, 6, 4),
	}
	strokes, err := OutermostStrokes(contours, Bottom)
	if err != nil {
		t.Fatal(err)
	}
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	diff(t, Pt(5, 0), strokes[0].Mid)
	if strokes[0].Coord != 0 {
		t.Errorf("got record %v, want 0", strokes[0].Coord)
	}
}

func TestOutermostWholeContourTied(t *testing.T) {
	// Every node at the same x: a left scan sees one stroke covering the contour.
	c := contourOf(
		NodeAt(3, 0, NodeLine),
		NodeAt(3, 5, NodeLine),
		NodeAt(3, 10, NodeLine),
	)
	strokes, err := OutermostStrokes([]Contour{c}, Left)
	if err != nil {
		t.Fatal(err)
	}
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	diff(t, Pt(3, 5), strokes[0].Mid)
}

func TestOutermostErrors(t *testing.T) {
	if _, err := OutermostRange(nil, Left); !errors.Is(err, ErrMalformedOutline) {
		t.Errorf("empty outline: got error %v, want ErrMalformedOutline", err)
	}
	c := squareContour(0, 0, 1, 1)
	if _, err := OutermostRange([]Contour{c}, Direction(9)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("bad direction: got error %v, want ErrInvalidParameter", err)
	}
}

func TestScanGlyphComponents(t *testing.T) {
	// A foot referenced twice: once in place, once shifted right. Both tie the
	// bottom record and yield one stroke each.
	foot := simpleGlyph("foot", squareContour(0, 0, 2, 10))
	g := &Glyph{Name: "pi", Shapes: []Shape{
		ComponentShape(Component{Name: "foot", Transform: Identity}),
		ComponentShape(Component{Name: "foot", Transform: Translate(Vec(8, 0))}),
	}}
	strokes, err := ScanGlyph(g, resolverFor(foot), Bottom)
	if err != nil {
		t.Fatal(err)
	}
	if len(strokes) != 2 {
		t.Fatalf("got %d strokes, want 2", len(strokes))
	}
	diff(t, Pt(1, 0), strokes[0].Mid)
	diff(t, Pt(9, 0), strokes[1].Mid)

	if _, err := ScanGlyph(g, nil, Bottom); !errors.Is(err, ErrUnresolvedComponent) {
		t.Errorf("no resolver: got error %v, want ErrUnresolvedComponent", err)
	}
}
