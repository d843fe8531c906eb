package fontsource

import (
	"testing"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/google/go-cmp/cmp"

	"github.com/fontbench/outline"
)

func diff(t *testing.T, want, got any) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func seg(op ot.SegmentOp, args ...ot.SegmentPoint) ot.Segment {
	s := ot.Segment{Op: op}
	copy(s.Args[:], args)
	return s
}

func sp(x, y float32) ot.SegmentPoint {
	return ot.SegmentPoint{X: x, Y: y}
}

func TestPathFromSegments(t *testing.T) {
	segs := []ot.Segment{
		seg(ot.SegmentOpMoveTo, sp(0, 0)),
		seg(ot.SegmentOpLineTo, sp(10, 0)),
		seg(ot.SegmentOpQuadTo, sp(15, 5), sp(10, 10)),
		seg(ot.SegmentOpCubeTo, sp(8, 12), sp(2, 12), sp(0, 10)),
	}
	got := pathFromSegments(segs, 800)

	var want outline.BezPath
	want.MoveTo(outline.Pt(0, 800))
	want.LineTo(outline.Pt(10, 800))
	want.QuadTo(outline.Pt(15, 795), outline.Pt(10, 790))
	want.CubicTo(outline.Pt(8, 788), outline.Pt(2, 788), outline.Pt(0, 790))
	want.ClosePath()
	diff(t, want, got)
}

func TestPathFromSegmentsSubpaths(t *testing.T) {
	segs := []ot.Segment{
		seg(ot.SegmentOpMoveTo, sp(0, 0)),
		seg(ot.SegmentOpLineTo, sp(10, 0)),
		seg(ot.SegmentOpMoveTo, sp(20, 0)),
		seg(ot.SegmentOpLineTo, sp(30, 0)),
	}
	got := pathFromSegments(segs, 100)

	var want outline.BezPath
	want.MoveTo(outline.Pt(0, 100))
	want.LineTo(outline.Pt(10, 100))
	want.ClosePath()
	want.MoveTo(outline.Pt(20, 100))
	want.LineTo(outline.Pt(30, 100))
	want.ClosePath()
	diff(t, want, got)
}

func TestPathFromSegmentsEmpty(t *testing.T) {
	if got := pathFromSegments(nil, 800); len(got) != 0 {
		t.Errorf("got %v elements for empty segments", got)
	}
}

func TestContoursFromSegments(t *testing.T) {
	segs := []ot.Segment{
		seg(ot.SegmentOpMoveTo, sp(0, 0)),
		seg(ot.SegmentOpLineTo, sp(10, 0)),
		seg(ot.SegmentOpLineTo, sp(10, 10)),
		seg(ot.SegmentOpLineTo, sp(0, 10)),
	}
	got := contoursFromSegments(segs)

	// The start point terminates the closing segment, so it becomes the
	// contour's last node.
	want := []outline.Contour{{Nodes: []outline.Node{
		outline.NodeAt(10, 0, outline.NodeLine),
		outline.NodeAt(10, 10, outline.NodeLine),
		outline.NodeAt(0, 10, outline.NodeLine),
		outline.NodeAt(0, 0, outline.NodeLine),
	}}}
	diff(t, want, got)
}

func TestContoursFromSegmentsCurves(t *testing.T) {
	segs := []ot.Segment{
		seg(ot.SegmentOpMoveTo, sp(0, 0)),
		seg(ot.SegmentOpCubeTo, sp(0, 5), sp(5, 10), sp(10, 10)),
		seg(ot.SegmentOpQuadTo, sp(10, 0), sp(0, 0)),
	}
	got := contoursFromSegments(segs)

	// The quad already ends on the start point, so no closing node is added.
	want := []outline.Contour{{Nodes: []outline.Node{
		outline.NodeAt(0, 5, outline.NodeOffCurve),
		outline.NodeAt(5, 10, outline.NodeOffCurve),
		outline.NodeAt(10, 10, outline.NodeCurve),
		outline.NodeAt(10, 0, outline.NodeOffCurve),
		outline.NodeAt(0, 0, outline.NodeQCurve),
	}}}
	diff(t, want, got)
}

func TestContoursFromSegmentsMultiple(t *testing.T) {
	segs := []ot.Segment{
		seg(ot.SegmentOpMoveTo, sp(0, 0)),
		seg(ot.SegmentOpLineTo, sp(10, 0)),
		seg(ot.SegmentOpLineTo, sp(5, 10)),
		seg(ot.SegmentOpMoveTo, sp(20, 0)),
		seg(ot.SegmentOpLineTo, sp(30, 0)),
		seg(ot.SegmentOpLineTo, sp(25, 10)),
	}
	got := contoursFromSegments(segs)
	if len(got) != 2 {
		t.Fatalf("got %d contours, want 2", len(got))
	}
	for i, c := range got {
		if len(c.Nodes) != 4 {
			t.Errorf("contour %d: got %d nodes, want 4", i, len(c.Nodes))
		}
		if c.Open {
			t.Errorf("contour %d: marked open", i)
		}
	}
}

func TestContoursThenScan(t *testing.T) {
	segs := []ot.Segment{
		seg(ot.SegmentOpMoveTo, sp(50, 0)),
		seg(ot.SegmentOpLineTo, sp(150, 0)),
		seg(ot.SegmentOpLineTo, sp(150, 700)),
		seg(ot.SegmentOpLineTo, sp(50, 700)),
	}
	contours := contoursFromSegments(segs)
	rng, err := outline.OutermostRange(contours, outline.Left)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, outline.Range{Min: 0, Max: 700}, rng)
}
