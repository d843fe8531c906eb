package outline

import "fmt"

// Direction selects which side of an outline an extremum scan looks at.
type Direction uint8

const (
	// Left scans for the minimum x coordinate.
	Left Direction = iota + 1
	// Right scans for the maximum x coordinate.
	Right
	// Top scans for the maximum y coordinate.
	Top
	// Bottom scans for the minimum y coordinate.
	Bottom
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "invalid"
	}
}

// ParseDirection parses a direction name. The side-bearing abbreviations lsb, rsb, tsb
// and bsb are accepted as aliases.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left", "lsb":
		return Left, nil
	case "right", "rsb":
		return Right, nil
	case "top", "tsb":
		return Top, nil
	case "bottom", "bsb":
		return Bottom, nil
	default:
		return 0, fmt.Errorf("direction %q: %w", s, ErrInvalidParameter)
	}
}

func (d Direction) valid() bool {
	return d >= Left && d <= Bottom
}

// maximize reports whether the scan looks for the maximum of the scan axis rather than
// the minimum.
func (d Direction) maximize() bool {
	return d == Right || d == Top
}

// scanCoord returns the coordinate compared against the record.
func (d Direction) scanCoord(pt Point) float64 {
	if d == Left || d == Right {
		return pt.X
	}
	return pt.Y
}

// crossCoord returns the coordinate along the edge being scanned, perpendicular to the
// scan axis.
func (d Direction) crossCoord(pt Point) float64 {
	if d == Left || d == Right {
		return pt.Y
	}
	return pt.X
}

func (d Direction) strokePoint(record, cross float64) Point {
	if d == Left || d == Right {
		return Pt(record, cross)
	}
	return Pt(cross, record)
}

// Range is a closed interval along the cross axis of an extremum scan.
type Range struct {
	Min, Max float64
}

// Stroke is a contiguous run of on-curve nodes that all sit exactly on the outermost
// coordinate of a scan. Coord is that coordinate; Mid is the midpoint of the run's
// extent along the cross axis; Extent is that extent.
type Stroke struct {
	Coord  float64
	Mid    Point
	Extent Range
}

// extremumScan accumulates the global record across contours. Whenever a strictly
// better coordinate appears, everything gathered so far is discarded.
type extremumScan struct {
	dir       Direction
	hasRecord bool
	record    float64
	extent    Range
	strokes   []Stroke
}

func (s *extremumScan) improves(v float64) bool {
	if !s.hasRecord {
		return true
	}
	if s.dir.maximize() {
		return v > s.record
	}
	return v < s.record
}

// tied runs are tracked per contour as index intervals over the contour's on-curve
// points, so that a closed contour's head and tail runs can be merged when the record
// run wraps around the start of the node list.
type tiedRun struct {
	start, end int // inclusive indices into the on-curve point slice
	cross      Range
}

func (s *extremumScan) scanContour(c Contour) {
	pts := c.OnCurvePoints()
	n := len(pts)
	if n == 0 {
		return
	}

	var runs []tiedRun
	var cur *tiedRun
	flush := func() {
		if cur != nil {
			runs = append(runs, *cur)
			cur = nil
		}
	}
	for i, pt := range pts {
		v := s.dir.scanCoord(pt)
		r := s.dir.crossCoord(pt)
		switch {
		case s.improves(v):
			s.hasRecord = true
			s.record = v
			s.extent = Range{Min: r, Max: r}
			s.strokes = s.strokes[:0]
			runs = runs[:0]
			cur = &tiedRun{start: i, end: i, cross: Range{Min: r, Max: r}}
		case v == s.record:
			s.extent.Min = min(s.extent.Min, r)
			s.extent.Max = max(s.extent.Max, r)
			if cur != nil && cur.end == i-1 {
				cur.end = i
				cur.cross.Min = min(cur.cross.Min, r)
				cur.cross.Max = max(cur.cross.Max, r)
			} else {
				flush()
				cur = &tiedRun{start: i, end: i, cross: Range{Min: r, Max: r}}
			}
		default:
			flush()
		}
	}
	flush()

	// A closed contour is a ring: a record run split across the slice boundary is a
	// single stroke, so merge the head and tail runs.
	if !c.Open && len(runs) > 1 {
		first, last := runs[0], runs[len(runs)-1]
		if first.start == 0 && last.end == n-1 {
			first.cross.Min = min(first.cross.Min, last.cross.Min)
			first.cross.Max = max(first.cross.Max, last.cross.Max)
			runs[0] = first
			runs = runs[:len(runs)-1]
		}
	}

	for _, run := range runs {
		mid := 0.5 * (run.cross.Min + run.cross.Max)
		s.strokes = append(s.strokes, Stroke{
			Coord:  s.record,
			Mid:    s.dir.strokePoint(s.record, mid),
			Extent: run.cross,
		})
	}
}

func scan(contours []Contour, dir Direction) (*extremumScan, error) {
	if !dir.valid() {
		return nil, fmt.Errorf("direction %d: %w", dir, ErrInvalidParameter)
	}
	s := &extremumScan{dir: dir}
	for _, c := range contours {
		s.scanContour(c)
	}
	if !s.hasRecord {
		return nil, fmt.Errorf("outline has no on-curve nodes: %w", ErrMalformedOutline)
	}
	return s, nil
}

// OutermostRange scans the contours' on-curve nodes for the extremum in the given
// direction and returns the extent, along the cross axis, of all nodes that sit exactly
// on it. Off-curve nodes never participate. An outline without on-curve nodes yields an
// error wrapping [ErrMalformedOutline].
func OutermostRange(contours []Contour, dir Direction) (Range, error) {
	s, err := scan(contours, dir)
	if err != nil {
		return Range{}, err
	}
	return s.extent, nil
}

// OutermostStrokes scans like [OutermostRange] but returns the individual contiguous
// runs of record-tying nodes. Each run yields one stroke; a run that wraps around the
// start of a closed contour's node list counts once. The number of strokes tells apart,
// say, a single flat bottom edge from two separate feet at the same height.
func OutermostStrokes(contours []Contour, dir Direction) ([]Stroke, error) {
	s, err := scan(contours, dir)
	if err != nil {
		return nil, err
	}
	return s.strokes, nil
}

// ScanGlyph flattens a glyph's components with [ResolveContours] and scans the resulting
// contours for the outermost strokes in the given direction. Node roles survive the
// component transforms, so composite glyphs scan like plain ones.
func ScanGlyph(g *Glyph, resolve ResolveFunc, dir Direction) ([]Stroke, error) {
	contours, err := ResolveContours(g, resolve)
	if err != nil {
		return nil, err
	}
	return OutermostStrokes(contours, dir)
}
