package outline

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

// Document wraps a path in a minimal standalone SVG document, with the path filled
// black. scale converts the path's units to pixels: the coordinates and the given
// dimensions are multiplied by it. Non-positive scales yield an error wrapping
// [ErrInvalidParameter]. The path is expected to already be in the y-down frame
// produced by [Normalize].
func Document(p BezPath, width, height, scale float64, opts SVGOptions) (string, error) {
	if scale <= 0 {
		return "", fmt.Errorf("scale %g: %w", scale, ErrInvalidParameter)
	}
	if scale != 1 {
		p = p.Transform(Scale(scale, scale))
	}
	w, h := width*scale, height*scale
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g"><path d="%s" fill="black"/></svg>`,
		w, h, w, h, p.SVG(opts)), nil
}

// ParseSVG parses a string of absolute SVG path commands, the dialect emitted by
// [SVG]: the commands M, L, Q and C with comma- or whitespace-separated decimal
// coordinates, and Z. Relative commands, arcs, shorthand curves and scientific
// notation are rejected with an error wrapping [ErrParse].
func ParseSVG(s string) (BezPath, error) {
	p := svgParser{s: s}
	return p.parse()
}

type svgParser struct {
	s string
	i int
}

func isPathSep(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

func (p *svgParser) skipSep() {
	for p.i < len(p.s) && isPathSep(p.s[p.i]) {
		p.i++
	}
}

func (p *svgParser) number() (float64, error) {
	p.skipSep()
	start := p.i
	if p.i < len(p.s) && (p.s[p.i] == '+' || p.s[p.i] == '-') {
		p.i++
	}
	digits := false
	for p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
		p.i++
		digits = true
	}
	if p.i < len(p.s) && p.s[p.i] == '.' {
		p.i++
		for p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
			p.i++
			digits = true
		}
	}
	if !digits {
		return 0, fmt.Errorf("expected number at offset %d: %w", start, ErrParse)
	}
	return strconv.ParseFloat(p.s[start:p.i], 64)
}

func (p *svgParser) point() (Point, error) {
	x, err := p.number()
	if err != nil {
		return Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return Point{}, err
	}
	return Pt(x, y), nil
}

func (p *svgParser) parse() (BezPath, error) {
	var path BezPath
	started := false
	for {
		p.skipSep()
		if p.i >= len(p.s) {
			break
		}
		cmd := p.s[p.i]
		off := p.i
		p.i++
		if cmd != 'M' && !started {
			return nil, fmt.Errorf("command %q before initial M at offset %d: %w", cmd, off, ErrParse)
		}
		switch cmd {
		case 'M':
			pt, err := p.point()
			if err != nil {
				return nil, err
			}
			path.MoveTo(pt)
			started = true
		case 'L':
			pt, err := p.point()
			if err != nil {
				return nil, err
			}
			path.LineTo(pt)
		case 'Q':
			p1, err := p.point()
			if err != nil {
				return nil, err
			}
			p2, err := p.point()
			if err != nil {
				return nil, err
			}
			path.QuadTo(p1, p2)
		case 'C':
			p1, err := p.point()
			if err != nil {
				return nil, err
			}
			p2, err := p.point()
			if err != nil {
				return nil, err
			}
			p3, err := p.point()
			if err != nil {
				return nil, err
			}
			path.CubicTo(p1, p2, p3)
		case 'Z':
			path.ClosePath()
		default:
			return nil, fmt.Errorf("unsupported command %q at offset %d: %w", cmd, off, ErrParse)
		}
	}
	if !started {
		return nil, fmt.Errorf("empty path: %w", ErrParse)
	}
	return path, nil
}
