package outline

import (
	"testing"
)

func TestCubicBezEval(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0, 2.0),
		Pt(3.0, 2.0),
		Pt(4.0, 0.0),
	}
	assertNear(t, c.Eval(0), c.P0, epsilon)
	assertNear(t, c.Eval(1), c.P3, epsilon)
	// By symmetry the midpoint is centered horizontally.
	assertNear(t, c.Eval(0.5), Pt(2.0, 1.5), epsilon)
}

func TestCubicBezDifferentiate(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0, 2.0),
		Pt(3.0, 2.0),
		Pt(4.0, 0.0),
	}
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		const delta = 1e-6
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if error := d.Sub(dApprox).Hypot(); error > delta*4 {
			t.Errorf("got difference of %g, want at most %g", error, delta*4)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
		Pt(9.7, 9.3),
	}
	left, right := c.Subdivide()
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, c.Eval(ts*0.5), left.Eval(ts), epsilon)
		assertNear(t, c.Eval(0.5+ts*0.5), right.Eval(ts), epsilon)
	}
}

func TestCubicBezSignedAreaAdditive(t *testing.T) {
	// SignedArea is a line integral, so it is additive under subdivision.
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0, 2.0),
		Pt(3.0, 2.0),
		Pt(4.0, 0.0),
	}
	left, right := c.Subdivide()
	inDelta(t, c.SignedArea(), left.SignedArea()+right.SignedArea(), 1e-12)
}
