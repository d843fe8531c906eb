package outline

// Simpson approximates the integral of f over [0, 1] using composite Simpson's rule
// with n subintervals. Simpson's rule requires an even number of subintervals, so odd
// values of n are bumped to n+1, and values below 2 are coerced to 2.
//
// The rule is exact for polynomials up to degree three, which makes it exact for the
// area integrand of line segments and very accurate for Bézier segments at modest n.
func Simpson(f func(t float64) float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	if n%2 == 1 {
		n++
	}

	h := 1.0 / float64(n)
	sum := f(0) + f(1)
	for i := 1; i < n; i++ {
		t := float64(i) * h
		if i%2 == 1 {
			sum += 4 * f(t)
		} else {
			sum += 2 * f(t)
		}
	}
	return sum * h / 3
}
