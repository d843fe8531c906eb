package outline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func inDelta(t *testing.T, want, got, delta float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(want-got) > delta {
		t.Errorf("got %v, want %v (±%g)", got, want, delta)
	}
}
