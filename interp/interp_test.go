package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/interp"
)

const eps = 1e-9

func pts(kv ...float64) []host.ControlPoint {
	out := make([]host.ControlPoint, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, host.ControlPoint{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestKindFor(t *testing.T) {
	cases := []struct {
		n    int
		want interp.Kind
	}{
		{0, interp.Zero},
		{1, interp.Constant},
		{2, interp.Linear},
		{3, interp.Quadratic},
		{4, interp.Cubic},
		{12, interp.Cubic},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, interp.KindFor(tc.n), "n=%d", tc.n)
	}
	assert.Equal(t, "quadratic", interp.Quadratic.String())
}

func TestEstimate_FollowsKindFor(t *testing.T) {
	// y = x*x sampled at 0, 2, 4, 6.
	parabola := pts(0, 0, 2, 4, 4, 16, 6, 36)
	want := map[interp.Kind]float64{
		interp.Constant:  0,
		interp.Linear:    2,
		interp.Quadratic: 1,
	}
	for n := 1; n <= 4; n++ {
		p := parabola[:n]
		kind := interp.KindFor(n)
		if v, ok := want[kind]; ok {
			assert.InDelta(t, v, interp.Estimate(p, 1), eps, "kind=%s", kind)
		}
		if kind != interp.Quadratic {
			assert.InDelta(t, interp.Curve(p, 1), interp.Estimate(p, 1), eps, "kind=%s", kind)
		}
	}

	// Three points collapsing to two distinct keys interpolate linearly.
	assert.InDelta(t, 2.0, interp.Estimate(pts(0, 0, 2, 1, 2, 4), 1), eps)
}

func TestEstimate_Empty(t *testing.T) {
	assert.Equal(t, 0.0, interp.Estimate(nil, 3))
	assert.Equal(t, 0.0, interp.Curve(nil, 3))
}

func TestEstimate_SinglePointIsConstant(t *testing.T) {
	p := pts(2, 7)
	for _, x := range []float64{-10, 2, 99} {
		assert.Equal(t, 7.0, interp.Estimate(p, x))
	}
}

func TestEstimate_Linear(t *testing.T) {
	p := pts(0, 0, 10, 20)
	assert.InDelta(t, 10.0, interp.Estimate(p, 5), eps)
	assert.InDelta(t, 0.0, interp.Estimate(p, -3), eps)  // clamped low
	assert.InDelta(t, 20.0, interp.Estimate(p, 42), eps) // clamped high
}

// Three points: Estimate fits a quadratic while Curve uses a natural cubic.
// The two deliberately disagree between knots.
func TestEstimate_ThreePointsDivergeFromCurve(t *testing.T) {
	p := pts(0, 0, 1, 1, 2, 4)

	assert.InDelta(t, 2.25, interp.Estimate(p, 1.5), eps)
	assert.InDelta(t, 2.3125, interp.Curve(p, 1.5), eps)

	// Both interpolate the knots exactly.
	for _, cp := range p {
		assert.InDelta(t, cp.Value, interp.Estimate(p, cp.Key), eps)
		assert.InDelta(t, cp.Value, interp.Curve(p, cp.Key), eps)
	}
}

func TestCurve_FourCollinearPointsStayLinear(t *testing.T) {
	p := pts(0, 0, 1, 2, 2, 4, 3, 6)
	assert.InDelta(t, 5.0, interp.Curve(p, 2.5), eps)
	assert.InDelta(t, 5.0, interp.Estimate(p, 2.5), eps)
	assert.InDelta(t, 1.0, interp.Curve(p, 0.5), eps)
}

func TestEstimate_UnsortedInputIsNotModified(t *testing.T) {
	p := pts(10, 20, 0, 0)
	assert.InDelta(t, 10.0, interp.Estimate(p, 5), eps)
	assert.Equal(t, pts(10, 20, 0, 0), p)
}

func TestEstimate_DuplicateKeyLaterWins(t *testing.T) {
	p := pts(0, 0, 10, 5, 10, 20)
	assert.InDelta(t, 10.0, interp.Estimate(p, 5), eps)
}

func TestLerpAndHermite(t *testing.T) {
	assert.Equal(t, 5.0, interp.Lerp(0, 10, 0.5))
	assert.Equal(t, 3.0, interp.Hermite(3, 9, 1, -1, 0))
	assert.Equal(t, 9.0, interp.Hermite(3, 9, 1, -1, 1))
	assert.InDelta(t, 6.0, interp.Hermite(3, 9, 0, 0, 0.5), eps)
}
