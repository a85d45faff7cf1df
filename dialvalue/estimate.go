// File: estimate.go
// Role: Read-only approximation of a dial value.
// Policy:
//   - Never mutates the parameter or its operations.
//   - Falls back to the computed value when an operation cannot be inverted.

package dialvalue

import (
	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/interp"
)

// Estimate approximates the dial value of p without touching its operations.
// It starts from the computed value and undoes each operation in reverse
// order using the sources' current values. Callbacks and sourceless
// operations are skipped. When an operation cannot be inverted (times with a
// zero source, divide-into with a zero value) the computed value is returned.
//
// Exact for chains of delta-add and combinator operations with no clamping.
// Keyed operations with three control points are inverted with a quadratic
// through the points, which differs from the host's spline.
func Estimate(p host.Parameter, opts ...Option) float64 {
	if p == nil {
		return 0
	}
	o := buildOptions(opts)
	computed := p.Value()
	v := computed

	ops := p.ValueOperations()
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		t := op.Type()
		if t.IsCallback() {
			continue
		}
		src := op.SourceParameter()
		if src == nil {
			continue
		}
		s := src.Value()

		switch t {
		case host.ValueOpDeltaAdd:
			v -= op.Delta() * s
		case host.ValueOpKey:
			pts, ok := controlPoints(op)
			if !ok {
				continue
			}
			v -= interp.Estimate(pts, s)
		case host.ValueOpPlus:
			v -= s
		case host.ValueOpMinus:
			v += s
		case host.ValueOpTimes:
			if s == 0 {
				return computed
			}
			v /= s
		case host.ValueOpDivideBy:
			if s != 0 {
				v *= s
			}
		case host.ValueOpDivideInto:
			if v == 0 {
				return computed
			}
			v = s / v
		}
		if o.LimitEachStep {
			v = applyLimits(p, v)
		}
	}

	return applyLimits(p, v)
}

func controlPoints(op host.ValueOp) ([]host.ControlPoint, bool) {
	n := op.NumKeys()
	if n == 0 {
		return nil, false
	}
	pts := make([]host.ControlPoint, 0, n)
	for i := 0; i < n; i++ {
		k, val, err := op.GetKey(i)
		if err != nil {
			return nil, false
		}
		pts = append(pts, host.ControlPoint{Key: k, Value: val})
	}

	return pts, true
}

func applyLimits(p host.Parameter, v float64) float64 {
	if !p.ForceLimits() {
		return v
	}
	if v < p.MinValue() {
		return p.MinValue()
	}
	if v > p.MaxValue() {
		return p.MaxValue()
	}

	return v
}
