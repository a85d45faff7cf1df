package scene

import (
	"fmt"
	"sort"

	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/interp"
)

// ValueOp is a dependency operation attached to a parameter.
type ValueOp struct {
	owner    *Parameter
	typ      host.ValueOpType
	source   *Parameter
	delta    float64
	keys     []host.ControlPoint
	callback func(v float64) float64
}

var _ host.ValueOp = (*ValueOp)(nil)

// Type implements host.ValueOp.
func (op *ValueOp) Type() host.ValueOpType { return op.typ }

// SourceParameter implements host.ValueOp. Unresolved operations return nil.
func (op *ValueOp) SourceParameter() host.Parameter {
	if op.source == nil {
		return nil
	}

	return op.source
}

// Delta implements host.ValueOp.
func (op *ValueOp) Delta() float64 { return op.delta }

// SetDelta implements host.ValueOp.
func (op *ValueOp) SetDelta(delta float64) error {
	s := op.owner.actor.scene
	s.calls.Configure++
	if s.crashed {
		return ErrHostCrashed
	}
	op.delta = delta

	return nil
}

// NumKeys implements host.ValueOp.
func (op *ValueOp) NumKeys() int { return len(op.keys) }

// GetKey implements host.ValueOp.
func (op *ValueOp) GetKey(i int) (float64, float64, error) {
	if i < 0 || i >= len(op.keys) {
		return 0, 0, fmt.Errorf("scene: GetKey %d of %d: %w", i, len(op.keys), host.ErrIndexOutOfRange)
	}

	return op.keys[i].Key, op.keys[i].Value, nil
}

// InsertKey implements host.ValueOp. Points stay sorted by key; inserting an
// existing key replaces its value.
func (op *ValueOp) InsertKey(key, value float64) error {
	s := op.owner.actor.scene
	s.calls.Configure++
	if s.crashed {
		return ErrHostCrashed
	}
	op.insertKey(key, value)

	return nil
}

func (op *ValueOp) insertKey(key, value float64) {
	i := sort.Search(len(op.keys), func(i int) bool { return op.keys[i].Key >= key })
	if i < len(op.keys) && op.keys[i].Key == key {
		op.keys[i].Value = value
		return
	}
	op.keys = append(op.keys, host.ControlPoint{})
	copy(op.keys[i+1:], op.keys[i:])
	op.keys[i] = host.ControlPoint{Key: key, Value: value}
}

// ControlPoints returns a copy of the control points.
func (op *ValueOp) ControlPoints() []host.ControlPoint {
	out := make([]host.ControlPoint, len(op.keys))
	copy(out, op.keys)

	return out
}

// apply folds this operation into v given the source value s.
func (op *ValueOp) apply(v, s float64) float64 {
	switch op.typ {
	case host.ValueOpDeltaAdd:
		return v + op.delta*s
	case host.ValueOpKey:
		return v + interp.Curve(op.keys, s)
	case host.ValueOpPlus:
		return v + s
	case host.ValueOpMinus:
		return v - s
	case host.ValueOpTimes:
		return v * s
	case host.ValueOpDivideBy:
		if s == 0 {
			return v
		}
		return v / s
	case host.ValueOpDivideInto:
		if v == 0 {
			return v
		}
		return s / v
	default:
		return v
	}
}
