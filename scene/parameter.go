package scene

import (
	"fmt"

	"github.com/GeoffIX/PoserLib/host"
)

// Parameter is an animation channel of an actor.
type Parameter struct {
	actor        *Actor
	name         string
	internalName string
	typeCode     int
	hidden       bool
	static       float64
	track        Track
	forceLimits  bool
	min, max     float64
	ops          []*ValueOp
}

var (
	_ host.Parameter        = (*Parameter)(nil)
	_ host.UnaffectedValuer = (*Parameter)(nil)
	_ host.FrameFlagger     = (*Parameter)(nil)
	_ host.KeyFrameChecker  = (*Parameter)(nil)
	_ host.ValueOpInserter  = (*Parameter)(nil)
)

func (p *Parameter) Name() string         { return p.name }
func (p *Parameter) InternalName() string { return p.internalName }
func (p *Parameter) TypeCode() int        { return p.typeCode }
func (p *Parameter) Hidden() bool         { return p.hidden }
func (p *Parameter) ForceLimits() bool    { return p.forceLimits }
func (p *Parameter) MinValue() float64    { return p.min }
func (p *Parameter) MaxValue() float64    { return p.max }

// Actor implements host.Parameter.
func (p *Parameter) Actor() host.Actor { return p.actor }

// Owner returns the owning actor as its concrete type.
func (p *Parameter) Owner() *Actor { return p.actor }

// SetInternalName overrides the internal name.
func (p *Parameter) SetInternalName(name string) { p.internalName = name }

// SetTypeCode sets the parameter type code.
func (p *Parameter) SetTypeCode(code int) { p.typeCode = code }

// SetHidden hides or shows the parameter.
func (p *Parameter) SetHidden(v bool) { p.hidden = v }

// SetLimits sets the value limits and whether they are enforced.
func (p *Parameter) SetLimits(min, max float64, force bool) {
	p.min, p.max, p.forceLimits = min, max, force
}

// SetValue sets the dial at the active frame: a key when the track is keyed,
// the static value otherwise.
func (p *Parameter) SetValue(v float64) {
	if p.track.Len() == 0 {
		p.static = v
		return
	}
	frame := p.actor.scene.frame
	mode, brk := p.track.Mode(frame)
	p.track.Set(Key{Frame: frame, Value: v, Interp: mode, Break: brk})
}

// SetKey sets a keyframe.
func (p *Parameter) SetKey(frame int, v float64, mode host.Interpolation) {
	_, brk := p.track.Mode(frame)
	p.track.Set(Key{Frame: frame, Value: v, Interp: mode, Break: brk})
}

// SetBreak sets the spline break flag of the key at frame, creating the key
// from the current track value if needed.
func (p *Parameter) SetBreak(frame int, brk bool) {
	mode, _ := p.track.Mode(frame)
	v := p.track.At(frame, p.static)
	for _, k := range p.track.keys {
		if k.Frame == frame {
			mode, v = k.Interp, k.Value
		}
	}
	p.track.Set(Key{Frame: frame, Value: v, Interp: mode, Break: brk})
}

// Track exposes the keyframe track.
func (p *Parameter) Track() *Track { return &p.track }

// Value implements host.Parameter.
func (p *Parameter) Value() float64 { return p.ValueFrame(p.actor.scene.frame) }

// ValueFrame implements host.Parameter.
func (p *Parameter) ValueFrame(frame int) float64 { return p.eval(frame, true, nil) }

// DialFrame returns the track-only value at frame, with callbacks and limits
// applied. This is the value dial-value recovery is expected to produce.
func (p *Parameter) DialFrame(frame int) float64 { return p.eval(frame, false, nil) }

// UnaffectedValue implements host.UnaffectedValuer.
func (p *Parameter) UnaffectedValue() (float64, error) {
	s := p.actor.scene
	if s.opts.NoUnaffectedValue {
		return 0, host.ErrUnsupported
	}
	s.calls.Unaffect++

	return p.eval(s.frame, false, nil), nil
}

// eval computes the value at frame. A parameter reached again while it is
// being evaluated contributes its track value only.
func (p *Parameter) eval(frame int, withOps bool, visiting map[*Parameter]bool) float64 {
	v := p.track.At(frame, p.static)
	if visiting == nil {
		visiting = map[*Parameter]bool{}
	}
	if visiting[p] {
		return p.clamp(v)
	}
	visiting[p] = true
	defer delete(visiting, p)

	for _, op := range p.ops {
		if op.typ == host.ValueOpCallback {
			if op.callback != nil {
				v = op.callback(v)
			}
			continue
		}
		if !withOps || op.source == nil {
			continue
		}
		v = op.apply(v, op.source.eval(frame, true, visiting))
	}

	return p.clamp(v)
}

func (p *Parameter) clamp(v float64) float64 {
	if !p.forceLimits {
		return v
	}
	if v < p.min {
		return p.min
	}
	if v > p.max {
		return p.max
	}

	return v
}

// ConstantAtFrame implements host.FrameFlagger.
func (p *Parameter) ConstantAtFrame(frame int) (bool, error) {
	return p.modeIs(frame, host.InterpConstant)
}

// LinearAtFrame implements host.FrameFlagger.
func (p *Parameter) LinearAtFrame(frame int) (bool, error) {
	return p.modeIs(frame, host.InterpLinear)
}

// SplineAtFrame implements host.FrameFlagger.
func (p *Parameter) SplineAtFrame(frame int) (bool, error) {
	return p.modeIs(frame, host.InterpSpline)
}

// SplineBreakAtFrame implements host.FrameFlagger.
func (p *Parameter) SplineBreakAtFrame(frame int) (bool, error) {
	if p.actor.scene.opts.NoFrameFlags {
		return false, host.ErrUnsupported
	}
	_, brk := p.track.Mode(frame)

	return brk, nil
}

func (p *Parameter) modeIs(frame int, want host.Interpolation) (bool, error) {
	if p.actor.scene.opts.NoFrameFlags {
		return false, host.ErrUnsupported
	}
	mode, _ := p.track.Mode(frame)

	return mode == want, nil
}

// HasKeyAtFrame implements host.KeyFrameChecker.
func (p *Parameter) HasKeyAtFrame(frame int) (bool, error) {
	if p.actor.scene.opts.NoHasKeyAtFrame {
		return false, host.ErrUnsupported
	}

	return p.track.Has(frame), nil
}

// NumValueOperations implements host.Parameter.
func (p *Parameter) NumValueOperations() int { return len(p.ops) }

// ValueOperations implements host.Parameter.
func (p *Parameter) ValueOperations() []host.ValueOp {
	out := make([]host.ValueOp, len(p.ops))
	for i, op := range p.ops {
		out[i] = op
	}

	return out
}

// Operations returns the attached operations as their concrete type.
func (p *Parameter) Operations() []*ValueOp {
	out := make([]*ValueOp, len(p.ops))
	copy(out, p.ops)

	return out
}

// AddValueOperation implements host.Parameter.
func (p *Parameter) AddValueOperation(t host.ValueOpType, source host.Parameter) (host.ValueOp, error) {
	p.actor.scene.calls.Add++
	op, err := p.newOp(t, source)
	if err != nil {
		return nil, fmt.Errorf("scene: %s.AddValueOperation: %w", p.name, err)
	}
	p.ops = append(p.ops, op)

	return op, nil
}

// InsertValueOperation implements host.ValueOpInserter. Indexes past the end
// append.
func (p *Parameter) InsertValueOperation(index int, t host.ValueOpType, source host.Parameter) (host.ValueOp, error) {
	s := p.actor.scene
	if s.opts.NoInsert {
		return nil, host.ErrUnsupported
	}
	s.calls.Insert++
	if index < 0 {
		return nil, fmt.Errorf("scene: %s.InsertValueOperation %d: %w", p.name, index, host.ErrIndexOutOfRange)
	}
	op, err := p.newOp(t, source)
	if err != nil {
		return nil, fmt.Errorf("scene: %s.InsertValueOperation: %w", p.name, err)
	}
	if index >= len(p.ops) {
		p.ops = append(p.ops, op)
		return op, nil
	}
	p.ops = append(p.ops, nil)
	copy(p.ops[index+1:], p.ops[index:])
	p.ops[index] = op

	return op, nil
}

func (p *Parameter) newOp(t host.ValueOpType, source host.Parameter) (*ValueOp, error) {
	s := p.actor.scene
	if s.crashed {
		return nil, ErrHostCrashed
	}
	if s.opts.AddFault != nil {
		if err := s.opts.AddFault(p.name, t); err != nil {
			return nil, err
		}
	}
	if t.IsCallback() {
		return nil, ErrCallbackAdd
	}
	if !t.Valid() {
		return nil, fmt.Errorf("scene: %v: %w", t, host.ErrUnsupported)
	}
	if source == nil {
		return nil, ErrNilSource
	}
	src, ok := source.(*Parameter)
	if !ok || src == nil {
		return nil, ErrNilSource
	}
	if src.actor.scene != s {
		return nil, ErrForeignParameter
	}

	return &ValueOp{owner: p, typ: t, source: src}, nil
}

// DeleteValueOperation implements host.Parameter. Deleting an unresolved
// operation crashes the scene.
func (p *Parameter) DeleteValueOperation(index int) error {
	s := p.actor.scene
	s.calls.Delete++
	if s.crashed {
		return ErrHostCrashed
	}
	if index < 0 || index >= len(p.ops) {
		return fmt.Errorf("scene: %s.DeleteValueOperation %d of %d: %w", p.name, index, len(p.ops), host.ErrIndexOutOfRange)
	}
	if s.opts.DeleteFault != nil {
		if err := s.opts.DeleteFault(p.name, index); err != nil {
			return err
		}
	}
	if p.ops[index].source == nil && !p.ops[index].typ.IsCallback() {
		s.crashed = true
		return ErrHostCrashed
	}
	p.ops = append(p.ops[:index], p.ops[index+1:]...)

	return nil
}

// AddUnresolvedOperation attaches an operation whose source never resolved,
// as a scene file with a dangling forward reference would.
func (p *Parameter) AddUnresolvedOperation(t host.ValueOpType) *ValueOp {
	op := &ValueOp{owner: p, typ: t}
	p.ops = append(p.ops, op)

	return op
}

// AddCallback attaches a callback operation. A nil fn leaves the value
// unchanged.
func (p *Parameter) AddCallback(fn func(v float64) float64) *ValueOp {
	op := &ValueOp{owner: p, typ: host.ValueOpCallback, callback: fn}
	p.ops = append(p.ops, op)

	return op
}

// Attach adds a configured operation without counting a host call. Keyed
// operations receive points, delta-add operations receive delta.
func (p *Parameter) Attach(t host.ValueOpType, source *Parameter, delta float64, points ...host.ControlPoint) *ValueOp {
	op := &ValueOp{owner: p, typ: t, source: source, delta: delta}
	for _, cp := range points {
		op.insertKey(cp.Key, cp.Value)
	}
	p.ops = append(p.ops, op)

	return op
}
