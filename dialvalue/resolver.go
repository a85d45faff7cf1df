// File: resolver.go
// Role: Dial value resolution for one frame, a frame range, and a dial
//       animation, choosing the fast or slow path from the probed capabilities.
// Policy:
//   - Fast path: read-only host queries, no operation is touched.
//   - Slow path: one Extract, reads, one Restore, with Restore deferred so it
//     runs on every exit path.
//   - The scene frame is restored by whoever moved it.

package dialvalue

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/GeoffIX/PoserLib/host"
)

// Resolver computes dial values. It is not safe for concurrent use; the
// scene it reads is single-threaded shared state.
type Resolver struct {
	probe *Probe
	opts  Options
}

// New returns a resolver using probe for capability decisions and frame
// switching. A nil probe disables every fast path unless WithCapabilities is
// given, and single-frame ranges are then served by the slow path.
func New(probe *Probe, opts ...Option) *Resolver {
	return &Resolver{probe: probe, opts: buildOptions(opts)}
}

func (r *Resolver) capabilities() Capabilities {
	switch {
	case r.opts.Capabilities != nil:
		return *r.opts.Capabilities
	case r.probe != nil:
		return r.probe.Capabilities()
	default:
		return Capabilities{}
	}
}

// protocolOptions returns the resolver options with the capability set in
// effect pinned, so extract and restore follow the probed result.
func (r *Resolver) protocolOptions() Options {
	o := r.opts
	caps := r.capabilities()
	o.Capabilities = &caps

	return o
}

func (r *Resolver) scene() host.Scene {
	if r.probe == nil {
		return nil
	}

	return r.probe.Scene()
}

// DialValue returns the dial value of p at the active frame. When the value
// cannot be resolved the computed value is returned and the failure is
// logged; use ResolveDialValue to see the error.
func (r *Resolver) DialValue(p host.Parameter) float64 {
	if p == nil {
		return 0
	}
	v, read, err := r.resolve(p)
	if err != nil {
		r.opts.Logger.Warn("dial value unresolved",
			slog.String("parameter", p.InternalName()),
			slog.Any("error", err))
		if !read {
			return p.Value()
		}
	}

	return v
}

// ResolveDialValue is DialValue with the error returned. When only the
// restore step failed, the value read is still returned with the error.
func (r *Resolver) ResolveDialValue(p host.Parameter) (float64, error) {
	if p == nil {
		return 0, ErrNilParameter
	}
	v, _, err := r.resolve(p)

	return v, err
}

// resolve reports whether v was actually read from the host.
func (r *Resolver) resolve(p host.Parameter) (v float64, read bool, err error) {
	if r.capabilities().UnaffectedValue {
		if v, err := unaffected(p); err == nil {
			r.opts.Metrics.resolved("fast")
			return v, true, nil
		}
	}
	if p.NumValueOperations() == 0 {
		r.opts.Metrics.resolved("none")
		return p.Value(), true, nil
	}

	r.opts.Metrics.resolved("slow")
	err = r.extracted(p, func() { v, read = p.Value(), true })

	return v, read, err
}

// extracted runs read with p's operations removed. Restore errors are joined
// to the result.
func (r *Resolver) extracted(p host.Parameter, read func()) (err error) {
	o := r.protocolOptions()
	snap, err := extract(p, o)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := restore(p, snap, o); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()
	read()

	return nil
}

func unaffected(p host.Parameter) (v float64, err error) {
	q, ok := p.(host.UnaffectedValuer)
	if !ok {
		return 0, errCapabilityUnavailable
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", errCapabilityUnavailable, rec)
		}
	}()

	return q.UnaffectedValue()
}

// DialValueRange returns the dial values of p for frames first..last
// inclusive.
func (r *Resolver) DialValueRange(p host.Parameter, first, last int) ([]float64, error) {
	return resolveRange(r, p, first, last,
		func(int) (float64, error) { return unaffected(p) },
		func(frame int) float64 { return p.ValueFrame(frame) })
}

// DialAnimation returns the dial value and keyframe flags of p for frames
// first..last inclusive. Flags the host cannot report are false.
func (r *Resolver) DialAnimation(p host.Parameter, first, last int) ([]KeyFrame, error) {
	caps := r.capabilities()
	return resolveRange(r, p, first, last,
		func(frame int) (KeyFrame, error) {
			v, err := unaffected(p)
			if err != nil {
				return KeyFrame{}, err
			}
			return r.keyFrame(p, frame, v, caps), nil
		},
		func(frame int) KeyFrame { return r.keyFrame(p, frame, p.ValueFrame(frame), caps) })
}

func (r *Resolver) keyFrame(p host.Parameter, frame int, v float64, caps Capabilities) KeyFrame {
	kf := KeyFrame{Frame: frame, Value: v}
	if !r.opts.FrameFlags {
		return kf
	}
	if q, ok := p.(host.FrameFlagger); ok && caps.FrameFlags {
		kf.Constant = flag(q.ConstantAtFrame, frame)
		kf.Linear = flag(q.LinearAtFrame, frame)
		kf.Spline = flag(q.SplineAtFrame, frame)
		kf.SplineBreak = flag(q.SplineBreakAtFrame, frame)
	}
	if q, ok := p.(host.KeyFrameChecker); ok && caps.HasKeyAtFrame {
		kf.HasKey = flag(q.HasKeyAtFrame, frame)
	}

	return kf
}

// flag calls a per-frame query, treating errors and panics as false.
func flag(q func(int) (bool, error), frame int) (b bool) {
	defer func() {
		if rec := recover(); rec != nil {
			b = false
		}
	}()
	v, err := q(frame)

	return err == nil && v
}

// resolveRange validates the range, tries the single-frame fast path, and
// otherwise reads every frame inside one extract/restore bracket.
func resolveRange[T any](r *Resolver, p host.Parameter, first, last int,
	fast func(frame int) (T, error), slow func(frame int) T) ([]T, error) {
	if p == nil {
		return nil, ErrNilParameter
	}
	s := r.scene()
	if first < 0 || last < first || (s != nil && last >= s.NumFrames()) {
		return nil, fmt.Errorf("%w: %d..%d", ErrInvalidFrameRange, first, last)
	}

	if first == last && s != nil && r.capabilities().UnaffectedValue {
		if v, err := atFrame(s, first, fast); err == nil {
			r.opts.Metrics.resolved("fast")
			return []T{v}, nil
		}
	}

	out := make([]T, 0, last-first+1)
	readAll := func() {
		for f := first; f <= last; f++ {
			out = append(out, slow(f))
		}
	}
	if p.NumValueOperations() == 0 {
		r.opts.Metrics.resolved("none")
		readAll()
		return out, nil
	}

	r.opts.Metrics.resolved("slow")
	if err := r.extracted(p, readAll); err != nil {
		if len(out) == 0 {
			return nil, err
		}
		return out, err
	}

	return out, nil
}

// atFrame evaluates fn with the scene moved to frame, moving it back before
// returning.
func atFrame[T any](s host.Scene, frame int, fn func(int) (T, error)) (v T, err error) {
	prior := s.Frame()
	if prior != frame {
		if err := s.SetFrame(frame); err != nil {
			return v, err
		}
		defer func() {
			if rerr := s.SetFrame(prior); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}

	return fn(frame)
}
