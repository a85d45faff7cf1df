// File: probe.go
// Role: One-time detection of optional host queries.
// Policy:
//   - Each capability is accepted only when the interface is implemented AND
//     a trial call returns without error or panic.
//   - Temporary parameters and animation sets created for trials are removed
//     on every exit path.
//   - The insert trial always runs on a fresh temporary parameter, even when
//     an inspectable parameter exists.
//   - The result is computed once per Probe and shared by every resolver
//     holding it.

package dialvalue

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/GeoffIX/PoserLib/host"
)

// tempPrefix starts the name of every temporary probe object.
const tempPrefix = "RemoveMe-"

// Probe lazily discovers the capabilities of a scene's host.
type Probe struct {
	scene host.Scene
	opts  Options
	once  sync.Once
	caps  Capabilities
}

// NewProbe returns a probe for s. Nothing is queried until Capabilities is
// first called. WithCapabilities pins the result and no trial calls are made.
func NewProbe(s host.Scene, opts ...Option) *Probe {
	return &Probe{scene: s, opts: buildOptions(opts)}
}

// Scene returns the probed scene.
func (p *Probe) Scene() host.Scene { return p.scene }

// Capabilities returns the detected capability set, probing on first use.
func (p *Probe) Capabilities() Capabilities {
	p.once.Do(func() {
		if p.opts.Capabilities != nil {
			p.caps = *p.opts.Capabilities
			return
		}
		p.caps = probe(p.scene, p.opts.Logger)
	})

	return p.caps
}

// ProbeCapabilities probes s once and returns the result.
func ProbeCapabilities(s host.Scene, opts ...Option) Capabilities {
	return NewProbe(s, opts...).Capabilities()
}

// trial runs fn, turning a panic into failure.
func trial(fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	return fn() == nil
}

func probe(s host.Scene, log *slog.Logger) (caps Capabilities) {
	if s == nil {
		return caps
	}
	actors := s.Actors()
	if len(actors) == 0 {
		log.Debug("capability probe: empty scene")
		return caps
	}

	var cleanup []func()
	defer func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}()

	parm, actor := firstParameter(actors)
	if parm == nil {
		actor = actors[0]
		tmp, err := temporaryParameter(actor, &cleanup)
		if err != nil {
			log.Debug("capability probe: no parameter to inspect", slog.Any("error", err))
			return caps
		}
		parm = tmp
	}
	frame := s.Frame()

	if q, ok := parm.(host.UnaffectedValuer); ok {
		caps.UnaffectedValue = trial(func() error { _, err := q.UnaffectedValue(); return err })
	}
	if q, ok := parm.(host.FrameFlagger); ok {
		caps.FrameFlags = trial(func() error {
			if _, err := q.ConstantAtFrame(frame); err != nil {
				return err
			}
			_, err := q.SplineBreakAtFrame(frame)
			return err
		})
	}
	if q, ok := parm.(host.KeyFrameChecker); ok {
		caps.HasKeyAtFrame = trial(func() error { _, err := q.HasKeyAtFrame(frame); return err })
	}
	if q, ok := actor.(host.ControlPropChecker); ok {
		caps.ControlProp = trial(func() error { _, err := q.IsControlProp(); return err })
	}
	caps.AnimSetNames = probeAnimSetNames(s, &cleanup)
	caps.InsertValueOperation = probeInsert(actor, parm, &cleanup)

	log.Debug("capability probe",
		slog.Bool("unaffected_value", caps.UnaffectedValue),
		slog.Bool("frame_flags", caps.FrameFlags),
		slog.Bool("has_key_at_frame", caps.HasKeyAtFrame),
		slog.Bool("control_prop", caps.ControlProp),
		slog.Bool("anim_set_names", caps.AnimSetNames),
		slog.Bool("insert_value_operation", caps.InsertValueOperation))

	return caps
}

func firstParameter(actors []host.Actor) (host.Parameter, host.Actor) {
	for _, a := range actors {
		if ps := a.Parameters(); len(ps) > 0 {
			return ps[0], a
		}
	}

	return nil, nil
}

// temporaryParameter creates a uniquely named value parameter on a and
// schedules its removal.
func temporaryParameter(a host.Actor, cleanup *[]func()) (host.Parameter, error) {
	name := tempPrefix + uuid.NewString()
	p, err := a.CreateValueParameter(name)
	if err != nil {
		return nil, fmt.Errorf("dialvalue: CreateValueParameter: %w", err)
	}
	*cleanup = append(*cleanup, func() { _ = a.RemoveValueParameter(name) })

	return p, nil
}

func probeAnimSetNames(s host.Scene, cleanup *[]func()) bool {
	var set host.AnimSet
	if sets := s.AnimSets(); len(sets) > 0 {
		set = sets[0]
	} else if m, ok := s.(host.AnimSetManager); ok {
		name := tempPrefix + uuid.NewString()
		var err error
		if !trial(func() error { set, err = m.CreateAnimSet(name); return err }) {
			return false
		}
		*cleanup = append(*cleanup, func() { _ = m.DeleteAnimSet(name) })
	}
	q, ok := set.(host.AnimSetNamer)
	if !ok {
		return false
	}

	return trial(func() error { _, err := q.Name(); return err })
}

// probeInsert inserts and deletes an operation on a temporary parameter, so
// the inspected parameter's operation list is never touched.
func probeInsert(a host.Actor, src host.Parameter, cleanup *[]func()) bool {
	tmp, err := temporaryParameter(a, cleanup)
	if err != nil {
		return false
	}
	q, ok := tmp.(host.ValueOpInserter)
	if !ok {
		return false
	}

	return trial(func() error {
		if _, err := q.InsertValueOperation(0, host.ValueOpPlus, src); err != nil {
			return err
		}
		return tmp.DeleteValueOperation(0)
	})
}
