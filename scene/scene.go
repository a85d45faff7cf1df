package scene

import (
	"fmt"

	"github.com/GeoffIX/PoserLib/host"
)

// Scene is the in-memory host document.
type Scene struct {
	opts     Options
	frame    int
	figures  []*Figure
	actors   []*Actor
	animSets []*AnimSet
	calls    Calls
	crashed  bool
}

var (
	_ host.Scene          = (*Scene)(nil)
	_ host.AnimSetManager = (*Scene)(nil)
)

// New creates an empty scene.
func New(opts ...Option) *Scene {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Frames < 1 {
		o.Frames = 1
	}

	return &Scene{opts: o}
}

// Frame implements host.Scene.
func (s *Scene) Frame() int { return s.frame }

// SetFrame implements host.Scene.
func (s *Scene) SetFrame(frame int) error {
	s.calls.SetFrame++
	if frame < 0 || frame >= s.opts.Frames {
		return fmt.Errorf("scene: SetFrame %d of %d: %w", frame, s.opts.Frames, host.ErrIndexOutOfRange)
	}
	s.frame = frame

	return nil
}

// NumFrames implements host.Scene.
func (s *Scene) NumFrames() int { return s.opts.Frames }

// SetNumFrames changes the animation length, pulling the active frame back
// into range.
func (s *Scene) SetNumFrames(n int) {
	if n < 1 {
		n = 1
	}
	s.opts.Frames = n
	if s.frame >= n {
		s.frame = n - 1
	}
}

// Actors implements host.Scene.
func (s *Scene) Actors() []host.Actor {
	out := make([]host.Actor, len(s.actors))
	for i, a := range s.actors {
		out[i] = a
	}

	return out
}

// Figures implements host.Scene.
func (s *Scene) Figures() []host.Figure {
	out := make([]host.Figure, len(s.figures))
	for i, f := range s.figures {
		out[i] = f
	}

	return out
}

// AnimSets implements host.Scene.
func (s *Scene) AnimSets() []host.AnimSet {
	out := make([]host.AnimSet, len(s.animSets))
	for i, a := range s.animSets {
		out[i] = a
	}

	return out
}

// AnimSet implements host.Scene.
func (s *Scene) AnimSet(name string) (host.AnimSet, error) {
	for _, a := range s.animSets {
		if a.name == name {
			return a, nil
		}
	}

	return nil, fmt.Errorf("scene: AnimSet %q: %w", name, host.ErrNoSuchAnimSet)
}

// CreateAnimSet implements host.AnimSetManager. The new set carries a Name
// attribute.
func (s *Scene) CreateAnimSet(name string) (host.AnimSet, error) {
	if s.crashed {
		return nil, ErrHostCrashed
	}
	for _, a := range s.animSets {
		if a.name == name {
			return nil, fmt.Errorf("scene: CreateAnimSet %q: %w", name, ErrDuplicateName)
		}
	}
	a := &AnimSet{scene: s, name: name}
	a.AddAttribute("Name", name)
	s.animSets = append(s.animSets, a)

	return a, nil
}

// DeleteAnimSet implements host.AnimSetManager.
func (s *Scene) DeleteAnimSet(name string) error {
	if s.crashed {
		return ErrHostCrashed
	}
	for i, a := range s.animSets {
		if a.name == name {
			s.animSets = append(s.animSets[:i], s.animSets[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("scene: DeleteAnimSet %q: %w", name, host.ErrNoSuchAnimSet)
}

// AddFigure appends a figure. The internal name defaults to the name.
func (s *Scene) AddFigure(name string) *Figure {
	f := &Figure{scene: s, name: name, internalName: name, data: map[string]string{}}
	s.figures = append(s.figures, f)

	return f
}

// AddActor appends an actor, optionally owned by fig.
func (s *Scene) AddActor(name string, fig *Figure) *Actor {
	a := &Actor{scene: s, name: name, internalName: name, figure: fig, data: map[string]string{}}
	if fig != nil {
		a.typ = BodyPart
		fig.actors = append(fig.actors, a)
	}
	s.actors = append(s.actors, a)

	return a
}

// Figure returns the first figure with the given name, or nil.
func (s *Scene) Figure(name string) *Figure {
	for _, f := range s.figures {
		if f.name == name || f.internalName == name {
			return f
		}
	}

	return nil
}

// Actor returns the first actor with the given name, or nil.
func (s *Scene) Actor(name string) *Actor {
	for _, a := range s.actors {
		if a.name == name || a.internalName == name {
			return a
		}
	}

	return nil
}

// Lookup finds a parameter by actor and parameter name.
func (s *Scene) Lookup(actor, parm string) (*Parameter, error) {
	a := s.Actor(actor)
	if a == nil {
		return nil, fmt.Errorf("scene: Lookup %s/%s: no such actor: %w", actor, parm, host.ErrNoSuchParameter)
	}

	return a.lookup(parm)
}

// Calls returns the primitive call counters.
func (s *Scene) Calls() Calls { return s.calls }

// ResetCalls zeroes the call counters.
func (s *Scene) ResetCalls() { s.calls = Calls{} }

// Crashed reports whether a corrupt operation was ever deleted.
func (s *Scene) Crashed() bool { return s.crashed }
