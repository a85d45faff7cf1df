package scene

import (
	"fmt"

	"github.com/GeoffIX/PoserLib/codes"
	"github.com/GeoffIX/PoserLib/host"
)

// Actor is a scene object owning parameters.
type Actor struct {
	scene        *Scene
	name         string
	internalName string
	figure       *Figure
	parms        []*Parameter
	typ          ActorType
	controlProp  bool
	geomFile     string
	data         map[string]string
}

var (
	_ host.Actor              = (*Actor)(nil)
	_ host.ActorKind          = (*Actor)(nil)
	_ host.ControlPropChecker = (*Actor)(nil)
	_ host.CustomDataStore    = (*Actor)(nil)
)

func (a *Actor) Name() string         { return a.name }
func (a *Actor) InternalName() string { return a.internalName }

// SetInternalName overrides the internal name.
func (a *Actor) SetInternalName(name string) { a.internalName = name }

// Figure implements host.Actor.
func (a *Actor) Figure() host.Figure {
	if a.figure == nil {
		return nil
	}

	return a.figure
}

// Parameters implements host.Actor.
func (a *Actor) Parameters() []host.Parameter {
	out := make([]host.Parameter, len(a.parms))
	for i, p := range a.parms {
		out[i] = p
	}

	return out
}

// Parameter implements host.Actor.
func (a *Actor) Parameter(name string) (host.Parameter, error) {
	p, err := a.lookup(name)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (a *Actor) lookup(name string) (*Parameter, error) {
	for _, p := range a.parms {
		if p.name == name || p.internalName == name {
			return p, nil
		}
	}

	return nil, fmt.Errorf("scene: %s.Parameter %q: %w", a.name, name, host.ErrNoSuchParameter)
}

// ParameterByCode implements host.Actor.
func (a *Actor) ParameterByCode(code int) (host.Parameter, error) {
	for _, p := range a.parms {
		if p.typeCode == code {
			return p, nil
		}
	}

	return nil, fmt.Errorf("scene: %s.ParameterByCode %d: %w", a.name, code, host.ErrNoSuchParameter)
}

// AddParameter appends a parameter with a static value and returns it.
func (a *Actor) AddParameter(name string, value float64) *Parameter {
	p := &Parameter{actor: a, name: name, internalName: name, static: value}
	a.parms = append(a.parms, p)

	return p
}

// CreateValueParameter implements host.Actor.
func (a *Actor) CreateValueParameter(name string) (host.Parameter, error) {
	if a.scene.crashed {
		return nil, ErrHostCrashed
	}
	if _, err := a.lookup(name); err == nil {
		return nil, fmt.Errorf("scene: %s.CreateValueParameter %q: %w", a.name, name, ErrDuplicateName)
	}
	p := a.AddParameter(name, 0)
	p.typeCode = codes.ParmValue

	return p, nil
}

// RemoveValueParameter implements host.Actor.
func (a *Actor) RemoveValueParameter(name string) error {
	if a.scene.crashed {
		return ErrHostCrashed
	}
	for i, p := range a.parms {
		if p.name == name || p.internalName == name {
			a.parms = append(a.parms[:i], a.parms[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("scene: %s.RemoveValueParameter %q: %w", a.name, name, host.ErrNoSuchParameter)
}

// Type returns the actor classification.
func (a *Actor) Type() ActorType { return a.typ }

// SetType sets the actor classification.
func (a *Actor) SetType(t ActorType) { a.typ = t }

// SetControlProp marks the actor as a control prop.
func (a *Actor) SetControlProp(v bool) { a.controlProp = v }

// SetGeomFileName sets the geometry file path.
func (a *Actor) SetGeomFileName(path string) { a.geomFile = path }

// IsControlProp implements host.ControlPropChecker.
func (a *Actor) IsControlProp() (bool, error) {
	if a.scene.opts.NoControlProp {
		return false, host.ErrUnsupported
	}

	return a.controlProp, nil
}

func (a *Actor) IsBodyPart() bool { return a.typ == BodyPart }
func (a *Actor) IsCamera() bool   { return a.typ == Camera }
func (a *Actor) IsLight() bool    { return a.typ == Light }

// IsProp reports true for plain props and every prop subtype.
func (a *Actor) IsProp() bool {
	switch a.typ {
	case Prop, Base, Deformer, HairProp, Zone:
		return true
	default:
		return false
	}
}

func (a *Actor) IsBase() bool         { return a.typ == Base }
func (a *Actor) IsDeformer() bool     { return a.typ == Deformer }
func (a *Actor) IsHairProp() bool     { return a.typ == HairProp }
func (a *Actor) IsZone() bool         { return a.typ == Zone }
func (a *Actor) GeomFileName() string { return a.geomFile }

// CustomData implements host.CustomDataStore.
func (a *Actor) CustomData(key string) (string, bool) {
	v, ok := a.data[key]
	return v, ok
}

// SetCustomData implements host.CustomDataStore.
func (a *Actor) SetCustomData(key, value string, _, _ bool) error {
	if a.scene.crashed {
		return ErrHostCrashed
	}
	a.data[key] = value

	return nil
}
