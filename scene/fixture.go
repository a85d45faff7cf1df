// File: fixture.go
// Role: YAML scene fixtures for tests and the dialdump command.
// Policy:
//   - Operations whose source reference is missing or does not resolve load
//     as unresolved (corrupt) operations, like a scene file with a dangling
//     forward reference.
//   - Callback operations load as identity callbacks and save without source.

package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/GeoffIX/PoserLib/host"
)

// Fixture is the YAML form of a scene.
type Fixture struct {
	Frames   int          `yaml:"frames" validate:"gte=0"`
	Frame    int          `yaml:"frame,omitempty" validate:"gte=0"`
	Figures  []FigureDef  `yaml:"figures,omitempty" validate:"dive"`
	Actors   []ActorDef   `yaml:"actors" validate:"dive"`
	AnimSets []AnimSetDef `yaml:"animSets,omitempty" validate:"dive"`
}

// FigureDef describes a figure.
type FigureDef struct {
	Name       string            `yaml:"name" validate:"required"`
	Internal   string            `yaml:"internal,omitempty"`
	CustomData map[string]string `yaml:"customData,omitempty"`
}

// ActorDef describes an actor and its parameters.
type ActorDef struct {
	Name        string            `yaml:"name" validate:"required"`
	Internal    string            `yaml:"internal,omitempty"`
	Figure      string            `yaml:"figure,omitempty"`
	Type        string            `yaml:"type,omitempty"`
	ControlProp bool              `yaml:"controlProp,omitempty"`
	Geometry    string            `yaml:"geometry,omitempty"`
	CustomData  map[string]string `yaml:"customData,omitempty"`
	Parameters  []ParameterDef    `yaml:"parameters,omitempty" validate:"dive"`
}

// ParameterDef describes a parameter, its track and its operations.
type ParameterDef struct {
	Name        string   `yaml:"name" validate:"required"`
	Internal    string   `yaml:"internal,omitempty"`
	Code        int      `yaml:"code,omitempty"`
	Hidden      bool     `yaml:"hidden,omitempty"`
	Value       float64  `yaml:"value"`
	ForceLimits bool     `yaml:"forceLimits,omitempty"`
	Min         float64  `yaml:"min,omitempty"`
	Max         float64  `yaml:"max,omitempty"`
	Keys        []KeyDef `yaml:"keys,omitempty" validate:"dive"`
	Ops         []OpDef  `yaml:"ops,omitempty" validate:"dive"`
}

// KeyDef describes a keyframe.
type KeyDef struct {
	Frame  int     `yaml:"frame" validate:"gte=0"`
	Value  float64 `yaml:"value"`
	Interp string  `yaml:"interp,omitempty" validate:"omitempty,oneof=spline linear constant"`
	Break  bool    `yaml:"break,omitempty"`
}

// OpDef describes a value operation.
type OpDef struct {
	Type   string              `yaml:"type" validate:"required"`
	Source *Ref                `yaml:"source,omitempty" validate:"-"`
	Delta  float64             `yaml:"delta,omitempty"`
	Points []host.ControlPoint `yaml:"points,omitempty"`
}

// Ref names a parameter by actor and parameter name.
type Ref struct {
	Actor string `yaml:"actor" validate:"required"`
	Parm  string `yaml:"parm" validate:"required"`
}

// AnimSetDef describes an animation set.
type AnimSetDef struct {
	Name       string         `yaml:"name" validate:"required"`
	Attributes []AttributeDef `yaml:"attributes,omitempty" validate:"dive"`
	Parameters []Ref          `yaml:"parameters,omitempty" validate:"dive"`
}

// AttributeDef is one animation set attribute.
type AttributeDef struct {
	Key   string `yaml:"key" validate:"required"`
	Value string `yaml:"value"`
}

// fixtureValidate checks the struct tags of Fixture and its parts.
var fixtureValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every named element of f has a name, frames are not
// negative and interpolation modes are known. Source references of
// operations are not checked; unresolved ones load as corrupt operations.
func Validate(f *Fixture) error {
	if f == nil {
		return fmt.Errorf("scene: Validate: %w", ErrInvalidFixture)
	}
	if err := fixtureValidate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			v := verrs[0]
			return fmt.Errorf("scene: Validate: %s fails %q: %w", v.Namespace(), v.Tag(), ErrInvalidFixture)
		}
		return fmt.Errorf("scene: Validate: %w", err)
	}

	return nil
}

// Build creates a scene from a fixture.
func Build(f *Fixture, opts ...Option) (*Scene, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	if f.Frames > 0 {
		opts = append([]Option{WithFrames(f.Frames)}, opts...)
	}
	s := New(opts...)

	for _, fd := range f.Figures {
		fig := s.AddFigure(fd.Name)
		if fd.Internal != "" {
			fig.SetInternalName(fd.Internal)
		}
		for k, v := range fd.CustomData {
			fig.data[k] = v
		}
	}

	// First pass creates every parameter so that operations may reference
	// parameters declared later in the file.
	for _, ad := range f.Actors {
		var fig *Figure
		if ad.Figure != "" {
			if fig = s.Figure(ad.Figure); fig == nil {
				return nil, fmt.Errorf("scene: Build: actor %q: unknown figure %q", ad.Name, ad.Figure)
			}
		}
		a := s.AddActor(ad.Name, fig)
		if ad.Internal != "" {
			a.SetInternalName(ad.Internal)
		}
		if ad.Type != "" {
			t, err := ParseActorType(ad.Type)
			if err != nil {
				return nil, fmt.Errorf("scene: Build: actor %q: %w", ad.Name, err)
			}
			a.SetType(t)
		}
		a.SetControlProp(ad.ControlProp)
		a.SetGeomFileName(ad.Geometry)
		for k, v := range ad.CustomData {
			a.data[k] = v
		}
		for _, pd := range ad.Parameters {
			p := a.AddParameter(pd.Name, pd.Value)
			if pd.Internal != "" {
				p.SetInternalName(pd.Internal)
			}
			p.SetTypeCode(pd.Code)
			p.SetHidden(pd.Hidden)
			p.SetLimits(pd.Min, pd.Max, pd.ForceLimits)
			for _, kd := range pd.Keys {
				mode, err := host.ParseInterpolation(kd.Interp)
				if err != nil {
					return nil, fmt.Errorf("scene: Build: %s/%s frame %d: %w", ad.Name, pd.Name, kd.Frame, err)
				}
				p.track.Set(Key{Frame: kd.Frame, Value: kd.Value, Interp: mode, Break: kd.Break})
			}
		}
	}

	for _, ad := range f.Actors {
		for _, pd := range ad.Parameters {
			p, err := s.Lookup(ad.Name, pd.Name)
			if err != nil {
				return nil, fmt.Errorf("scene: Build: %w", err)
			}
			for i, od := range pd.Ops {
				if err := attachDef(s, p, od); err != nil {
					return nil, fmt.Errorf("scene: Build: %s/%s op %d: %w", ad.Name, pd.Name, i, err)
				}
			}
		}
	}

	for _, sd := range f.AnimSets {
		set := s.AddAnimSet(sd.Name)
		for _, attr := range sd.Attributes {
			set.AddAttribute(attr.Key, attr.Value)
		}
		for _, ref := range sd.Parameters {
			p, err := s.Lookup(ref.Actor, ref.Parm)
			if err != nil {
				return nil, fmt.Errorf("scene: Build: animSet %q: %w", sd.Name, err)
			}
			set.AddParameter(p)
		}
	}

	if f.Frame > 0 {
		if err := s.SetFrame(f.Frame); err != nil {
			return nil, fmt.Errorf("scene: Build: %w", err)
		}
	}
	s.ResetCalls()

	return s, nil
}

func attachDef(s *Scene, p *Parameter, od OpDef) error {
	t, err := host.ParseValueOpType(od.Type)
	if err != nil {
		return err
	}
	if t.IsCallback() {
		p.AddCallback(nil)
		return nil
	}
	var src *Parameter
	if od.Source != nil && od.Source.Actor != "" && od.Source.Parm != "" {
		src, _ = s.Lookup(od.Source.Actor, od.Source.Parm)
	}
	if src == nil {
		p.AddUnresolvedOperation(t)
		return nil
	}
	p.Attach(t, src, od.Delta, od.Points...)

	return nil
}

// Export converts the scene back into its fixture form.
func (s *Scene) Export() *Fixture {
	f := &Fixture{Frames: s.opts.Frames, Frame: s.frame}
	for _, fig := range s.figures {
		fd := FigureDef{Name: fig.name, CustomData: copyData(fig.data)}
		if fig.internalName != fig.name {
			fd.Internal = fig.internalName
		}
		f.Figures = append(f.Figures, fd)
	}
	for _, a := range s.actors {
		ad := ActorDef{
			Name:        a.name,
			Type:        a.typ.String(),
			ControlProp: a.controlProp,
			Geometry:    a.geomFile,
			CustomData:  copyData(a.data),
		}
		if a.internalName != a.name {
			ad.Internal = a.internalName
		}
		if a.figure != nil {
			ad.Figure = a.figure.name
		}
		for _, p := range a.parms {
			ad.Parameters = append(ad.Parameters, exportParameter(p))
		}
		f.Actors = append(f.Actors, ad)
	}
	for _, set := range s.animSets {
		sd := AnimSetDef{Name: set.name}
		for _, attr := range set.attrs {
			sd.Attributes = append(sd.Attributes, AttributeDef{Key: attr.Key, Value: attr.Value})
		}
		for _, p := range set.parms {
			sd.Parameters = append(sd.Parameters, Ref{Actor: p.actor.name, Parm: p.name})
		}
		f.AnimSets = append(f.AnimSets, sd)
	}

	return f
}

func exportParameter(p *Parameter) ParameterDef {
	pd := ParameterDef{
		Name:        p.name,
		Code:        p.typeCode,
		Hidden:      p.hidden,
		Value:       p.static,
		ForceLimits: p.forceLimits,
		Min:         p.min,
		Max:         p.max,
	}
	if p.internalName != p.name {
		pd.Internal = p.internalName
	}
	for _, k := range p.track.keys {
		pd.Keys = append(pd.Keys, KeyDef{Frame: k.Frame, Value: k.Value, Interp: k.Interp.String(), Break: k.Break})
	}
	for _, op := range p.ops {
		od := OpDef{Type: op.typ.String(), Delta: op.delta, Points: op.ControlPoints()}
		if op.source != nil {
			od.Source = &Ref{Actor: op.source.actor.name, Parm: op.source.name}
		}
		pd.Ops = append(pd.Ops, od)
	}

	return pd
}

func copyData(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Load decodes a YAML fixture from r and builds the scene.
func Load(r io.Reader, opts ...Option) (*Scene, error) {
	var f Fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("scene: Load: %w", err)
	}

	return Build(&f, opts...)
}

// LoadFile reads a YAML fixture file.
func LoadFile(path string, opts ...Option) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scene: LoadFile %s: %w", path, err)
	}

	return Build(&f, opts...)
}

// Save encodes the scene as YAML to w.
func (s *Scene) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Export()); err != nil {
		return fmt.Errorf("scene: Save: %w", err)
	}

	return enc.Close()
}

// SaveFile writes the scene to a YAML file.
func (s *Scene) SaveFile(path string) error {
	data, err := yaml.Marshal(s.Export())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
