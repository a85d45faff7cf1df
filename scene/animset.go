package scene

import "github.com/GeoffIX/PoserLib/host"

// AnimSet is a named collection of parameters with string attributes.
type AnimSet struct {
	scene *Scene
	name  string
	attrs []host.Attribute
	parms []*Parameter
}

var (
	_ host.AnimSet      = (*AnimSet)(nil)
	_ host.AnimSetNamer = (*AnimSet)(nil)
)

// Name implements host.AnimSetNamer.
func (a *AnimSet) Name() (string, error) {
	if a.scene.opts.NoAnimSetNames {
		return "", host.ErrUnsupported
	}

	return a.name, nil
}

// Attributes implements host.AnimSet.
func (a *AnimSet) Attributes() []host.Attribute {
	out := make([]host.Attribute, len(a.attrs))
	copy(out, a.attrs)

	return out
}

// AddAttribute sets an attribute, replacing an existing value for key.
func (a *AnimSet) AddAttribute(key, value string) {
	for i := range a.attrs {
		if a.attrs[i].Key == key {
			a.attrs[i].Value = value
			return
		}
	}
	a.attrs = append(a.attrs, host.Attribute{Key: key, Value: value})
}

// Parameters implements host.AnimSet.
func (a *AnimSet) Parameters() []host.Parameter {
	out := make([]host.Parameter, len(a.parms))
	for i, p := range a.parms {
		out[i] = p
	}

	return out
}

// AddParameter adds p to the set.
func (a *AnimSet) AddParameter(p *Parameter) { a.parms = append(a.parms, p) }

// AddAnimSet creates a set without a Name attribute, as older scene files do.
func (s *Scene) AddAnimSet(name string) *AnimSet {
	a := &AnimSet{scene: s, name: name}
	s.animSets = append(s.animSets, a)

	return a
}
