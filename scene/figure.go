package scene

import "github.com/GeoffIX/PoserLib/host"

// Figure is a named group of actors.
type Figure struct {
	scene        *Scene
	name         string
	internalName string
	actors       []*Actor
	data         map[string]string
}

var (
	_ host.Figure          = (*Figure)(nil)
	_ host.CustomDataStore = (*Figure)(nil)
)

func (f *Figure) Name() string         { return f.name }
func (f *Figure) InternalName() string { return f.internalName }

// SetInternalName overrides the internal name.
func (f *Figure) SetInternalName(name string) { f.internalName = name }

// Actors implements host.Figure.
func (f *Figure) Actors() []host.Actor {
	out := make([]host.Actor, len(f.actors))
	for i, a := range f.actors {
		out[i] = a
	}

	return out
}

// CustomData implements host.CustomDataStore.
func (f *Figure) CustomData(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

// SetCustomData implements host.CustomDataStore. The persistence flags are
// accepted and ignored.
func (f *Figure) SetCustomData(key, value string, _, _ bool) error {
	if f.scene.crashed {
		return ErrHostCrashed
	}
	f.data[key] = value

	return nil
}
