package scene

import (
	"errors"

	"github.com/GeoffIX/PoserLib/host"
)

// Sentinel errors.
var (
	// ErrHostCrashed is returned by the mutation that would have crashed a real
	// host, and by every mutation after it.
	ErrHostCrashed = errors.New("scene: host crashed")

	// ErrForeignParameter indicates a parameter that does not belong to this scene.
	ErrForeignParameter = errors.New("scene: parameter belongs to another scene")

	// ErrNilSource indicates an attempt to attach an operation without a source.
	ErrNilSource = errors.New("scene: value operation needs a source parameter")

	// ErrCallbackAdd indicates an attempt to create a callback operation through
	// the generic add primitive.
	ErrCallbackAdd = errors.New("scene: callback operations cannot be added by type")

	// ErrDuplicateName indicates a create call for a name already in use.
	ErrDuplicateName = errors.New("scene: name already in use")

	// ErrUnknownActorType indicates an unrecognised actor type name.
	ErrUnknownActorType = errors.New("scene: unknown actor type")

	// ErrInvalidFixture indicates a fixture that fails validation.
	ErrInvalidFixture = errors.New("scene: invalid fixture")
)

// Options configures a Scene.
type Options struct {
	// Frames is the animation length. Values below 1 are treated as 1.
	Frames int

	NoUnaffectedValue bool
	NoFrameFlags      bool
	NoHasKeyAtFrame   bool
	NoInsert          bool
	NoControlProp     bool
	NoAnimSetNames    bool

	// DeleteFault, when set, is consulted before every DeleteValueOperation
	// and its error returned instead of deleting.
	DeleteFault func(parm string, index int) error

	// AddFault, when set, is consulted before every add or insert.
	AddFault func(parm string, t host.ValueOpType) error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a single-frame scene with every optional query
// available.
func DefaultOptions() Options {
	return Options{Frames: 1}
}

// WithFrames sets the animation length.
func WithFrames(n int) Option {
	return func(o *Options) { o.Frames = n }
}

// WithoutUnaffectedValue disables Parameter.UnaffectedValue.
func WithoutUnaffectedValue() Option {
	return func(o *Options) { o.NoUnaffectedValue = true }
}

// WithoutFrameFlags disables the per-frame interpolation flag queries.
func WithoutFrameFlags() Option {
	return func(o *Options) { o.NoFrameFlags = true }
}

// WithoutHasKeyAtFrame disables Parameter.HasKeyAtFrame.
func WithoutHasKeyAtFrame() Option {
	return func(o *Options) { o.NoHasKeyAtFrame = true }
}

// WithoutInsert disables Parameter.InsertValueOperation.
func WithoutInsert() Option {
	return func(o *Options) { o.NoInsert = true }
}

// WithoutControlProp disables Actor.IsControlProp.
func WithoutControlProp() Option {
	return func(o *Options) { o.NoControlProp = true }
}

// WithoutAnimSetNames disables AnimSet.Name.
func WithoutAnimSetNames() Option {
	return func(o *Options) { o.NoAnimSetNames = true }
}

// WithDeleteFault installs a delete fault hook.
func WithDeleteFault(fn func(parm string, index int) error) Option {
	return func(o *Options) { o.DeleteFault = fn }
}

// WithAddFault installs an add fault hook.
func WithAddFault(fn func(parm string, t host.ValueOpType) error) Option {
	return func(o *Options) { o.AddFault = fn }
}

// Calls counts mutating host primitives invoked on a Scene.
type Calls struct {
	Delete    int
	Add       int
	Insert    int
	Configure int
	SetFrame  int
	Unaffect  int
}

// ActorType classifies an actor.
type ActorType int

// Actor types.
const (
	Prop ActorType = iota
	BodyPart
	Camera
	Light
	Base
	Deformer
	HairProp
	Zone
)

var actorTypeNames = map[ActorType]string{
	Prop:     "prop",
	BodyPart: "bodypart",
	Camera:   "camera",
	Light:    "light",
	Base:     "base",
	Deformer: "deformer",
	HairProp: "hairprop",
	Zone:     "zone",
}

// String returns the fixture name of the type.
func (t ActorType) String() string {
	if n, ok := actorTypeNames[t]; ok {
		return n
	}

	return "prop"
}

// ParseActorType parses a fixture type name; the empty string means prop.
func ParseActorType(s string) (ActorType, error) {
	if s == "" {
		return Prop, nil
	}
	for t, n := range actorTypeNames {
		if n == s {
			return t, nil
		}
	}

	return Prop, ErrUnknownActorType
}
