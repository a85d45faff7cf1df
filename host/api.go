// File: api.go
// Role: Interfaces every host binding implements, plus optional capability
//       interfaces discovered by type assertion.
// Policy:
//   - Required interfaces cover what every supported host version exposes.
//   - Optional interfaces may still return ErrUnsupported at call time; a
//     binding can compile a method in and have the running host reject it.

package host

// Scene is the host's document: actors, figures, the active frame cursor and
// animation sets.
type Scene interface {
	// Frame returns the zero-based active evaluation frame.
	Frame() int

	// SetFrame moves the active evaluation frame.
	SetFrame(frame int) error

	// NumFrames returns the animation length in frames.
	NumFrames() int

	// Actors lists every actor in scene order (figure body parts included).
	Actors() []Actor

	// Figures lists every figure in scene order.
	Figures() []Figure

	// AnimSets lists the scene's animation sets in creation order.
	AnimSets() []AnimSet

	// AnimSet looks up an animation set by name.
	AnimSet(name string) (AnimSet, error)
}

// Figure is a rigged hierarchy of actors.
type Figure interface {
	Name() string
	InternalName() string
	Actors() []Actor
}

// Actor is a scene object owning parameters.
type Actor interface {
	Name() string
	InternalName() string

	// Figure returns the owning figure, or nil for unparented props,
	// cameras and lights.
	Figure() Figure

	// Parameters lists the actor's parameters in channel order.
	Parameters() []Parameter

	// Parameter looks up a parameter by its external or internal name.
	Parameter(name string) (Parameter, error)

	// ParameterByCode returns the first parameter of the given type code.
	ParameterByCode(code int) (Parameter, error)

	// CreateValueParameter adds a user value parameter.
	CreateValueParameter(name string) (Parameter, error)

	// RemoveValueParameter removes a user value parameter by name.
	RemoveValueParameter(name string) error
}

// Parameter is one animation channel of an actor.
type Parameter interface {
	Name() string
	InternalName() string
	TypeCode() int
	Hidden() bool

	// Actor returns the owning actor.
	Actor() Actor

	// Value is the computed value at the active frame, including every
	// dependency operation.
	Value() float64

	// ValueFrame is the computed value at an arbitrary frame.
	ValueFrame(frame int) float64

	ForceLimits() bool
	MinValue() float64
	MaxValue() float64

	// NumValueOperations returns the number of attached dependency operations.
	NumValueOperations() int

	// ValueOperations lists attached operations in evaluation order.
	ValueOperations() []ValueOp

	// AddValueOperation appends a new operation of the given type.
	AddValueOperation(t ValueOpType, source Parameter) (ValueOp, error)

	// DeleteValueOperation removes the operation at index. Deleting an
	// operation whose source parameter is nil crashes the host process.
	DeleteValueOperation(index int) error
}

// ValueOp is one dependency operation attached to a parameter.
type ValueOp interface {
	Type() ValueOpType

	// SourceParameter returns the input parameter, or nil when the operation
	// is corrupt (forward reference never resolved).
	SourceParameter() Parameter

	// Delta returns the delta-add scalar.
	Delta() float64
	SetDelta(delta float64) error

	// NumKeys returns the number of control points of a keyed operation.
	NumKeys() int

	// GetKey returns control point i using zero-based indexing.
	GetKey(i int) (key, value float64, err error)

	// InsertKey adds a control point.
	InsertKey(key, value float64) error
}

// AnimSet is a named, host-managed collection of parameters.
type AnimSet interface {
	Attributes() []Attribute
	Parameters() []Parameter
}

// UnaffectedValuer is implemented by parameters able to report their value
// at the active frame without dependency operation influence.
type UnaffectedValuer interface {
	UnaffectedValue() (float64, error)
}

// FrameFlagger reports per-frame keyframe interpolation state.
type FrameFlagger interface {
	ConstantAtFrame(frame int) (bool, error)
	LinearAtFrame(frame int) (bool, error)
	SplineAtFrame(frame int) (bool, error)
	SplineBreakAtFrame(frame int) (bool, error)
}

// KeyFrameChecker reports whether an explicit keyframe exists at a frame.
type KeyFrameChecker interface {
	HasKeyAtFrame(frame int) (bool, error)
}

// ValueOpInserter is implemented by parameters that can insert a dependency
// operation at an arbitrary index instead of appending.
type ValueOpInserter interface {
	InsertValueOperation(index int, t ValueOpType, source Parameter) (ValueOp, error)
}

// ControlPropChecker reports whether an actor is a control prop.
type ControlPropChecker interface {
	IsControlProp() (bool, error)
}

// AnimSetManager creates and deletes animation sets.
type AnimSetManager interface {
	CreateAnimSet(name string) (AnimSet, error)
	DeleteAnimSet(name string) error
}

// AnimSetNamer is implemented by animation sets whose name is exposed
// directly rather than through a Name attribute.
type AnimSetNamer interface {
	Name() (string, error)
}

// CustomDataStore is the per-object string key/value store of figures and
// actors.
type CustomDataStore interface {
	Name() string
	CustomData(key string) (string, bool)
	SetCustomData(key, value string, storeWithPoses, storeWithMaterials bool) error
}

// ActorKind exposes the actor classification predicates used to derive the
// keyword that precedes an actor in scene files.
type ActorKind interface {
	IsBodyPart() bool
	IsCamera() bool
	IsLight() bool
	IsProp() bool
	IsBase() bool
	IsDeformer() bool
	IsHairProp() bool
	IsZone() bool

	// GeomFileName returns the geometry file path, or "" when none.
	GeomFileName() string
}
