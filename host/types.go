package host

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every host implementation.
var (
	// ErrUnsupported indicates the running host version lacks an optional query.
	ErrUnsupported = errors.New("host: query not supported by this host version")

	// ErrNoSuchParameter indicates a named parameter lookup failed.
	ErrNoSuchParameter = errors.New("host: no such parameter")

	// ErrNoSuchAnimSet indicates a named animation set lookup failed.
	ErrNoSuchAnimSet = errors.New("host: no such animation set")

	// ErrIndexOutOfRange indicates a value operation or control point index
	// outside [0, n).
	ErrIndexOutOfRange = errors.New("host: index out of range")
)

// ValueOpType identifies the kind of a dependency operation.
// Values follow the host's kValueOpTypeCode constants.
type ValueOpType int

// Value operation type codes.
const (
	ValueOpDeltaAdd ValueOpType = iota
	ValueOpKey
	ValueOpPlus
	ValueOpMinus
	ValueOpTimes
	ValueOpDivideBy
	ValueOpDivideInto
	ValueOpCallback
)

var valueOpNames = map[ValueOpType]string{
	ValueOpDeltaAdd:   "valueOpDeltaAdd",
	ValueOpKey:        "valueOpKey",
	ValueOpPlus:       "valueOpPlus",
	ValueOpMinus:      "valueOpMinus",
	ValueOpTimes:      "valueOpTimes",
	ValueOpDivideBy:   "valueOpDivideBy",
	ValueOpDivideInto: "valueOpDivideInto",
	ValueOpCallback:   "valueOpPythonCallBack",
}

// String returns the keyword used for the operation in host scene files.
func (t ValueOpType) String() string {
	if name, ok := valueOpNames[t]; ok {
		return name
	}

	return fmt.Sprintf("valueOp(%d)", int(t))
}

// Valid reports whether t is one of the known operation codes.
func (t ValueOpType) Valid() bool {
	_, ok := valueOpNames[t]

	return ok
}

// IsCallback reports whether t is an externally registered callback.
// Callbacks cannot be serialized, removed or reconstructed.
func (t ValueOpType) IsCallback() bool { return t == ValueOpCallback }

// IsCombinator reports whether t is one of the arithmetic combinators that
// need no configuration beyond type and source.
func (t ValueOpType) IsCombinator() bool {
	switch t {
	case ValueOpPlus, ValueOpMinus, ValueOpTimes, ValueOpDivideBy, ValueOpDivideInto:
		return true
	default:
		return false
	}
}

// ParseValueOpType maps a scene-file keyword back to its type code.
func ParseValueOpType(name string) (ValueOpType, error) {
	for t, n := range valueOpNames {
		if n == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("host: unknown value operation %q", name)
}

// ControlPoint is one (key, value) pair of a keyed value operation.
type ControlPoint struct {
	Key   float64 `yaml:"key"`
	Value float64 `yaml:"value"`
}

// Interpolation is the keyframe interpolation mode of a track segment.
type Interpolation int

// Interpolation modes.
const (
	InterpSpline Interpolation = iota
	InterpLinear
	InterpConstant
)

// String returns the lower-case mode name.
func (i Interpolation) String() string {
	switch i {
	case InterpLinear:
		return "linear"
	case InterpConstant:
		return "constant"
	default:
		return "spline"
	}
}

// ParseInterpolation parses a mode name; the empty string means spline.
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "", "spline":
		return InterpSpline, nil
	case "linear":
		return InterpLinear, nil
	case "constant":
		return InterpConstant, nil
	default:
		return 0, fmt.Errorf("host: unknown interpolation %q", s)
	}
}

// Attribute is one key/value pair of an animation set.
type Attribute struct {
	Key   string
	Value string
}
