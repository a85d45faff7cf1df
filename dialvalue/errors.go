// File: errors.go
// Role: Sentinel errors and the typed errors of the extract/restore protocol.
// Policy:
//   - Every typed error matches its sentinel through errors.Is.
//   - Host failures carry the operation, parameter identity and index.

package dialvalue

import (
	"errors"
	"fmt"

	"github.com/GeoffIX/PoserLib/host"
)

// Sentinel errors.
var (
	// ErrCorruptDependency matches every *CorruptDependencyError.
	ErrCorruptDependency = errors.New("dialvalue: corrupt dependency operation")

	// ErrHostOperation matches every *HostOperationError.
	ErrHostOperation = errors.New("dialvalue: host operation failed")

	// ErrNilParameter indicates a nil parameter was passed in.
	ErrNilParameter = errors.New("dialvalue: nil parameter")

	// ErrInvalidFrameRange indicates first < 0, last < first, or a range past
	// the end of the scene.
	ErrInvalidFrameRange = errors.New("dialvalue: invalid frame range")

	// errCapabilityUnavailable is never returned to callers; it selects the
	// slow path.
	errCapabilityUnavailable = errors.New("dialvalue: capability unavailable")
)

// CorruptDependencyError reports a value operation without a source
// parameter. Such an operation cannot be removed safely.
type CorruptDependencyError struct {
	Figure string
	Actor  string
	Parm   string
	Index  int
	Op     host.ValueOpType
}

func (e *CorruptDependencyError) Error() string {
	return fmt.Sprintf("dialvalue: %s %s %s: operation %d (%v) has no source parameter",
		e.Figure, e.Actor, e.Parm, e.Index, e.Op)
}

// Unwrap lets errors.Is match ErrCorruptDependency.
func (e *CorruptDependencyError) Unwrap() error { return ErrCorruptDependency }

// HostOperationError reports a failed host call during extract or restore.
// Op is "read", "delete", "add" or "configure".
type HostOperationError struct {
	Op     string
	Figure string
	Actor  string
	Parm   string
	Index  int
	Err    error
}

func (e *HostOperationError) Error() string {
	return fmt.Sprintf("dialvalue: %s %s %s: %s operation %d: %v",
		e.Figure, e.Actor, e.Parm, e.Op, e.Index, e.Err)
}

// Unwrap exposes both ErrHostOperation and the host's cause.
func (e *HostOperationError) Unwrap() []error { return []error{ErrHostOperation, e.Err} }

// identity returns the figure, actor and parameter names used in messages.
// Unparented actors report the figure as "_NO_FIG_".
func identity(p host.Parameter) (fig, actor, parm string) {
	fig = noFigure
	if a := p.Actor(); a != nil {
		actor = a.InternalName()
		if f := a.Figure(); f != nil {
			fig = f.Name()
		}
	}

	return fig, actor, p.InternalName()
}

func corruptError(p host.Parameter, index int, t host.ValueOpType) *CorruptDependencyError {
	fig, actor, parm := identity(p)
	return &CorruptDependencyError{Figure: fig, Actor: actor, Parm: parm, Index: index, Op: t}
}

func hostError(op string, p host.Parameter, index int, err error) *HostOperationError {
	fig, actor, parm := identity(p)
	return &HostOperationError{Op: op, Figure: fig, Actor: actor, Parm: parm, Index: index, Err: err}
}
