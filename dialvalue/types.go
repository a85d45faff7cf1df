// File: types.go
// Role: Options, capability descriptor, snapshot and keyframe types.
// Policy:
//   - A nil logger means discard; the library never writes to stderr itself.
//   - Explicit capabilities bypass probing entirely.

package dialvalue

import (
	"log/slog"

	"github.com/GeoffIX/PoserLib/depgraph"
	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/internal/logging"
)

const noFigure = depgraph.NoFigure

// Capabilities records which optional host queries answered a trial call.
type Capabilities struct {
	UnaffectedValue      bool
	FrameFlags           bool
	HasKeyAtFrame        bool
	ControlProp          bool
	AnimSetNames         bool
	InsertValueOperation bool
}

// Options configures probes, resolvers and the package-level functions.
type Options struct {
	// Logger receives Debug traces of extract/restore and Warn records of
	// restore failures. Nil discards.
	Logger *slog.Logger

	// Metrics counts protocol events. Nil disables counting.
	Metrics *Metrics

	// Capabilities, when set, is used instead of probing the host.
	Capabilities *Capabilities

	// LimitEachStep clamps to forced limits after every inverse step of
	// Estimate, not only at the end.
	LimitEachStep bool

	// FrameFlags disables per-frame flag queries in DialAnimation when false.
	FrameFlags bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns options with a discard logger, no metrics and
// frame-flag reading enabled.
func DefaultOptions() Options {
	return Options{FrameFlags: true}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithCapabilities pins the capability set and skips probing.
func WithCapabilities(c Capabilities) Option {
	return func(o *Options) { o.Capabilities = &c }
}

// WithLimitEachStep enables per-step clamping in Estimate.
func WithLimitEachStep() Option {
	return func(o *Options) { o.LimitEachStep = true }
}

// WithoutFrameFlags makes DialAnimation report every flag false without
// querying the host.
func WithoutFrameFlags() Option {
	return func(o *Options) { o.FrameFlags = false }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}

	return o
}

// OpRecord is the configuration of one extracted operation.
type OpRecord struct {
	// Index is the operation's position before extraction.
	Index  int
	Type   host.ValueOpType
	Source host.Parameter

	// Delta is set for delta-add operations.
	Delta float64

	// Keys holds the control points of keyed operations in index order.
	Keys []host.ControlPoint
}

// IsCallback reports whether the record describes a callback, which Extract
// leaves attached and Restore skips.
func (r OpRecord) IsCallback() bool { return r.Type.IsCallback() }

// Snapshot is the ordered list of operations taken off a parameter. It lives
// only between Extract and Restore.
type Snapshot struct {
	Param   host.Parameter
	Records []OpRecord
}

// Len returns the number of recorded operations, callbacks included.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Records)
}

// Removed returns the number of operations actually taken off the host.
func (s *Snapshot) Removed() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, r := range s.Records {
		if !r.IsCallback() {
			n++
		}
	}

	return n
}

// KeyFrame is one frame of a dial animation.
type KeyFrame struct {
	Frame       int
	Value       float64
	Constant    bool
	Linear      bool
	Spline      bool
	SplineBreak bool
	HasKey      bool
}
