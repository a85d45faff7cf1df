// Package dialvalue recovers the dial value of an animation parameter: the
// value its own keyframe track produces, without the influence of the
// dependency operations (value operations) attached to it.
//
// The host only exposes the computed value, which already folds in every
// operation. Newer hosts can answer the question directly; older ones need
// the operations stripped, the value read, and the operations put back.
// The package hides that difference behind a capability probe:
//
//	probe := dialvalue.NewProbe(scene)            // lazy, runs once
//	r := dialvalue.New(probe, dialvalue.WithLogger(log))
//	v := r.DialValue(parm)                        // fast or slow path
//	vs, err := r.DialValueRange(parm, 0, 29)      // one extract for 30 frames
//	keys, err := r.DialAnimation(parm, 0, 29)     // values plus keyframe flags
//
// Extraction protocol:
//
//	snap, err := dialvalue.Extract(parm)  // reverse index order, callbacks stay
//	...read...
//	err = dialvalue.Restore(parm, snap)   // forward order, best effort
//
// An operation whose source parameter is nil is corrupt. The host crashes when
// asked to delete one, so Extract validates every operation before it deletes
// anything and fails with *CorruptDependencyError instead. Any other delete
// failure is wrapped in *HostOperationError after the operations already
// removed have been put back. Callbacks are never removed or rebuilt.
//
// Diagnostics:
//
//	rep := dialvalue.Describe(parm)       // structured, never mutates
//	ok := dialvalue.DescribeTo(w, parm)   // text, false on corrupt operations
//	est := dialvalue.Estimate(parm)       // analytic inverse, no mutation
//
// All calls are synchronous and assume a single goroutine owns the scene.
// Whoever moves the scene frame restores it before returning.
//
// Errors:
//
//	ErrCorruptDependency  - matched by *CorruptDependencyError.
//	ErrHostOperation      - matched by *HostOperationError.
//	ErrNilParameter       - nil parameter passed to an entry point.
//	ErrInvalidFrameRange  - negative first frame or last < first.
package dialvalue
