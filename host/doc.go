// Package host declares the boundary between PoserLib and the figure-posing
// application it scripts.
//
// What:
//
//   - Scene, Figure, Actor, Parameter, ValueOp and AnimSet interfaces mirror the
//     object graph exposed by the host's scripting API.
//   - ValueOpType enumerates the dependency operation kinds (delta-add, key,
//     plus, minus, times, divide-by, divide-into, callback).
//   - Optional capability interfaces (UnaffectedValuer, FrameFlagger,
//     KeyFrameChecker, ValueOpInserter, ControlPropChecker, AnimSetManager,
//     CustomDataStore) describe queries that only some host versions provide.
//
// References are non-owning: a Parameter returned by ValueOp.SourceParameter
// is a lookup into the host's live object graph and may be nil when the scene
// was loaded with a forward reference to a channel that was never created.
// The host, not this module, owns object lifetime.
//
// Capability queries return ErrUnsupported when the running host version does
// not implement them. Callers are expected to negotiate capabilities once
// (see dialvalue.Probe) instead of calling speculatively.
//
// Errors:
//
//   - ErrUnsupported        optional query not present in this host version
//   - ErrNoSuchParameter    named parameter not found on actor
//   - ErrNoSuchAnimSet      named animation set not found in scene
//   - ErrIndexOutOfRange    value operation or control point index invalid
package host
