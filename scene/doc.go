// Package scene is an in-memory host: figures, actors, parameters with
// keyframe tracks, dependency value operations and animation sets, all
// implementing the interfaces of package host.
//
// The scene reproduces the host behaviours that matter to dial-value
// recovery:
//
//   - A parameter's computed value is its keyframe track value followed by
//     every attached value operation, applied in list order, then clamped to
//     forced limits.
//   - UnaffectedValue evaluates the track and callback operations only.
//   - Deleting an operation whose source parameter is unresolved "crashes"
//     the scene: the call fails with ErrHostCrashed and every later mutation
//     fails the same way. Crashed reports whether that ever happened.
//   - Optional queries can be switched off with options such as
//     WithoutUnaffectedValue to imitate older host versions; the methods stay
//     present and return host.ErrUnsupported.
//
// Scenes can be built in code (AddFigure, AddActor, AddParameter, ...) or
// loaded from YAML fixtures with Load and LoadFile, which check the fixture
// with Validate first.
//
// A Scene is not safe for concurrent use.
package scene
