// Package codes holds the host's numeric and keyword tables: parameter type
// codes and their scene-file keywords, node input codes, value operation
// keywords, library file suffixes, plus the actor classification helpers
// that need those tables (ActorTypeName, Camera, UserCreated).
//
// Parameter codes not listed by number in host documentation follow the
// host's declaration order.
package codes
