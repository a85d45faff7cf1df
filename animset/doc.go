// Package animset reads animation sets: their display names, attributes and
// the parameters they group, arranged by owning actor.
//
// Older hosts do not expose an animation set's name. Names prefers the
// set's "Name" attribute, then the name the host reports, and finally
// "AnimSet <n>" (1-based scene order), which is what the host's own UI shows
// for an unnamed set.
package animset
