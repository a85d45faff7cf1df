// Package poserlib recovers and inspects the animation state of a
// Poser-style 3D scene host through a narrow, version-tolerant API.
//
// The central problem: a parameter's computed value folds in every value
// operation (dependency) attached to it, and older hosts offer no query for
// the raw "dial" value underneath. dialvalue answers it on every host, using
// a read-only query where the host has one and a temporary extract, read,
// restore cycle where it does not.
//
// Packages:
//
//	host/        interfaces a host binding implements, plus optional capabilities
//	scene/       in-memory host with YAML fixtures, used by tests and the CLI
//	dialvalue/   dial value resolution, capability probe, snapshots, reports
//	depgraph/    parameter dependency graph: cycles, evaluation order, impact
//	interp/      control-point curves of keyed value operations
//	animset/     animation set names, attributes and per-actor grouping
//	customdata/  indexed custom data and per-frame pose names
//	codes/       host type code tables
//	prefs/       plain-text preference files
//	units/       PNU conversion and camera optics
//	cmd/dialdump/ command line inspector for scene fixtures
//
// Quick example:
//
//	s, _ := scene.LoadFile("andy.yaml")
//	bend, _ := s.Lookup("hip", "bend")
//	r := dialvalue.New(dialvalue.NewProbe(s))
//	fmt.Println(r.DialValue(bend))
//
//	go install github.com/GeoffIX/PoserLib/cmd/dialdump@latest
package poserlib
