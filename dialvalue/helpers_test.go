package dialvalue_test

import (
	"testing"

	"github.com/GeoffIX/PoserLib/dialvalue"
	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/scene"
)

const eps = 1e-9

// rig is a figure "Andy" whose hip bend is driven from a control prop dial.
type rig struct {
	s     *scene.Scene
	bend  *scene.Parameter
	dial  *scene.Parameter
	twist *scene.Parameter
}

func newRig(t *testing.T, opts ...scene.Option) rig {
	t.Helper()
	s := scene.New(append([]scene.Option{scene.WithFrames(30)}, opts...)...)
	fig := s.AddFigure("Andy")
	hip := s.AddActor("hip", fig)
	ctrl := s.AddActor("CTRL", nil)

	return rig{
		s:     s,
		bend:  hip.AddParameter("bend", 2),
		twist: hip.AddParameter("twist", 3),
		dial:  ctrl.AddParameter("dial", 4),
	}
}

func types(p *scene.Parameter) []host.ValueOpType {
	var out []host.ValueOpType
	for _, op := range p.Operations() {
		out = append(out, op.Type())
	}

	return out
}

// slow pins a capability set with no fast path.
func slow() dialvalue.Option {
	return dialvalue.WithCapabilities(dialvalue.Capabilities{InsertValueOperation: true})
}

// fast pins every capability.
func fast() dialvalue.Option {
	return dialvalue.WithCapabilities(dialvalue.Capabilities{
		UnaffectedValue:      true,
		FrameFlags:           true,
		HasKeyAtFrame:        true,
		ControlProp:          true,
		AnimSetNames:         true,
		InsertValueOperation: true,
	})
}

// probed returns a probe that has already run, with the scene's call
// counters cleared afterwards.
func probed(s *scene.Scene) *dialvalue.Probe {
	p := dialvalue.NewProbe(s)
	p.Capabilities()
	s.ResetCalls()

	return p
}
