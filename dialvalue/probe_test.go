package dialvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GeoffIX/PoserLib/dialvalue"
	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/scene"
)

func TestProbe_CurrentHost(t *testing.T) {
	r := newRig(t)
	caps := dialvalue.ProbeCapabilities(r.s)

	assert.Equal(t, dialvalue.Capabilities{
		UnaffectedValue:      true,
		FrameFlags:           true,
		HasKeyAtFrame:        true,
		ControlProp:          true,
		AnimSetNames:         true,
		InsertValueOperation: true,
	}, caps)
	assert.Len(t, r.s.Actor("hip").Parameters(), 2)
	assert.Empty(t, r.s.AnimSets())
	assert.Empty(t, r.bend.Operations())
}

func TestProbe_OldHost(t *testing.T) {
	r := newRig(t,
		scene.WithoutUnaffectedValue(),
		scene.WithoutFrameFlags(),
		scene.WithoutHasKeyAtFrame(),
		scene.WithoutControlProp(),
		scene.WithoutAnimSetNames(),
		scene.WithoutInsert())

	assert.Equal(t, dialvalue.Capabilities{}, dialvalue.ProbeCapabilities(r.s))
	assert.Len(t, r.s.Actor("hip").Parameters(), 2)
	assert.Empty(t, r.s.AnimSets())
}

func TestProbe_TemporaryParameterIsRemoved(t *testing.T) {
	s := scene.New()
	box := s.AddActor("Box", nil)
	keep := s.AddAnimSet("Walk")

	caps := dialvalue.ProbeCapabilities(s)
	assert.True(t, caps.UnaffectedValue)
	assert.True(t, caps.InsertValueOperation)
	assert.True(t, caps.AnimSetNames)
	assert.Empty(t, box.Parameters())
	assert.Len(t, s.AnimSets(), 1)
	assert.Same(t, keep, s.AnimSets()[0])
}

func TestProbe_InsertTrialLeavesInspectedParameterAlone(t *testing.T) {
	r := newRig(t)
	r.bend.Attach(host.ValueOpDeltaAdd, r.dial, 0.5)
	r.bend.AddCallback(nil)
	before := types(r.bend)

	caps := dialvalue.ProbeCapabilities(r.s)
	assert.True(t, caps.InsertValueOperation)
	assert.Equal(t, before, types(r.bend))
	assert.InDelta(t, 0.5, r.bend.Operations()[0].Delta(), eps)
	assert.Len(t, r.s.Actor("hip").Parameters(), 2)
	assert.Equal(t, 1, r.s.Calls().Insert)
	assert.Equal(t, 1, r.s.Calls().Delete)
}

func TestProbe_EmptyScene(t *testing.T) {
	assert.Equal(t, dialvalue.Capabilities{}, dialvalue.ProbeCapabilities(scene.New()))
	assert.Equal(t, dialvalue.Capabilities{}, dialvalue.ProbeCapabilities(nil))
}

func TestProbe_RunsOnce(t *testing.T) {
	r := newRig(t)
	p := dialvalue.NewProbe(r.s)
	first := p.Capabilities()
	calls := r.s.Calls()

	assert.Equal(t, first, p.Capabilities())
	assert.Equal(t, calls, r.s.Calls())
	assert.Equal(t, 1, calls.Unaffect)
	assert.Same(t, r.s, p.Scene())
}

func TestProbe_PinnedCapabilities(t *testing.T) {
	r := newRig(t)
	want := dialvalue.Capabilities{FrameFlags: true}
	p := dialvalue.NewProbe(r.s, dialvalue.WithCapabilities(want))

	assert.Equal(t, want, p.Capabilities())
	assert.Equal(t, scene.Calls{}, r.s.Calls())
}
