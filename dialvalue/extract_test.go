package dialvalue_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffIX/PoserLib/dialvalue"
	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/scene"
)

func TestExtract_RoundTrip(t *testing.T) {
	r := newRig(t)
	points := []host.ControlPoint{{Key: 0, Value: 0}, {Key: 1, Value: 10}, {Key: 2, Value: 15}, {Key: 3, Value: 30}}
	r.bend.Attach(host.ValueOpDeltaAdd, r.dial, 0.5)
	r.bend.Attach(host.ValueOpKey, r.dial, 0, points...)
	r.bend.AddCallback(func(v float64) float64 { return v + 1 })
	r.bend.Attach(host.ValueOpTimes, r.twist, 0)
	before := types(r.bend)
	computed := r.bend.Value()

	snap, err := dialvalue.Extract(r.bend)
	require.NoError(t, err)
	assert.Equal(t, 4, snap.Len())
	assert.Equal(t, 3, snap.Removed())
	assert.Equal(t, []host.ValueOpType{host.ValueOpCallback}, types(r.bend))
	assert.Equal(t, 3, r.s.Calls().Delete)

	require.NoError(t, dialvalue.Restore(r.bend, snap))
	assert.Equal(t, before, types(r.bend))
	ops := r.bend.Operations()
	assert.InDelta(t, 0.5, ops[0].Delta(), eps)
	assert.Equal(t, points, ops[1].ControlPoints())
	assert.Same(t, r.twist, ops[3].SourceParameter())
	assert.InDelta(t, computed, r.bend.Value(), eps)
	assert.False(t, r.s.Crashed())
}

func TestExtract_ZeroOperations(t *testing.T) {
	r := newRig(t)

	snap, err := dialvalue.Extract(r.bend)
	require.NoError(t, err)
	assert.Zero(t, snap.Len())
	require.NoError(t, dialvalue.Restore(r.bend, snap))
	require.NoError(t, dialvalue.Restore(r.bend, nil))
	assert.Equal(t, scene.Calls{}, r.s.Calls())
}

func TestExtract_NilParameter(t *testing.T) {
	_, err := dialvalue.Extract(nil)
	assert.ErrorIs(t, err, dialvalue.ErrNilParameter)
}

func TestExtract_CorruptOperationLeavesListIntact(t *testing.T) {
	r := newRig(t)
	r.bend.Attach(host.ValueOpPlus, r.dial, 0)
	r.bend.AddUnresolvedOperation(host.ValueOpMinus)
	r.bend.Attach(host.ValueOpTimes, r.twist, 0)
	before := r.bend.Operations()

	_, err := dialvalue.Extract(r.bend)
	require.Error(t, err)
	assert.ErrorIs(t, err, dialvalue.ErrCorruptDependency)

	var corrupt *dialvalue.CorruptDependencyError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, "Andy", corrupt.Figure)
	assert.Equal(t, "hip", corrupt.Actor)
	assert.Equal(t, "bend", corrupt.Parm)
	assert.Equal(t, 1, corrupt.Index)
	assert.Equal(t, host.ValueOpMinus, corrupt.Op)
	assert.Contains(t, err.Error(), "Andy hip bend")

	assert.False(t, r.s.Crashed())
	assert.Equal(t, before, r.bend.Operations())
	assert.Zero(t, r.s.Calls().Delete)
}

func TestExtract_DeleteFailureRollsBack(t *testing.T) {
	fault := errors.New("locked")
	r := newRig(t, scene.WithDeleteFault(func(parm string, index int) error {
		if parm == "bend" && index == 0 {
			return fault
		}
		return nil
	}))
	r.bend.Attach(host.ValueOpPlus, r.dial, 0)
	r.bend.Attach(host.ValueOpMinus, r.twist, 0)
	r.bend.Attach(host.ValueOpDeltaAdd, r.dial, 0.25)
	before := types(r.bend)
	computed := r.bend.Value()

	_, err := dialvalue.Extract(r.bend)
	require.Error(t, err)
	assert.ErrorIs(t, err, dialvalue.ErrHostOperation)
	assert.ErrorIs(t, err, fault)

	var herr *dialvalue.HostOperationError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "delete", herr.Op)
	assert.Equal(t, 0, herr.Index)
	assert.Equal(t, "bend", herr.Parm)

	assert.Equal(t, before, types(r.bend))
	assert.InDelta(t, 0.25, r.bend.Operations()[2].Delta(), eps)
	assert.InDelta(t, computed, r.bend.Value(), eps)
}

// shortKeys reports one more control point than it holds.
type shortKeys struct{ host.ValueOp }

func (k shortKeys) NumKeys() int { return k.ValueOp.NumKeys() + 1 }

type unreadableKeys struct{ *scene.Parameter }

func (u unreadableKeys) ValueOperations() []host.ValueOp {
	ops := u.Parameter.ValueOperations()
	for i, op := range ops {
		ops[i] = shortKeys{op}
	}
	return ops
}

func TestExtract_KeyReadFailure(t *testing.T) {
	r := newRig(t)
	r.bend.Attach(host.ValueOpKey, r.dial, 0,
		host.ControlPoint{Key: 0, Value: 0},
		host.ControlPoint{Key: 1, Value: 10})

	_, err := dialvalue.Extract(unreadableKeys{r.bend})
	require.Error(t, err)
	assert.ErrorIs(t, err, dialvalue.ErrHostOperation)
	assert.ErrorIs(t, err, host.ErrIndexOutOfRange)

	var herr *dialvalue.HostOperationError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "read", herr.Op)
	assert.Equal(t, 0, herr.Index)
	assert.Len(t, r.bend.Operations(), 1)
	assert.Zero(t, r.s.Calls().Delete)
}

func TestRestore_CallbackPosition(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		r := newRig(t)
		r.bend.Attach(host.ValueOpPlus, r.dial, 0)
		r.bend.AddCallback(nil)
		r.bend.Attach(host.ValueOpMinus, r.twist, 0)

		snap, err := dialvalue.Extract(r.bend)
		require.NoError(t, err)
		require.NoError(t, dialvalue.Restore(r.bend, snap))
		assert.Equal(t, []host.ValueOpType{host.ValueOpPlus, host.ValueOpCallback, host.ValueOpMinus}, types(r.bend))
	})

	t.Run("append", func(t *testing.T) {
		r := newRig(t, scene.WithoutInsert())
		r.bend.Attach(host.ValueOpPlus, r.dial, 0)
		r.bend.AddCallback(nil)
		r.bend.Attach(host.ValueOpMinus, r.twist, 0)

		snap, err := dialvalue.Extract(r.bend)
		require.NoError(t, err)
		require.NoError(t, dialvalue.Restore(r.bend, snap))
		assert.Equal(t, []host.ValueOpType{host.ValueOpCallback, host.ValueOpPlus, host.ValueOpMinus}, types(r.bend))
		assert.Zero(t, r.s.Calls().Insert)
	})

	t.Run("pinned without insert", func(t *testing.T) {
		r := newRig(t)
		r.bend.AddCallback(nil)
		r.bend.Attach(host.ValueOpPlus, r.dial, 0)
		r.bend.AddCallback(nil)

		snap, err := dialvalue.Extract(r.bend)
		require.NoError(t, err)
		require.NoError(t, dialvalue.Restore(r.bend, snap, dialvalue.WithCapabilities(dialvalue.Capabilities{})))
		assert.Equal(t, []host.ValueOpType{host.ValueOpCallback, host.ValueOpCallback, host.ValueOpPlus}, types(r.bend))
		assert.Zero(t, r.s.Calls().Insert)
	})
}

func TestRestore_BestEffort(t *testing.T) {
	failMinus := false
	r := newRig(t, scene.WithAddFault(func(_ string, op host.ValueOpType) error {
		if failMinus && op == host.ValueOpMinus {
			return errors.New("rejected")
		}
		return nil
	}))
	r.bend.Attach(host.ValueOpPlus, r.dial, 0)
	r.bend.Attach(host.ValueOpMinus, r.twist, 0)
	r.bend.Attach(host.ValueOpTimes, r.dial, 0)

	snap, err := dialvalue.Extract(r.bend)
	require.NoError(t, err)
	failMinus = true

	err = dialvalue.Restore(r.bend, snap)
	require.Error(t, err)
	assert.ErrorIs(t, err, dialvalue.ErrHostOperation)
	var herr *dialvalue.HostOperationError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "add", herr.Op)
	assert.Equal(t, 1, herr.Index)
	assert.Equal(t, []host.ValueOpType{host.ValueOpPlus, host.ValueOpTimes}, types(r.bend))
}

func TestExtract_ControlPointsAreZeroBased(t *testing.T) {
	r := newRig(t)
	op := r.bend.Attach(host.ValueOpKey, r.dial, 0,
		host.ControlPoint{Key: 2, Value: 20},
		host.ControlPoint{Key: 0, Value: 5},
		host.ControlPoint{Key: 1, Value: 10})

	k, v, err := op.GetKey(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, k)
	assert.Equal(t, 5.0, v)
	_, _, err = op.GetKey(3)
	assert.ErrorIs(t, err, host.ErrIndexOutOfRange)

	snap, err := dialvalue.Extract(r.bend)
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, []host.ControlPoint{{Key: 0, Value: 5}, {Key: 1, Value: 10}, {Key: 2, Value: 20}}, snap.Records[0].Keys)

	require.NoError(t, dialvalue.Restore(r.bend, snap))
	assert.Equal(t, snap.Records[0].Keys, r.bend.Operations()[0].ControlPoints())
}
