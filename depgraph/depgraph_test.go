package depgraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffIX/PoserLib/depgraph"
	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/scene"
)

// rig builds:
//
//	CTRL.dial --deltaAdd--> hip.bend
//	CTRL.dial --key-------> hip.bend
//	hip.bend  --plus------> hip.twist
//	hip.twist has one unresolved operation
func rig(t *testing.T) (*scene.Scene, *scene.Parameter) {
	t.Helper()
	s := scene.New()
	fig := s.AddFigure("Andy")
	hip := s.AddActor("hip", fig)
	ctrl := s.AddActor("CTRL", nil)

	dial := ctrl.AddParameter("dial", 1)
	bend := hip.AddParameter("bend", 0)
	twist := hip.AddParameter("twist", 0)
	bend.Attach(host.ValueOpDeltaAdd, dial, 0.5)
	bend.Attach(host.ValueOpKey, dial, 0, host.ControlPoint{Key: 0, Value: 0})
	twist.Attach(host.ValueOpPlus, bend, 0)
	twist.AddUnresolvedOperation(host.ValueOpTimes)
	twist.AddCallback(nil)

	return s, twist
}

func TestID(t *testing.T) {
	s, twist := rig(t)
	assert.Equal(t, "Andy/hip/twist", depgraph.ID(twist))

	dial, err := s.Lookup("CTRL", "dial")
	require.NoError(t, err)
	assert.Equal(t, "_NO_FIG_/CTRL/dial", depgraph.ID(dial))
}

func TestFromScene(t *testing.T) {
	s, _ := rig(t)
	g := depgraph.FromScene(s)

	assert.Equal(t, []string{"Andy/hip/bend", "Andy/hip/twist", "_NO_FIG_/CTRL/dial"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("_NO_FIG_/CTRL/dial", "Andy/hip/bend"))
	assert.False(t, g.HasEdge("Andy/hip/bend", "_NO_FIG_/CTRL/dial"))

	out, err := g.Neighbors("_NO_FIG_/CTRL/dial")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, host.ValueOpDeltaAdd, out[0].Op)
	assert.Equal(t, 0, out[0].Index)
	assert.Equal(t, host.ValueOpKey, out[1].Op)
	assert.Equal(t, 1, out[1].Index)

	in, o, err := g.Degree("Andy/hip/bend")
	require.NoError(t, err)
	assert.Equal(t, 2, in)
	assert.Equal(t, 1, o)

	assert.Equal(t, []depgraph.Dangling{{Vertex: "Andy/hip/twist", Index: 1, Op: host.ValueOpTimes}}, g.Dangling)

	v, err := g.Vertex("Andy/hip/twist")
	require.NoError(t, err)
	assert.Equal(t, "hip", v.Actor)
	assert.NotNil(t, v.Param)
}

func TestUpstream(t *testing.T) {
	s, twist := rig(t)
	s.AddActor("ball", nil).AddParameter("spin", 0)

	g := depgraph.Upstream(twist)
	assert.Equal(t, []string{"Andy/hip/bend", "Andy/hip/twist", "_NO_FIG_/CTRL/dial"}, g.Vertices())

	bend, err := s.Lookup("hip", "bend")
	require.NoError(t, err)
	g = depgraph.Upstream(bend)
	assert.Equal(t, []string{"Andy/hip/bend", "_NO_FIG_/CTRL/dial"}, g.Vertices())
	assert.Empty(t, g.Dangling)
}

func TestTopologicalSort(t *testing.T) {
	s, _ := rig(t)
	order, err := depgraph.TopologicalSort(depgraph.FromScene(s))
	require.NoError(t, err)
	assert.Equal(t, []string{"_NO_FIG_/CTRL/dial", "Andy/hip/bend", "Andy/hip/twist"}, order)

	_, err = depgraph.TopologicalSort(nil)
	assert.ErrorIs(t, err, depgraph.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = depgraph.TopologicalSort(depgraph.FromScene(s), depgraph.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTopologicalSort_Unrelated(t *testing.T) {
	g := depgraph.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(depgraph.Vertex{ID: id}))
	}
	order, err := depgraph.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestDetectCycles(t *testing.T) {
	s := scene.New()
	a := s.AddActor("box", nil)
	x := a.AddParameter("x", 0)
	y := a.AddParameter("y", 0)
	z := a.AddParameter("z", 0)
	x.Attach(host.ValueOpPlus, y, 0)
	y.Attach(host.ValueOpPlus, x, 0)
	z.Attach(host.ValueOpTimes, z, 0)

	g := depgraph.FromScene(s)
	has, cycles, err := depgraph.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{
		{"_NO_FIG_/box/x", "_NO_FIG_/box/y", "_NO_FIG_/box/x"},
		{"_NO_FIG_/box/z", "_NO_FIG_/box/z"},
	}, cycles)

	_, err = depgraph.TopologicalSort(g)
	assert.ErrorIs(t, err, depgraph.ErrCycleDetected)
}

func TestDetectCycles_Acyclic(t *testing.T) {
	s, _ := rig(t)
	has, cycles, err := depgraph.DetectCycles(depgraph.FromScene(s))
	require.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)

	has, _, err = depgraph.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
}

func TestGraphErrors(t *testing.T) {
	g := depgraph.NewGraph()
	assert.ErrorIs(t, g.AddVertex(depgraph.Vertex{}), depgraph.ErrEmptyVertexID)
	_, err := g.AddEdge("a", "b", host.ValueOpPlus, 0)
	assert.ErrorIs(t, err, depgraph.ErrVertexNotFound)
	_, err = g.Neighbors("a")
	assert.ErrorIs(t, err, depgraph.ErrVertexNotFound)
	_, _, err = g.Degree("a")
	assert.ErrorIs(t, err, depgraph.ErrVertexNotFound)
}

func TestDownstream(t *testing.T) {
	s, _ := rig(t)
	g := depgraph.FromScene(s)

	r, err := depgraph.Downstream(g, "_NO_FIG_/CTRL/dial")
	require.NoError(t, err)
	assert.Equal(t, []string{"_NO_FIG_/CTRL/dial", "Andy/hip/bend", "Andy/hip/twist"}, r.Order)
	assert.Equal(t, 2, r.Depth["Andy/hip/twist"])
	assert.Equal(t, []string{"_NO_FIG_/CTRL/dial", "Andy/hip/bend", "Andy/hip/twist"}, r.Path("Andy/hip/twist"))
	assert.Nil(t, r.Path("nowhere"))

	r, err = depgraph.Downstream(g, "_NO_FIG_/CTRL/dial", depgraph.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"_NO_FIG_/CTRL/dial", "Andy/hip/bend"}, r.Order)

	_, err = depgraph.Downstream(g, "missing")
	assert.ErrorIs(t, err, depgraph.ErrVertexNotFound)
	_, err = depgraph.Downstream(nil, "x")
	assert.ErrorIs(t, err, depgraph.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = depgraph.Downstream(g, "_NO_FIG_/CTRL/dial", depgraph.WithReachContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDownstream_Cycle(t *testing.T) {
	s := scene.New()
	a := s.AddActor("box", nil)
	x := a.AddParameter("x", 0)
	y := a.AddParameter("y", 0)
	x.Attach(host.ValueOpPlus, y, 0)
	y.Attach(host.ValueOpPlus, x, 0)

	r, err := depgraph.Downstream(depgraph.FromScene(s), "_NO_FIG_/box/x")
	require.NoError(t, err)
	assert.Equal(t, []string{"_NO_FIG_/box/x", "_NO_FIG_/box/y"}, r.Order)
}
