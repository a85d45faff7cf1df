package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/GeoffIX/PoserLib/depgraph"
	"github.com/GeoffIX/PoserLib/host"
)

type GraphSuite struct {
	suite.Suite
	g *depgraph.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = depgraph.NewGraph()
	for _, id := range []string{"Andy/hip/bend", "Andy/hip/twist", "_NO_FIG_/CTRL/dial"} {
		s.Require().NoError(s.g.AddVertex(depgraph.Vertex{ID: id}))
	}
}

func (s *GraphSuite) TestAddVertexIsIdempotent() {
	require := require.New(s.T())
	require.Equal(3, s.g.VertexCount())

	require.NoError(s.g.AddVertex(depgraph.Vertex{ID: "Andy/hip/bend", Parm: "bend"}))
	require.Equal(3, s.g.VertexCount(), "duplicate ID must not add a vertex")

	v, err := s.g.Vertex("Andy/hip/bend")
	require.NoError(err)
	require.Empty(v.Parm, "existing vertex is kept")
}

func (s *GraphSuite) TestMultiEdges() {
	require := require.New(s.T())
	// Two operations on bend read the same dial.
	e1, err := s.g.AddEdge("_NO_FIG_/CTRL/dial", "Andy/hip/bend", host.ValueOpDeltaAdd, 0)
	require.NoError(err)
	e2, err := s.g.AddEdge("_NO_FIG_/CTRL/dial", "Andy/hip/bend", host.ValueOpKey, 1)
	require.NoError(err)
	require.NotEqual(e1, e2)
	require.Equal(2, s.g.EdgeCount())
	require.True(s.g.HasEdge("_NO_FIG_/CTRL/dial", "Andy/hip/bend"))
	require.False(s.g.HasEdge("Andy/hip/bend", "_NO_FIG_/CTRL/dial"), "edges are directed")

	ids, err := s.g.NeighborIDs("_NO_FIG_/CTRL/dial")
	require.NoError(err)
	require.Equal([]string{"Andy/hip/bend"}, ids)

	edges, err := s.g.Neighbors("_NO_FIG_/CTRL/dial")
	require.NoError(err)
	require.Len(edges, 2)
	require.Equal(0, edges[0].Index)
	require.Equal(1, edges[1].Index)
}

func (s *GraphSuite) TestDegree() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("_NO_FIG_/CTRL/dial", "Andy/hip/bend", host.ValueOpPlus, 0)
	require.NoError(err)
	_, err = s.g.AddEdge("Andy/hip/bend", "Andy/hip/twist", host.ValueOpTimes, 0)
	require.NoError(err)

	in, out, err := s.g.Degree("Andy/hip/bend")
	require.NoError(err)
	require.Equal(1, in)
	require.Equal(1, out)

	in, out, err = s.g.Degree("_NO_FIG_/CTRL/dial")
	require.NoError(err)
	require.Zero(in)
	require.Equal(1, out)
}

func (s *GraphSuite) TestVerticesSorted() {
	s.Require().Equal([]string{"Andy/hip/bend", "Andy/hip/twist", "_NO_FIG_/CTRL/dial"}, s.g.Vertices())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
