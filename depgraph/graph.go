// File: graph.go
// Role: Vertex and edge lifecycle plus deterministic queries.
// Determinism:
//   - Vertices() sorted by ID asc.
//   - Edges() and Neighbors() sorted by (From, To, Index, edge sequence).
// Concurrency:
//   - All methods take g.mu; returned slices are fresh copies, returned
//     *Vertex and *Edge values are read-only by convention.

package depgraph

import (
	"sort"
	"strconv"

	"github.com/GeoffIX/PoserLib/host"
)

// AddVertex inserts v if its ID is not yet present. Adding an existing ID
// is a no-op that fills in a missing Param.
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if old, ok := g.vertices[v.ID]; ok {
		if old.Param == nil {
			old.Param = v.Param
		}
		return nil
	}
	vv := v
	g.vertices[v.ID] = &vv

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// AddEdge links from → to for the operation at index on the dependent
// parameter. Both endpoints must already exist. Returns the new edge ID.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, op host.ValueOpType, index int) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	e := &Edge{ID: eid, From: from, To: to, Op: op, Index: index}
	g.edges[eid] = e

	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacency[from] = inner
	}
	if inner[to] == nil {
		inner[to] = make(map[string]struct{})
	}
	inner[to][eid] = struct{}{}

	return eid, nil
}

// HasEdge reports whether at least one edge from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge in deterministic order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// Neighbors returns the outgoing edges of id (the operations id drives).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique, sorted IDs of the parameters id drives.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for to, bucket := range g.adjacency[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of operations id receives (in) and drives (out).
// A self-loop counts once in each direction.
func (g *Graph) Degree(id string) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	for _, e := range g.edges {
		if e.From == id {
			out++
		}
		if e.To == id {
			in++
		}
	}

	return in, out, nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i], es[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		if a.Index != b.Index {
			return a.Index < b.Index
		}

		return edgeSeq(a.ID) < edgeSeq(b.ID)
	})
}

func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}
