package depgraph

import (
	"errors"
	"sync"

	"github.com/GeoffIX/PoserLib/host"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("depgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("depgraph: vertex not found")

	// ErrGraphNil is returned when a nil *Graph is passed to an algorithm.
	ErrGraphNil = errors.New("depgraph: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort encountered a cycle.
	ErrCycleDetected = errors.New("depgraph: cycle detected")
)

// NoFigure is the figure component of vertex IDs for actors without a figure.
const NoFigure = "_NO_FIG_"

// Visitation states used by the depth-first algorithms.
const (
	white = iota // not visited
	gray         // on the recursion stack
	black        // fully explored
)

// Vertex is one parameter of the scene.
type Vertex struct {
	// ID is "figure/actor/parameter".
	ID string

	Figure string
	Actor  string
	Parm   string

	// Param is the host parameter, nil for vertices added by ID only.
	Param host.Parameter
}

// Edge is one value operation linking a source parameter to the parameter it
// drives.
type Edge struct {
	// ID is unique within the graph ("e1", "e2", ...).
	ID string

	// From is the source parameter's vertex ID.
	From string

	// To is the dependent parameter's vertex ID.
	To string

	// Op is the operation type.
	Op host.ValueOpType

	// Index is the operation's position on the dependent parameter.
	Index int
}

// Dangling records an operation whose source parameter is absent.
type Dangling struct {
	Vertex string
	Index  int
	Op     host.ValueOpType
}

// Graph is a directed multigraph of parameter dependencies.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[from][to][edgeID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}

	// Dangling lists unresolved operations in discovery order.
	Dangling []Dangling
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
}
