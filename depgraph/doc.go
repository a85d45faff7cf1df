// Package depgraph builds the dependency graph of a scene's parameters and
// answers structural questions about it.
//
// Every parameter is a vertex identified by "figure/actor/parameter" (props
// and other unparented actors use the figure name "_NO_FIG_"). Every value
// operation with a resolved source adds a directed edge
// source → dependent, carrying the operation type and its index on the
// dependent parameter. Operations without a source cannot be drawn as edges;
// they are kept in Graph.Dangling so callers can report them.
//
// Graph mirrors a small subset of a general-purpose adjacency-map graph:
//
//   - directed multigraph with self-loops (a parameter may drive itself, and
//     two parameters may be linked by several operations);
//   - deterministic enumeration: Vertices, Edges and Neighbors return sorted
//     results;
//   - a single sync.RWMutex guarding the maps, so a built graph can be read
//     from several goroutines.
//
// Algorithms:
//
//	DetectCycles(g)          all simple cycles, canonical rotation, sorted
//	TopologicalSort(g, ...)  sources before dependents; ErrCycleDetected on a cycle
//	Downstream(g, id, ...)   breadth-first walk of what id drives, with depth and paths
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrGraphNil        - nil *Graph passed to an algorithm.
//	ErrCycleDetected   - TopologicalSort met a back edge.
package depgraph
