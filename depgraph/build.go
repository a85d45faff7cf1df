package depgraph

import (
	"github.com/GeoffIX/PoserLib/host"
)

// ID returns the vertex ID of p: "figure/actor/parameter".
func ID(p host.Parameter) string {
	fig, actor := names(p)
	return fig + "/" + actor + "/" + p.Name()
}

func names(p host.Parameter) (fig, actor string) {
	fig, actor = NoFigure, ""
	if a := p.Actor(); a != nil {
		actor = a.Name()
		if f := a.Figure(); f != nil {
			fig = f.Name()
		}
	}

	return fig, actor
}

func vertexOf(p host.Parameter) Vertex {
	fig, actor := names(p)
	return Vertex{ID: ID(p), Figure: fig, Actor: actor, Parm: p.Name(), Param: p}
}

// FromScene builds the graph of every parameter of every actor in s.
// Parameters that are only reachable as operation sources are added too.
func FromScene(s host.Scene) *Graph {
	g := NewGraph()
	var params []host.Parameter
	for _, a := range s.Actors() {
		params = append(params, a.Parameters()...)
	}
	g.addAll(params, false)

	return g
}

// Upstream builds the graph of p and every parameter that drives it,
// directly or transitively.
func Upstream(p host.Parameter) *Graph {
	g := NewGraph()
	g.addAll([]host.Parameter{p}, true)

	return g
}

// addAll adds params and their operations. When follow is set, newly seen
// source parameters are expanded as well.
func (g *Graph) addAll(params []host.Parameter, follow bool) {
	queue := append([]host.Parameter(nil), params...)
	for _, p := range queue {
		_ = g.AddVertex(vertexOf(p))
	}

	expanded := make(map[string]bool)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		to := ID(p)
		if expanded[to] {
			continue
		}
		expanded[to] = true

		for i, op := range p.ValueOperations() {
			src := op.SourceParameter()
			if src == nil {
				if !op.Type().IsCallback() {
					g.Dangling = append(g.Dangling, Dangling{Vertex: to, Index: i, Op: op.Type()})
				}
				continue
			}
			from := ID(src)
			if !g.HasVertex(from) {
				_ = g.AddVertex(vertexOf(src))
			}
			_, _ = g.AddEdge(from, to, op.Type(), i)
			if follow {
				queue = append(queue, src)
			}
		}
	}
}
