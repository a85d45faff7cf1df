package depgraph

import (
	"context"
	"fmt"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithContext sets a cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort orders every vertex so that each source parameter appears
// before the parameters it drives, which is the order a host must evaluate
// them in. The order is deterministic. A cycle yields ErrCycleDetected.
func TopologicalSort(g *Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	t := &topoSorter{
		g:     g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	// Unrelated vertices come out in ascending ID order.
	for i := len(verts) - 1; i >= 0; i-- {
		if t.state[verts[i]] == white {
			if err := t.visit(verts[i]); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

type topoSorter struct {
	g     *Graph
	ctx   context.Context
	state map[string]int
	order []string
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case gray:
		return fmt.Errorf("%w at %s", ErrCycleDetected, id)
	case black:
		return nil
	}
	t.state[id] = gray

	nbrs, err := t.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("depgraph: TopologicalSort: %w", err)
	}
	for i := len(nbrs) - 1; i >= 0; i-- {
		if err := t.visit(nbrs[i]); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
