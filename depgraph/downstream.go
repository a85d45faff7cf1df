// File: downstream.go
// Role: Breadth-first impact analysis: which parameters change when one
//       parameter's value changes.
// Determinism:
//   - Neighbors are visited in NeighborIDs order, so Order is stable.

package depgraph

import (
	"context"
	"fmt"
)

// Reach is the result of Downstream.
type Reach struct {
	// Order lists reached vertex IDs, start first, in breadth-first order.
	Order []string

	// Depth maps each reached ID to its number of operation hops from start.
	Depth map[string]int

	// Parent maps each reached ID except start to the vertex it was reached
	// from.
	Parent map[string]string
}

// Path returns the chain of vertex IDs from the start to id, or nil when id
// was not reached.
func (r *Reach) Path(id string) []string {
	if _, ok := r.Depth[id]; !ok {
		return nil
	}
	path := []string{id}
	for {
		p, ok := r.Parent[id]
		if !ok {
			break
		}
		path = append(path, p)
		id = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ReachOption configures Downstream.
type ReachOption func(*reachOptions)

type reachOptions struct {
	ctx      context.Context
	maxDepth int
}

// WithMaxDepth stops the walk after n hops. Zero or less means unlimited.
func WithMaxDepth(n int) ReachOption {
	return func(o *reachOptions) { o.maxDepth = n }
}

// WithReachContext sets a cancellation context. A nil context has no effect.
func WithReachContext(ctx context.Context) ReachOption {
	return func(o *reachOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type reachItem struct {
	id    string
	depth int
}

// Downstream walks the operations driven by start, directly or
// transitively. Cycles are followed once.
func Downstream(g *Graph, start string, options ...ReachOption) (*Reach, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("depgraph: Downstream %q: %w", start, ErrVertexNotFound)
	}
	o := reachOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&o)
	}

	r := &Reach{Depth: map[string]int{}, Parent: map[string]string{}}
	queue := []reachItem{{id: start}}
	r.Depth[start] = 0
	for len(queue) > 0 {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		item := queue[0]
		queue = queue[1:]
		r.Order = append(r.Order, item.id)

		next := item.depth + 1
		if o.maxDepth > 0 && next > o.maxDepth {
			continue
		}
		nbrs, err := g.NeighborIDs(item.id)
		if err != nil {
			return nil, fmt.Errorf("depgraph: Downstream: NeighborIDs(%q): %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := r.Depth[nbr]; seen {
				continue
			}
			r.Depth[nbr] = next
			r.Parent[nbr] = item.id
			queue = append(queue, reachItem{id: nbr, depth: next})
		}
	}

	return r, nil
}
