// File: cycle.go
// Role: Enumerate dependency cycles.
// Determinism:
//   - Each cycle is reported once, closed ([v0, ..., v0]) and rotated to its
//     lexicographically smallest form; the list is sorted by signature.
// Complexity:
//   - Time O(V + E + C·L), Memory O(V + L_max).

package depgraph

import (
	"fmt"
	"sort"
	"strings"
)

// DetectCycles reports every distinct dependency cycle of g found through
// back edges. A parameter that drives itself is a cycle of length one.
// A nil graph is cycle-free.
func DetectCycles(g *Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	c := &cycleFinder{
		g:     g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if c.state[v] == white {
			if err := c.visit(v); err != nil {
				return false, nil, fmt.Errorf("depgraph: DetectCycles: %w", err)
			}
		}
	}

	sort.Slice(c.cycles, func(i, j int) bool {
		return signature(c.cycles[i]) < signature(c.cycles[j])
	})
	if len(c.cycles) == 0 {
		return false, nil, nil
	}

	return true, c.cycles, nil
}

type cycleFinder struct {
	g      *Graph
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

func (c *cycleFinder) visit(id string) error {
	c.state[id] = gray
	c.path = append(c.path, id)

	nbrs, err := c.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}
	for _, nbr := range nbrs {
		switch c.state[nbr] {
		case white:
			if err := c.visit(nbr); err != nil {
				return err
			}
		case gray:
			c.record(nbr)
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[id] = black

	return nil
}

// record stores the cycle closed by the back edge to start, once.
func (c *cycleFinder) record(start string) {
	idx := indexOf(c.path, start)
	seq := append([]string(nil), c.path[idx:]...)

	rot := minimalRotation(seq)
	closed := append(rot, rot[0])
	sig := signature(closed)
	if _, dup := c.seen[sig]; dup {
		return
	}
	c.seen[sig] = struct{}{}
	c.cycles = append(c.cycles, closed)
}

func signature(c []string) string { return strings.Join(c, ",") }

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// minimalRotation returns the lexicographically smallest rotation of s
// using Booth's failure-function scan in O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	d := make([]string, 0, 2*n)
	d = append(d, s...)
	d = append(d, s...)

	fail := make([]int, 2*n)
	for i := range fail {
		fail[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := fail[j-k-1]
		for i != -1 && d[j] != d[k+i+1] {
			if d[j] < d[k+i+1] {
				k = j - i - 1
			}
			i = fail[i]
		}
		if d[j] != d[k+i+1] {
			if d[j] < d[k] {
				k = j
			}
			fail[j-k] = -1
		} else {
			fail[j-k] = i + 1
		}
	}

	return append([]string(nil), d[k:k+n]...)
}
