package pov

import "fmt"

// graph is the undirected view of a tree. Neighbors of a node list its
// children first, in order, then its parent.
type graph struct {
	adj map[string][]string
}

func newGraph(t *Tree) (*graph, error) {
	g := &graph{adj: make(map[string][]string)}
	if err := g.add(t, nil); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *graph) add(t, parent *Tree) error {
	if _, dup := g.adj[t.label]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, t.label)
	}

	neighbors := make([]string, 0, len(t.children)+1)
	for _, c := range t.children {
		neighbors = append(neighbors, c.label)
	}

	if parent != nil {
		neighbors = append(neighbors, parent.label)
	}

	g.adj[t.label] = neighbors

	for _, c := range t.children {
		if err := g.add(c, t); err != nil {
			return err
		}
	}

	return nil
}

func (g *graph) has(label string) bool {
	_, ok := g.adj[label]
	return ok
}

// rootAt builds the tree hanging from label. from is the neighbor label was
// entered from and is skipped; it is nil for the new root.
func (g *graph) rootAt(label string, from *string) *Tree {
	t := New(label)

	for _, n := range g.adj[label] {
		if from != nil && n == *from {
			continue
		}
		t.children = append(t.children, g.rootAt(n, &label))
	}

	return t
}

// path walks breadth first from `from`, recording how each node was reached,
// then follows the parent links back from `to`.
func (g *graph) path(from, to string) []string {
	parent := map[string]string{}
	seen := map[string]bool{from: true}
	queue := []string{from}

	for len(queue) > 0 && queue[0] != to {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range g.adj[cur] {
			if seen[n] {
				continue
			}
			seen[n] = true
			parent[n] = cur
			queue = append(queue, n)
		}
	}

	var reversed []string
	for cur := to; cur != from; cur = parent[cur] {
		reversed = append(reversed, cur)
	}
	reversed = append(reversed, from)

	out := make([]string, len(reversed))
	for i, l := range reversed {
		out[len(reversed)-1-i] = l
	}

	return out
}
