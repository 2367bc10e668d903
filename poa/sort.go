package poa

// mark values used by both the plain and rigorous topological sorts.
const (
	markUnvisited uint8 = 0
	markOnStack   uint8 = 1
	markDone      uint8 = 2
)

// resort rebuilds the cached plain topological order. It is called at the
// end of every mutating operation so the order is never observably stale.
func (g *Graph) resort() error {
	order, err := g.topologicalSort()
	if err != nil {
		return err
	}
	g.order = order
	g.orderDirty = false
	g.consensusFresh = false
	return nil
}

// Order returns the cached topological order. It is always valid: the
// engine re-sorts at the end of every mutation, so the dirty flag never
// escapes to callers.
func (g *Graph) Order() []int {
	return g.order
}

// topologicalSort computes a depth-first post-order over incoming edges:
// visiting a node recurses into its ancestors first, then appends the node,
// so every node is appended only after all of its ancestors have been.
// Visiting a node already on the current recursion stack indicates a cycle.
func (g *Graph) topologicalSort() ([]int, error) {
	marks := make([]uint8, len(g.nodes))
	order := make([]int, 0, len(g.nodes))

	var visit func(id int) error
	visit = func(id int) error {
		switch marks[id] {
		case markOnStack:
			return ErrNotDAG
		case markDone:
			return nil
		}
		marks[id] = markOnStack
		for _, eid := range g.nodes[id].inEdges {
			if err := visit(g.edges[eid].begin); err != nil {
				return err
			}
		}
		marks[id] = markDone
		order = append(order, id)
		return nil
	}

	for id := range g.nodes {
		if marks[id] == markUnvisited {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}

// IsTopologicallySorted reports whether order is a valid topological order
// over the current graph: for every node, every in-edge's source must have
// appeared earlier in order.
func (g *Graph) IsTopologicallySorted(order []int) bool {
	if len(order) != len(g.nodes) {
		return false
	}
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		for _, eid := range g.nodes[id].inEdges {
			if !seen[g.edges[eid].begin] {
				return false
			}
		}
		seen[id] = true
	}
	return true
}

// rigorousState tracks, per node, whether it has been fully emitted (done),
// merely expanded (its ancestors walked, awaiting its class representative's
// batch), or not yet touched.
type rigorousState uint8

const (
	rsUnvisited rigorousState = iota
	rsExpanding
	rsDone
)

// rigorousSort produces a topological order that additionally places every
// aligned-equivalence class as a contiguous run, representative first. It
// is used only for MSA emission and is returned as a separate slice; the
// cached plain order (g.order) is left unchanged.
func (g *Graph) rigorousSort() ([]int, error) {
	state := make([]rigorousState, len(g.nodes))
	onStack := make([]bool, len(g.nodes))
	order := make([]int, 0, len(g.nodes))

	var visit func(id int) error
	visit = func(id int) error {
		if onStack[id] {
			return ErrNotDAG
		}
		if state[id] != rsUnvisited {
			return nil
		}

		onStack[id] = true
		for _, eid := range g.nodes[id].inEdges {
			if err := visit(g.edges[eid].begin); err != nil {
				return err
			}
		}

		// A representative also pulls in each aligned member's own
		// ancestors before the batch is finalized below, so a predecessor
		// unique to a secondary node (one only it has an in-edge from)
		// is still emitted ahead of it.
		if g.nodes[id].typ == TypeRepresentative {
			for _, aid := range g.nodes[id].aligned {
				if err := visit(aid); err != nil {
					return err
				}
			}
		}
		onStack[id] = false
		state[id] = rsExpanding

		if g.nodes[id].typ == TypeRepresentative {
			state[id] = rsDone
			order = append(order, id)
			for _, aid := range g.nodes[id].aligned {
				state[aid] = rsDone
				order = append(order, aid)
			}
		}
		return nil
	}

	// Walk in plain-order sequence so the traversal root order matches the
	// source's convention of driving rigorous visitation from the existing
	// topological order.
	for _, id := range g.order {
		if state[id] == rsUnvisited {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}
