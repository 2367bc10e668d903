package poa

import (
	"fmt"
	"io"
)

// Print writes a DOT-format dump of the graph to w: node labels "id|letter",
// edge labels showing aggregate weight to 3 decimals, and a dotted
// undirected edge (drawn once, lower id to higher id) between aligned
// nodes.
func (g *Graph) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "digraph %d {\n", g.numSequences); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    graph [rankdir=LR]"); err != nil {
		return err
	}

	for _, n := range g.nodes {
		if _, err := fmt.Fprintf(w, "    %d [label = \"%d|%c\"]\n", n.id, n.id, n.letter); err != nil {
			return err
		}
		for _, eid := range n.outEdges {
			e := g.edges[eid]
			if _, err := fmt.Fprintf(w, "    %d -> %d [label = \"%.3f\"]\n", n.id, e.end, e.totalWeight); err != nil {
				return err
			}
		}
		for _, aid := range n.aligned {
			if aid > n.id {
				if _, err := fmt.Fprintf(w, "    %d -> %d [style = dotted, arrowhead = none]\n", n.id, aid); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
