package poa

// GenerateMSA produces one row per admitted sequence, in admission order,
// each of identical length equal to the number of aligned-equivalence
// classes, gaps rendered as '-'. If includeConsensus is true, one further
// row is appended holding the heaviest-bundle consensus placed at its
// column positions.
func (g *Graph) GenerateMSA(includeConsensus bool) ([]string, error) {
	rigorous, err := g.rigorousSort()
	if err != nil {
		return nil, err
	}

	col := make([]int, len(g.nodes))
	numColumns := 0
	for i := 0; i < len(rigorous); i++ {
		id := rigorous[i]
		if g.nodes[id].typ != TypeRepresentative {
			continue
		}
		col[id] = numColumns
		for j := 0; j < len(g.nodes[id].aligned); j++ {
			i++
			col[rigorous[i]] = numColumns
		}
		numColumns++
	}

	rows := make([]string, 0, g.numSequences+1)
	for s := 0; s < g.numSequences; s++ {
		row, err := g.emitRow(g.startNodeIDs[s], s, col, numColumns)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if includeConsensus {
		path, err := g.HeaviestBundle()
		if err != nil {
			return nil, err
		}
		buf := make([]byte, numColumns)
		for i := range buf {
			buf[i] = '-'
		}
		for _, id := range path {
			buf[col[id]] = g.nodes[id].letter
		}
		rows = append(rows, string(buf))
	}

	return rows, nil
}

// emitRow walks the unique path of sequence label seq starting at
// startNodeID, placing each node's letter at its assigned column.
func (g *Graph) emitRow(startNodeID, seq int, col []int, numColumns int) (string, error) {
	buf := make([]byte, numColumns)
	for i := range buf {
		buf[i] = '-'
	}

	cur := startNodeID
	for cur != -1 {
		buf[col[cur]] = g.nodes[cur].letter
		cur = g.nextOnPath(cur, seq)
	}
	return string(buf), nil
}

// nextOnPath follows the unique out-edge of cur whose label set contains
// seq. Since a sequence is a simple path, there is at most one such edge.
// Returns -1 when there is none (end of path).
func (g *Graph) nextOnPath(cur, seq int) int {
	for _, eid := range g.nodes[cur].outEdges {
		if g.edges[eid].HasLabel(seq) {
			return g.edges[eid].end
		}
	}
	return -1
}

// CheckMSA is a diagnostic: the gap-stripped MSA row at position i must
// equal the original sequence at indices[i]. It returns ErrCheckMSAMismatch
// on the first violation found.
func CheckMSA(msa []string, originals []string, indices []int) error {
	for i, idx := range indices {
		stripped := make([]byte, 0, len(msa[i]))
		for j := 0; j < len(msa[i]); j++ {
			if msa[i][j] != '-' {
				stripped = append(stripped, msa[i][j])
			}
		}
		if string(stripped) != originals[idx] {
			return ErrCheckMSAMismatch
		}
	}
	return nil
}
