package poa

// addNode appends a fresh node to the arena and returns its id.
func (g *Graph) addNode(letter byte, typ NodeType) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, newNode(id, letter, typ))
	return id
}

// addEdge wires an edge from begin to end carrying weight under the
// current sequence's label. If (begin, end) already has an edge, the new
// traversal coalesces into it: the label is appended and weight summed.
// Otherwise a fresh Edge is created and wired into both endpoints.
func (g *Graph) addEdge(begin, end int, weight float64) {
	label := g.numSequences
	if eid, ok := g.EdgeBetween(begin, end); ok {
		g.edges[eid].addSequence(label, weight)
		return
	}

	eid := len(g.edges)
	g.edges = append(g.edges, newEdge(eid, begin, end, label, weight))
	g.nodes[begin].addOutEdge(eid)
	g.nodes[end].addInEdge(eid)
}

// addChain adds a simple chain of fresh nodes over sequence[begin:end],
// wiring an edge between consecutive nodes with weight
// weights[i-1]+weights[i] (both endpoints contribute). Returns the id of
// the chain's first node, or -1 if the range is empty; addChain2 also
// returns the last node's id.
func (g *Graph) addChain(sequence string, weights []float64, begin, end int) int {
	first, _ := g.addChain2(sequence, weights, begin, end)
	return first
}

func (g *Graph) addChain2(sequence string, weights []float64, begin, end int) (first, last int) {
	if begin == end {
		return -1, -1
	}

	first = g.addNode(sequence[begin], TypeRepresentative)
	prev := first
	for i := begin + 1; i < end; i++ {
		cur := g.addNode(sequence[i], TypeRepresentative)
		g.addEdge(prev, cur, weights[i-1]+weights[i])
		prev = cur
	}
	return first, prev
}

// AddAlignment incorporates sequence into the graph given an Alignment view
// produced against this Graph, using weightSpec to derive per-position
// weights. If alignment is empty, sequence is admitted as a disjoint new
// seed chain.
func (g *Graph) AddAlignment(alignment *Alignment, sequence string, weightSpec WeightSpec) error {
	if len(sequence) == 0 {
		return ErrEmptySequence
	}
	weights, err := weightSpec.resolve(sequence)
	if err != nil {
		return err
	}

	g.observe(sequence)

	if alignment.Empty() {
		startID := g.addChain(sequence, weights, 0, len(sequence))
		g.numSequences++
		g.startNodeIDs = append(g.startNodeIDs, startID)
		return g.resort()
	}

	if err := alignment.validate(); err != nil {
		return err
	}
	for _, nid := range alignment.NodeIDs {
		if nid != -1 && (nid < 0 || nid >= len(g.nodes)) {
			return ErrNodeIndex
		}
	}

	nodeIDs, seqIDs := alignment.NodeIDs, alignment.SeqIDs

	var validSeqIDs []int
	for _, sid := range seqIDs {
		if sid != -1 {
			validSeqIDs = append(validSeqIDs, sid)
		}
	}
	if len(validSeqIDs) == 0 {
		startID := g.addChain(sequence, weights, 0, len(sequence))
		g.numSequences++
		g.startNodeIDs = append(g.startNodeIDs, startID)
		return g.resort()
	}
	firstValid, lastValid := validSeqIDs[0], validSeqIDs[len(validSeqIDs)-1]

	// Head chain: sequence[0:firstValid), unanchored to the graph.
	headFirst, headLast := g.addChain2(sequence, weights, 0, firstValid)
	startNodeID := -1
	headNodeID := -1
	if headFirst != -1 {
		startNodeID = headFirst
		headNodeID = headLast
	}

	// Tail chain: sequence[lastValid+1:end), unanchored to the graph.
	tailNodeID := g.addChain(sequence, weights, lastValid+1, len(sequence))

	prevWeight := 0.0
	if headNodeID != -1 {
		prevWeight = weights[firstValid-1]
	}

	for i := range nodeIDs {
		if seqIDs[i] == -1 {
			continue
		}
		letter := sequence[seqIDs[i]]
		newNodeID := g.resolveBodyNode(nodeIDs[i], letter)

		if startNodeID == -1 {
			startNodeID = newNodeID
		}
		if headNodeID != -1 {
			g.addEdge(headNodeID, newNodeID, prevWeight+weights[seqIDs[i]])
		}

		headNodeID = newNodeID
		prevWeight = weights[seqIDs[i]]
	}

	if tailNodeID != -1 {
		g.addEdge(headNodeID, tailNodeID, prevWeight+weights[lastValid+1])
	}

	g.numSequences++
	g.startNodeIDs = append(g.startNodeIDs, startNodeID)
	return g.resort()
}

// resolveBodyNode implements the per-position node resolution rule of
// AddAlignment's body walk: reuse an exact letter match, fork onto the
// aligned class when the anchor mismatches, or create a fresh anchorless
// node.
func (g *Graph) resolveBodyNode(anchorID int, letter byte) int {
	if anchorID == -1 {
		return g.addNode(letter, TypeRepresentative)
	}

	anchor := g.nodes[anchorID]
	if anchor.letter == letter {
		return anchorID
	}

	for _, aid := range anchor.aligned {
		if g.nodes[aid].letter == letter {
			return aid
		}
	}

	newID := g.addNode(letter, TypeSecondary)
	for _, aid := range anchor.aligned {
		g.nodes[newID].addAligned(aid)
		g.nodes[aid].addAligned(newID)
	}
	g.nodes[newID].addAligned(anchorID)
	g.nodes[anchorID].addAligned(newID)

	return newID
}
