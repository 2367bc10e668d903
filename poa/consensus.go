package poa

// HeaviestBundle computes the max-total-weight path through the DAG (the
// consensus path) via a greedy prefix-sum walk over the topological order,
// followed by branch completion to force the endpoint forward to a true
// sink. Every call recomputes the path from scratch and overwrites the
// graph's cached consensus path with it; GenerateConsensus and
// GenerateMSA's consensus row each call it anew.
func (g *Graph) HeaviestBundle() ([]int, error) {
	n := len(g.nodes)
	score := make([]float64, n)
	pred := make([]int, n)
	for i := range pred {
		pred[i] = -1
	}

	maxID := 0
	for _, id := range g.order {
		g.relax(id, score, pred, nil)
		if score[maxID] < score[id] {
			maxID = id
		}
	}

	if len(g.nodes[maxID].outEdges) != 0 {
		rank := make([]int, n)
		for i, id := range g.order {
			rank[id] = i
		}
		for len(g.nodes[maxID].outEdges) != 0 {
			maxID = g.branchCompletion(score, pred, rank[maxID])
		}
	}

	path := []int{maxID}
	for pred[maxID] != -1 {
		maxID = pred[maxID]
		path = append(path, maxID)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	g.consensusPath = path
	g.consensusFresh = true
	return path, nil
}

// relax updates score[id]/pred[id] from id's in-edges: the heaviest
// in-edge wins, ties broken by preferring the source whose own score is
// larger. A node with no predecessor yet compares as though its score were
// negative infinity, so the first candidate edge is always accepted.
// If disqualified is non-nil, in-edges from a disqualified source are
// skipped entirely.
func (g *Graph) relax(id int, score []float64, pred []int, disqualified []bool) {
	for _, eid := range g.nodes[id].inEdges {
		e := g.edges[eid]
		u := e.begin
		if disqualified != nil && disqualified[u] {
			continue
		}

		betterWeight := e.totalWeight > score[id]
		tie := e.totalWeight == score[id] && (pred[id] == -1 || score[u] >= score[pred[id]])
		if betterWeight || tie {
			score[id] = e.totalWeight
			pred[id] = u
		}
	}
	if pred[id] != -1 {
		score[id] += score[pred[id]]
	}
}

// branchCompletion repairs a heaviest-bundle traversal that terminated at
// an interior node (rank in the topological order). It disqualifies every
// sibling predecessor of maxID's successors (a source feeding into one of
// maxID's out-neighbors other than maxID itself) by setting its score to
// -1, then recomputes score and pred for every node strictly downstream of
// rank, skipping in-edges whose source's score is -1 at that moment. A
// disqualified source that itself lies downstream of rank is recomputed in
// turn, so its out-edges count again once it has a new score. Returns the
// best-scoring downstream node, or node 0 if no downstream node scores
// above 0.
func (g *Graph) branchCompletion(score []float64, pred []int, rank int) int {
	nodeID := g.order[rank]

	disqualified := make([]bool, len(g.nodes))
	for _, eid := range g.nodes[nodeID].outEdges {
		w := g.edges[eid].end
		for _, oeid := range g.nodes[w].inEdges {
			src := g.edges[oeid].begin
			if src != nodeID {
				disqualified[src] = true
				score[src] = -1
			}
		}
	}

	maxScore := 0.0
	maxID := 0
	for i := rank + 1; i < len(g.order); i++ {
		id := g.order[i]
		score[id] = -1
		pred[id] = -1

		for _, eid := range g.nodes[id].inEdges {
			e := g.edges[eid]
			u := e.begin
			if score[u] == -1 {
				continue
			}

			betterWeight := e.totalWeight > score[id]
			tie := e.totalWeight == score[id] && (pred[id] == -1 || score[u] >= score[pred[id]])
			if betterWeight || tie {
				score[id] = e.totalWeight
				pred[id] = u
			}
		}
		if pred[id] != -1 {
			score[id] += score[pred[id]]
		}

		if maxScore < score[id] {
			maxScore = score[id]
			maxID = id
		}
	}
	return maxID
}

// GenerateConsensus returns the letters along the heaviest bundle, with no
// gaps.
func (g *Graph) GenerateConsensus() (string, error) {
	path, err := g.HeaviestBundle()
	if err != nil {
		return "", err
	}
	buf := make([]byte, len(path))
	for i, id := range path {
		buf[i] = g.nodes[id].letter
	}
	return string(buf), nil
}
