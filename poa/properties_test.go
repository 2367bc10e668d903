package poa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbio/poagraph/poa"
)

// buildS3Graph reproduces spec scenario S3, used by several invariant checks
// below.
func buildS3Graph(t *testing.T) *poa.Graph {
	t.Helper()
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)
	err = g.AddAlignment(poa.NewAlignment([]int{0, 1, 2, 3}, []int{0, 1, 2, 3}), "AGGT", poa.UniformWeight(1.0))
	require.NoError(t, err)
	return g
}

// TestInvariant_TopologicalOrder checks property 1: every in-edge source
// appears earlier than its target in the cached order.
func TestInvariant_TopologicalOrder(t *testing.T) {
	g := buildS3Graph(t)
	assert.True(t, g.IsTopologicallySorted(g.Order()))
}

// TestInvariant_NoDuplicateEdges checks property 2: at most one edge per
// (begin, end) pair.
func TestInvariant_NoDuplicateEdges(t *testing.T) {
	g := buildS3Graph(t)
	seen := make(map[[2]int]bool)
	for i := 0; i < g.NumEdges(); i++ {
		e := g.Edge(i)
		key := [2]int{e.Begin(), e.End()}
		assert.False(t, seen[key], "duplicate edge %v", key)
		seen[key] = true
	}
}

// TestInvariant_AlignedSymmetry checks property 3: aligned is a symmetric
// relation.
func TestInvariant_AlignedSymmetry(t *testing.T) {
	g := buildS3Graph(t)
	for i := 0; i < g.NumNodes(); i++ {
		for _, j := range g.Node(i).AlignedNodeIDs() {
			assert.Contains(t, g.Node(j).AlignedNodeIDs(), i, "aligned(%d,%d) not symmetric", i, j)
		}
	}
}

// TestInvariant_AlignedLettersDistinct checks property 4: within one
// aligned class, letters are pairwise distinct.
func TestInvariant_AlignedLettersDistinct(t *testing.T) {
	g := buildS3Graph(t)
	for i := 0; i < g.NumNodes(); i++ {
		seenLetters := map[byte]bool{g.Node(i).Letter(): true}
		for _, j := range g.Node(i).AlignedNodeIDs() {
			letter := g.Node(j).Letter()
			assert.False(t, seenLetters[letter], "duplicate letter %q in aligned class of node %d", letter, i)
			seenLetters[letter] = true
		}
	}
}

// TestInvariant_RoundTrip checks property 5: stripping '-' from an MSA row
// reproduces the original sequence exactly.
func TestInvariant_RoundTrip(t *testing.T) {
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)
	require.NoError(t, g.AddAlignment(poa.NewAlignment([]int{0, 1, -1, 2, 3}, []int{0, 1, 2, 3, 4}), "ACCGT", poa.UniformWeight(1.0)))

	msa, err := g.GenerateMSA(false)
	require.NoError(t, err)

	originals := []string{"ACGT", "ACCGT"}
	require.NoError(t, poa.CheckMSA(msa, originals, []int{0, 1}))
}

// TestInvariant_RoundTripMismatch checks that CheckMSA reports a mismatch
// when the stripped row disagrees with the claimed original.
func TestInvariant_RoundTripMismatch(t *testing.T) {
	err := poa.CheckMSA([]string{"A-T"}, []string{"AT", "GG"}, []int{1})
	assert.ErrorIs(t, err, poa.ErrCheckMSAMismatch)
}

// TestInvariant_EqualRowLength checks property 6: every MSA row has
// identical length.
func TestInvariant_EqualRowLength(t *testing.T) {
	g := buildS3Graph(t)
	msa, err := g.GenerateMSA(true)
	require.NoError(t, err)
	require.NotEmpty(t, msa)
	for _, row := range msa {
		assert.Len(t, row, len(msa[0]))
	}
}

// TestInvariant_EdgeWeightConservation checks property 7: summing the
// total weight of every edge equals the sum, over admitted
// sequences, of weights_s[i]+weights_s[i+1] along each sequence's path.
func TestInvariant_EdgeWeightConservation(t *testing.T) {
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)
	require.NoError(t, g.AddAlignment(poa.NewAlignment([]int{0, 1, 2, 3}, []int{0, 1, 2, 3}), "ACGT", poa.UniformWeight(1.0)))

	// Both admitted sequences are "ACGT" with uniform weight 1: each of the
	// 3 transitions contributes 1+1=2, twice (once per sequence) = 12.
	var total float64
	for i := 0; i < g.NumEdges(); i++ {
		total += g.Edge(i).TotalWeight()
	}
	assert.Equal(t, 12.0, total)
}

// TestInvariant_ConsensusIsAPath checks property 8: the consensus is a
// contiguous path with each step connected by a real edge.
func TestInvariant_ConsensusIsAPath(t *testing.T) {
	g := buildS3Graph(t)
	path, err := g.HeaviestBundle()
	require.NoError(t, err)
	require.NotEmpty(t, path)

	for i := 0; i+1 < len(path); i++ {
		_, ok := g.EdgeBetween(path[i], path[i+1])
		assert.True(t, ok, "no edge between consensus steps %d and %d", path[i], path[i+1])
	}
	// The path ends at a sink (no outgoing edges) after branch completion.
	last := path[len(path)-1]
	assert.Empty(t, g.Node(last).OutEdges())
}

// TestInvariant_SortIdempotent checks property 9: re-sorting an
// already-clean graph leaves the order unchanged.
func TestInvariant_SortIdempotent(t *testing.T) {
	g := buildS3Graph(t)
	before := append([]int(nil), g.Order()...)

	// AddAlignment always re-sorts at the end; a no-op mutation-free re-sort
	// is exercised indirectly by generating the MSA twice (each rigorous
	// pass builds its own order and leaves the plain one untouched) and
	// checking stability.
	_, err := g.GenerateMSA(false)
	require.NoError(t, err)
	_, err = g.GenerateMSA(false)
	require.NoError(t, err)

	assert.Equal(t, before, g.Order())
}
