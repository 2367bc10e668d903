package poa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbio/poagraph/poa"
)

// TestCreate_EmptySequence verifies the empty-input rejection.
func TestCreate_EmptySequence(t *testing.T) {
	_, err := poa.Create("", 1.0)
	assert.ErrorIs(t, err, poa.ErrEmptySequence)
}

// TestCreateWithWeights_LengthMismatch verifies the length-mismatch rejection.
func TestCreateWithWeights_LengthMismatch(t *testing.T) {
	_, err := poa.CreateWithWeights("ACGT", []float64{1, 1})
	assert.ErrorIs(t, err, poa.ErrLengthMismatch)
}

// TestCreateWithQuality_LengthMismatch verifies quality strings must match
// sequence length.
func TestCreateWithQuality_LengthMismatch(t *testing.T) {
	_, err := poa.CreateWithQuality("ACGT", "!!!")
	assert.ErrorIs(t, err, poa.ErrLengthMismatch)
}

// TestQualityToWeight checks the PHRED convention: weight = q - 33.
func TestQualityToWeight(t *testing.T) {
	assert.Equal(t, 0.0, poa.QualityToWeight('!'))
	assert.Equal(t, 40.0, poa.QualityToWeight('I'))
}

// TestS1_Seed covers spec scenario S1: a seed graph reproduces its own
// sequence as its sole MSA row and as its consensus, with edge weights
// doubled from the uniform per-position weight.
func TestS1_Seed(t *testing.T) {
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	for i := 0; i < g.NumEdges(); i++ {
		assert.Equal(t, 2.0, g.Edge(i).TotalWeight())
	}

	msa, err := g.GenerateMSA(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT"}, msa)

	consensus, err := g.GenerateConsensus()
	require.NoError(t, err)
	assert.Equal(t, "ACGT", consensus)
}

// TestS2_ExactReuse covers spec scenario S2: admitting an identical
// sequence reuses every existing node and coalesces every edge.
func TestS2_ExactReuse(t *testing.T) {
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignment(poa.NewAlignment([]int{0, 1, 2, 3}, []int{0, 1, 2, 3}), "ACGT", poa.UniformWeight(1.0))
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	for i := 0; i < g.NumEdges(); i++ {
		assert.Equal(t, 4.0, g.Edge(i).TotalWeight())
	}

	msa, err := g.GenerateMSA(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "ACGT"}, msa)
}

// TestS3_Substitution covers spec scenario S3: a mismatching letter forks a
// secondary node aligned to the existing class, without changing MSA width.
func TestS3_Substitution(t *testing.T) {
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignment(poa.NewAlignment([]int{0, 1, 2, 3}, []int{0, 1, 2, 3}), "AGGT", poa.UniformWeight(1.0))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumNodes()) // one secondary node forked for 'G'
	assert.Len(t, g.Node(1).AlignedNodeIDs(), 1)
	assert.Equal(t, byte('G'), g.Node(g.Node(1).AlignedNodeIDs()[0]).Letter())

	msa, err := g.GenerateMSA(false)
	require.NoError(t, err)
	require.Len(t, msa, 2)
	for _, row := range msa {
		assert.Len(t, row, 4)
	}
	assert.ElementsMatch(t, []string{"ACGT", "AGGT"}, msa)
}

// TestS4_Insertion covers spec scenario S4: an extra letter with no anchor
// inserts a fresh type-0 node, widening the MSA by one column.
func TestS4_Insertion(t *testing.T) {
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)

	alignment := poa.NewAlignment([]int{0, 1, -1, 2, 3}, []int{0, 1, 2, 3, 4})
	err = g.AddAlignment(alignment, "ACCGT", poa.UniformWeight(1.0))
	require.NoError(t, err)

	msa, err := g.GenerateMSA(false)
	require.NoError(t, err)
	require.Len(t, msa, 2)
	assert.Len(t, msa[0], 5)
	assert.Equal(t, "AC-GT", msa[0])
	assert.Equal(t, "ACCGT", msa[1])
}

// TestS5_MixedIndel covers spec scenario S5: a single-letter insertion in
// the middle of a two-node seed.
func TestS5_MixedIndel(t *testing.T) {
	g, err := poa.Create("AT", 1.0)
	require.NoError(t, err)

	alignment := poa.NewAlignment([]int{0, -1, 1}, []int{0, 1, 2})
	err = g.AddAlignment(alignment, "AGT", poa.UniformWeight(1.0))
	require.NoError(t, err)

	msa, err := g.GenerateMSA(false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A-T", "AGT"}, msa)

	consensus, err := g.GenerateConsensus()
	require.NoError(t, err)
	assert.Len(t, consensus, 3)
}

// TestS6_DisjointComponent covers spec scenario S6: an empty alignment
// admits a fully disjoint chain, doubling MSA width across two components.
func TestS6_DisjointComponent(t *testing.T) {
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignment(poa.NewAlignment(nil, nil), "GGGG", poa.UniformWeight(1.0))
	require.NoError(t, err)

	msa, err := g.GenerateMSA(false)
	require.NoError(t, err)
	require.Len(t, msa, 2)
	assert.Len(t, msa[0], 8)
	assert.ElementsMatch(t, []string{"ACGT----", "----GGGG"}, msa)
}

// TestAddAlignment_RejectsBadNodeID ensures a node id outside the graph is
// rejected rather than silently indexed.
func TestAddAlignment_RejectsBadNodeID(t *testing.T) {
	g, err := poa.Create("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignment(poa.NewAlignment([]int{99}, []int{0}), "A", poa.UniformWeight(1.0))
	assert.ErrorIs(t, err, poa.ErrNodeIndex)
}

// TestAlphabet checks that the observed alphabet accumulates across
// sequences and is returned sorted.
func TestAlphabet(t *testing.T) {
	g, err := poa.Create("TGCA", 1.0)
	require.NoError(t, err)
	assert.Equal(t, []byte{'A', 'C', 'G', 'T'}, g.Alphabet())
}
