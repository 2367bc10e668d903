package poa_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbio/poagraph/poa"
)

// TestPrint_SeedGraph checks the DOT rendering of a plain two-node seed
// chain: one line per node and one edge line.
func TestPrint_SeedGraph(t *testing.T) {
	g, err := poa.Create("AC", 1.0)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, g.Print(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph 1 {\n"))
	assert.Contains(t, out, "graph [rankdir=LR]")
	assert.Contains(t, out, `0 [label = "0|A"]`)
	assert.Contains(t, out, `1 [label = "1|C"]`)
	assert.Contains(t, out, `0 -> 1 [label = "2.000"]`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

// TestPrint_AlignedClassEmitsDottedEdgeOnce checks that a forked aligned
// pair is rendered as exactly one dotted edge, from the lower id.
func TestPrint_AlignedClassEmitsDottedEdgeOnce(t *testing.T) {
	g, err := poa.Create("AC", 1.0)
	require.NoError(t, err)
	require.NoError(t, g.AddAlignment(poa.NewAlignment([]int{0, 1}, []int{0, 1}), "AG", poa.UniformWeight(1.0)))

	var buf strings.Builder
	require.NoError(t, g.Print(&buf))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "style = dotted"))
	assert.Contains(t, out, "1 -> 2 [style = dotted, arrowhead = none]")
}
