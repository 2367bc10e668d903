package align

import (
	"errors"

	"github.com/lbio/poagraph/poa"
)

// ErrEmptyInput indicates Global was called with an empty consensus or an
// empty query sequence.
var ErrEmptyInput = errors.New("align: consensus and query must be non-empty")

// Config holds the scoring scheme for Global. The zero value is not usable;
// build one with NewConfig.
type Config struct {
	match    float64
	mismatch float64
	gap      float64
}

// Option customizes a Config before alignment. Option constructors validate
// their input and panic on values that would make the DP table meaningless.
type Option func(*Config)

// WithMatch sets the score awarded to a matching pair. Panics if match is
// not positive.
func WithMatch(match float64) Option {
	if match <= 0 {
		panic("align: WithMatch(match<=0)")
	}
	return func(c *Config) { c.match = match }
}

// WithMismatch sets the score (typically negative) awarded to a
// mismatching pair.
func WithMismatch(mismatch float64) Option {
	return func(c *Config) { c.mismatch = mismatch }
}

// WithGap sets the linear gap penalty (typically negative) charged per
// inserted or deleted position.
func WithGap(gap float64) Option {
	return func(c *Config) { c.gap = gap }
}

// NewConfig builds a Config from options, defaulting to match=1,
// mismatch=-1, gap=-2 when not overridden.
func NewConfig(opts ...Option) Config {
	c := Config{match: 1, mismatch: -1, gap: -2}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Global runs Needleman-Wunsch global alignment of query against
// consensus and returns the poa.Alignment view ready to hand to
// Graph.AddAlignment. consensus is indexed by graph node id in path
// order, as returned by poa.Graph.HeaviestBundle (or, for the very first
// sequence, is simply query itself and Global is not needed).
//
// The returned NodeIDs preserve consensus's order, and Graph.AddAlignment
// rejects (ErrAlignmentMalformed) an alignment whose node ids decrease.
// A consensus path whose ids are not ascending, such as one passing
// through a node inserted by an earlier read ahead of an older node,
// therefore yields an alignment AddAlignment rejects.
func Global(consensus []int, consensusLetters []byte, query string, cfg Config) (*poa.Alignment, error) {
	if len(consensus) == 0 || len(query) == 0 {
		return nil, ErrEmptyInput
	}

	n, m := len(consensus), len(query)
	score := make([][]float64, n+1)
	for i := range score {
		score[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		score[i][0] = score[i-1][0] + cfg.gap
	}
	for j := 1; j <= m; j++ {
		score[0][j] = score[0][j-1] + cfg.gap
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := cfg.mismatch
			if consensusLetters[i-1] == query[j-1] {
				sub = cfg.match
			}
			diag := score[i-1][j-1] + sub
			up := score[i-1][j] + cfg.gap
			left := score[i][j-1] + cfg.gap
			score[i][j] = max3(diag, up, left)
		}
	}

	nodeIDs := make([]int, 0, n+m)
	seqIDs := make([]int, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && score[i][j] == score[i-1][j-1]+substScore(cfg, consensusLetters[i-1], query[j-1]):
			nodeIDs = append(nodeIDs, consensus[i-1])
			seqIDs = append(seqIDs, j-1)
			i--
			j--
		case i > 0 && score[i][j] == score[i-1][j]+cfg.gap:
			nodeIDs = append(nodeIDs, consensus[i-1])
			seqIDs = append(seqIDs, -1)
			i--
		default:
			nodeIDs = append(nodeIDs, -1)
			seqIDs = append(seqIDs, j-1)
			j--
		}
	}
	reverseInts(nodeIDs)
	reverseInts(seqIDs)

	return poa.NewAlignment(nodeIDs, seqIDs), nil
}

func substScore(cfg Config, a, b byte) float64 {
	if a == b {
		return cfg.match
	}
	return cfg.mismatch
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
