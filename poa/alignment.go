package poa

// Alignment is a paired sequence view describing, for each step of a new
// sequence being incorporated, which existing graph node it aligns to (or
// gap) and which position of the new sequence it consumes (or gap).
//
// NodeIDs[i] is either an existing node id or -1 (gap on the graph side).
// SeqIDs[i] is either an index into the new sequence or -1 (gap on the
// sequence side). Indices must be monotonically non-decreasing on each
// side where not -1. An external aligner (see package align) produces
// this view; the poa package only consumes it.
type Alignment struct {
	NodeIDs []int
	SeqIDs  []int
}

// NewAlignment builds an Alignment from parallel node/seq index arrays.
func NewAlignment(nodeIDs, seqIDs []int) *Alignment {
	return &Alignment{NodeIDs: nodeIDs, SeqIDs: seqIDs}
}

// Empty reports whether this alignment has no anchoring to the existing
// graph at all (a fully disjoint new sequence).
func (a *Alignment) Empty() bool {
	return a == nil || len(a.NodeIDs) == 0
}

// validate checks the structural contract of an Alignment view: equal
// array lengths and non-decreasing indices on each side, ignoring -1
// entries. It does not check that referenced node ids exist; the caller
// (Graph.AddAlignment) does that as it walks the alignment.
func (a *Alignment) validate() error {
	if len(a.NodeIDs) != len(a.SeqIDs) {
		return ErrAlignmentMalformed
	}

	lastNode, lastSeq := -1, -1
	for i := range a.NodeIDs {
		if nid := a.NodeIDs[i]; nid != -1 {
			if nid < lastNode {
				return ErrAlignmentMalformed
			}
			lastNode = nid
		}
		if sid := a.SeqIDs[i]; sid != -1 {
			if sid < lastSeq {
				return ErrAlignmentMalformed
			}
			lastSeq = sid
		}
	}

	return nil
}
