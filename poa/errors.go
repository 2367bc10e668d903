package poa

import "errors"

// Sentinel errors returned by the poa package.
//
// The source engine this package is modeled on treats these conditions as
// programmer-error assertions; this rendition downgrades them to error
// returns per spec — callers should check with errors.Is.
var (
	// ErrEmptySequence indicates a zero-length sequence was passed to a
	// constructor or to AddAlignment.
	ErrEmptySequence = errors.New("poa: sequence is empty")

	// ErrLengthMismatch indicates a sequence and its weights (or quality
	// string) have different lengths.
	ErrLengthMismatch = errors.New("poa: sequence and weights length mismatch")

	// ErrNotDAG indicates the topological sort found a back-edge onto the
	// current recursion stack: construction has produced a cycle, which
	// should be unreachable given the construction rules.
	ErrNotDAG = errors.New("poa: graph is not a DAG")

	// ErrAlignmentMalformed indicates an Alignment view violates its
	// contract: unequal array lengths, or non-monotonic indices.
	ErrAlignmentMalformed = errors.New("poa: alignment view is malformed")

	// ErrCheckMSAMismatch indicates CheckMSA found a stripped MSA row that
	// does not reproduce its claimed original sequence. Diagnostic only.
	ErrCheckMSAMismatch = errors.New("poa: msa row does not match original sequence")

	// ErrNodeIndex indicates a node id referenced by an Alignment view or by
	// caller code does not exist in the graph.
	ErrNodeIndex = errors.New("poa: node id out of range")
)
