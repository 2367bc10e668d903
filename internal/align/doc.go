// Package align implements the pairwise global aligner that a poagraph
// driver uses to turn each new sequence into a poa.Alignment view before
// calling Graph.AddAlignment.
//
// The aligner is Needleman-Wunsch: full dynamic-programming global
// alignment against the graph's current consensus, scored with a linear
// gap penalty and a configurable match/mismatch scheme. It is a
// collaborator, not a dependency of package poa: nothing in poa imports
// align, and any caller producing an equivalent Alignment view (a hand-
// built one in a test, or a smarter partial-order aligner later) works
// just as well.
package align
