// Package poa implements the core of a partial-order alignment (POA) graph
// engine: a directed acyclic graph whose paths spell a set of related
// sequences, built by repeatedly incorporating new sequences against an
// existing graph and folding matching positions onto shared nodes.
//
// A Graph owns an arena of Node and Edge values addressed by integer id;
// nothing is ever removed, and a mismatching letter at an existing column
// forks a new node tied to its siblings by an aligned-equivalence relation
// rather than by rewriting graph structure. From this DAG the engine
// produces a multiple sequence alignment (GenerateMSA) and a single
// heaviest-bundle consensus (GenerateConsensus).
//
// Construction:
//
//	g, err := poa.Create("ACGT", 1.0)             // uniform weight per position
//	g, err := poa.CreateWithQuality("ACGT", "!!!!") // PHRED-style quality weights
//	g, err := poa.CreateWithWeights("ACGT", []float64{1, 1, 1, 1})
//
// Incorporating a new sequence requires an Alignment view produced by an
// external aligner (see the align package for a minimal one):
//
//	err = g.AddAlignment(alignment, "AGGT", poa.UniformWeight(1.0))
//
// Concurrency: Graph is not safe for concurrent mutation. Every operation
// runs to completion synchronously; there is no internal parallelism and
// no global mutable state. Multiple Graph instances are fully independent.
package poa
