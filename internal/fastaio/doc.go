// Package fastaio reads FASTA and FASTQ records into the sequences and
// per-position quality strings that package poa's constructors and a
// driver's alignment loop consume. It is deliberately minimal: no
// indexing, no compression, no writers, since the driver only ever needs
// to stream records once, top to bottom.
package fastaio
