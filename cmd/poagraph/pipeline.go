package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbio/poagraph/internal/align"
	"github.com/lbio/poagraph/internal/fastaio"
	"github.com/lbio/poagraph/poa"
)

// buildGraph reads every record from inPath and folds them into a single
// Graph: the first record seeds it, and every later record is aligned
// against the current heaviest-bundle consensus before being admitted. When
// useQuality is set, inPath is read as FASTQ and each record's own quality
// string drives its weights; otherwise inPath is read as FASTA and every
// position uses uniformWeight. It returns the graph plus the original
// sequences in admission order, so callers can round-trip-check the
// resulting MSA.
func buildGraph(inPath string, useQuality bool, uniformWeight float64, scoring align.Config) (*poa.Graph, []string, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if useQuality {
		return buildGraphFromFastq(f, inPath, scoring)
	}
	return buildGraphFromFasta(f, inPath, uniformWeight, scoring)
}

func buildGraphFromFasta(f io.Reader, path string, uniformWeight float64, scoring align.Config) (*poa.Graph, []string, error) {
	records, err := fastaio.ReadSequences(f)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("poagraph: %s contains no sequences", path)
	}

	g, err := poa.Create(records[0].Sequence, uniformWeight)
	if err != nil {
		return nil, nil, err
	}
	originals := []string{records[0].Sequence}
	slog.Debug("seeded graph", slog.String("id", records[0].ID), slog.Int("length", len(records[0].Sequence)))

	for _, rec := range records[1:] {
		if err := admitRecord(g, rec.Sequence, poa.UniformWeight(uniformWeight), scoring); err != nil {
			return nil, nil, err
		}
		originals = append(originals, rec.Sequence)
		slog.Debug("admitted sequence", slog.String("id", rec.ID), slog.Int("length", len(rec.Sequence)))
	}

	return g, originals, nil
}

func buildGraphFromFastq(f io.Reader, path string, scoring align.Config) (*poa.Graph, []string, error) {
	records, err := fastaio.ReadFastq(f)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("poagraph: %s contains no sequences", path)
	}

	g, err := poa.CreateWithQuality(records[0].Sequence, records[0].Quality)
	if err != nil {
		return nil, nil, err
	}
	originals := []string{records[0].Sequence}
	slog.Debug("seeded graph", slog.String("id", records[0].ID), slog.Int("length", len(records[0].Sequence)))

	for _, rec := range records[1:] {
		if err := admitRecord(g, rec.Sequence, poa.Quality(rec.Quality), scoring); err != nil {
			return nil, nil, err
		}
		originals = append(originals, rec.Sequence)
		slog.Debug("admitted sequence", slog.String("id", rec.ID), slog.Int("length", len(rec.Sequence)))
	}

	return g, originals, nil
}

// admitRecord aligns sequence against g's current heaviest-bundle consensus
// and folds the result in under weightSpec.
func admitRecord(g *poa.Graph, sequence string, weightSpec poa.WeightSpec, scoring align.Config) error {
	consensusPath, err := g.HeaviestBundle()
	if err != nil {
		return err
	}
	letters := make([]byte, len(consensusPath))
	for i, id := range consensusPath {
		letters[i] = g.Node(id).Letter()
	}

	alignment, err := align.Global(consensusPath, letters, sequence, scoring)
	if err != nil {
		return err
	}
	return g.AddAlignment(alignment, sequence, weightSpec)
}

// openOutput returns cmd's own stdout when path is empty, or a freshly
// created file at path otherwise, along with a matching close function.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// splitNonEmptyLines splits a persisted MSA file's contents into its rows,
// dropping blank lines the way fastaio's readers skip them.
func splitNonEmptyLines(data string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
