package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildConfigPath    string
	buildInPath        string
	buildOutPath       string
	buildQuality       bool
	buildUniformWeight float64
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a graph and emit its consensus as a FASTA record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scoring, err := loadScoring(buildConfigPath)
		if err != nil {
			return err
		}
		g, _, err := buildGraph(buildInPath, buildQuality, buildUniformWeight, scoring)
		if err != nil {
			return err
		}
		consensus, err := g.GenerateConsensus()
		if err != nil {
			return err
		}
		out, closeOut, err := openOutput(cmd, buildOutPath)
		if err != nil {
			return err
		}
		defer closeOut()
		fmt.Fprintf(out, ">consensus nodes=%d edges=%d sequences=%d\n%s\n", g.NumNodes(), g.NumEdges(), g.NumSequences(), consensus)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "path to a YAML scoring override file")
	buildCmd.Flags().StringVar(&buildInPath, "in", "", "path to the input FASTA (or FASTQ with --quality) file")
	buildCmd.Flags().StringVar(&buildOutPath, "out", "", "path to write the consensus FASTA record (default stdout)")
	buildCmd.Flags().BoolVar(&buildQuality, "quality", false, "read --in as FASTQ and derive weights from its quality strings")
	buildCmd.Flags().Float64Var(&buildUniformWeight, "uniform-weight", 1.0, "per-position weight used when --quality is not set")
	buildCmd.MarkFlagRequired("in")
}
