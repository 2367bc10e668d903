package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	msaConfigPath    string
	msaInPath        string
	msaOutPath       string
	msaQuality       bool
	msaUniformWeight float64
	msaConsensus     bool
)

var msaCmd = &cobra.Command{
	Use:   "msa",
	Short: "Print the multiple sequence alignment induced by the graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scoring, err := loadScoring(msaConfigPath)
		if err != nil {
			return err
		}
		g, _, err := buildGraph(msaInPath, msaQuality, msaUniformWeight, scoring)
		if err != nil {
			return err
		}
		rows, err := g.GenerateMSA(msaConsensus)
		if err != nil {
			return err
		}
		out, closeOut, err := openOutput(cmd, msaOutPath)
		if err != nil {
			return err
		}
		defer closeOut()
		for _, row := range rows {
			fmt.Fprintln(out, row)
		}
		return nil
	},
}

func init() {
	msaCmd.Flags().StringVar(&msaConfigPath, "config", "", "path to a YAML scoring override file")
	msaCmd.Flags().StringVar(&msaInPath, "in", "", "path to the input FASTA (or FASTQ with --quality) file")
	msaCmd.Flags().StringVar(&msaOutPath, "out", "", "path to write the alignment (default stdout)")
	msaCmd.Flags().BoolVar(&msaQuality, "quality", false, "read --in as FASTQ and derive weights from its quality strings")
	msaCmd.Flags().Float64Var(&msaUniformWeight, "uniform-weight", 1.0, "per-position weight used when --quality is not set")
	msaCmd.Flags().BoolVar(&msaConsensus, "consensus", false, "append the consensus row")
	msaCmd.MarkFlagRequired("in")
}
