package main

import (
	"github.com/spf13/cobra"
)

var (
	dotConfigPath    string
	dotInPath        string
	dotOutPath       string
	dotQuality       bool
	dotUniformWeight float64
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Print a DOT rendering of the graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scoring, err := loadScoring(dotConfigPath)
		if err != nil {
			return err
		}
		g, _, err := buildGraph(dotInPath, dotQuality, dotUniformWeight, scoring)
		if err != nil {
			return err
		}
		out, closeOut, err := openOutput(cmd, dotOutPath)
		if err != nil {
			return err
		}
		defer closeOut()
		return g.Print(out)
	},
}

func init() {
	dotCmd.Flags().StringVar(&dotConfigPath, "config", "", "path to a YAML scoring override file")
	dotCmd.Flags().StringVar(&dotInPath, "in", "", "path to the input FASTA (or FASTQ with --quality) file")
	dotCmd.Flags().StringVar(&dotOutPath, "out", "", "path to write the DOT rendering (default stdout)")
	dotCmd.Flags().BoolVar(&dotQuality, "quality", false, "read --in as FASTQ and derive weights from its quality strings")
	dotCmd.Flags().Float64Var(&dotUniformWeight, "uniform-weight", 1.0, "per-position weight used when --quality is not set")
	dotCmd.MarkFlagRequired("in")
}
