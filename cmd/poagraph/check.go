package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbio/poagraph/internal/fastaio"
	"github.com/lbio/poagraph/poa"
)

var (
	checkMSAPath string
	checkInPath  string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a persisted MSA round-trips to the sequences it was built from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msaData, err := os.ReadFile(checkMSAPath)
		if err != nil {
			return err
		}
		f, err := os.Open(checkInPath)
		if err != nil {
			return err
		}
		defer f.Close()
		records, err := fastaio.ReadSequences(f)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("poagraph: %s contains no sequences", checkInPath)
		}

		rows := splitNonEmptyLines(string(msaData))
		if len(rows) < len(records) {
			return fmt.Errorf("poagraph: %s has %d row(s), fewer than the %d sequence(s) in %s", checkMSAPath, len(rows), len(records), checkInPath)
		}
		// msa --consensus appends a trailing row with no corresponding
		// original sequence; ignore anything past one row per record.
		rows = rows[:len(records)]

		originals := make([]string, len(records))
		indices := make([]int, len(records))
		for i, rec := range records {
			originals[i] = rec.Sequence
			indices[i] = i
		}

		if err := poa.CheckMSA(rows, originals, indices); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkMSAPath, "msa", "", "path to a persisted MSA file, as produced by 'poagraph msa --out'")
	checkCmd.Flags().StringVar(&checkInPath, "in", "", "path to the FASTA file the MSA was built from")
	checkCmd.MarkFlagRequired("msa")
	checkCmd.MarkFlagRequired("in")
}
