// Package main provides the poagraph CLI: a thin driver over package poa
// that builds a partial-order alignment graph from a FASTA file, one
// sequence at a time, and emits its consensus, its multiple sequence
// alignment, or a DOT visualization.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "poagraph",
	Short: "Build and query partial-order alignment graphs",
	Long: `poagraph builds a partial-order alignment graph from a FASTA file of
related sequences, then emits the resulting multiple sequence alignment,
consensus sequence, or a DOT visualization of the graph itself.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("poagraph: unknown log level %q", s)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(msaCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
