package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lbio/poagraph/internal/align"
)

// scoringConfig is the on-disk shape of an alignment scoring override file,
// loaded with --config.
type scoringConfig struct {
	Match    *float64 `yaml:"match"`
	Mismatch *float64 `yaml:"mismatch"`
	Gap      *float64 `yaml:"gap"`
}

// loadScoring reads path (if non-empty) and turns it into align.Options
// layered over align's own defaults. An empty path yields the defaults
// unchanged.
func loadScoring(path string) (align.Config, error) {
	if path == "" {
		return align.NewConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return align.Config{}, err
	}

	var cfg scoringConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return align.Config{}, err
	}

	var opts []align.Option
	if cfg.Match != nil {
		opts = append(opts, align.WithMatch(*cfg.Match))
	}
	if cfg.Mismatch != nil {
		opts = append(opts, align.WithMismatch(*cfg.Mismatch))
	}
	if cfg.Gap != nil {
		opts = append(opts, align.WithGap(*cfg.Gap))
	}
	return align.NewConfig(opts...), nil
}
