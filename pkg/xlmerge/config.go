package xlmerge

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig models the YAML options file. Absent keys keep their current value.
type fileConfig struct {
	SummarySheet       *string `yaml:"summary_sheet"`
	KeyPrefix          *string `yaml:"key_prefix"`
	LinkCell           *string `yaml:"link_cell"`
	SkipMissingSummary *bool   `yaml:"skip_missing_summary"`
}

// LoadConfig reads a YAML options file and applies it on top of base.
func LoadConfig(path string, base Options) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return decodeConfig(f, base)
}

func decodeConfig(r io.Reader, base Options) (Options, error) {
	var cfg fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse config: %w", err)
	}

	opts := base
	if cfg.SummarySheet != nil {
		opts.SummarySheet = *cfg.SummarySheet
	}
	if cfg.KeyPrefix != nil {
		opts.KeyPrefix = *cfg.KeyPrefix
	}
	if cfg.LinkCell != nil {
		opts.LinkCell = *cfg.LinkCell
	}
	if cfg.SkipMissingSummary != nil {
		opts.SkipMissingSummary = *cfg.SkipMissingSummary
	}

	if err := opts.Validate(); err != nil {
		return base, err
	}
	return opts, nil
}
