package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kittclouds/newsrank/pkg/analysis"
	"github.com/kittclouds/newsrank/pkg/resorank"
)

// fileConfig is the YAML config file layout:
//
//	ranking:
//	  k1: 1.2
//	  limit: 20
//	stopWords: [reuters]
type fileConfig struct {
	Ranking   resorank.Config `yaml:"ranking"`
	StopWords []string        `yaml:"stopWords"`
}

// loadConfig returns the defaults overlaid with the YAML file at path.
func loadConfig(path string) (fileConfig, error) {
	cfg := fileConfig{Ranking: resorank.DefaultConfig()}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

type rankingFlags struct {
	k1    float64
	b     float64
	limit int
}

func (f *rankingFlags) register(cmd *cobra.Command) {
	defaults := resorank.DefaultConfig()
	cmd.Flags().Float64Var(&f.k1, "k1", defaults.K1, "BM25 term saturation parameter.")
	cmd.Flags().Float64Var(&f.b, "b", defaults.B, "BM25 length normalization parameter.")
	cmd.Flags().IntVar(&f.limit, "limit", defaults.Limit, "Maximum number of results, 0 for all.")
}

// newScorer builds a scorer from the config file and any explicitly set flags.
func newScorer(cmd *cobra.Command, f rankingFlags) (*resorank.Scorer, error) {
	cfg, err := loadConfig(rootArgs.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("k1") {
		cfg.Ranking.K1 = f.k1
	}
	if flags.Changed("b") {
		cfg.Ranking.B = f.b
	}
	if flags.Changed("limit") {
		cfg.Ranking.Limit = f.limit
	}
	if err := cfg.Ranking.Validate(); err != nil {
		return nil, err
	}

	return resorank.NewScorerWithAnalyzer(cfg.Ranking, analysis.NewAnalyzer(cfg.StopWords...)), nil
}
