package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version info
const Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:           "newsrank",
	Short:         "Rank news articles against a query with TF-IDF and BM25",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(rootArgs.logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

type rootFlags struct {
	dbPath     string
	configPath string
	logLevel   string
}

var rootArgs rootFlags

func init() {
	rootCmd.PersistentFlags().StringVar(&rootArgs.dbPath, "db", "newsrank.db", "Path to the SQLite article library.")
	rootCmd.PersistentFlags().StringVar(&rootArgs.configPath, "config", "", "Path to a YAML ranking config file.")
	rootCmd.PersistentFlags().StringVar(&rootArgs.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("✗", err)
		os.Exit(1)
	}
}
