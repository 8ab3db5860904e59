package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank [query]",
	Short: "Rank raw texts from a JSON array against a query",
	Long: `The rank command reads a JSON array of strings, ranks every string
against the query and prints document indexes with their scores.
No article library is involved.`,
	Example: `  newsrank rank -f docs.json "solar power"
  echo '["a cat", "a dog"]' | newsrank rank -f - cat`,
	Args: cobra.MinimumNArgs(1),
	RunE: rankCmdRun,
}

type rankFlags struct {
	rankingFlags
	filename string
}

var rankArgs rankFlags

func init() {
	rankArgs.register(rankCmd)
	rankCmd.Flags().StringVarP(&rankArgs.filename, "filename", "f", "", "Path to a JSON array of texts, '-' for stdin.")

	rootCmd.AddCommand(rankCmd)
}

func rankCmdRun(cmd *cobra.Command, args []string) error {
	if rankArgs.filename == "" {
		return errors.New("--filename is required")
	}

	var data []byte
	var err error
	if rankArgs.filename == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(rankArgs.filename)
	}
	if err != nil {
		return err
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		return fmt.Errorf("expected a JSON array of strings: %w", err)
	}

	scorer, err := newScorer(cmd, rankArgs.rankingFlags)
	if err != nil {
		return err
	}

	results, err := scorer.Rank(texts, strings.Join(args, " "))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
