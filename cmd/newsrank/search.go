package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kittclouds/newsrank/internal/search"
	"github.com/kittclouds/newsrank/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Rank the article library against a query",
	Example: `  # Top results as JSON
  newsrank search "interest rates"

  # Ten results as a table with a custom k1
  newsrank search "interest rates" --limit 10 --k1 1.2 -o table`,
	Args: cobra.MinimumNArgs(1),
	RunE: searchCmdRun,
}

type searchFlags struct {
	rankingFlags
	output string
}

var searchArgs searchFlags

func init() {
	searchArgs.register(searchCmd)
	searchCmd.Flags().StringVarP(&searchArgs.output, "output", "o", "json", "Output format: json or table.")

	rootCmd.AddCommand(searchCmd)
}

func searchCmdRun(cmd *cobra.Command, args []string) error {
	if searchArgs.output != "json" && searchArgs.output != "table" {
		return fmt.Errorf("unsupported output format %q", searchArgs.output)
	}

	scorer, err := newScorer(cmd, searchArgs.rankingFlags)
	if err != nil {
		return err
	}

	s, err := store.NewSQLiteStoreWithDSN(rootArgs.dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	svc := search.NewService(s, scorer, slog.Default())
	resp, err := svc.Search(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	if searchArgs.output == "table" {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"#", "Title", "TF-IDF", "BM25", "Combined"})
		for i, hit := range resp.Results {
			table.Append([]string{
				fmt.Sprint(i + 1),
				hit.Title,
				fmt.Sprintf("%.4f", hit.TFIDFScore),
				fmt.Sprintf("%.4f", hit.BM25Score),
				fmt.Sprintf("%.4f", hit.CombinedScore),
			})
		}
		table.Render()
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
