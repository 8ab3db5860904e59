package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/spf13/cobra"

	"github.com/kittclouds/newsrank/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON article dump into the library",
	Example: `  # Import a news API response saved to disk
  newsrank import -f everything.json --db news.db`,
	Args: cobra.NoArgs,
	RunE: importCmdRun,
}

type importFlags struct {
	filename string
}

var importArgs importFlags

func init() {
	importCmd.Flags().StringVarP(&importArgs.filename, "filename", "f", "", "Path to the JSON article dump.")

	rootCmd.AddCommand(importCmd)
}

func importCmdRun(cmd *cobra.Command, args []string) error {
	if importArgs.filename == "" {
		return errors.New("--filename is required")
	}

	articles, err := readArticles(importArgs.filename)
	if err != nil {
		return err
	}

	s, err := store.NewSQLiteStoreWithDSN(rootArgs.dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := store.ImportArticles(cmd.Context(), s, articles)
	if err != nil {
		return fmt.Errorf("import stopped after %d articles: %w", n, err)
	}

	slog.Info("articles imported", "count", n, "db", rootArgs.dbPath)
	rootCmd.Println("✔", fmt.Sprintf("%d articles imported into %s", n, rootArgs.dbPath))
	return nil
}

// readArticles loads an article dump from the local disk.
func readArticles(path string) ([]*store.Article, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fs := osfs.NewFS()
	dir, err := fs.FromOSPath(filepath.Dir(abs))
	if err != nil {
		return nil, err
	}
	sub, err := fs.Sub(dir)
	if err != nil {
		return nil, err
	}
	return store.LoadArticles(sub, filepath.Base(abs))
}
