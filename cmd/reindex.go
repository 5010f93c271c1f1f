package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/maktaba/portal-search/internal/config"
	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/extract"
	"github.com/maktaba/portal-search/internal/indexer"
	"github.com/maktaba/portal-search/internal/progress"
	"github.com/maktaba/portal-search/internal/searchindex"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search collection from all sources",
	Long:  `Extracts every source category, enriches the documents with keywords, synonyms and a detected language, and replaces the search collection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		engine, err := searchindex.Open(cfg.IndexDir)
		if err != nil {
			return fmt.Errorf("opening search index: %w", err)
		}
		defer engine.Close()

		pipeline := indexer.New(database, engine, cfg.ReindexWorkers)

		reporter := progress.NewReporter()
		reporter.Start(len(extract.All()))
		var done int64
		pipeline.SetProgressFunc(func(source string, docs int) {
			reporter.Update(int(atomic.AddInt64(&done, 1)), fmt.Sprintf("%s (%d documents)", source, docs))
		})

		result, err := pipeline.Run(context.Background())
		reporter.Finish()
		if err != nil {
			return err
		}

		fmt.Printf("Reindex %s finished in %s\n", result.RunID, result.Duration.Round(time.Millisecond))
		fmt.Printf("Indexed %d documents:\n", result.Indexed)
		sources := make([]string, 0, len(result.Breakdown))
		for source := range result.Breakdown {
			sources = append(sources, source)
		}
		sort.Strings(sources)
		for _, source := range sources {
			fmt.Printf("  %-24s %d\n", source, result.Breakdown[source])
		}
		for _, se := range result.SourceErrors {
			fmt.Fprintf(os.Stderr, "Warning: %s failed: %s\n", se.Source, se.Err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}
