package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maktaba/portal-search/internal/config"
	"github.com/maktaba/portal-search/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo fixtures into the source database",
	Long:  `Inserts a small set of demo records into every source table so a fresh checkout can exercise the reindex and search flows. Safe to run repeatedly.`,
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

		if err := database.Seed(context.Background()); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}

		fmt.Printf("Seeded demo fixtures into %s\n", cfg.DatabasePath)
		fmt.Println("Run `portal-search reindex` to build the search collection.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
