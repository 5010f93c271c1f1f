package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portal-search",
	Short: "Multilingual search service for the library portal",
	Long: `portal-search aggregates the portal's content sources (news, events,
pages, manuscripts, digital library, exhibitions, catalog) into one
search collection and serves faceted, typo-tolerant full-text search
and autocomplete over HTTP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portal-search.yml", "config file path")
}
