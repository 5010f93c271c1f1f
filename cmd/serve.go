package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maktaba/portal-search/internal/config"
	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/searchindex"
	"github.com/maktaba/portal-search/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the search HTTP service",
	Long:  `Starts the portal search service: the action endpoint, REST aliases and health check on the configured port.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort > 0 {
			cfg.Port = servePort
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

		srv := server.New(cfg, database, engine)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down...")
			srv.Shutdown(context.Background())
		}()

		count, err := engine.DocCount()
		if err != nil {
			return fmt.Errorf("reading index: %w", err)
		}
		fmt.Fprintf(os.Stderr, "portal-search v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DatabasePath)
		fmt.Fprintf(os.Stderr, "  Index: %s\n", cfg.IndexDir)
		fmt.Fprintf(os.Stderr, "  Documents indexed: %d\n", count)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
