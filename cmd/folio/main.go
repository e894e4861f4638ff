// Package main provides the folio CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/adithyavalsaraj/folio/internal/ads"
	"github.com/adithyavalsaraj/folio/internal/config"
	"github.com/adithyavalsaraj/folio/internal/library"
	"github.com/adithyavalsaraj/folio/internal/publication"
	"github.com/adithyavalsaraj/folio/internal/storage"
	"github.com/adithyavalsaraj/folio/internal/subject"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// configPath overrides the default config file location
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Researcher portfolio bibliometrics backend",
	Long: `folio is the data backend for a researcher portfolio site.

It fetches the subject's curated NASA ADS library, filters it down to
genuine publications, resolves the subject's authorship role on each
record, computes citation metrics (totals and h-index), and merges the
live records into the hand-curated publication list.

All commands output JSON by default; use --human for readable output.

Environment Variables:
  ADS_API_TOKEN  ADS API token (required for live fetches; .env supported)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for ADS_API_TOKEN)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/folio/config.yml)")
	rootCmd.Version = Version
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// newService builds the pipeline service from config.
func newService(cfg *config.Config) *library.Service {
	var opts []ads.ClientOption
	if cfg.ADS.APIURL != "" {
		opts = append(opts, ads.WithBaseURL(cfg.ADS.APIURL))
	}
	client := ads.NewClient(opts...)
	subj := subject.New(cfg.Subject.ORCID, cfg.Subject.NameVariants)
	return library.New(client, subj, cfg.ADS.LibraryID, slog.Default())
}

// mustLoadCurated reads the curated publication list, exits on error.
func mustLoadCurated(cfg *config.Config) []publication.Curated {
	pubs, err := storage.ReadAll(cfg.Store.Publications)
	if err != nil {
		exitWithError(ExitDataError, "reading curated publications: %v", err)
	}
	return pubs
}

// mustOpenIndex opens the SQLite query index, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenIndex(cfg *config.Config) *storage.DB {
	db, err := storage.OpenDB(cfg.Store.Index)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	return db
}
