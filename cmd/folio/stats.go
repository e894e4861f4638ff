package main

import (
	"github.com/adithyavalsaraj/folio/internal/ads"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Fetch citation totals and h-index for the library",
	Long: `Fetch citation counts for the subject's ADS library and compute the
total citation count and h-index.

The counts cover the raw library, before publication filtering. The
fetch command reports metrics over the filtered set; the two disagree
by design.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		svc := newService(cfg)

		m, err := svc.Stats(cmd.Context())
		if err != nil {
			if ads.IsTokenMissing(err) {
				exitWithError(ExitConfigError, "ADS API token missing (set ADS_API_TOKEN)")
			}
			exitWithError(ExitDataError, "fetching ADS stats: %v", err)
		}

		if !humanOutput {
			outputJSON(m)
			return
		}
		outputHuman("citations: %d\nh-index: %d\n", m.TotalCitations, m.HIndex)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
