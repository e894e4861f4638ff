package main

import (
	"github.com/adithyavalsaraj/folio/internal/ads"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and classify the subject's ADS library",
	Long: `Fetch the subject's ADS library and run the full pipeline: filter to
genuine publications, resolve authorship roles, and compute citation
metrics over the surviving set. Records whose role cannot be resolved
are dropped.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		svc := newService(cfg)

		resp, err := svc.Publications(cmd.Context())
		if err != nil {
			if ads.IsTokenMissing(err) {
				exitWithError(ExitConfigError, "ADS API token missing (set ADS_API_TOKEN)")
			}
			exitWithError(ExitDataError, "fetching ADS library: %v", err)
		}

		if !humanOutput {
			outputJSON(resp)
			return
		}

		outputHuman("%d records, %d publications (%d first / %d second / %d co-author)\n",
			resp.TotalItems, resp.TotalPublications,
			resp.FirstAuthorCount, resp.SecondAuthorCount, resp.CoAuthorCount)
		outputHuman("citations %d, h-index %d\n\n", resp.TotalCitations, resp.HIndex)
		for _, p := range resp.Publications {
			outputHuman("%s  [%s]\n", truncateString(p.Title, listTitleMaxLen), p.Role)
			outputHuman("   %s\n", shortAuthors(p.Authors, 3))
			outputHuman("   %s (%s), cited %d\n\n", p.Journal, p.PubDate, p.CitationCount)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
