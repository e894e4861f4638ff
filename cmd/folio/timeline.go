package main

import (
	"github.com/adithyavalsaraj/folio/internal/library"
	"github.com/adithyavalsaraj/folio/internal/publication"
	"github.com/adithyavalsaraj/folio/internal/subject"
	"github.com/spf13/cobra"
)

var (
	timelineOffline   bool
	timelineHighlight bool
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the merged publication timeline grouped by year",
	Long: `Merge the live ADS records into the curated publication list and print
the result sorted newest first, grouped by year.

The curated list is authoritative for membership: live records only
enrich entries already in it. When the live fetch fails (or --offline
is set) the curated list is shown on its own.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		curated := mustLoadCurated(cfg)

		var fetched []publication.Publication
		if !timelineOffline {
			svc := newService(cfg)
			resp, err := svc.Publications(cmd.Context())
			if err != nil {
				warn("live fetch failed, showing curated list only: %v", err)
			} else {
				fetched = resp.Publications
			}
		}

		groups := library.BuildTimeline(curated, fetched)

		if timelineHighlight {
			hl := subject.NewHighlighter(cfg.Subject.NameVariants, cfg.Highlight.Open, cfg.Highlight.Close)
			for gi := range groups {
				for pi := range groups[gi].Publications {
					p := &groups[gi].Publications[pi]
					p.Authors = hl.Highlight(p.Authors)
				}
			}
		}

		if !humanOutput {
			outputJSON(groups)
			return
		}

		for _, g := range groups {
			outputHuman("%d\n", g.Year)
			for _, p := range g.Publications {
				outputHuman("  %s\n", truncateString(p.Title, listTitleMaxLen))
				outputHuman("     %s - %s", shortAuthors(p.Authors, 3), p.Journal)
				if p.Citations > 0 {
					outputHuman(", cited %d", p.Citations)
				}
				outputHuman("\n")
			}
			outputHuman("\n")
		}
	},
}

func init() {
	timelineCmd.Flags().BoolVar(&timelineOffline, "offline", false, "Skip the live ADS fetch")
	timelineCmd.Flags().BoolVar(&timelineHighlight, "highlight", false, "Wrap the subject's name in emphasis markers")
	rootCmd.AddCommand(timelineCmd)
}
