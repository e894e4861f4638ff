package main

import (
	"strings"

	"github.com/adithyavalsaraj/folio/internal/publication"
	"github.com/adithyavalsaraj/folio/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listRole   string
	listYear   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Query the curated publication list",
	Long: `Query the curated publication index. --search runs a full-text match
over title, authors, journal, and type; --role filters by authorship
role (first, second, coauthor); --year filters by publication year.

Run 'folio rebuild' after editing the curated JSONL file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		db := mustOpenIndex(cfg)
		defer db.Close()

		q := storage.Query{Search: listSearch, Year: listYear}
		if listRole != "" {
			role, ok := roleFromFlag(listRole)
			if !ok {
				exitWithError(ExitError, "unknown role %q (want first, second, or coauthor)", listRole)
			}
			q.Role = role
		}

		pubs, err := db.Search(q)
		if err != nil {
			exitWithError(ExitError, "querying publications: %v", err)
		}

		if !humanOutput {
			outputJSON(pubs)
			return
		}

		for _, p := range pubs {
			outputHuman("%s  (%d)\n", p.ID, p.Year)
			outputHuman("   %s\n", truncateString(p.Title, listTitleMaxLen))
			outputHuman("   %s - %s\n\n", shortAuthors(p.Authors, 3), p.Journal)
		}
	},
}

// roleFromFlag maps the CLI role filter values onto roles.
func roleFromFlag(s string) (publication.Role, bool) {
	switch strings.ToLower(s) {
	case "first":
		return publication.RoleFirst, true
	case "second":
		return publication.RoleSecond, true
	case "coauthor", "co-author":
		return publication.RoleCoAuthor, true
	}
	return "", false
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Full-text search over title/authors/journal/type")
	listCmd.Flags().StringVar(&listRole, "role", "", "Filter by authorship role (first, second, coauthor)")
	listCmd.Flags().IntVar(&listYear, "year", 0, "Filter by publication year")
	rootCmd.AddCommand(listCmd)
}
