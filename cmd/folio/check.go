package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adithyavalsaraj/folio/internal/pdf"
	"github.com/spf13/cobra"
)

// checkIssue is one problem found in the curated list.
type checkIssue struct {
	ID      string `json:"id"`
	Problem string `json:"problem"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the curated publication list for problems",
	Long: `Check the curated publications JSONL file for integrity problems:
duplicate ids, duplicate DOIs, missing attachment files, and attachment
PDFs whose extracted DOI disagrees with the entry's DOI.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		curated := mustLoadCurated(cfg)

		var issues []checkIssue

		seenIDs := make(map[string]bool)
		seenDOIs := make(map[string]string)
		for _, p := range curated {
			if p.ID == "" {
				issues = append(issues, checkIssue{ID: p.ID, Problem: "entry without id: " + truncateString(p.Title, 40)})
				continue
			}
			if seenIDs[p.ID] {
				issues = append(issues, checkIssue{ID: p.ID, Problem: "duplicate id"})
			}
			seenIDs[p.ID] = true

			if p.DOI != "" {
				key := strings.ToLower(strings.TrimSpace(p.DOI))
				if other, ok := seenDOIs[key]; ok {
					issues = append(issues, checkIssue{ID: p.ID, Problem: "duplicate DOI (also on " + other + ")"})
				} else {
					seenDOIs[key] = p.ID
				}
			}

			if p.FilePath == "" {
				continue
			}
			path := filepath.Join(cfg.Store.Files, p.FilePath)
			if _, err := os.Stat(path); err != nil {
				issues = append(issues, checkIssue{ID: p.ID, Problem: "attachment missing: " + p.FilePath})
				continue
			}

			extracted, err := pdf.ExtractDOI(path)
			if err != nil {
				issues = append(issues, checkIssue{ID: p.ID, Problem: "attachment unreadable: " + err.Error()})
				continue
			}
			if extracted != "" && p.DOI != "" && !strings.EqualFold(extracted, p.DOI) {
				issues = append(issues, checkIssue{ID: p.ID, Problem: "attachment DOI " + extracted + " != entry DOI " + p.DOI})
			}
		}

		if !humanOutput {
			outputJSON(map[string]any{
				"entries": len(curated),
				"issues":  issues,
			})
		} else {
			outputHuman("checked %d entries, %d issues\n", len(curated), len(issues))
			for _, issue := range issues {
				outputHuman("  %s: %s\n", issue.ID, issue.Problem)
			}
		}

		if len(issues) > 0 {
			os.Exit(ExitDataError)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
