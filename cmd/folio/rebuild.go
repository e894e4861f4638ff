package main

import (
	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the query index from the curated JSONL file",
	Long: `Rebuild the SQLite query index from the curated publications JSONL
file. The JSONL file is canonical; the index is disposable and must be
rebuilt after editing the file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		curated := mustLoadCurated(cfg)

		db := mustOpenIndex(cfg)
		defer db.Close()

		n, err := db.Rebuild(curated)
		if err != nil {
			exitWithError(ExitError, "rebuilding index: %v", err)
		}

		if !humanOutput {
			outputJSON(map[string]any{"status": "rebuilt", "indexed": n})
			return
		}
		outputHuman("indexed %d publications\n", n)
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}
