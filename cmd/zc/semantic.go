package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var semanticLimit int

var semanticCmd = &cobra.Command{
	Use:   "semantic <query>",
	Short: "Semantic search over the library",
	Long: `Search the Zotero library by meaning rather than keywords, using
the embedding index of the upstream zotero-mcp server.

Examples:
  zc semantic "clinical decision support with terminology bindings"
  zc semantic "ontology alignment" --limit 5 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runSemantic,
}

func init() {
	semanticCmd.Flags().IntVar(&semanticLimit, "limit", 10, "Maximum number of results")
	rootCmd.AddCommand(semanticCmd)
}

func runSemantic(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()

	hits, err := library.SemanticSearch(context.Background(), args[0], semanticLimit)
	if err != nil {
		exitWithAPIError(err)
	}

	if humanOutput {
		fmt.Printf("Found %d items\n\n", len(hits))
		printHitsHuman(hits)
		return
	}
	outputJSON(hitListResponse{Items: hits, Count: len(hits)})
}
