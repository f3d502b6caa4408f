package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the Zotero library",
	Long: `Search the Zotero library for items matching a query.

Examples:
  zc search "fhir profiling"
  zc search "terminology server" --limit 10 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()

	hits, err := library.SearchItems(context.Background(), args[0], searchLimit)
	if err != nil {
		exitWithAPIError(err)
	}

	if humanOutput {
		fmt.Printf("Found %d items\n\n", len(hits))
		printHitsHuman(hits)
		return
	}
	if err := outputJSON(hitListResponse{Items: hits, Count: len(hits)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(ExitError)
	}
}
