package main

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/mcpclient"
	"github.com/spf13/cobra"
)

var itemsTag string

var itemsCmd = &cobra.Command{
	Use:   "items [collection-key]",
	Short: "List the items of a collection or tag",
	Long: `List the items of a collection by key, or of a tag with --tag.

Examples:
  zc items N5B6JDDQ
  zc items --tag "fhir" --human`,
	Args: cobra.MaximumNArgs(1),
	Run:  runItems,
}

func init() {
	itemsCmd.Flags().StringVar(&itemsTag, "tag", "", "List items carrying this tag instead")
	rootCmd.AddCommand(itemsCmd)
}

func runItems(cmd *cobra.Command, args []string) {
	if (len(args) == 0) == (itemsTag == "") {
		exitWithError(ExitError, "provide either a collection key or --tag")
	}

	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()
	ctx := context.Background()

	var hits []mcpclient.SearchHit
	var err error
	if itemsTag != "" {
		hits, err = library.SearchByTag(ctx, itemsTag)
	} else {
		hits, err = library.GetCollectionItems(ctx, args[0])
	}
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
