package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getFulltext bool

var getCmd = &cobra.Command{
	Use:   "get <item-key>",
	Short: "Get an item by key",
	Long: `Get the metadata of a Zotero item, or its extracted full text
with --fulltext.

Examples:
  zc get ABCD1234
  zc get ABCD1234 --fulltext`,
	Args: cobra.ExactArgs(1),
	Run:  runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getFulltext, "fulltext", false, "Output the item's full text instead of metadata")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()
	ctx := context.Background()

	if getFulltext {
		text, err := library.GetItemFulltext(ctx, args[0])
		if err != nil {
			exitWithAPIError(err)
		}
		if humanOutput {
			fmt.Println(text)
			return
		}
		outputJSON(map[string]string{"item_key": args[0], "fulltext": text})
		return
	}

	hit, err := library.GetItemMetadata(ctx, args[0])
	if err != nil {
		exitWithAPIError(err)
	}

	if humanOutput {
		printHitDetailHuman(hit)
		return
	}
	outputJSON(hit)
}
