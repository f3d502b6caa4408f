package main

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/workflows"
	"github.com/spf13/cobra"
)

var relatedLimit int

var relatedCmd = &cobra.Command{
	Use:   "related <item-key>",
	Short: "Find papers related to a library item",
	Long: `Find papers related to a library item via semantic search over
the item's title and abstract.

Examples:
  zc related ABCD1234
  zc related ABCD1234 --limit 5 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runRelated,
}

func init() {
	relatedCmd.Flags().IntVar(&relatedLimit, "limit", 10, "Maximum number of related papers")
	rootCmd.AddCommand(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()
	service := workflows.NewService(library, nil, nil)

	result, err := service.FindRelated(context.Background(), args[0], relatedLimit)
	if err != nil {
		exitWithAPIError(err)
	}

	if humanOutput {
		fmt.Printf("Related to: %s\n\n", result.SourceTitle)
		for i, p := range result.Related {
			fmt.Printf("%d. %s\n", i+1, truncateString(p.Title, SearchTitleMaxLen))
			if p.Creators != "" {
				fmt.Printf("   %s\n", p.Creators)
			}
			fmt.Printf("   %s\n\n", p.Key)
		}
		return
	}
	outputJSON(result)
}
