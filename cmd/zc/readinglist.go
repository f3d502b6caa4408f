package main

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	readingListMax     int
	readingListMinYear int
)

var readingListCmd = &cobra.Command{
	Use:   "reading-list <topic>",
	Short: "Build a reading list for a topic",
	Long: `Build a curated reading list for a research topic from the
library, with a suggested collection to file it under.

Examples:
  zc reading-list "fhir terminology binding"
  zc reading-list "clinical nlp" --max 10 --min-year 2022 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runReadingList,
}

func init() {
	readingListCmd.Flags().IntVar(&readingListMax, "max", 20, "Maximum number of papers")
	readingListCmd.Flags().IntVar(&readingListMinYear, "min-year", 0, "Only include papers from this year on")
	rootCmd.AddCommand(readingListCmd)
}

func runReadingList(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()
	service := workflows.NewService(library, nil, nil)

	list, err := service.BuildReadingList(context.Background(), args[0], readingListMax, readingListMinYear)
	if err != nil {
		exitWithAPIError(err)
	}

	if humanOutput {
		fmt.Printf("Reading list for %q (%d of %d papers)\n", list.Topic, list.PapersIncluded, list.PapersFound)
		fmt.Printf("Suggested collection: %s\n\n", list.SuggestedCollection)
		for i, p := range list.Papers {
			fmt.Printf("%d. %s\n", i+1, truncateString(p.Title, SearchTitleMaxLen))
			if p.Creators != "" || p.Year > 0 {
				fmt.Printf("   %s (%d)\n", p.Creators, p.Year)
			}
			fmt.Printf("   %s\n\n", p.Key)
		}
		return
	}
	outputJSON(list)
}
