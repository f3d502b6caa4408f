package main

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/pdfmeta"
	"github.com/bih-ceir/zotero-comfort/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	addPDFPath string
	addAssign  bool
)

var addCmd = &cobra.Command{
	Use:   "add [doi]",
	Short: "Add a paper by DOI",
	Long: `Add a paper to the Zotero library by DOI. The library is checked
for duplicates first, then the metadata is resolved via CrossRef and
the item is created. With --pdf the DOI is extracted from the file.

Examples:
  zc add 10.1055/s-0043-1767752
  zc add --pdf paper.pdf --assign`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addPDFPath, "pdf", "", "Extract the DOI from this PDF file")
	addCmd.Flags().BoolVar(&addAssign, "assign", false, "File the item into its suggested collection")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	if (len(args) == 0) == (addPDFPath == "") {
		exitWithError(ExitError, "provide either a DOI or --pdf")
	}

	doi := ""
	if len(args) > 0 {
		doi = args[0]
	} else {
		extracted, err := pdfmeta.ExtractDOI(addPDFPath)
		if err != nil {
			exitWithError(ExitNotFound, "extracting DOI from %s: %v", addPDFPath, err)
		}
		doi = extracted
	}

	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()
	service := workflows.NewService(library, newResolver(cfg), newWriter(cfg))

	result, err := service.SmartAdd(context.Background(), doi, addAssign)
	if err != nil {
		exitWithAPIError(err)
	}

	if humanOutput {
		switch result.Status {
		case workflows.StatusDuplicate:
			fmt.Printf("Already in library: %s (%s)\n", result.Title, result.DuplicateKey)
		default:
			fmt.Printf("Added: %s (%s)\n", result.Title, result.ItemKey)
			if result.SuggestedCollection != "" {
				fmt.Printf("  suggested collection: %s\n", result.SuggestedCollection)
			}
		}
		return
	}
	outputJSON(result)
}
