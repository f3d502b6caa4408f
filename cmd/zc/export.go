package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bih-ceir/zotero-comfort/internal/export"
	"github.com/bih-ceir/zotero-comfort/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	exportCollection string
	exportTag        string
	exportOut        string
	exportAppend     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a collection or tag as BibTeX",
	Long: `Export the items of a collection (by name) or a tag as BibTeX.

Examples:
  zc export --collection "FHIR" --out fhir.bib
  zc export --tag "terminology" --append --out refs.bib`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportCollection, "collection", "", "Collection name to export")
	exportCmd.Flags().StringVar(&exportTag, "tag", "", "Tag to export")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write the BibTeX to this file")
	exportCmd.Flags().BoolVar(&exportAppend, "append", false, "Append to --out, skipping entries already in the file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	if (exportCollection == "") == (exportTag == "") {
		exitWithError(ExitError, "provide exactly one of --collection and --tag")
	}

	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()
	service := workflows.NewService(library, nil, nil)

	bib, err := service.ExportBibliography(context.Background(), exportCollection, exportTag)
	if err != nil {
		exitWithAPIError(err)
	}

	if exportOut != "" {
		written := bib.Count
		if exportAppend {
			idx, err := export.ParseBibTeXFile(exportOut)
			if err != nil {
				exitWithError(ExitError, "reading %s: %v", exportOut, err)
			}
			fresh := bib.Records[:0:0]
			for _, rec := range bib.Records {
				if !idx.HasRecord(rec) {
					fresh = append(fresh, rec)
				}
			}
			written = len(fresh)
			if written > 0 {
				if err := export.AppendToBibFile(exportOut, export.ToBibTeXList(fresh)); err != nil {
					exitWithError(ExitError, "appending to %s: %v", exportOut, err)
				}
			}
		} else if err := os.WriteFile(exportOut, []byte(bib.Bibliography), 0o644); err != nil {
			exitWithError(ExitError, "writing %s: %v", exportOut, err)
		}
		if humanOutput {
			fmt.Printf("Wrote %d entries to %s\n", written, exportOut)
		} else {
			outputJSON(StatusResponse{Status: "written", Path: exportOut})
		}
		return
	}

	if humanOutput {
		fmt.Print(bib.Bibliography)
		return
	}
	outputJSON(bib)
}
