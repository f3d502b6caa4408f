package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List the library's collections",
	Args:  cobra.NoArgs,
	Run:   runCollections,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()

	cols, err := library.ListCollections(context.Background())
	if err != nil {
		exitWithAPIError(err)
	}

	if humanOutput {
		for _, c := range cols {
			fmt.Printf("%s  %s\n", c.Key(), c.Str("name"))
		}
		return
	}
	outputJSON(map[string]any{"collections": cols})
}
