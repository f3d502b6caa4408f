package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the library's tags",
	Args:  cobra.NoArgs,
	Run:   runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()

	tags, err := library.GetTags(context.Background())
	if err != nil {
		exitWithAPIError(err)
	}

	if humanOutput {
		for _, tag := range tags {
			fmt.Println(tag)
		}
		return
	}
	outputJSON(map[string]any{"tags": tags, "count": len(tags)})
}
