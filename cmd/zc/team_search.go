package main

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/charite"
	"github.com/spf13/cobra"
)

var teamSearchLimit int

var teamSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the team's publications",
	Long: `Search across the team's research-database publications by
title, abstract and journal.

Examples:
  zc team search "fhir"
  zc team search "terminology" --limit 10 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runTeamSearch,
}

func init() {
	teamSearchCmd.Flags().IntVar(&teamSearchLimit, "limit", DefaultSearchLimit, "Maximum number of results")
	teamCmd.AddCommand(teamSearchCmd)
}

func runTeamSearch(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	team := loadRoster(cfg)
	client := charite.NewClient()

	records, err := client.SearchTeam(context.Background(), team, args[0], teamSearchLimit)
	if err != nil {
		exitWithError(ExitAPIError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Found %d publications\n\n", len(records))
		printRecordsHuman(records)
		return
	}
	outputJSON(map[string]any{"records": records, "count": len(records)})
}
