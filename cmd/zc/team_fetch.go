package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/bih-ceir/zotero-comfort/internal/charite"
	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
	"github.com/spf13/cobra"
)

var teamFetchMember string

var teamFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch publications from the research database",
	Long: `Fetch the publications of the whole roster, or of a single
member with --member.

Examples:
  zc team fetch
  zc team fetch --member "Thun" --human`,
	Args: cobra.NoArgs,
	Run:  runTeamFetch,
}

func init() {
	teamFetchCmd.Flags().StringVar(&teamFetchMember, "member", "", "Fetch a single roster member by name")
	teamCmd.AddCommand(teamFetchCmd)
}

func runTeamFetch(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	team := loadRoster(cfg)
	client := charite.NewClient()
	ctx := context.Background()

	var records []pubrecord.Record
	var err error
	if teamFetchMember != "" {
		records, err = client.FetchMemberByName(ctx, team, teamFetchMember)
	} else {
		records, err = client.FetchTeam(ctx, team)
	}
	if err != nil {
		exitWithError(ExitAPIError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Fetched %d publications\n\n", len(records))
		printRecordsHuman(records)
		return
	}
	outputJSON(map[string]any{"records": records, "count": len(records)})
}

// printRecordsHuman prints publication records in human-readable format.
func printRecordsHuman(records []pubrecord.Record) {
	for i, rec := range records {
		fmt.Printf("%d. %s\n", i+1, truncateString(rec.Title, SearchTitleMaxLen))
		line := ""
		if rec.Year > 0 {
			line = fmt.Sprintf("(%d)", rec.Year)
		}
		if rec.DOI != "" {
			line += "  doi:" + rec.DOI
		}
		if line != "" {
			fmt.Printf("   %s\n", strings.TrimSpace(line))
		}
		if len(rec.Provenance) > 0 {
			fmt.Printf("   via %s\n", strings.Join(rec.Provenance, ", "))
		}
		fmt.Println()
	}
}
