package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var teamRosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Show the team roster",
	Long: `Load and show the configured roster: members, their
research-database tokens and exclusion topics, and the affiliation
keyword list.`,
	Args: cobra.NoArgs,
	Run:  runTeamRoster,
}

func init() {
	teamCmd.AddCommand(teamRosterCmd)
}

func runTeamRoster(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	team := loadRoster(cfg)

	if humanOutput {
		fmt.Printf("%d members (%d with tokens)\n\n", len(team.Members), len(team.Fetchable()))
		for _, m := range team.Members {
			token := m.Token
			if token == "" {
				token = "no token"
			}
			fmt.Printf("%s %s  (%s)\n", m.Name, m.Surname, token)
			if len(m.ExcludeTopics) > 0 {
				fmt.Printf("  excludes: %s\n", strings.Join(m.ExcludeTopics, ", "))
			}
		}
		if len(team.Keywords) > 0 {
			fmt.Printf("\nkeywords: %s\n", strings.Join(team.Keywords, ", "))
		}
		return
	}
	outputJSON(team)
}
