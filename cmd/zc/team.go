package main

import (
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Team publication commands (Charité research database)",
	Long: `Commands for the team's publications in the Charité research
database: fetch a member's publications, discover member tokens, search
across the team and sync everything into the Zotero library.`,
}

func init() {
	rootCmd.AddCommand(teamCmd)
}
