package main

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/charite"
	"github.com/spf13/cobra"
)

var teamTokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Discover research-database tokens for roster members",
	Long: `Discover the research-database tokens of roster members that
lack one, by walking the coauthor graphs of the members that have one.
Print the discovered tokens for updating the roster file.`,
	Args: cobra.NoArgs,
	Run:  runTeamTokens,
}

func init() {
	teamCmd.AddCommand(teamTokensCmd)
}

func runTeamTokens(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	team := loadRoster(cfg)
	client := charite.NewClient()

	tokens, err := client.DiscoverTokens(context.Background(), team)
	if err != nil {
		exitWithError(ExitAPIError, "%v", err)
	}

	if humanOutput {
		if len(tokens) == 0 {
			fmt.Println("No new tokens discovered")
			return
		}
		for name, token := range tokens {
			fmt.Printf("%s: %s\n", name, token)
		}
		return
	}
	outputJSON(map[string]any{"tokens": tokens, "count": len(tokens)})
}
