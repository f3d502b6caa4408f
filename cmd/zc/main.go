// Package main provides the zc CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zc",
	Short: "Agent-first Zotero library companion",
	Long: `zc is an agent-first CLI for working with a Zotero library.

It proxies a running zotero-mcp server for reads and semantic search,
talks to the Zotero Web API for writes, and syncs the team's
publications from the Charité research database. All commands output
JSON by default for easy integration with AI agents and other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for ZOTERO_API_KEY, PUBMED_API_KEY)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
