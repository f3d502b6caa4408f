package main

import (
	"context"
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/charite"
	"github.com/bih-ceir/zotero-comfort/internal/teamsync"
	"github.com/spf13/cobra"
)

var (
	teamSyncDryRun         bool
	teamSyncSkipEnrichment bool
)

var teamSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the team's publications into Zotero",
	Long: `Run the full pipeline: fetch every roster member's publications
from the research database, enrich them via PubMed, deduplicate,
filter by affiliation rules, and create the missing items in the
Zotero library, filed into per-year collections.

Examples:
  zc team sync --dry-run --human
  zc team sync`,
	Args: cobra.NoArgs,
	Run:  runTeamSync,
}

func init() {
	teamSyncCmd.Flags().BoolVar(&teamSyncDryRun, "dry-run", false, "Plan without writing to the library")
	teamSyncCmd.Flags().BoolVar(&teamSyncSkipEnrichment, "skip-enrichment", false, "Skip the PubMed enrichment pass")
	teamCmd.AddCommand(teamSyncCmd)
}

func runTeamSync(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	team := loadRoster(cfg)
	remote := newWriter(cfg)
	ctx := context.Background()

	var enricher teamsync.Enricher
	if c := newEnricher(cfg); c != nil {
		enricher = c
	}

	cols, err := teamsync.ResolveCollections(ctx, remote,
		cfg.Collections.Years, unknownCollectionName(cfg), teamSyncDryRun)
	if err != nil {
		exitWithError(ExitAPIError, "%v", err)
	}

	syncer := teamsync.NewSyncer(charite.NewClient(), enricher, remote)
	report, err := syncer.Run(ctx, team, teamsync.Options{
		DryRun:         teamSyncDryRun,
		SkipEnrichment: teamSyncSkipEnrichment,
		Collections:    cols,
	})
	if err != nil {
		exitWithError(ExitAPIError, "%v", err)
	}

	if humanOutput {
		fmt.Print(report.Summary())
		return
	}
	outputJSON(report)
}
