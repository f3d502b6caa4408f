package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bih-ceir/zotero-comfort/internal/charite"
	"github.com/bih-ceir/zotero-comfort/internal/server"
	"github.com/bih-ceir/zotero-comfort/internal/teamsync"
	"github.com/bih-ceir/zotero-comfort/internal/workflows"
	"github.com/bih-ceir/zotero-comfort/internal/zotero"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Run the MCP server over stdio, exposing the library tools and
workflows to MCP clients like Claude Desktop.

Read tools proxy through the upstream zotero-mcp server; smart
workflows use CrossRef and the Zotero Web API. The team_sync tool is
available when a roster and Zotero write credentials are configured.`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	library := newLibrary(cfg)
	defer library.Close()

	// Write access is optional; without it the write tools error out
	// per call instead of blocking the read tools.
	var writer *zotero.Client
	if cfg.Zotero.LibraryID != "" && cfg.Zotero.APIKey != "" {
		writer = zotero.NewClient(cfg.Zotero.LibraryType, cfg.Zotero.LibraryID,
			zotero.WithAPIKey(cfg.Zotero.APIKey))
	}

	var svcWriter workflows.Writer
	if writer != nil {
		svcWriter = writer
	}
	deps := server.Deps{
		Library: library,
		Service: workflows.NewService(library, newResolver(cfg), svcWriter),
	}

	if cfg.RosterPath != "" && writer != nil {
		team := loadRoster(cfg)
		var enricher teamsync.Enricher
		if c := newEnricher(cfg); c != nil {
			enricher = c
		}
		deps.Syncer = teamsync.NewSyncer(charite.NewClient(), enricher, writer)
		deps.Remote = writer
		deps.Team = team
		deps.Years = cfg.Collections.Years
		deps.UnknownName = unknownCollectionName(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, deps); err != nil && ctx.Err() == nil {
		exitWithError(ExitError, "serving MCP: %v", err)
	}
}
