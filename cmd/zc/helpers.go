package main

import (
	"github.com/bih-ceir/zotero-comfort/internal/config"
	"github.com/bih-ceir/zotero-comfort/internal/crossref"
	"github.com/bih-ceir/zotero-comfort/internal/mcpclient"
	"github.com/bih-ceir/zotero-comfort/internal/pubmed"
	"github.com/bih-ceir/zotero-comfort/internal/roster"
	"github.com/bih-ceir/zotero-comfort/internal/zotero"
)

// loadConfig loads the global config or exits with a config error.
func loadConfig() *config.GlobalConfig {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v\n%s", err, config.HelpfulConfigMessage())
	}
	return cfg
}

// newLibrary creates the upstream zotero-mcp proxy client.
func newLibrary(cfg *config.GlobalConfig) *mcpclient.Client {
	var opts []mcpclient.Option
	if cfg.MCPCommand != "" {
		opts = append(opts, mcpclient.WithCommand(cfg.MCPCommand))
	}
	return mcpclient.New(opts...)
}

// newWriter creates the Zotero Web API client, or exits when the
// write credentials are missing.
func newWriter(cfg *config.GlobalConfig) *zotero.Client {
	if cfg.Zotero.LibraryID == "" || cfg.Zotero.APIKey == "" {
		exitWithError(ExitConfigError, "Zotero library ID and API key required\n%s", config.HelpfulConfigMessage())
	}
	return zotero.NewClient(cfg.Zotero.LibraryType, cfg.Zotero.LibraryID,
		zotero.WithAPIKey(cfg.Zotero.APIKey))
}

// newResolver creates the CrossRef client.
func newResolver(cfg *config.GlobalConfig) *crossref.Client {
	return crossref.NewClient()
}

// newEnricher creates the PubMed client, or nil without a contact email.
func newEnricher(cfg *config.GlobalConfig) *pubmed.Client {
	if cfg.PubMed.Email == "" {
		return nil
	}
	var opts []pubmed.Option
	if cfg.PubMed.APIKey != "" {
		opts = append(opts, pubmed.WithAPIKey(cfg.PubMed.APIKey))
	}
	return pubmed.NewClient(cfg.PubMed.Email, opts...)
}

// loadRoster loads the team roster from the configured path, or exits.
func loadRoster(cfg *config.GlobalConfig) *roster.Roster {
	if cfg.RosterPath == "" {
		exitWithError(ExitConfigError, "roster_path not configured\n%s", config.HelpfulConfigMessage())
	}
	team, err := roster.Load(cfg.RosterPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading roster: %v", err)
	}
	return team
}

// unknownCollectionName returns the configured name for the bucket of
// records without a usable year.
func unknownCollectionName(cfg *config.GlobalConfig) string {
	if cfg.Collections.Unknown != "" {
		return cfg.Collections.Unknown
	}
	return "Unsorted"
}
