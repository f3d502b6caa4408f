package main

import (
	"fmt"

	"github.com/bih-ceir/zotero-comfort/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show the resolved configuration: the config file path and the
effective settings after environment overrides. API keys are redacted.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// redactKey hides all but the last four characters of a secret.
func redactKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	path := config.GlobalConfigPath()

	if humanOutput {
		fmt.Printf("config: %s\n\n", path)
		fmt.Printf("zotero library:  %s %s\n", cfg.Zotero.LibraryType, cfg.Zotero.LibraryID)
		fmt.Printf("zotero api key:  %s\n", redactKey(cfg.Zotero.APIKey))
		fmt.Printf("pubmed email:    %s\n", cfg.PubMed.Email)
		fmt.Printf("pubmed api key:  %s\n", redactKey(cfg.PubMed.APIKey))
		fmt.Printf("mcp command:     %s\n", cfg.MCPCommand)
		fmt.Printf("roster:          %s\n", cfg.RosterPath)
		if len(cfg.Collections.Years) > 0 {
			fmt.Printf("collections:     %d years, unknown %q\n", len(cfg.Collections.Years), unknownCollectionName(cfg))
		}
		return
	}

	outputJSON(map[string]any{
		"path": path,
		"zotero": map[string]string{
			"library_id":   cfg.Zotero.LibraryID,
			"library_type": cfg.Zotero.LibraryType,
			"api_key":      redactKey(cfg.Zotero.APIKey),
		},
		"pubmed": map[string]string{
			"email":   cfg.PubMed.Email,
			"api_key": redactKey(cfg.PubMed.APIKey),
		},
		"mcp_command": cfg.MCPCommand,
		"roster_path": cfg.RosterPath,
		"collections": cfg.Collections,
	})
}
