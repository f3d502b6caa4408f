// Package config handles the zc global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in
// $XDG_CONFIG_HOME/zc/config.yml. Environment variables override the
// credential fields at load time.
type GlobalConfig struct {
	Zotero struct {
		LibraryID   string `yaml:"library_id,omitempty"`
		LibraryType string `yaml:"library_type,omitempty"` // "group" or "user"
		APIKey      string `yaml:"api_key,omitempty"`
	} `yaml:"zotero,omitempty"`

	PubMed struct {
		Email  string `yaml:"email,omitempty"`
		APIKey string `yaml:"api_key,omitempty"`
	} `yaml:"pubmed,omitempty"`

	// MCPCommand is the upstream zotero-mcp server binary.
	MCPCommand string `yaml:"mcp_command,omitempty"`

	// RosterPath points to the team roster YAML file.
	RosterPath string `yaml:"roster_path,omitempty"`

	Collections struct {
		// Years maps publication years to Zotero collection names.
		Years map[int]string `yaml:"years,omitempty"`
		// Unknown is the collection name for records without a year.
		Unknown string `yaml:"unknown,omitempty"`
	} `yaml:"collections,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "zc"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/zc/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file and applies
// environment overrides. Returns an empty config (not an error) if the
// file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	cfg := &GlobalConfig{}

	path := GlobalConfigPath()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Zotero.LibraryType == "" {
		cfg.Zotero.LibraryType = "group"
	}
	if cfg.MCPCommand == "" {
		cfg.MCPCommand = "zotero-mcp"
	}
	if cfg.RosterPath != "" {
		cfg.RosterPath = ExpandTilde(cfg.RosterPath)
	}

	globalConfigCache = cfg
	return cfg, nil
}

func applyEnvOverrides(cfg *GlobalConfig) {
	if v := os.Getenv("ZOTERO_API_KEY"); v != "" {
		cfg.Zotero.APIKey = v
	}
	if v := os.Getenv("ZOTERO_LIBRARY_ID"); v != "" {
		cfg.Zotero.LibraryID = v
	}
	if v := os.Getenv("ZOTERO_LIBRARY_TYPE"); v != "" {
		cfg.Zotero.LibraryType = v
	}
	if v := os.Getenv("PUBMED_EMAIL"); v != "" {
		cfg.PubMed.Email = v
	}
	if v := os.Getenv("PUBMED_API_KEY"); v != "" {
		cfg.PubMed.APIKey = v
	}
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}

// HelpfulConfigMessage returns a setup hint for a missing configuration.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`Zotero library not configured.

Tip: Create %s:
  mkdir -p %s
  cat > %s <<'EOF'
  zotero:
    library_id: "1234567"
    library_type: group
  roster_path: ~/ceir/roster.yml
  EOF

The API key is read from ZOTERO_API_KEY (or a .env file).`,
		configPath,
		filepath.Dir(configPath),
		configPath)
}
