package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when neither --config nor SITEMETA_CONFIG is set.
const DefaultConfigPath = "sitemeta.yaml"

// ConfigPath returns the config file path from the SITEMETA_CONFIG env var,
// falling back to DefaultConfigPath.
func ConfigPath() string {
	if env := os.Getenv("SITEMETA_CONFIG"); env != "" {
		return env
	}
	return DefaultConfigPath
}

// SiteConfig holds the configuration for one run. It is loaded once at
// startup and treated as immutable afterwards.
type SiteConfig struct {
	BaseURL               string   `yaml:"base_url"`
	SiteName              string   `yaml:"site_name"`
	LogoURL               string   `yaml:"logo_url"`
	Root                  string   `yaml:"root"`
	ExcludeDirs           []string `yaml:"exclude_dirs"`
	ExcludePathSubstrings []string `yaml:"exclude_path_substrings"`
	Extensions            []string `yaml:"extensions"`
}

// Load reads a SiteConfig from a YAML file. A missing file is not an error:
// flags and defaults can fully describe a run.
func Load(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SiteConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields and normalizes the base URL and root path.
func (c *SiteConfig) ApplyDefaults() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")

	if c.Root == "" {
		c.Root = "."
	}
	// Expand ~ to home directory
	if strings.HasPrefix(c.Root, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			c.Root = filepath.Join(home, c.Root[1:])
		}
	}

	if c.LogoURL == "" && c.BaseURL != "" {
		c.LogoURL = c.BaseURL + "/assets/img/logo.svg"
	}
	if len(c.ExcludeDirs) == 0 {
		c.ExcludeDirs = []string{".git", "node_modules", ".agent", "dist"}
	}
	if len(c.ExcludePathSubstrings) == 0 {
		c.ExcludePathSubstrings = []string{"article-templates"}
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".html"}
	}
}

// Validate reports configuration that cannot describe a run.
func (c *SiteConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required (set it in the config file or pass --base-url)")
	}
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required (set it in the config file or pass --site-name)")
	}
	return nil
}
