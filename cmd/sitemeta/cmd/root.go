package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sitemeta/internal/adapters/filesystem"
	"sitemeta/internal/adapters/markup"
	"sitemeta/internal/adapters/pattern"
	"sitemeta/internal/config"
	"sitemeta/internal/domain"
	"sitemeta/internal/ports"
)

var (
	cfgPath  string
	rootDir  string
	baseURL  string
	siteName string
	logoURL  string
	parser   string

	cfg *config.SiteConfig
)

var rootCmd = &cobra.Command{
	Use:   "sitemeta",
	Short: "SEO metadata injector for static site build output",
	Long: `sitemeta prepares a static site's build output for deployment.

It walks a directory tree of HTML files and ensures every page carries a
canonical link tag and a schema.org JSON-LD structured-data block, and can
generate a sitemap.xml for the same tree.

Site settings come from a YAML config file (sitemeta.yaml by default, or
the SITEMETA_CONFIG env var); flags override individual values.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if rootDir != "" {
			cfg.Root = rootDir
		}
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		if siteName != "" {
			cfg.SiteName = siteName
		}
		if logoURL != "" {
			cfg.LogoURL = logoURL
		}
		cfg.ApplyDefaults()
		return cfg.Validate()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.ConfigPath(), "path to the site config file")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "site root to scan (overrides config)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "base site URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&siteName, "site-name", "", "site display name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logoURL, "logo-url", "", "default logo URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&parser, "parser", "pattern", "metadata extractor: pattern or dom")
}

func newRepository() *filesystem.Repository {
	return filesystem.NewRepository(cfg.Root, cfg.ExcludeDirs, cfg.ExcludePathSubstrings, cfg.Extensions)
}

func newExtractor() (ports.MetadataExtractor, error) {
	switch parser {
	case "pattern":
		return pattern.NewExtractor(), nil
	case "dom":
		return markup.NewExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown parser: %s (expected pattern or dom)", parser)
	}
}

func site() domain.Site {
	return domain.Site{
		BaseURL: cfg.BaseURL,
		Name:    cfg.SiteName,
		LogoURL: cfg.LogoURL,
		Root:    cfg.Root,
	}
}
