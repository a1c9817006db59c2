package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitemeta/internal/application/commands"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate sitemap.xml for the site",
	Long: `Generate a sitemap.xml covering every HTML page under the site root,
using the same canonical URLs the inject command produces. Pages that carry
an article:published_time meta tag contribute it as lastmod.

Examples:
  sitemeta sitemap --root public --base-url https://example.com --site-name "Example"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := newExtractor()
		if err != nil {
			return err
		}

		run := commands.NewSitemapCommand(newRepository(), extractor, site())

		result, err := run.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sitemapCmd)
}
