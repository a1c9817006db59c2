package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitemeta/internal/application/commands"
)

var dryRun bool

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Insert canonical links and JSON-LD into HTML pages",
	Long: `Insert a canonical link tag and a JSON-LD structured-data block into
every HTML page under the site root that lacks them.

Pages that already carry a tag are left untouched; files are rewritten in
place only when something was inserted.

Examples:
  sitemeta inject --root public --base-url https://example.com --site-name "Example"
  sitemeta inject --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := newExtractor()
		if err != nil {
			return err
		}

		run := commands.NewInjectCommand(newRepository(), extractor, site())
		run.DryRun = dryRun

		result, err := run.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(injectCmd)
	injectCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
}
