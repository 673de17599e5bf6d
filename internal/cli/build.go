package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catsite/catsite/internal/app"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the catalogue site",
	Long: `Build every page of the catalogue site.

For each page template the catalogue data file from its frontmatter is
loaded, the node tree is normalized (identifiers derived, markup
rendered, FOSS status computed), and the rendered page is minified and
written to the output directory.

Examples:
  catsite build
  catsite build --output ./public
  catsite build --config site/catsite.json --no-minify`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

// Build command flags
var (
	buildOutput   string
	buildNoMinify bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, FlagOutput, "o", "", DescOutput)
	buildCmd.Flags().BoolVar(&buildNoMinify, FlagNoMinify, false, DescNoMinify)
}

func runBuild(cmd *cobra.Command, args []string) error {
	printProgress("Building catalogue site")

	result, err := app.Build(cmd.Context(), app.BuildOptions{
		ConfigPath: resolveConfigPath(),
		OutputDir:  buildOutput,
		NoMinify:   buildNoMinify,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Build failed: %v", err))
		return err
	}

	for _, page := range result.Pages {
		printInfo(fmt.Sprintf("  %s -> %s (%s)", page.Template, page.Output, formatBytes(int64(page.Bytes))))
	}
	printSuccess(fmt.Sprintf("Built %d page(s) against %d license record(s)",
		len(result.Pages), result.LicenseCount))

	if len(result.Pages) == 0 {
		printWarning("No page templates found - nothing was generated")
	}

	return nil
}
