package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catsite/catsite/internal/app"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [NAME]",
	Short: "Scaffold a new catalogue page",
	Long: `Create a page template and a starter catalogue data file.

The name becomes <templates>/<name>.html.tmpl and <data>/<name>.yaml,
wired together through the template's frontmatter. When NAME or
--title are omitted you are prompted interactively.

Examples:
  catsite new games --title "Games"
  catsite new`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newTitle string
	newForce bool
)

func init() {
	newCmd.Flags().StringVarP(&newTitle, FlagTitle, "t", "", DescTitle)
	newCmd.Flags().BoolVarP(&newForce, FlagForce, "f", false, DescForce)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	name, title, err := promptForPage(name, newTitle)
	if err != nil {
		return err
	}

	result, err := app.NewPage(cmd.Context(), app.NewPageOptions{
		ConfigPath: resolveConfigPath(),
		Name:       name,
		Title:      title,
		Force:      newForce,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Scaffolding failed: %v", err))
		return err
	}

	printSuccess(fmt.Sprintf("Created: %s", result.TemplatePath))
	printSuccess(fmt.Sprintf("Created: %s", result.DataPath))
	printInfo("")
	printInfo("Next steps:")
	printInfo(fmt.Sprintf("  1. Add catalogue entries to %s", result.DataPath))
	printInfo("  2. Run: catsite build")

	return nil
}
