package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/catsite/catsite/internal/config"
	"github.com/catsite/catsite/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catsite",
	Short: "Software catalogue site builder",
	Long: `catsite builds a static software-catalogue website.

Pages are HTML templates with YAML frontmatter naming a catalogue data
file. "catsite build" loads the SPDX license registry, normalizes every
catalogue tree (identifiers, markup, FOSS status), renders each page,
and writes minified HTML to the output directory.

Use "catsite spdx" to validate the license registry and regenerate the
license ID enum schema, and "catsite new" to scaffold a page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyOutputConfig(cmd)

		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVarP(&globalConfig, FlagConfig, "c", "", DescConfig)

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(spdxCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyOutputConfig seeds the global display flags from the project
// configuration's output section. Flags given on the command line win.
// Load errors are left for the command itself to report.
func applyOutputConfig(cmd *cobra.Command) {
	path := globalConfig
	if path == "" {
		path = config.DefaultConfigFile
	}
	cfg, err := config.NewLoader().LoadOrDefault(path)
	if err != nil {
		return
	}

	flags := cmd.Root().PersistentFlags()
	if !flags.Changed(FlagNoColor) {
		globalNoColor = !cfg.Output.ColorEnabled()
	}
	if !flags.Changed(FlagQuiet) {
		globalQuiet = cfg.Output.Quiet
	}
	if !flags.Changed(FlagDebug) {
		globalDebug = cfg.Output.Verbose
	}
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
