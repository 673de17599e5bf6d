package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catsite/catsite/internal/app"
)

// spdxCmd represents the spdx command
var spdxCmd = &cobra.Command{
	Use:   "spdx",
	Short: "Check the SPDX license registry and regenerate the enum schema",
	Long: `Load the SPDX license registry, validating every record, and
regenerate the license ID enum schema artifact.

The schema lists every known license ID as an allowed enumeration
value, sorted, and regenerating from an unchanged registry is
byte-identical. Exits non-zero if the registry is malformed.

Examples:
  catsite spdx
  catsite spdx --registry resources/spdx_license_list.json --schema schemas/spdx_licenses.schema.json`,
	Args: cobra.NoArgs,
	RunE: runSpdx,
}

// Spdx command flags
var (
	spdxRegistry string
	spdxSchema   string
)

func init() {
	spdxCmd.Flags().StringVar(&spdxRegistry, FlagRegistry, "", DescRegistry)
	spdxCmd.Flags().StringVar(&spdxSchema, FlagSchema, "", DescSchema)
}

func runSpdx(cmd *cobra.Command, args []string) error {
	result, err := app.CheckSPDX(cmd.Context(), app.CheckSPDXOptions{
		ConfigPath:   resolveConfigPath(),
		RegistryPath: spdxRegistry,
		SchemaPath:   spdxSchema,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("SPDX check failed: %v", err))
		return err
	}

	printSuccess(fmt.Sprintf("Loaded %d SPDX license record(s), wrote enum schema: %s",
		result.Loaded, result.SchemaPath))
	return nil
}
