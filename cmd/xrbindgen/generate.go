package main

import (
	"github.com/monado-tools/xrbindgen/internal/application/services"
	"github.com/spf13/cobra"
)

var (
	filterExpr        string
	exclusiveProfiles []string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <bindings.yaml> <output>...",
	Short: "Generate binding sources from an interaction profile definition file",
	Long: `Load an interaction profile definition file and write the generated C
sources to the given output paths. Each output is selected by its file
name suffix:

  oxr_generated_bindings.c    full schema implementation
  oxr_generated_bindings.h    full schema interface
  ovrd_generated_bindings.c   reduced schema implementation
  ovrd_generated_bindings.h   reduced schema interface

Output paths with any other name are skipped, so a build system may
pass its whole expected-outputs list unconditionally.

Filtering:
  --profile /interaction_profiles/x/y   Generate only the named profiles
  --filter "extension != ''"            Advanced filtering expression`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := services.NewGenerator()
		return gen.Generate(cmd.Context(), services.GeneratorOptions{
			BindingsPath:      args[0],
			OutputPaths:       args[1:],
			ExclusiveProfiles: exclusiveProfiles,
			FilterExpression:  filterExpr,
		})
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringSliceVar(&exclusiveProfiles, "profile", nil, "Generate only the named profiles (exclusive, comma-separated)")
	generateCmd.Flags().StringVar(&filterExpr, "filter", "", "Advanced filter expression (e.g. \"extension != ''\")")
}
