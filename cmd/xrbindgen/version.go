package main

import (
	"fmt"

	"github.com/monado-tools/xrbindgen/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of xrbindgen",
	Run: func(_ *cobra.Command, _ []string) {
		info := version.Get()
		fmt.Printf("xrbindgen version %s\n", info.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
