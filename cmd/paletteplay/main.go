// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paletteplay",
	Short: "PalettePlay - brand color themes and palette sharing",
	Long: `PalettePlay serves the marketing site and API for browsing preset
brand color themes, building custom palettes, exporting them as code
snippets, and saving palettes to a spreadsheet-backed store.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
