package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/exprtree"
	"github.com/aretw0/exprtree/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of exprtree",
	Run: func(cmd *cobra.Command, args []string) {
		if stdoutIsTerminal() {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exprtree version %s\n", exprtree.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
