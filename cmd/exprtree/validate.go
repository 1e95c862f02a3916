package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/exprtree/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [expression...]",
	Short: "Check an expression without evaluating it",
	Long:  `Decodes the expression and reports unknown node kinds, malformed numbers or trees deeper than --max-depth.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		if err := cli.RunValidate(sourceFromFlags(cmd, args), maxDepth, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
