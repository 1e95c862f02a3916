package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/exprtree/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [expression...]",
	Short: "Export the expression tree visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the expression tree. Use --values to annotate sums with their results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		values, _ := cmd.Flags().GetBool("values")
		return cli.RunGraph(cmd.Context(), sourceFromFlags(cmd, args), values, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("values", false, "Annotate every sum with its evaluated value")
}
