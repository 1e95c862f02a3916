package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/exprtree/internal/cli"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate an expression",
	Long:  `Evaluates an expression and prints its value. With --trace, every visited node is printed in post-order first.`,
	Example: `  exprtree eval "1 + (2 + 3)"
  exprtree eval --trace 4 + 2
  exprtree eval -f tree.yaml --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		trace, _ := cmd.Flags().GetBool("trace")
		jsonMode, _ := cmd.Flags().GetBool("json")
		metrics, _ := cmd.Flags().GetBool("metrics")
		plain, _ := cmd.Flags().GetBool("plain")
		style, _ := cmd.Flags().GetString("style")

		return cli.RunEval(cmd.Context(), cli.EvalOptions{
			Source:   sourceFromFlags(cmd, args),
			Trace:    trace,
			JSON:     jsonMode,
			Pretty:   !plain && !jsonMode && stdoutIsTerminal(),
			Style:    style,
			Metrics:  metrics,
			MaxDepth: maxDepth,
			Debug:    debug,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolP("trace", "t", false, "Print the evaluation trace")
	evalCmd.Flags().Bool("json", false, "Print the result as a JSON line")
	evalCmd.Flags().Bool("metrics", false, "Print Prometheus metrics after the result")
	evalCmd.Flags().Bool("plain", false, "Disable markdown rendering of the trace")
	evalCmd.Flags().String("style", "", "Markdown style for the trace (dark, light, notty)")
}
