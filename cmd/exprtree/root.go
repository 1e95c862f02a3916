package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/exprtree/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "exprtree",
	Short: "exprtree evaluates arithmetic expression trees",
	Long: `exprtree evaluates trees of integer literals and sums.

Expressions are given as infix text ("1 + (2 + 3)") or as YAML/JSON documents
({sum: [{num: 1}, {num: 2}]}) read with --file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Log every evaluated node to stderr")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Read the expression from a YAML/JSON/infix file ('-' for stdin)")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Reject trees nested deeper than this (0 = unlimited)")
}

func sourceFromFlags(cmd *cobra.Command, args []string) cli.Source {
	file, _ := cmd.Flags().GetString("file")
	return cli.Source{Args: args, File: file, Stdin: cmd.InOrStdin()}
}

// stdoutIsTerminal reports whether pretty output makes sense.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
