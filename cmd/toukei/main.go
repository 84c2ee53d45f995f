// Package main provides the entry point for the toukei CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toukei-tech/toukei/cmd/toukei/commands"
	"github.com/toukei-tech/toukei/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toukei",
		Short: "Toukei - per-language source code statistics",
		Long: `Toukei counts lines, comments, blanks and function bodies per
language across a directory tree.

Commands:
  scan       Count a directory tree and report per-language totals
  languages  List supported languages and their extensions`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewLanguagesCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "toukei %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
