package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "delega",
	Short: "Goal decomposition and specialist delegation",
	Long: `Delega decomposes a high-level goal into ordered subtasks, assigns
each subtask to a named specialist, executes the assignments sequentially,
and aggregates the outputs into one result.

The plan is produced by a single model call, validated against the
registered specialists, and executed step by step. Any planning,
validation, or delegation failure aborts the whole run; no partial
result is ever reported as success.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(specialistsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
