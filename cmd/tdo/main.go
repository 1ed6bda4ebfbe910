// Package main implements the tdo CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tdo",
	Short: "Manage a markdown task list",
	Long: `Manage a markdown task list.

Tasks live in a plain-text .todo.md file, one per line. Run a
subcommand directly, or run tdo with no arguments for an interactive
command picker.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runInteractive,
}

var flagFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Todo file to operate on")
	addFileFlagAliases(rootCmd)
}
