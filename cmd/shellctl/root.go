package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	legacyEncoding string
)

var rootCmd = &cobra.Command{
	Use:   "shellctl",
	Short: "Run and explore embeddable configuration/command shell scripts",
	Long: `shellctl drives the embeddable shell: a hierarchical object registry
and command dispatcher built to be hosted inside another program, exposed
here as a standalone script runner, REPL, and TUI explorer.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file pre-populating shell state")
	rootCmd.PersistentFlags().StringVar(&legacyEncoding, "legacy-encoding", "", "transcode command output to a legacy charset (e.g. windows-1252) before writing it")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
