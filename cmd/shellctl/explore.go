package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [FILE]",
	Short: "Launch the shellexplorer TUI, optionally sourcing FILE first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bin, err := exec.LookPath("shellexplorer")
		if err != nil {
			return fmt.Errorf("shellexplorer binary not found on PATH: %w", err)
		}

		explorerArgs := []string{}
		if configPath != "" {
			explorerArgs = append(explorerArgs, "--config", configPath)
		}
		explorerArgs = append(explorerArgs, args...)

		child := exec.Command(bin, explorerArgs...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		return child.Run()
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
