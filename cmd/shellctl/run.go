package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/shellkit/demo"
	"github.com/joshuapare/shellkit/ioctx"
	"github.com/joshuapare/shellkit/registry"
	"github.com/joshuapare/shellkit/shell"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE [ARG...]",
	Short: "Run a command script against a fresh shell",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		scriptArgs := args[1:]

		sh, uc, err := newShellFromFlags()
		if err != nil {
			return err
		}
		for _, a := range scriptArgs {
			uc.AddArgument(a)
		}

		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()

		out, err := wrapLegacyEncoding(os.Stdout, legacyEncoding)
		if err != nil {
			return err
		}

		if err := sh.Run(file, f, out, uc); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// newShellFromFlags builds a Shell with the demo classes pre-registered and
// a UserContext seeded from --config, if set.
func newShellFromFlags() (*shell.Shell, *ioctx.UserContext, error) {
	reg := registry.New()
	if err := demo.Register(reg.Host()); err != nil {
		return nil, nil, err
	}
	uc := ioctx.NewUserContext()

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading --config: %w", err)
		}
		cfg.ApplyTo(uc)
	}

	return shell.New(reg), uc, nil
}
