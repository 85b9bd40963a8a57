package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read commands interactively from stdin until EOF",
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, uc, err := newShellFromFlags()
		if err != nil {
			return err
		}
		out, err := wrapLegacyEncoding(os.Stdout, legacyEncoding)
		if err != nil {
			return err
		}

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Fprintf(os.Stderr, "%s > ", uc.Pwd())
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				fmt.Fprintf(os.Stderr, "%s > ", uc.Pwd())
				continue
			}
			if rerr := sh.Run("repl", strings.NewReader(line+"\n"), out, uc); rerr != nil && rerr != io.EOF {
				fmt.Fprintln(os.Stderr, rerr)
			}
			fmt.Fprintln(os.Stderr)
			fmt.Fprintf(os.Stderr, "%s > ", uc.Pwd())
		}
		fmt.Fprintln(os.Stderr)
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
