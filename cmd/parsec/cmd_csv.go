package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/parsec/csv"
	"github.com/spf13/cobra"
)

func newCSVCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv <file|->",
		Short: "Parse comma separated lines of integers",
		Long: `Parse a file of comma separated integers, one record per line.

If the file argument is "-", reads from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			if args[0] == "-" {
				source, err = io.ReadAll(cmd.InOrStdin())
			} else {
				source, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			records, err := csv.Parse(string(source), s.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), records)
			return nil
		},
	}
	return cmd
}
