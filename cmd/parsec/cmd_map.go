package main

import (
	"fmt"

	"github.com/npillmayer/parsec/strmap"
	"github.com/spf13/cobra"
)

func newMapCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <text>",
		Short: `Parse a map of quoted strings, like {"k": "v"}`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := strmap.Parse(args[0], s.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pairs)
			return nil
		},
	}
	return cmd
}
