package main

import (
	"fmt"

	"github.com/npillmayer/parsec/lists"
	"github.com/spf13/cobra"
)

func newListCmd(s *settings) *cobra.Command {
	var letters, verify bool

	cmd := &cobra.Command{
		Use:   "list <text>",
		Short: "Parse a nested list of integers or letters",
		Long: `Parse a bracketed, nested list, like "[1, 2, [3, 4]]".

Elements are separated by a comma and a single space. Leaves are integers
without leading zeros, or single letters with --letters.

With --verify, the input is additionally checked by an Earley parser for
the same language, and disagreement is reported as an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := lists.Integers
			if letters {
				kind = lists.Letters
			}
			if verify {
				if _, err := lists.CrossCheck(args[0], kind, s.options()...); err != nil {
					return err
				}
			}
			l, err := lists.Parse(args[0], kind, s.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l)
			return nil
		},
	}

	cmd.Flags().BoolVar(&letters, "letters", false, "leaves are letters instead of integers")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the input with an Earley parser")

	return cmd
}
