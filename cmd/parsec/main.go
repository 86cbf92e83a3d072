// Command parsec parses text with the example grammars of module parsec and
// prints the resulting value.
//
//	parsec list "[1, 2, [3, 4]]"
//	parsec list --letters --verify "[a, [b]]"
//	parsec csv data.csv
//	parsec map '{"k": "v"}'
//
// On failure, parsec prints "error - <message>" and exits with a non-zero
// status.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

// settings shared by all sub-commands
type settings struct {
	trace    string
	maxDepth int
	nfc      bool
}

func (s *settings) options() []parsec.Option {
	opts := []parsec.Option{parsec.WithMaxDepth(s.maxDepth)}
	if s.nfc {
		opts = append(opts, parsec.WithNormalization(norm.NFC))
	}
	return opts
}

func setupTracing(level string) error {
	gtrace.SyntaxTracer = gologadapter.New()
	switch strings.ToLower(level) {
	case "", "error":
		gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	case "info":
		gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	rootCmd := &cobra.Command{
		Use:           "parsec",
		Short:         "Parse text with the parsec example grammars",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(s.trace)
		},
	}
	rootCmd.PersistentFlags().StringVar(&s.trace, "trace", "", "trace level: error, info or debug")
	rootCmd.PersistentFlags().IntVar(&s.maxDepth, "max-depth", parsec.DefaultMaxDepth,
		"maximum nesting depth of recursive rules, 0 for no limit")
	rootCmd.PersistentFlags().BoolVar(&s.nfc, "nfc", false, "normalize input to Unicode NFC before parsing")

	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newCSVCmd(s))
	rootCmd.AddCommand(newMapCmd(s))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error - %v\n", err)
		os.Exit(1)
	}
}
