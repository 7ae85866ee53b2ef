package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gobf"
)

var (
	// Global flags
	cfgFile  string
	tapeSize int
	eofName  string
	trace    bool
	strict   bool
)

var rootCmd = &cobra.Command{
	Use:   "gobf [file...]",
	Short: "A Brainfuck toolchain: parse, pretty-print, run, compile",
	Long: `gobf parses Brainfuck source into a tree and drives it through
interchangeable consumers: a pretty-printer, a tape-machine evaluator, and a
C code generator.

Run with file arguments to get the classic two-section report per file: a
"SRC:" section with the reconstructed source, then an "EVAL:" section with
the program's output (input is read from stdin). Use the print, run, and
compile subcommands to drive a single consumer.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         rootRun,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "yaml config file path")
	rootCmd.PersistentFlags().IntVar(&tapeSize, "tape-size", 0, "tape capacity in cells")
	rootCmd.PersistentFlags().StringVar(&eofName, "eof", "", "input end-of-stream policy: zero, all-ones, unchanged, or error")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "enable trace logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject unterminated loops instead of implicitly closing them")
}

func rootRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("gobf: no input files")
		return nil
	}

	s, err := resolveSettings()
	if err != nil {
		return err
	}

	for _, path := range args {
		prog, err := parseFile(path)
		if err != nil {
			return err
		}

		fmt.Println("SRC:")
		fmt.Print(gobf.Print(prog))

		fmt.Println("EVAL:")
		vm := gobf.New(s.vmOptions(os.Stdin, os.Stdout)...)
		if err := vm.Run(context.Background(), prog); err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
		fmt.Println()
	}
	return nil
}

// parseFile parses one source file under the global parse flags.
func parseFile(path string) (*gobf.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := []gobf.ParseOption{gobf.WithName(path)}
	if strict {
		opts = append(opts, gobf.Strict())
	}
	return gobf.Parse(f, opts...)
}
