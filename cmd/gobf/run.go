package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gobf"
)

var (
	runTimeout time.Duration
	runDump    bool
	runInput   string
	runWatch   bool
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Evaluate programs against a tape machine",
	Long: `Parse each file and execute it. Input commands read from stdin, or from
the --input file when given; output goes to stdout.

With --watch the single given file is re-run every time it changes on disk,
until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings()
		if err != nil {
			return err
		}

		if runWatch {
			if len(args) != 1 {
				return fmt.Errorf("--watch takes exactly one file, got %v", len(args))
			}
			return watchAndRun(cmd.Context(), args[0], s)
		}

		for _, path := range args {
			if err := runFile(cmd.Context(), path, s); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "specify a time limit per program")
	runCmd.Flags().BoolVar(&runDump, "dump", false, "dump final tape state after each run")
	runCmd.Flags().StringVar(&runInput, "input", "", "file supplying the program's input stream (default stdin)")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "re-run the file whenever it changes")
	rootCmd.AddCommand(runCmd)
}

func runFile(ctx context.Context, path string, s settings) error {
	prog, err := parseFile(path)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if runInput != "" {
		f, err := os.Open(runInput)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	if runTimeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runTimeout)
		defer cancel()
	}

	vm := gobf.New(s.vmOptions(in, os.Stdout)...)
	if err := vm.Run(ctx, prog); err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}
	if runDump {
		vm.Dump(log.Printf)
	}
	return nil
}
