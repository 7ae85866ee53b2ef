package main

import (
	"os"

	"github.com/spf13/cobra"

	"gobf"
)

var compileOut string

var compileCmd = &cobra.Command{
	Use:   "compile FILE",
	Short: "Translate a program to C source",
	Long: `Parse the file and emit an equivalent freestanding C translation unit to
stdout, or to the file given with -o. The generated program behaves exactly
like 'gobf run' on the same source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings()
		if err != nil {
			return err
		}

		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if compileOut != "" {
			f, err := os.Create(compileOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		var opts []gobf.CompileOption
		if s.tapeSize > 0 {
			opts = append(opts, gobf.CompileTapeSize(s.tapeSize))
		}
		return gobf.CompileC(out, prog, opts...)
	},
}

func init() {
	compileCmd.Flags().StringVarP(&compileOut, "output", "o", "", "write C source to file instead of stdout")
	rootCmd.AddCommand(compileCmd)
}
