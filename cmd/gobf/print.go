package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gobf"
)

var printCmd = &cobra.Command{
	Use:   "print FILE...",
	Short: "Pretty-print programs back to source form",
	Long: `Parse each file and print the reconstructed source. Comments are gone,
runs stay runs, and folded [-] / [+] loops print as the [-] idiom, so the
output re-parses to the same tree.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			prog, err := parseFile(path)
			if err != nil {
				return err
			}
			fmt.Print(gobf.Print(prog))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
