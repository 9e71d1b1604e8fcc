package main

import (
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch INPUT_DIR OUTPUT_DIR",
	Short: "Merge every transcript in a directory, each into its own output file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, proc, err := setup(cmd)
		if err != nil {
			return err
		}
		return proc.ProcessDir(cmd.Context(), args[0], args[1])
	},
}
