package cmd

import "github.com/spf13/cobra"

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Run a diagnostic session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}
