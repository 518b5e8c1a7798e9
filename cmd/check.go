package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report documentation snippets that drifted from source",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResult(workflow.Check(cmd.Context(), syncArgs()))
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
