package cmd

import (
	"github.com/spf13/cobra"
)

// updateCmd represents the update command.
var updateCmd = newUpdateCmd()

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Rewrite stale documentation snippets from source",
		Long:  updateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResult(workflow.Update(cmd.Context(), syncArgs()))
		},
	}
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
