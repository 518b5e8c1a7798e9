package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snippet ids with their source and documentation locations",
		Long: `List every snippet id found in either tree, where it is defined and
where it is documented. The exit status only reflects configuration and
I/O errors.

` + globsHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.List(cmd.Context(), syncArgs())
			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
