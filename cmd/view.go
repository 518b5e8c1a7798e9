package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmi3/freshreadme/internal/domain"
	m "github.com/dmi3/freshreadme/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report-file]",
		Short: "View a previously saved report",
		Long: `View a report written with --report-file. Without an argument the
configured report file is used. The exit status reflects the saved outcome.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := m.Path(viper.GetString(reportFileKey))
			if len(args) == 1 {
				reportPath = m.Path(args[0])
			}

			return runResult(workflow.View(cmd.Context(), domain.ViewArgs{
				Report: reportPath,
				Format: viper.GetString(outputFormatKey),
			}))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
