package cli

import (
	"fmt"

	"github.com/luanbartole/kairos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st, err := app.Tracker.Status(commandContext(cmd))
			if err != nil {
				return reportOutcome(out, err)
			}
			fmt.Fprintln(out, formatter.FormatStatus(st))
			return nil
		},
	}
}
