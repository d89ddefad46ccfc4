package cli

import (
	"fmt"
	"strings"

	"github.com/luanbartole/kairos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "start TASK",
		Short: "Start a timer for a task",
		Example: `  kairos start "Write report" --tag work
  kairos start Inbox -t admin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			msg, err := app.Tracker.Start(commandContext(cmd), strings.Join(args, " "), tag)
			if err != nil {
				return reportOutcome(out, err)
			}
			fmt.Fprintln(out, formatter.Success(msg))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Optional tag for this session")

	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the current timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			msg, err := app.Tracker.Stop(commandContext(cmd))
			if err != nil {
				return reportOutcome(out, err)
			}
			fmt.Fprintln(out, formatter.Success(msg))
			return nil
		},
	}
}
