package cli

import (
	"errors"
	"fmt"

	"github.com/luanbartole/kairos/internal/cli/formatter"
	"github.com/luanbartole/kairos/internal/domain"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var today, week bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show time summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()

			if today {
				summary, err := app.Summary.Today(ctx)
				if errors.Is(err, domain.ErrNoData) {
					fmt.Fprintln(out, formatter.Warning("No sessions for today."))
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatDailySummary(summary))
				return nil
			}

			summary, err := app.Summary.Weekly(ctx)
			if errors.Is(err, domain.ErrNoData) {
				fmt.Fprintln(out, formatter.Warning("No sessions found for this week."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatWeeklySummary(summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "Show today's summary")
	cmd.Flags().BoolVar(&week, "week", false, "Show weekly summary")
	cmd.MarkFlagsMutuallyExclusive("today", "week")
	cmd.MarkFlagsOneRequired("today", "week")

	return cmd
}
