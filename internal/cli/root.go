package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/luanbartole/kairos/internal/cli/formatter"
	"github.com/luanbartole/kairos/internal/domain"
	"github.com/luanbartole/kairos/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and collaborators used by CLI commands.
type App struct {
	Tracker  service.TrackerService
	Summary  service.SummaryService
	Exporter service.ExportService

	// Confirm asks a yes/no question. Nil declines every prompt.
	Confirm ConfirmFunc
}

// NewRootCmd creates the top-level "kairos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "kairos",
		Short:         "Track time spent on tasks",
		Long:          "Kairos is a CLI tool to track time spent on tasks.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newSummaryCmd(app),
		newExportCmd(app),
	)

	return root
}

// reportOutcome prints recoverable domain errors as styled messages and
// swallows them; anything else is returned to the caller.
func reportOutcome(w io.Writer, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrAlreadyRunning):
		fmt.Fprintln(w, formatter.Failure("A timer is already running. Stop it before starting a new one."))
	case errors.Is(err, domain.ErrNoActiveSession):
		fmt.Fprintln(w, formatter.Failure("No active timer found. Start a timer first using the 'start' command."))
	case errors.Is(err, domain.ErrNothingToExport):
		fmt.Fprintln(w, formatter.Failure("No sessions to export."))
	case errors.Is(err, domain.ErrDirectoryMissing):
		fmt.Fprintln(w, formatter.Failure(err.Error()))
	default:
		return err
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
