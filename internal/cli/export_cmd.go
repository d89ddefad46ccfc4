package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/luanbartole/kairos/internal/cli/formatter"
	"github.com/luanbartole/kairos/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exportFormatFlag validates --format at parse time.
type exportFormatFlag struct {
	value domain.ExportFormat
}

var _ pflag.Value = (*exportFormatFlag)(nil)

func (f *exportFormatFlag) String() string { return string(f.value) }

func (f *exportFormatFlag) Set(s string) error {
	v, err := domain.ParseExportFormat(s)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

func (f *exportFormatFlag) Type() string { return "csv|json" }

func newExportCmd(app *App) *cobra.Command {
	var format exportFormatFlag
	var output string
	var yes bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export logs to CSV or JSON",
		Example: `  kairos export
  kairos export --format csv --output reports/june.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()

			msg, err := app.Exporter.Export(ctx, format.value, output)

			var dirErr *domain.DirectoryMissingError
			if errors.As(err, &dirErr) {
				create := yes
				if !create {
					create, err = app.confirm(dirErr.Error() + ". Create it?")
					if err != nil {
						return fmt.Errorf("asking to create %s: %w", dirErr.Dir, err)
					}
				}
				if !create {
					fmt.Fprintln(out, formatter.Failure("Export cancelled"))
					return nil
				}
				if err := os.MkdirAll(dirErr.Dir, 0o755); err != nil {
					return fmt.Errorf("creating export directory: %w", err)
				}
				msg, err = app.Exporter.Export(ctx, format.value, output)
			}

			if err != nil {
				return reportOutcome(out, err)
			}
			fmt.Fprintln(out, formatter.Success(msg))
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "Export format: csv or json (defaults to the configured format)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path or filename to export the logs")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Create a missing output directory without asking")

	return cmd
}
