package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charlieparkes/geometry/geometry"
	"github.com/charlieparkes/geometry/internal/app"
	"github.com/charlieparkes/geometry/internal/output"
	"github.com/charlieparkes/geometry/internal/report"
)

// Replaced in tests.
var (
	setupLog    = app.SetupLog
	writeReport = report.Write
)

func main() {
	opts := &options{}
	if err := execute(newRootCmd(opts), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by every subcommand.
type options struct {
	output string
	format report.Format
	debug  bool

	// flush syncs the logger installed by the root command.
	flush func()
}

// execute runs cmd and flushes the logger whether or not the command failed.
func execute(cmd *cobra.Command, opts *options) error {
	defer func() {
		if opts.flush != nil {
			opts.flush()
		}
	}()
	return cmd.Execute()
}

func newRootCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:           "geometry",
		Short:         "Measure circles and rectangles",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			opts.format = f

			flush, err := setupLog(opts.debug)
			if err != nil {
				return err
			}
			opts.flush = flush
			return nil
		},
		// No Run, so a bare invocation prints help.
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "where to write the report: a file path, gs://bucket/object, or - for stdout")
	cmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "report format: text|json")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newCircleCmd(opts),
		newRectCmd(opts),
		newBatchCmd(opts),
	)
	return cmd
}

// emit writes the report for shapes to the destination named by --output.
// A report that fails part way is aborted, never committed.
func emit(c *cobra.Command, opts *options, shapes ...geometry.Shape) error {
	w, err := output.Create(c.Context(), opts.output, c.OutOrStdout())
	if err != nil {
		return err
	}

	if err := writeReport(w, opts.format, shapes...); err != nil {
		if aerr := w.Abort(); aerr != nil {
			app.Log.Warn("abort report", zap.Error(aerr))
		}
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	app.Log.Debug("report written", zap.Int("shapes", len(shapes)), zap.String("format", string(opts.format)))
	return nil
}
