package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlieparkes/geometry/geometry"
	"github.com/charlieparkes/geometry/internal/batch"
)

func newCircleCmd(opts *options) *cobra.Command {
	var radius float64

	cmd := &cobra.Command{
		Use:   "circle",
		Short: "Report the area and circumference of a circle",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return emit(c, opts, geometry.NewCircle(radius))
		},
	}
	cmd.Flags().Float64VarP(&radius, "radius", "r", 0, "circle radius")
	cmd.MarkFlagRequired("radius")
	return cmd
}

func newRectCmd(opts *options) *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:     "rect",
		Aliases: []string{"rectangle"},
		Short:   "Report the area and perimeter of a rectangle",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return emit(c, opts, geometry.NewRectangle(width, height))
		},
	}
	cmd.Flags().Float64Var(&width, "width", 0, "rectangle width")
	cmd.Flags().Float64Var(&height, "height", 0, "rectangle height")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")
	return cmd
}

func newBatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Report every shape listed in a file, or stdin",
		Long: `Reads one shape per line, fields separated by spaces or tabs:

  circle <radius>
  rect <width> <height>

Everything after a # is ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var r io.Reader = c.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			shapes, err := batch.Parse(r)
			if err != nil {
				return fmt.Errorf("parse shapes: %w", err)
			}
			return emit(c, opts, shapes...)
		},
	}
}
