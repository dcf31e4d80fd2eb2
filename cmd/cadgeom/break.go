package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/cadgeom"
	"honnef.co/go/cadgeom/internal/drawing"
)

func newBreakCmd(g *globalFlags) *cobra.Command {
	var (
		name string
		at   []float64
	)
	cmd := &cobra.Command{
		Use:   "break <file> --polyline name --at x,y",
		Short: "Split a polyline at a point",
		Long: `Split a polyline at the point on it closest to --at, and print the two parts
as a drawing. Arc segments are split into two arcs on the same circle.
Closed polylines are opened at their first vertex first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(at) != 2 {
				return fmt.Errorf("--at needs x,y, got %d values: %w", len(at), cadgeom.ErrInvalidInput)
			}
			doc, err := g.loadDrawing(args[0])
			if err != nil {
				return err
			}
			entry, err := doc.Polyline(name)
			if err != nil {
				return err
			}
			p := drawing.ToPolyline(entry)
			target := cadgeom.Pt(at[0], at[1])
			nearest, param := p.Nearest(target)
			g.log.Debug("breaking polyline", "polyline", name, "at", nearest, "parameter", param)

			first, second, err := p.BreakAt(target, g.tolerance(doc))
			if err != nil {
				return fmt.Errorf("breaking %q at %s: %w", name, pt(target), err)
			}
			return drawing.Encode(cmd.OutOrStdout(), &drawing.Document{
				Tol: doc.Tol,
				Polylines: []drawing.Polyline{
					drawing.FromPolyline(name+".1", first),
					drawing.FromPolyline(name+".2", second),
				},
			})
		},
	}
	cmd.Flags().StringVarP(&name, "polyline", "p", "", "Name of the polyline to split")
	cmd.Flags().Float64SliceVar(&at, "at", nil, "Point to split at, as x,y")
	cmd.MarkFlagRequired("polyline")
	cmd.MarkFlagRequired("at")
	return cmd
}
