package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/cadgeom/internal/drawing"
)

func newFilletCmd(g *globalFlags) *cobra.Command {
	var (
		name   string
		radius float64
		vertex int
	)
	cmd := &cobra.Command{
		Use:   "fillet <file> --polyline name --radius r [--vertex i]",
		Short: "Round the corners of a polyline",
		Long: `Round the corner at --vertex, or every corner between two straight segments
that has room for it, with an arc of the given radius. The result is
printed as a drawing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.loadDrawing(args[0])
			if err != nil {
				return err
			}
			entry, err := doc.Polyline(name)
			if err != nil {
				return err
			}
			p := drawing.ToPolyline(entry)

			if cmd.Flags().Changed("vertex") {
				p, err = p.FilletAt(vertex, radius)
				if err != nil {
					return fmt.Errorf("filleting vertex %d of %q: %w", vertex, name, err)
				}
			} else {
				var n int
				p, n, err = p.FilletAll(radius)
				if err != nil {
					return fmt.Errorf("filleting %q: %w", name, err)
				}
				g.log.Debug("rounded corners", "polyline", name, "count", n)
			}
			return drawing.Encode(cmd.OutOrStdout(), &drawing.Document{
				Tol:       doc.Tol,
				Polylines: []drawing.Polyline{drawing.FromPolyline(name, p)},
			})
		},
	}
	cmd.Flags().StringVarP(&name, "polyline", "p", "", "Name of the polyline to fillet")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 0, "Fillet radius")
	cmd.Flags().IntVar(&vertex, "vertex", 0, "Index of the vertex to round (default all corners)")
	cmd.MarkFlagRequired("polyline")
	cmd.MarkFlagRequired("radius")
	return cmd
}
