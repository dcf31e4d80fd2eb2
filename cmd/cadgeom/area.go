package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/cadgeom"
	"honnef.co/go/cadgeom/internal/drawing"
)

func newAreaCmd(g *globalFlags) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "area <file>",
		Short: "Print area and centroid of polylines",
		Long: `Print the area, signed area, orientation and centroid of every polyline in
a drawing. Open polylines are measured as if they were closed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.loadDrawing(args[0])
			if err != nil {
				return err
			}
			polys := doc.Polylines
			if name != "" {
				p, err := doc.Polyline(name)
				if err != nil {
					return err
				}
				polys = []drawing.Polyline{p}
			}
			out := cmd.OutOrStdout()
			for _, entry := range polys {
				p := drawing.ToPolyline(entry)
				fmt.Fprintf(out, "%s:\n", entry.Name)
				fmt.Fprintf(out, "  area: %s\n", num(p.Area()))
				fmt.Fprintf(out, "  signed area: %s\n", num(p.SignedArea()))
				fmt.Fprintf(out, "  orientation: %s\n", orientation(p.IsClockwise()))
				fmt.Fprintf(out, "  length: %s\n", num(p.Length()))
				c, err := p.Centroid()
				switch {
				case errors.Is(err, cadgeom.ErrDegenerate):
					g.log.Debug("no centroid", "polyline", entry.Name, "err", err)
					fmt.Fprintf(out, "  centroid: none\n")
				case err != nil:
					return fmt.Errorf("polyline %q: %w", entry.Name, err)
				default:
					fmt.Fprintf(out, "  centroid: %s\n", pt(c))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "polyline", "p", "", "Only measure the polyline with this name")
	return cmd
}
