package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/cadgeom"
)

func newTriangleCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "triangle <x0> <y0> <x1> <y1> <x2> <y2>",
		Short: "Print the properties of a triangle",
		Long: `Print the area, orientation, centroid, circumscribed and inscribed circles and
the interior angles of the triangle with the given vertices. Put -- before
the coordinates if any of them is negative.`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [6]float64
			for i, arg := range args {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("coordinate %q: %w", arg, cadgeom.ErrInvalidInput)
				}
				v[i] = f
			}
			t := cadgeom.Tri2(cadgeom.Pt(v[0], v[1]), cadgeom.Pt(v[2], v[3]), cadgeom.Pt(v[4], v[5]))
			g.log.Debug("triangle", "vertices", []cadgeom.Point(t[:]))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "area: %s\n", num(t.Area()))
			fmt.Fprintf(out, "signed area: %s\n", num(t.SignedArea()))
			fmt.Fprintf(out, "orientation: %s\n", orientation(t.IsClockwise()))
			fmt.Fprintf(out, "centroid: %s\n", pt(t.Centroid()))
			if c, ok := t.CircumscribedCircle(); ok {
				fmt.Fprintf(out, "circumcircle: center %s radius %s\n", pt(c.Center), num(c.Radius))
			} else {
				fmt.Fprintf(out, "circumcircle: none\n")
			}
			if c, ok := t.InscribedCircle(); ok {
				fmt.Fprintf(out, "incircle: center %s radius %s\n", pt(c.Center), num(c.Radius))
			} else {
				fmt.Fprintf(out, "incircle: none\n")
			}
			fmt.Fprintf(out, "angles:")
			for i := range 3 {
				fmt.Fprintf(out, " %s", num(t.AngleAt(i)*180/math.Pi))
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
