package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"honnef.co/go/cadgeom"
)

func newTangentsCmd(g *globalFlags) *cobra.Command {
	var (
		circle, point, to []float64
		kind              string
	)
	cmd := &cobra.Command{
		Use:   "tangents --circle x,y,r (--point x,y | --to x,y,r)",
		Short: "Print tangent lines of a circle",
		Long: `Print the lines through a point that touch a circle, or the common tangents
of two circles. Each line is printed from its first to its second contact
point, or from the contact point to the given point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := circleFlag("circle", circle)
			if err != nil {
				return err
			}
			tol := g.tolerance(nil)
			out := cmd.OutOrStdout()

			if point != nil {
				if len(point) != 2 {
					return fmt.Errorf("--point needs x,y, got %d values: %w", len(point), cadgeom.ErrInvalidInput)
				}
				p := cadgeom.Pt(point[0], point[1])
				lines, ok := c.TangentsFromPoint(p, tol)
				if !ok {
					return fmt.Errorf("point %s is not outside the circle: %w", pt(p), cadgeom.ErrNoSolution)
				}
				printTangents(out, lines[:])
				return nil
			}

			o, err := circleFlag("to", to)
			if err != nil {
				return err
			}
			var flags cadgeom.TangentType
			switch kind {
			case "inner":
				flags = cadgeom.TangentInner
			case "outer":
				flags = cadgeom.TangentOuter
			case "both":
				flags = cadgeom.TangentBoth
			default:
				return fmt.Errorf("--type must be inner, outer or both, not %q: %w", kind, cadgeom.ErrInvalidInput)
			}
			lines, n := c.TangentsTo(o, flags, tol)
			g.log.Debug("common tangents", "type", flags, "found", n)
			if n == 0 {
				return fmt.Errorf("no %s tangents: %w", flags, cadgeom.ErrNoSolution)
			}
			printTangents(out, lines[:n])
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&circle, "circle", nil, "The circle as x,y,radius")
	f.Float64SliceVar(&point, "point", nil, "Point to draw tangents through, as x,y")
	f.Float64SliceVar(&to, "to", nil, "Second circle as x,y,radius")
	f.StringVar(&kind, "type", "both", "Common tangents to find: inner, outer or both")
	cmd.MarkFlagRequired("circle")
	cmd.MarkFlagsOneRequired("point", "to")
	cmd.MarkFlagsMutuallyExclusive("point", "to")
	return cmd
}

func circleFlag(name string, v []float64) (cadgeom.Circle, error) {
	if len(v) != 3 {
		return cadgeom.Circle{}, fmt.Errorf("--%s needs x,y,radius, got %d values: %w", name, len(v), cadgeom.ErrInvalidInput)
	}
	if v[2] <= 0 {
		return cadgeom.Circle{}, fmt.Errorf("--%s has radius %s: %w", name, num(v[2]), cadgeom.ErrInvalidInput)
	}
	return cadgeom.Circle{Center: cadgeom.Pt(v[0], v[1]), Radius: v[2]}, nil
}

func printTangents(out io.Writer, lines []cadgeom.Line) {
	for i, l := range lines {
		fmt.Fprintf(out, "%d: %s -> %s length %s\n", i+1, pt(l.P0), pt(l.P1), num(l.Length()))
	}
}
