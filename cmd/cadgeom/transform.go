package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"honnef.co/go/cadgeom"
	"honnef.co/go/cadgeom/internal/drawing"
)

type transformFlags struct {
	mirror    []float64
	scale     []float64
	rotate    float64
	about     []float64
	translate []float64
}

// affine builds the transform described by the flags. Mirroring comes first,
// then scaling and rotation about --about, then translation.
func (f *transformFlags) affine() (cadgeom.Affine, error) {
	aff := cadgeom.Identity
	var about cadgeom.Point
	switch len(f.about) {
	case 0:
	case 2:
		about = cadgeom.Pt(f.about[0], f.about[1])
	default:
		return aff, fmt.Errorf("--about needs x,y, got %d values: %w", len(f.about), cadgeom.ErrInvalidInput)
	}

	switch len(f.mirror) {
	case 0:
	case 4:
		p0 := cadgeom.Pt(f.mirror[0], f.mirror[1])
		p1 := cadgeom.Pt(f.mirror[2], f.mirror[3])
		if p0 == p1 {
			return aff, fmt.Errorf("mirror line through a single point: %w", cadgeom.ErrInvalidInput)
		}
		aff = aff.Then(cadgeom.Mirror(p0, p1))
	default:
		return aff, fmt.Errorf("--mirror needs x0,y0,x1,y1, got %d values: %w", len(f.mirror), cadgeom.ErrInvalidInput)
	}

	center := cadgeom.Vec2(about)
	switch len(f.scale) {
	case 0:
	case 1:
		aff = aff.Then(cadgeom.ScaleAbout(f.scale[0], about))
	case 2:
		aff = aff.ThenTranslate(center.Negate()).ThenScale(f.scale[0], f.scale[1]).ThenTranslate(center)
	default:
		return aff, fmt.Errorf("--scale needs s or sx,sy, got %d values: %w", len(f.scale), cadgeom.ErrInvalidInput)
	}

	if f.rotate != 0 {
		aff = aff.Then(cadgeom.RotateAbout(f.rotate*math.Pi/180, about))
	}

	switch len(f.translate) {
	case 0:
	case 2:
		aff = aff.ThenTranslate(cadgeom.Vec(f.translate[0], f.translate[1]))
	default:
		return aff, fmt.Errorf("--translate needs x,y, got %d values: %w", len(f.translate), cadgeom.ErrInvalidInput)
	}

	if aff.Determinant() == 0 {
		return aff, fmt.Errorf("transform collapses the drawing: %w", cadgeom.ErrInvalidInput)
	}
	return aff, nil
}

func newTransformCmd(g *globalFlags) *cobra.Command {
	var (
		name string
		tf   transformFlags
	)
	cmd := &cobra.Command{
		Use:   "transform <file> --polyline name",
		Short: "Move, rotate, scale or mirror a polyline",
		Long: `Apply a transform to a polyline and print the result as a drawing. The
polyline is mirrored first, then scaled and rotated about --about, then
translated. Polylines with arc segments can only be scaled uniformly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aff, err := tf.affine()
			if err != nil {
				return err
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
			if p.HasArcs() && !aff.IsConformal(g.tolerance(doc)) {
				return fmt.Errorf("polyline %q has arcs, which a non-uniform scale would turn into ellipses: %w", name, cadgeom.ErrInvalidInput)
			}
			g.log.Debug("transforming polyline", "polyline", name, "transform", aff)
			return drawing.Encode(cmd.OutOrStdout(), &drawing.Document{
				Tol:       doc.Tol,
				Polylines: []drawing.Polyline{drawing.FromPolyline(name, p.Transform(aff))},
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&name, "polyline", "p", "", "Name of the polyline to transform")
	f.Float64SliceVar(&tf.mirror, "mirror", nil, "Mirror about the line through x0,y0 and x1,y1")
	f.Float64SliceVar(&tf.scale, "scale", nil, "Scale by s, or by sx,sy")
	f.Float64Var(&tf.rotate, "rotate", 0, "Rotate counterclockwise by this many degrees")
	f.Float64SliceVar(&tf.about, "about", nil, "Center of scaling and rotation, as x,y (default 0,0)")
	f.Float64SliceVar(&tf.translate, "translate", nil, "Move by x,y")
	cmd.MarkFlagRequired("polyline")
	return cmd
}
