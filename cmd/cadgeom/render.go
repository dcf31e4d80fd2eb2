package main

import (
	"github.com/spf13/cobra"

	"honnef.co/go/cadgeom/internal/render"
)

func newRenderCmd(g *globalFlags) *cobra.Command {
	var (
		output string
		opts   render.Options
	)
	cmd := &cobra.Command{
		Use:   "render <file> -o out.png",
		Short: "Draw a drawing to a PNG image",
		Long: `Draw the polylines, circles and triangles of a drawing to a PNG image, and
mark the centroids of closed polylines and triangles.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.loadDrawing(args[0])
			if err != nil {
				return err
			}
			if err := render.SavePNG(output, doc, opts); err != nil {
				return err
			}
			g.log.Info("wrote image", "path", output)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "Path of the PNG file to write")
	f.IntVar(&opts.Size, "size", 512, "Size in pixels of the drawing's longer side")
	f.Float64Var(&opts.Margin, "margin", 16, "Padding around the drawing, in pixels")
	f.Float64Var(&opts.LineWidth, "line-width", 2, "Stroke width in pixels")
	f.BoolVar(&opts.HideCentroids, "no-centroids", false, "Don't mark centroids")
	cmd.MarkFlagRequired("output")
	return cmd
}
