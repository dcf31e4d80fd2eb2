// Package render draws drawing documents to raster images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"honnef.co/go/cadgeom"
	"honnef.co/go/cadgeom/internal/drawing"
)

// Options controls the output of [Render].
type Options struct {
	// Size is the length in pixels of the longer side of the drawing's
	// bounding box. Defaults to 512.
	Size int
	// Margin is the padding around the drawing, in pixels. Defaults to 16.
	Margin float64
	// LineWidth defaults to 2 pixels.
	LineWidth float64
	// HideCentroids suppresses the centroid marks.
	HideCentroids bool
}

var (
	Background    = color.White
	PolylineColor = color.RGBA{0x1f, 0x3a, 0x93, 0xff}
	CircleColor   = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
	TriangleColor = color.RGBA{0xe0, 0x7b, 0x00, 0xff}
	CentroidColor = color.RGBA{0xd0, 0x10, 0x10, 0xff}
)

const centroidRadius = 3

func (opts Options) withDefaults() Options {
	if opts.Size <= 0 {
		opts.Size = 512
	}
	if opts.Margin <= 0 {
		opts.Margin = 16
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}
	return opts
}

// Bounds returns the bounding box of everything in doc.
func Bounds(doc *drawing.Document) (cadgeom.Rect, bool) {
	var r cadgeom.Rect
	found := false
	add := func(b cadgeom.Rect) {
		if !found {
			r, found = b, true
			return
		}
		r = r.Union(b)
	}
	for _, p := range doc.Polylines {
		if pl := drawing.ToPolyline(p); len(pl.Vertices) > 0 {
			add(pl.BoundingBox())
		}
	}
	for _, c := range doc.Circles {
		if circ, err := drawing.ToCircle(c); err == nil {
			add(circ.BoundingBox())
		}
	}
	for _, t := range doc.Triangles {
		if tri, err := drawing.ToTriangle(t); err == nil {
			add(tri.BoundingBox())
		}
	}
	return r, found
}

// Layout returns the transform from drawing to image coordinates and the
// size of the image. The drawing is y-up, the image y-down.
func Layout(doc *drawing.Document, opts Options) (cadgeom.Affine, image.Point, error) {
	opts = opts.withDefaults()
	box, ok := Bounds(doc)
	if !ok {
		return cadgeom.Affine{}, image.Point{}, fmt.Errorf("nothing to draw: %w", cadgeom.ErrInvalidInput)
	}
	if box.Width() == 0 && box.Height() == 0 {
		box = box.Inflate(1)
	}
	s := float64(opts.Size) / max(box.Width(), box.Height())
	size := image.Point{
		X: int(math.Ceil(box.Width()*s + 2*opts.Margin)),
		Y: int(math.Ceil(box.Height()*s + 2*opts.Margin)),
	}
	aff := cadgeom.Translate(cadgeom.Vec(-box.X0, -box.Y0)).
		ThenScale(s, s).
		ThenTranslate(cadgeom.Vec(opts.Margin, opts.Margin)).
		ThenScale(1, -1).
		ThenTranslate(cadgeom.Vec(0, float64(size.Y)))
	return aff, size, nil
}

// Render draws the polylines, circles and triangles of doc, and marks the
// centroids of closed polylines and triangles.
func Render(doc *drawing.Document, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	aff, size, err := Layout(doc, opts)
	if err != nil {
		return nil, err
	}
	scale := math.Sqrt(math.Abs(aff.Determinant()))

	dc := gg.NewContext(size.X, size.Y)
	dc.SetColor(Background)
	dc.Clear()
	dc.SetLineWidth(opts.LineWidth)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	var marks []cadgeom.Point
	for _, p := range doc.Polylines {
		pl := drawing.ToPolyline(p)
		drawPolyline(dc, pl.Transform(aff))
		dc.SetColor(PolylineColor)
		dc.Stroke()
		if pl.Closed {
			c, err := pl.Centroid()
			if err != nil && !errors.Is(err, cadgeom.ErrDegenerate) {
				return nil, err
			}
			if err == nil {
				marks = append(marks, c)
			}
		}
	}
	for _, c := range doc.Circles {
		circ, err := drawing.ToCircle(c)
		if err != nil {
			return nil, err
		}
		center := circ.Center.Transform(aff)
		dc.DrawCircle(center.X, center.Y, circ.Radius*scale)
		dc.SetColor(CircleColor)
		dc.Stroke()
	}
	for _, t := range doc.Triangles {
		tri, err := drawing.ToTriangle(t)
		if err != nil {
			return nil, err
		}
		img := tri.Transform(aff)
		dc.MoveTo(img[0].X, img[0].Y)
		dc.LineTo(img[1].X, img[1].Y)
		dc.LineTo(img[2].X, img[2].Y)
		dc.ClosePath()
		dc.SetColor(TriangleColor)
		dc.Stroke()
		marks = append(marks, tri.Centroid())
	}

	if !opts.HideCentroids {
		dc.SetColor(CentroidColor)
		for _, m := range marks {
			pt := m.Transform(aff)
			dc.DrawCircle(pt.X, pt.Y, centroidRadius)
			dc.Fill()
		}
	}
	return dc.Image(), nil
}

// drawPolyline adds the path of p, which is in image coordinates, to dc.
func drawPolyline(dc *gg.Context, p cadgeom.Polyline) {
	if len(p.Vertices) == 0 {
		return
	}
	start := p.Vertices[0].Point
	dc.MoveTo(start.X, start.Y)
	for _, s := range p.Segments() {
		if arc, ok := s.ToCircularArc(); ok {
			dc.DrawArc(arc.Center.X, arc.Center.Y, arc.Radius, arc.StartAngle, arc.EndAngle())
			continue
		}
		dc.LineTo(s.EndPoint.X, s.EndPoint.Y)
	}
	if p.Closed {
		dc.ClosePath()
	}
}

// SavePNG renders doc and writes the image to path.
func SavePNG(path string, doc *drawing.Document, opts Options) error {
	img, err := Render(doc, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
