// Package drawing reads and writes the YAML documents the cadgeom command
// operates on, and converts their entries to geometry values.
package drawing

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/cadgeom"
)

// ErrNotFound is returned when a document has no entry of the requested name.
var ErrNotFound = errors.New("not found")

// Document is a drawing: named polylines, circles and triangles, plus the
// tolerance to compare their coordinates with.
type Document struct {
	Tol       *Tolerance `yaml:"tolerance,omitempty"`
	Polylines []Polyline `yaml:"polylines,omitempty"`
	Circles   []Circle   `yaml:"circles,omitempty"`
	Triangles []Triangle `yaml:"triangles,omitempty"`
}

// Tolerance overrides parts of [cadgeom.DefaultTolerance]. Zero fields keep
// the default.
type Tolerance struct {
	Point  float64 `yaml:"point,omitempty"`
	Vector float64 `yaml:"vector,omitempty"`
}

type Vertex struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Bulge      float64 `yaml:"bulge,omitempty"`
	StartWidth float64 `yaml:"startWidth,omitempty"`
	EndWidth   float64 `yaml:"endWidth,omitempty"`
}

type Polyline struct {
	Name     string   `yaml:"name"`
	Closed   bool     `yaml:"closed,omitempty"`
	Vertices []Vertex `yaml:"vertices"`
}

type Circle struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// Triangle lists its points as [x, y] pairs.
type Triangle struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points,flow"`
}

// Load reads the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a document from r. Unknown keys are rejected, as are entries
// that don't describe valid geometry. An empty input is an empty document.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding drawing: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding drawing: %w", err)
	}
	return enc.Close()
}

func (doc *Document) validate() error {
	if doc.Tol != nil && (doc.Tol.Point < 0 || doc.Tol.Vector < 0) {
		return fmt.Errorf("negative tolerance %+v: %w", *doc.Tol, cadgeom.ErrInvalidInput)
	}
	seen := make(map[string]bool)
	name := func(kind, n string) error {
		if n == "" {
			return fmt.Errorf("%s without a name: %w", kind, cadgeom.ErrInvalidInput)
		}
		if seen[n] {
			return fmt.Errorf("duplicate name %q: %w", n, cadgeom.ErrInvalidInput)
		}
		seen[n] = true
		return nil
	}
	for _, p := range doc.Polylines {
		if err := name("polyline", p.Name); err != nil {
			return err
		}
		if len(p.Vertices) < 2 {
			return fmt.Errorf("polyline %q has %d vertices, need at least 2: %w", p.Name, len(p.Vertices), cadgeom.ErrInvalidInput)
		}
	}
	for _, c := range doc.Circles {
		if err := name("circle", c.Name); err != nil {
			return err
		}
		if _, err := ToCircle(c); err != nil {
			return err
		}
	}
	for _, t := range doc.Triangles {
		if err := name("triangle", t.Name); err != nil {
			return err
		}
		if _, err := ToTriangle(t); err != nil {
			return err
		}
	}
	return nil
}

// Tolerance returns the document's tolerance, falling back to
// [cadgeom.DefaultTolerance] for unset fields.
func (doc *Document) Tolerance() cadgeom.Tolerance {
	tol := cadgeom.DefaultTolerance
	if doc.Tol == nil {
		return tol
	}
	if doc.Tol.Point > 0 {
		tol.EqualPoint = doc.Tol.Point
	}
	if doc.Tol.Vector > 0 {
		tol.EqualVector = doc.Tol.Vector
	}
	return tol
}

// Polyline returns the polyline called name.
func (doc *Document) Polyline(name string) (Polyline, error) {
	for _, p := range doc.Polylines {
		if p.Name == name {
			return p, nil
		}
	}
	return Polyline{}, fmt.Errorf("polyline %q: %w", name, ErrNotFound)
}

// ToPolyline converts p to a polyline.
func ToPolyline(p Polyline) cadgeom.Polyline {
	vs := make([]cadgeom.Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		vs[i] = cadgeom.Vertex{
			Point:      cadgeom.Pt(v.X, v.Y),
			Bulge:      v.Bulge,
			StartWidth: v.StartWidth,
			EndWidth:   v.EndWidth,
		}
	}
	return cadgeom.Polyline{Vertices: vs, Closed: p.Closed}
}

// FromPolyline converts p to a document entry called name.
func FromPolyline(name string, p cadgeom.Polyline) Polyline {
	vs := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		vs[i] = Vertex{
			X:          v.Point.X,
			Y:          v.Point.Y,
			Bulge:      v.Bulge,
			StartWidth: v.StartWidth,
			EndWidth:   v.EndWidth,
		}
	}
	return Polyline{Name: name, Closed: p.Closed, Vertices: vs}
}

// ToCircle converts c to a circle. The radius must be positive.
func ToCircle(c Circle) (cadgeom.Circle, error) {
	if c.Radius <= 0 {
		return cadgeom.Circle{}, fmt.Errorf("circle %q has radius %g: %w", c.Name, c.Radius, cadgeom.ErrInvalidInput)
	}
	return cadgeom.Circle{Center: cadgeom.Pt(c.X, c.Y), Radius: c.Radius}, nil
}

// ToTriangle converts t to a triangle. It needs exactly three [x, y] pairs.
func ToTriangle(t Triangle) (cadgeom.Triangle2, error) {
	pts := make([]cadgeom.Point, len(t.Points))
	for i, p := range t.Points {
		if len(p) != 2 {
			return cadgeom.Triangle2{}, fmt.Errorf("triangle %q: point %d has %d coordinates: %w", t.Name, i, len(p), cadgeom.ErrInvalidInput)
		}
		pts[i] = cadgeom.Pt(p[0], p[1])
	}
	tri, err := cadgeom.NewTriangle2(pts)
	if err != nil {
		return cadgeom.Triangle2{}, fmt.Errorf("triangle %q: %w", t.Name, err)
	}
	return tri, nil
}
