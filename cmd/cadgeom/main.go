// Command cadgeom runs the geometry of the cadgeom package on drawings and
// command-line values.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/cadgeom"
	"honnef.co/go/cadgeom/internal/drawing"
)

// globalFlags holds the persistent flags of the root command.
type globalFlags struct {
	verbose   bool
	pointTol  float64
	vectorTol float64

	log *slog.Logger
}

// tolerance returns the tolerance to use for doc. Flags override the
// document, which overrides the defaults. doc may be nil.
func (g *globalFlags) tolerance(doc *drawing.Document) cadgeom.Tolerance {
	tol := cadgeom.DefaultTolerance
	if doc != nil {
		tol = doc.Tolerance()
	}
	if g.pointTol > 0 {
		tol.EqualPoint = g.pointTol
	}
	if g.vectorTol > 0 {
		tol.EqualVector = g.vectorTol
	}
	return tol
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "cadgeom",
		Short: "2D and 3D CAD geometry on the command line",
		Long: `cadgeom computes triangle properties, circle tangents, polyline areas and
centroids, and splits, fillets, transforms and renders polylines stored in YAML
drawings.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.pointTol < 0 || g.vectorTol < 0 {
				return fmt.Errorf("negative tolerance: %w", cadgeom.ErrInvalidInput)
			}
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}
			g.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "Log debug output to stderr")
	flags.Float64Var(&g.pointTol, "point-tolerance", 0, "Distance below which points are equal (default from the drawing, or 1e-10)")
	flags.Float64Var(&g.vectorTol, "vector-tolerance", 0, "Tolerance for vector comparisons (default from the drawing, or 1e-12)")

	rootCmd.AddCommand(
		newAreaCmd(g),
		newTriangleCmd(g),
		newTangentsCmd(g),
		newBreakCmd(g),
		newFilletCmd(g),
		newTransformCmd(g),
		newRenderCmd(g),
	)
	return rootCmd
}

// loadDrawing loads the drawing at path and logs what it contains.
func (g *globalFlags) loadDrawing(path string) (*drawing.Document, error) {
	doc, err := drawing.Load(path)
	if err != nil {
		return nil, err
	}
	g.log.Debug("loaded drawing", "path", path,
		"polylines", len(doc.Polylines),
		"circles", len(doc.Circles),
		"triangles", len(doc.Triangles))
	return doc, nil
}

// num formats f for output.
func num(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func pt(p cadgeom.Point) string {
	return "(" + num(p.X) + ", " + num(p.Y) + ")"
}

func orientation(clockwise bool) string {
	if clockwise {
		return "cw"
	}
	return "ccw"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
