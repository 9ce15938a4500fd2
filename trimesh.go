// Color-coded triangular meshes from scattered 2D data.
//
// This package takes unordered points, optionally with a value at each point,
// builds their Delaunay triangulation, averages the point values over each
// triangle, and maps the results through a color gradient. The output is a
// Scene: a list of backend-agnostic drawing primitives plus a colorbar, which
// any Surface (see the backend packages) can draw.
//
// NaN values are not errors. They mark missing data: they are left out of the
// value range and the triangles they touch are drawn black.
package trimesh

import (
	"image/color"
	"time"

	"github.com/osuushi/trimesh/internal"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

type Point = internal.Point
type Triangle = internal.Triangle
type Triangulation = internal.Triangulation
type Face = internal.Face
type Color = internal.Color
type Gradient = internal.Gradient
type Config = internal.Config
type Kind = internal.Kind
type Scene = internal.Scene
type Primitive = internal.Primitive
type PrimitiveKind = internal.PrimitiveKind
type Colorbar = internal.Colorbar
type Swatch = internal.Swatch
type Surface = internal.Surface

const (
	WireframeMesh = internal.WireframeMesh
	ScalarHeatmap = internal.ScalarHeatmap

	FilledPolygon = internal.FilledPolygon
	Polyline      = internal.Polyline

	DefaultSwatches = internal.DefaultSwatches
	// Where every value lands when they are all equal
	DegenerateValue = internal.DegenerateValue
)

// Built in gradients. Viridis is the default.
var (
	Viridis   Gradient = internal.Viridis
	Cividis   Gradient = internal.Cividis
	Plasma    Gradient = internal.Plasma
	Inferno   Gradient = internal.Inferno
	BlueRed            = internal.BlueRed
	BlackBody          = internal.BlackBody
)

var Black = internal.Black

// Nearest Color to any image/color.Color, ignoring alpha.
func ColorOf(c color.Color) Color {
	return internal.ColorOf(c)
}

// Errors, for use with errors.Is. All of them are detected before anything is
// drawn.
var (
	ErrDegenerateInput     = internal.ErrDegenerateInput
	ErrEmptyRange          = internal.ErrEmptyRange
	ErrDegenerateAxisRange = internal.ErrDegenerateAxisRange
	ErrInvalidRange        = internal.ErrInvalidRange
	ErrValueCount          = internal.ErrValueCount
	ErrSwatchCount         = internal.ErrSwatchCount
	ErrUnknownGradient     = internal.ErrUnknownGradient
)

// Convert a thrown MeshError into a returned error. Must be deferred directly.
func guard(err *error) {
	if recovered := internal.HandlePanicRecover(recover()); recovered != nil {
		*err = recovered
	}
}

// Delaunay triangulation of points. Needs at least 3 distinct, non-collinear
// points with finite coordinates.
func Build(points []Point) (result *Triangulation, err error) {
	defer guard(&err)
	return internal.Build(points)
}

// Outline every face in cfg.Stroke.
func Wireframe(faces []Face, cfg Config) (scene *Scene, err error) {
	defer guard(&err)
	return internal.Wireframe(faces, cfg)
}

// Fill every face with the color of its cell value, one value per face.
func Heatmap(faces []Face, cellValues []float64, cfg Config) (scene *Scene, err error) {
	defer guard(&err)
	return internal.Heatmap(faces, cellValues, cfg)
}

// Heatmap of a matrix, with one unit square per element. Row 0 is at the
// bottom.
func GridHeatmap(data mat.Matrix, cfg Config) (scene *Scene, err error) {
	defer guard(&err)
	return internal.GridHeatmap(data, cfg)
}

// Triangulate points and outline the triangles.
func TriangulatedWireframe(points []Point, cfg Config) (scene *Scene, err error) {
	defer guard(&err)
	tri, err := build(points, cfg)
	if err != nil {
		return nil, err
	}
	return internal.Wireframe(tri.Faces(), cfg)
}

// Triangulate points and fill each triangle by the mean of the values at its
// corners. values holds one value per point.
func TriangulatedHeatmap(points []Point, values []float64, cfg Config) (scene *Scene, err error) {
	defer guard(&err)
	tri, err := build(points, cfg)
	if err != nil {
		return nil, err
	}
	cells, err := internal.CellValues(tri, values)
	if err != nil {
		return nil, err
	}
	return internal.Heatmap(tri.Faces(), cells, cfg)
}

func build(points []Point, cfg Config) (*Triangulation, error) {
	start := time.Now()
	tri, err := internal.Build(points)
	if err != nil {
		return nil, err
	}
	cfg.Log().WithFields(logrus.Fields{
		"points":    len(points),
		"triangles": len(tri.Triangles),
		"flips":     tri.Flips,
		"elapsed":   time.Since(start),
	}).Debug("triangulated points")
	return tri, nil
}

// Built in gradient by case-insensitive name: viridis, cividis, plasma,
// inferno, bluered or blackbody.
func GradientByName(name string) (Gradient, error) {
	return internal.GradientByName(name)
}

func GradientNames() []string {
	return internal.GradientNames()
}
