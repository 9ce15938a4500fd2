package internal

import (
	"fmt"
	"io"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/osuushi/trimesh/dbg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

type Kind int

const (
	// Triangle outlines in a single stroke color
	WireframeMesh Kind = iota
	// Triangles filled by their cell value, with a colorbar
	ScalarHeatmap
)

func (k Kind) String() string {
	switch k {
	case WireframeMesh:
		return "wireframe"
	case ScalarHeatmap:
		return "heatmap"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type PrimitiveKind int

const (
	FilledPolygon PrimitiveKind = iota
	// Open path. Closed outlines repeat their first point at the end.
	Polyline
)

// The renderer's output unit, in data coordinates.
type Primitive struct {
	Kind   PrimitiveKind
	Points []Point
	Color  Color
}

// Drawing capability implemented by backends. Points are in the coordinate
// system the surface was set up with.
type Surface interface {
	DrawPolygon(points []Point, c Color) error
	DrawPolyline(points []Point, c Color) error
}

// Everything one render call needs, settled before the call. The zero value
// draws with Viridis, DefaultSwatches swatches, a black stroke, automatic axis
// ranges and an automatic value range.
type Config struct {
	Kind Kind
	// Axis overrides. Bounding box of the input on nil axes.
	XRange, YRange *r1.Interval
	Gradient       Gradient
	// Fixed value scale, e.g. to share colors between several plots.
	ValueRange *r1.Interval
	Swatches   int
	// Wireframe line color.
	Stroke Color
	Logger logrus.FieldLogger
}

var discardLogger = func() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	logger.SetLevel(logrus.PanicLevel)
	return logger
}()

// The configured logger, or one that discards everything.
func (cfg Config) Log() logrus.FieldLogger {
	if cfg.Logger == nil {
		return discardLogger
	}
	return cfg.Logger
}

func (cfg Config) withDefaults() Config {
	if cfg.Gradient == nil {
		cfg.Gradient = Viridis
	}
	if cfg.Swatches == 0 {
		cfg.Swatches = DefaultSwatches
	}
	cfg.Logger = cfg.Log()
	return cfg
}

type Scene struct {
	// Random readable name tying together the log lines of one render
	Name string
	Kind Kind
	// Data coordinates covered by the plot
	Bounds     r2.Rect
	Primitives []Primitive
	// Only set for heatmaps
	ValueRange r1.Interval
	Colorbar   *Colorbar
}

// Render faces according to cfg.Kind. Cell values are ignored for wireframes.
func Render(faces []Face, cellValues []float64, cfg Config) (*Scene, error) {
	cells := make([][]Point, len(faces))
	for i, f := range faces {
		cells[i] = []Point{f[0], f[1], f[2]}
	}
	return render(cells, cellValues, cfg)
}

func Wireframe(faces []Face, cfg Config) (*Scene, error) {
	cfg.Kind = WireframeMesh
	return Render(faces, nil, cfg)
}

func Heatmap(faces []Face, cellValues []float64, cfg Config) (*Scene, error) {
	cfg.Kind = ScalarHeatmap
	return Render(faces, cellValues, cfg)
}

// Heatmap of a regular grid. Cell (r, c) covers [c, c+1] × [r, r+1], so row 0
// is at the bottom of the plot.
func GridHeatmap(data mat.Matrix, cfg Config) (*Scene, error) {
	rows, cols := data.Dims()
	cells := make([][]Point, 0, rows*cols)
	values := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := float64(c), float64(r)
			cells = append(cells, []Point{
				{X: x, Y: y},
				{X: x + 1, Y: y},
				{X: x + 1, Y: y + 1},
				{X: x, Y: y + 1},
			})
			values = append(values, data.At(r, c))
		}
	}
	cfg.Kind = ScalarHeatmap
	return render(cells, values, cfg)
}

func render(cells [][]Point, values []float64, cfg Config) (*Scene, error) {
	cfg = cfg.withDefaults()

	bounds, err := axisBounds(cells, cfg)
	if err != nil {
		return nil, err
	}
	scene := &Scene{
		Name:       dbg.Name(),
		Kind:       cfg.Kind,
		Bounds:     bounds,
		Primitives: make([]Primitive, len(cells)),
	}
	logger := cfg.Logger.WithFields(logrus.Fields{
		"scene": scene.Name,
		"kind":  cfg.Kind,
		"cells": len(cells),
	})

	switch cfg.Kind {
	case WireframeMesh:
		for i, cell := range cells {
			outline := make([]Point, len(cell)+1)
			copy(outline, cell)
			outline[len(cell)] = cell[0]
			scene.Primitives[i] = Primitive{Kind: Polyline, Points: outline, Color: cfg.Stroke}
		}

	case ScalarHeatmap:
		if len(values) != len(cells) {
			return nil, errors.Wrapf(ErrValueCount, "%d values for %d cells", len(values), len(cells))
		}
		normalized, rng, err := Normalize(values, cfg.ValueRange)
		if err != nil {
			return nil, err
		}
		logger = logger.WithFields(logrus.Fields{
			"min":     rng.Lo,
			"max":     rng.Hi,
			"missing": countNaN(values),
		})
		if rng.Lo == rng.Hi {
			logger.Warn("value range has zero width, every cell takes the middle of the gradient")
		}

		scene.ValueRange = rng
		if scene.Colorbar, err = Synthesize(rng, cfg.Gradient, cfg.Swatches); err != nil {
			return nil, err
		}
		for i, cell := range cells {
			scene.Primitives[i] = Primitive{
				Kind:   FilledPolygon,
				Points: cell,
				Color:  Continuous(cfg.Gradient, normalized[i]),
			}
		}

	default:
		fatalf("unknown render kind %v", cfg.Kind)
	}

	logger.WithField("bounds", bounds).Debug("rendered scene")
	return scene, nil
}

// Overrides where given, otherwise the bounding box of every vertex. Both
// sides must come out with positive finite length.
func axisBounds(cells [][]Point, cfg Config) (r2.Rect, error) {
	rect := r2.EmptyRect()
	if cfg.XRange == nil || cfg.YRange == nil {
		for _, cell := range cells {
			for _, p := range cell {
				rect = rect.AddPoint(p)
			}
		}
	}
	if cfg.XRange != nil {
		rect.X = *cfg.XRange
	}
	if cfg.YRange != nil {
		rect.Y = *cfg.YRange
	}

	for _, axis := range []struct {
		name     string
		interval r1.Interval
	}{{"x", rect.X}, {"y", rect.Y}} {
		length := axis.interval.Length()
		if !(length > 0) || !isFinite(length) {
			return rect, errors.Wrapf(ErrDegenerateAxisRange, "%s axis [%v, %v] over %d cells",
				axis.name, axis.interval.Lo, axis.interval.Hi, len(cells))
		}
	}
	return rect, nil
}

// Hand the primitives to the backend: the plot to plot, the colorbar (if the
// scene has one and colorbar is not nil) to colorbar.
func (s *Scene) Draw(plot, colorbar Surface) error {
	for i, p := range s.Primitives {
		if err := drawPrimitive(plot, p); err != nil {
			return errors.Wrapf(err, "drawing %v primitive %d", s.Kind, i)
		}
	}
	if colorbar == nil || s.Colorbar == nil {
		return nil
	}
	for i, p := range s.Colorbar.Primitives() {
		if err := drawPrimitive(colorbar, p); err != nil {
			return errors.Wrapf(err, "drawing colorbar swatch %d", i)
		}
	}
	return nil
}

func drawPrimitive(surface Surface, p Primitive) error {
	switch p.Kind {
	case FilledPolygon:
		return surface.DrawPolygon(p.Points, p.Color)
	case Polyline:
		return surface.DrawPolyline(p.Points, p.Color)
	}
	return errors.Errorf("unknown primitive kind %d", p.Kind)
}
