// Package svgbackend draws scenes as SVG with github.com/ajstarks/svgo.
package svgbackend

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/trimesh"
	"github.com/osuushi/trimesh/backend"
	"github.com/pkg/errors"
)

type Canvas struct {
	svg  *svg.SVG
	open bool
}

// Start an SVG document of the given pixel size on w, with a white background.
// Call Close to finish it.
func New(w io.Writer, width, height int) *Canvas {
	c := &Canvas{svg: svg.New(w), open: true}
	c.svg.Start(width, height)
	c.svg.Rect(0, 0, width, height, "fill:rgb(255,255,255)")
	return c
}

// Surface drawing into the device rectangle of vp
func (c *Canvas) Region(vp backend.Viewport) *Surface {
	return &Surface{canvas: c, viewport: vp}
}

func (c *Canvas) Close() error {
	if !c.open {
		return errors.New("svg canvas already closed")
	}
	c.svg.End()
	c.open = false
	return nil
}

type Surface struct {
	canvas   *Canvas
	viewport backend.Viewport
}

func (s *Surface) DrawPolygon(points []trimesh.Point, color trimesh.Color) error {
	xs, ys, err := s.project(points)
	if err != nil {
		return err
	}
	// A hairline stroke in the fill color hides the seams antialiasing
	// leaves between adjacent polygons.
	s.canvas.svg.Polygon(xs, ys, fill(color)+";"+stroke(color, 1))
	return nil
}

func (s *Surface) DrawPolyline(points []trimesh.Point, color trimesh.Color) error {
	xs, ys, err := s.project(points)
	if err != nil {
		return err
	}
	s.canvas.svg.Polyline(xs, ys, "fill:none;"+stroke(color, 1))
	return nil
}

func (s *Surface) project(points []trimesh.Point) ([]int, []int, error) {
	if !s.canvas.open {
		return nil, nil, errors.New("drawing on a closed svg canvas")
	}
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		x, y := s.viewport.Project(p)
		xs[i] = int(math.Round(x))
		ys[i] = int(math.Round(y))
	}
	return xs, ys, nil
}

func fill(c trimesh.Color) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func stroke(c trimesh.Color, width int) string {
	return fmt.Sprintf("stroke:rgb(%d,%d,%d);stroke-width:%d", c.R, c.G, c.B, width)
}
