// Package ggbackend rasterizes scenes with github.com/fogleman/gg.
package ggbackend

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/trimesh"
	"github.com/osuushi/trimesh/backend"
)

type Canvas struct {
	dc *gg.Context
}

// White canvas of the given pixel size
func New(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &Canvas{dc}
}

func (c *Canvas) Region(vp backend.Viewport) *Surface {
	return &Surface{dc: c.dc, viewport: vp}
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

type Surface struct {
	dc       *gg.Context
	viewport backend.Viewport
}

func (s *Surface) DrawPolygon(points []trimesh.Point, color trimesh.Color) error {
	s.path(points)
	s.dc.ClosePath()
	s.dc.SetRGB255(int(color.R), int(color.G), int(color.B))
	// Stroke over the fill so neighboring polygons leave no hairline gaps.
	s.dc.SetLineWidth(1)
	s.dc.FillPreserve()
	s.dc.Stroke()
	return nil
}

func (s *Surface) DrawPolyline(points []trimesh.Point, color trimesh.Color) error {
	s.path(points)
	s.dc.SetRGB255(int(color.R), int(color.G), int(color.B))
	s.dc.SetLineWidth(1)
	s.dc.Stroke()
	return nil
}

func (s *Surface) path(points []trimesh.Point) {
	s.dc.NewSubPath()
	for i, p := range points {
		x, y := s.viewport.Project(p)
		if i == 0 {
			s.dc.MoveTo(x, y)
		} else {
			s.dc.LineTo(x, y)
		}
	}
}
