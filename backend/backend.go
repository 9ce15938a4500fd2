// Package backend holds what the drawing adapters share: the mapping from data
// coordinates to device pixels, the standard heatmap layout, and an in-memory
// Surface that records what it is asked to draw.
package backend

import (
	"image"

	"github.com/golang/geo/r2"
	"github.com/osuushi/trimesh"
)

// Pixel sizes of the standard layout: a square plot with the colorbar strip
// underneath.
const (
	DefaultSize           = 768
	DefaultColorbarHeight = 80
	DefaultMargin         = 20
)

// Maps a rectangle of data coordinates onto a rectangle of device pixels. Data
// Y grows upwards and device Y downwards, so the mapping flips Y.
type Viewport struct {
	Data   r2.Rect
	Device image.Rectangle
}

func (v Viewport) Project(p trimesh.Point) (x, y float64) {
	u := (p.X - v.Data.X.Lo) / v.Data.X.Length()
	w := (p.Y - v.Data.Y.Lo) / v.Data.Y.Length()
	x = float64(v.Device.Min.X) + u*float64(v.Device.Dx())
	y = float64(v.Device.Max.Y) - w*float64(v.Device.Dy())
	return x, y
}

// Device rectangles of the plot and its colorbar for a size × size plot, inset
// by margin, followed by a colorbar strip of the given height. Also returns
// the size of the whole canvas.
func HeatmapLayout(size, colorbarHeight, margin int) (plot, colorbar image.Rectangle, canvas image.Point) {
	canvas = image.Pt(size, size+colorbarHeight)
	plot = image.Rect(margin, margin, size-margin, size-margin)
	colorbar = image.Rect(margin, size+margin/2, size-margin, size+colorbarHeight-margin/2)
	return plot, colorbar, canvas
}

// Call recorded by a Recorder
type Call struct {
	Kind   trimesh.PrimitiveKind
	Points []trimesh.Point
	Color  trimesh.Color
}

// Surface that keeps every call. Handy in tests, and for handing a scene to
// code that wants plain data rather than a drawing.
type Recorder struct {
	Calls []Call
	// If set, returned from every draw call
	Err error
}

func (r *Recorder) DrawPolygon(points []trimesh.Point, c trimesh.Color) error {
	return r.record(trimesh.FilledPolygon, points, c)
}

func (r *Recorder) DrawPolyline(points []trimesh.Point, c trimesh.Color) error {
	return r.record(trimesh.Polyline, points, c)
}

func (r *Recorder) record(kind trimesh.PrimitiveKind, points []trimesh.Point, c trimesh.Color) error {
	if r.Err != nil {
		return r.Err
	}
	copied := make([]trimesh.Point, len(points))
	copy(copied, points)
	r.Calls = append(r.Calls, Call{kind, copied, c})
	return nil
}

// Number of recorded calls of the given kind
func (r *Recorder) Count(kind trimesh.PrimitiveKind) int {
	n := 0
	for _, call := range r.Calls {
		if call.Kind == kind {
			n++
		}
	}
	return n
}
