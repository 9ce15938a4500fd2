package main

import (
	"image"
	"io"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/trimesh"
	"github.com/osuushi/trimesh/backend"
	"github.com/osuushi/trimesh/backend/ggbackend"
	"github.com/osuushi/trimesh/backend/svgbackend"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func buildScene(opts options, in io.Reader, logger logrus.FieldLogger) (*trimesh.Scene, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger

	if opts.Mode == "grid" {
		data, err := readGrid(in)
		if err != nil {
			return nil, err
		}
		return trimesh.GridHeatmap(data, cfg)
	}

	points, err := readPoints(in)
	if err != nil {
		return nil, err
	}
	if opts.Mode == "wireframe" {
		return trimesh.TriangulatedWireframe(points.points, cfg)
	}
	if !points.hasValues() {
		return nil, errors.New("heatmap input needs a value after each point")
	}
	return trimesh.TriangulatedHeatmap(points.points, points.values, cfg)
}

// Canvas the scene is drawn on
type canvas interface {
	Region(vp backend.Viewport) trimesh.Surface
}

type svgCanvas struct{ *svgbackend.Canvas }

func (c svgCanvas) Region(vp backend.Viewport) trimesh.Surface { return c.Canvas.Region(vp) }

type ggCanvas struct{ *ggbackend.Canvas }

func (c ggCanvas) Region(vp backend.Viewport) trimesh.Surface { return c.Canvas.Region(vp) }

// Canvas size for the scene, and a function drawing it on a canvas of that
// size. Scenes without a colorbar get a square canvas.
func layout(scene *trimesh.Scene, size int) (image.Point, func(canvas) error) {
	colorbarHeight := 0
	if scene.Colorbar != nil {
		colorbarHeight = backend.DefaultColorbarHeight * size / backend.DefaultSize
	}
	margin := backend.DefaultMargin * size / backend.DefaultSize
	plotRect, barRect, canvasSize := backend.HeatmapLayout(size, colorbarHeight, margin)

	return canvasSize, func(c canvas) error {
		plot := c.Region(backend.Viewport{Data: scene.Bounds, Device: plotRect})
		var bar trimesh.Surface
		if scene.Colorbar != nil {
			bar = c.Region(backend.Viewport{Data: scene.Colorbar.Bounds(), Device: barRect})
		}
		return scene.Draw(plot, bar)
	}
}

func writeImage(scene *trimesh.Scene, opts options, out io.Writer) error {
	if opts.Size <= 0 {
		return errors.Errorf("invalid image size %d", opts.Size)
	}
	size, draw := layout(scene, opts.Size)

	switch opts.Format {
	case "svg":
		c := svgbackend.New(out, size.X, size.Y)
		if err := draw(svgCanvas{c}); err != nil {
			return err
		}
		return c.Close()
	case "png":
		c := ggbackend.New(size.X, size.Y)
		if err := draw(ggCanvas{c}); err != nil {
			return err
		}
		return errors.Wrap(c.EncodePNG(out), "encoding png")
	}
	return errors.Errorf("unknown format %q", opts.Format)
}

// Rasterize the scene to a temporary PNG and print it to the terminal.
func previewImage(scene *trimesh.Scene, opts options, out io.Writer) error {
	tmp, err := os.CreateTemp("", "trimesh-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	pngOpts := opts
	pngOpts.Format = "png"
	if err := writeImage(scene, pngOpts, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	imgcat.CatFile(tmp.Name(), out)
	return nil
}
