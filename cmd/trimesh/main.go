// Command trimesh draws scattered 2D data as a triangulated mesh or heatmap.
//
// Input on stdin (or the file given as argument) is one point per line,
// "x y" for a wireframe and "x y value" for a heatmap. In grid mode each line
// is instead a row of values, the first line being the bottom row. Blank lines
// and anything after a # are ignored. Output is an SVG or PNG image with the
// plot on top and, for heatmaps, the colorbar underneath.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("trimesh", "Draw scattered 2D data as a triangulated mesh or heatmap.")
	var flags options
	configPath := app.Flag("config", "YAML file with defaults for any of the flags.").Short('c').ExistingFile()
	app.Flag("mode", "What to draw.").Short('m').EnumVar(&flags.Mode, "wireframe", "heatmap", "grid")
	app.Flag("format", "Output image format.").Short('f').EnumVar(&flags.Format, "svg", "png")
	app.Flag("gradient", "Color gradient for heatmaps.").Short('g').StringVar(&flags.Gradient)
	app.Flag("swatches", "Number of colorbar swatches.").IntVar(&flags.Swatches)
	app.Flag("size", "Width of the image in pixels.").IntVar(&flags.Size)
	app.Flag("stroke", "Wireframe color, as a CSS name or hex.").StringVar(&flags.Stroke)
	app.Flag("vmin", "Bottom of the color scale.").SetValue(&flags.Values.Min)
	app.Flag("vmax", "Top of the color scale.").SetValue(&flags.Values.Max)
	app.Flag("xmin", "Left edge of the plot.").SetValue(&flags.X.Min)
	app.Flag("xmax", "Right edge of the plot.").SetValue(&flags.X.Max)
	app.Flag("ymin", "Bottom edge of the plot.").SetValue(&flags.Y.Min)
	app.Flag("ymax", "Top edge of the plot.").SetValue(&flags.Y.Max)
	output := app.Flag("output", "Output file. Standard output if not given.").Short('o').String()
	preview := app.Flag("preview", "Also show the image in the terminal (iTerm only).").Bool()
	verbose := app.Flag("verbose", "Log debugging information to stderr.").Short('v').Bool()
	inputPath := app.Arg("input", "Input file. Standard input if not given.").ExistingFile()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(*configPath, flags, *inputPath, *output, *preview, logger); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Bold(aurora.Red("trimesh:")), err)
		os.Exit(1)
	}
}

func run(configPath string, flags options, inputPath, outputPath string, preview bool, logger logrus.FieldLogger) error {
	opts := defaultOptions()
	if configPath != "" {
		file, err := loadOptionsFile(configPath)
		if err != nil {
			return err
		}
		opts = opts.overlay(file)
	}
	opts = opts.overlay(flags)

	var in io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	scene, err := buildScene(opts, in, logger)
	if err != nil {
		return err
	}
	if err := writeImage(scene, opts, out); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"scene":  scene.Name,
		"format": opts.Format,
		"output": outputPath,
	}).Debug("wrote image")

	if preview {
		return previewImage(scene, opts, os.Stdout)
	}
	return nil
}
