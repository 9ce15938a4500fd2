package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r1"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/osuushi/trimesh"
	"github.com/osuushi/trimesh/backend"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Everything the command line and the config file can set. Zero values mean
// "not given", so a file can be layered under the flags.
type options struct {
	Mode     string   `yaml:"mode"`
	Format   string   `yaml:"format"`
	Gradient string   `yaml:"gradient"`
	Swatches int      `yaml:"swatches"`
	Size     int      `yaml:"size"`
	Stroke   string   `yaml:"stroke"`
	Values   axisFile `yaml:"values"`
	X        axisFile `yaml:"x"`
	Y        axisFile `yaml:"y"`
}

type axisFile struct {
	Min optionalFloat `yaml:"min"`
	Max optionalFloat `yaml:"max"`
}

// Float flag or YAML field that remembers whether it was given
type optionalFloat struct {
	value float64
	set   bool
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

func (f *optionalFloat) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f *optionalFloat) UnmarshalYAML(node *yaml.Node) error {
	return f.Set(node.Value)
}

func defaultOptions() options {
	return options{
		Mode:     "heatmap",
		Format:   "svg",
		Gradient: "viridis",
		Swatches: trimesh.DefaultSwatches,
		Size:     backend.DefaultSize,
		Stroke:   "black",
	}
}

func loadOptionsFile(path string) (options, error) {
	var opts options
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "parsing config %s", path)
	}
	return opts, nil
}

// Fields given in top replace the ones in o.
func (o options) overlay(top options) options {
	if top.Mode != "" {
		o.Mode = top.Mode
	}
	if top.Format != "" {
		o.Format = top.Format
	}
	if top.Gradient != "" {
		o.Gradient = top.Gradient
	}
	if top.Swatches != 0 {
		o.Swatches = top.Swatches
	}
	if top.Size != 0 {
		o.Size = top.Size
	}
	if top.Stroke != "" {
		o.Stroke = top.Stroke
	}
	o.Values = o.Values.overlay(top.Values)
	o.X = o.X.overlay(top.X)
	o.Y = o.Y.overlay(top.Y)
	return o
}

func (a axisFile) overlay(top axisFile) axisFile {
	if top.Min.set {
		a.Min = top.Min
	}
	if top.Max.set {
		a.Max = top.Max
	}
	return a
}

// Interval when both ends are given. Half given is an error, since the other
// end has nothing sensible to default to.
func (a axisFile) interval(name string) (*r1.Interval, error) {
	switch {
	case a.Min.set && a.Max.set:
		return &r1.Interval{Lo: a.Min.value, Hi: a.Max.value}, nil
	case a.Min.set || a.Max.set:
		return nil, errors.Errorf("%s range needs both a minimum and a maximum", name)
	}
	return nil, nil
}

// Named CSS color, or hex such as "#ff8800"
func parseColor(s string) (trimesh.Color, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return trimesh.ColorOf(c), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return trimesh.Black, errors.Errorf("unknown color %q", s)
	}
	return trimesh.ColorOf(c), nil
}

func (o options) config() (trimesh.Config, error) {
	var cfg trimesh.Config
	var err error

	if cfg.Gradient, err = trimesh.GradientByName(o.Gradient); err != nil {
		return cfg, err
	}
	if cfg.Stroke, err = parseColor(o.Stroke); err != nil {
		return cfg, err
	}
	if cfg.ValueRange, err = o.Values.interval("value"); err != nil {
		return cfg, err
	}
	if cfg.XRange, err = o.X.interval("x"); err != nil {
		return cfg, err
	}
	if cfg.YRange, err = o.Y.interval("y"); err != nil {
		return cfg, err
	}
	cfg.Swatches = o.Swatches
	if o.Mode == "wireframe" {
		cfg.Kind = trimesh.WireframeMesh
	} else {
		cfg.Kind = trimesh.ScalarHeatmap
	}
	return cfg, nil
}
