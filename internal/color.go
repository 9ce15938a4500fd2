package internal

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

type Color struct {
	R, G, B uint8
}

// Marks missing (NaN) data.
var Black = Color{0, 0, 0}

// RGBA implements image/color.Color, so backends can hand a Color straight to
// their drawing libraries.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

func ColorOf(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{nrgba.R, nrgba.G, nrgba.B}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return Color{r, g, b}
}

// A Gradient maps the unit interval to colors. At is only defined on [0, 1];
// use Continuous and Discrete to evaluate it with clamping and NaN handling.
type Gradient interface {
	At(u float64) Color
}

// Evaluate g at u. Values outside [0, 1] are clamped to the endpoints, and NaN
// gives Black.
func Continuous(g Gradient, u float64) Color {
	if math.IsNaN(u) {
		return Black
	}
	return g.At(math.Max(0, math.Min(1, u)))
}

// Color of swatch k out of n evenly spaced swatches, i.e. g at k/(n-1). A
// single swatch takes the start of the gradient.
func Discrete(g Gradient, k, n int) Color {
	if n < 2 {
		return Continuous(g, 0)
	}
	return Continuous(g, float64(k)/float64(n-1))
}

// Keypoints sorted by position. Colors between keypoints are blended in
// CIE-L*a*b*, which keeps perceptual steps even.
type GradientTable []struct {
	Col colorful.Color
	Pos float64
}

func (table GradientTable) At(u float64) Color {
	if len(table) == 0 {
		fatalf("gradient table has no keypoints")
	}
	// The endpoints are returned exactly rather than through a blend, which
	// could be off by one after the Lab round trip.
	if u <= table[0].Pos {
		return fromColorful(table[0].Col)
	}
	last := table[len(table)-1]
	if u >= last.Pos {
		return fromColorful(last.Col)
	}
	for i := 0; i < len(table)-1; i++ {
		c1 := table[i]
		c2 := table[i+1]
		if c1.Pos <= u && u <= c2.Pos {
			t := (u - c1.Pos) / (c2.Pos - c1.Pos)
			return fromColorful(c1.Col.BlendLab(c2.Col, t).Clamped())
		}
	}
	return fromColorful(last.Col)
}

func MustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

// Table with the given colors evenly spaced over [0, 1].
func evenTable(hexes ...string) GradientTable {
	table := make(GradientTable, len(hexes))
	for i, hex := range hexes {
		table[i].Col = MustParseHex(hex)
		table[i].Pos = float64(i) / float64(len(hexes)-1)
	}
	return table
}

// Adapts a gonum palette.ColorMap to the unit interval.
type paletteGradient struct {
	cmap palette.ColorMap
}

func newPaletteGradient(cmap palette.ColorMap) paletteGradient {
	cmap.SetMax(1)
	cmap.SetMin(0)
	cmap.SetAlpha(1)
	return paletteGradient{cmap}
}

func (g paletteGradient) At(u float64) Color {
	c, err := g.cmap.At(u)
	if err != nil {
		fatalf("palette lookup at %v: %v", u, err)
	}
	return ColorOf(c)
}

var (
	Viridis = evenTable(
		"#440154", "#482374", "#404387", "#345e8d", "#29788e", "#20908c",
		"#22a784", "#44be70", "#79d151", "#bdde26", "#fde725",
	)
	Cividis = evenTable(
		"#00204d", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8779",
		"#a69d75", "#c4b56c", "#e4cf5b", "#f5de48", "#fee725",
	)
	Plasma = evenTable(
		"#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679",
		"#e56b5d", "#f89441", "#fdc328", "#f0f921",
	)
	Inferno = evenTable(
		"#000004", "#280b54", "#65156e", "#9f2a63",
		"#d44842", "#f57d15", "#fac127", "#fcffa4",
	)
	BlueRed   Gradient = newPaletteGradient(moreland.SmoothBlueRed())
	BlackBody Gradient = newPaletteGradient(moreland.ExtendedBlackBody())
)

var gradients = map[string]Gradient{
	"viridis":   Viridis,
	"cividis":   Cividis,
	"plasma":    Plasma,
	"inferno":   Inferno,
	"bluered":   BlueRed,
	"blackbody": BlackBody,
}

// Look up a built in gradient by case-insensitive name.
func GradientByName(name string) (Gradient, error) {
	if g, ok := gradients[strings.ToLower(name)]; ok {
		return g, nil
	}
	return nil, errors.Wrapf(ErrUnknownGradient, "%q (have %s)", name, strings.Join(GradientNames(), ", "))
}

func GradientNames() []string {
	names := make([]string, 0, len(gradients))
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
