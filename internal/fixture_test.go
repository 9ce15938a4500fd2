package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// Point set fixtures are SVG files in fixtures/, one <circle> per point. The
// circle center is the point and its data-value attribute the value at that
// point. They can be opened in any SVG viewer to see what is being tested.
//
// Fixtures are available by name, sans extension. Anything wrong with a
// fixture is fatal.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"lattice", "ring", "scatter", "column"}

func LoadFixture(name string) ([]Point, []float64) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	values := make([]float64, 0, len(circles))
	for _, circle := range circles {
		x := fixtureFloat(name, circle.Attributes["cx"])
		y := fixtureFloat(name, circle.Attributes["cy"])
		points = append(points, Point{X: x, Y: y})
		values = append(values, fixtureFloat(name, circle.Attributes["data-value"]))
	}
	return points, values
}

func fixtureFloat(name, s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q in fixture %q: %v", s, name, err)
	}
	return f
}

// Some ad hoc code specified fixtures

func UnitSquare() []Point {
	return []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
}

// n points evenly spaced on a circle, all co-circular
func RegularPolygon(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

func RandomPoints(rng *rand.Rand, n int, scale float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64() * scale, Y: rng.Float64() * scale}
	}
	return points
}

func Shuffled(rng *rand.Rand, points []Point) []Point {
	result := make([]Point, len(points))
	copy(result, points)
	rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}
