package internal

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Default swatch count. Matches the 768 pixel plot width, so neighboring
// swatches are indistinguishable and the strip reads as continuous.
const DefaultSwatches = 768

// One rectangle of the colorbar, in the colorbar's own coordinates: X along
// the value range, Y over [0, 1].
type Swatch struct {
	X0, X1 float64
	Y0, Y1 float64
	Color  Color
}

func (s Swatch) Points() []Point {
	return []Point{
		{X: s.X0, Y: s.Y0},
		{X: s.X1, Y: s.Y0},
		{X: s.X1, Y: s.Y1},
		{X: s.X0, Y: s.Y1},
	}
}

type Colorbar struct {
	// Extent of the strip along X. Equals the value range, except that a zero
	// width value range is padded by half a unit on each side.
	Range    r1.Interval
	Swatches []Swatch
}

// Lay n adjacent swatches over rng, each dx = width/(n-1) wide, swatch k
// colored with Discrete(g, k, n). The last swatch overhangs the range by dx,
// mirroring how a continuous colorbar is usually sampled.
func Synthesize(rng r1.Interval, g Gradient, n int) (*Colorbar, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrSwatchCount, "need at least 2 swatches, got %d", n)
	}
	if err := checkRange(rng); err != nil {
		return nil, err
	}
	if rng.Lo == rng.Hi {
		rng = rng.Expanded(DegenerateValue)
	}

	dx := rng.Length() / float64(n-1)
	bar := &Colorbar{
		Range:    rng,
		Swatches: make([]Swatch, n),
	}
	for k := range bar.Swatches {
		x := rng.Lo + float64(k)*dx
		bar.Swatches[k] = Swatch{
			X0:    x,
			X1:    x + dx,
			Y0:    0,
			Y1:    1,
			Color: Discrete(g, k, n),
		}
	}
	return bar, nil
}

// Area covered by the swatches, including the overhang of the last one.
func (bar *Colorbar) Bounds() r2.Rect {
	rect := r2.EmptyRect()
	for _, s := range bar.Swatches {
		rect = rect.AddPoint(Point{X: s.X0, Y: s.Y0}).AddPoint(Point{X: s.X1, Y: s.Y1})
	}
	return rect
}

func (bar *Colorbar) Primitives() []Primitive {
	result := make([]Primitive, len(bar.Swatches))
	for i, s := range bar.Swatches {
		result[i] = Primitive{Kind: FilledPolygon, Points: s.Points(), Color: s.Color}
	}
	return result
}
