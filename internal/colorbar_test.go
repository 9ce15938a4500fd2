package internal

import (
	"math"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	rng := r1.Interval{Lo: 2.0 / 3, Hi: 4.0 / 3}
	bar, err := Synthesize(rng, Viridis, 5)
	require.NoError(t, err)
	require.Len(t, bar.Swatches, 5)
	assert.Equal(t, rng, bar.Range)

	dx := rng.Length() / 4
	for k, s := range bar.Swatches {
		assert.InDelta(t, rng.Lo+float64(k)*dx, s.X0, Epsilon)
		assert.InDelta(t, dx, s.X1-s.X0, Epsilon)
		assert.Equal(t, 0.0, s.Y0)
		assert.Equal(t, 1.0, s.Y1)
		assert.Equal(t, Discrete(Viridis, k, 5), s.Color)
		if k > 0 {
			// Adjacent, no gaps
			assert.InDelta(t, bar.Swatches[k-1].X1, s.X0, Epsilon)
		}
	}
	assert.Equal(t, Viridis.At(0), bar.Swatches[0].Color)
	assert.Equal(t, Viridis.At(1), bar.Swatches[4].Color)

	bounds := bar.Bounds()
	assert.InDelta(t, rng.Lo, bounds.X.Lo, Epsilon)
	assert.InDelta(t, rng.Hi+dx, bounds.X.Hi, Epsilon)
	assert.Equal(t, r1.Interval{Lo: 0, Hi: 1}, bounds.Y)
}

func TestSynthesize_Degenerate(t *testing.T) {
	bar, err := Synthesize(r1.Interval{Lo: 3, Hi: 3}, Plasma, 3)
	require.NoError(t, err)
	assert.Equal(t, r1.Interval{Lo: 2.5, Hi: 3.5}, bar.Range)
	for _, s := range bar.Swatches {
		assert.Greater(t, s.X1, s.X0)
	}
}

func TestSynthesize_Errors(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := Synthesize(r1.Interval{Lo: 0, Hi: 1}, Viridis, n)
		assert.ErrorIs(t, err, ErrSwatchCount)
	}
	_, err := Synthesize(r1.Interval{Lo: 1, Hi: 0}, Viridis, 4)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Synthesize(r1.Interval{Lo: 0, Hi: math.NaN()}, Viridis, 4)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestColorbar_Primitives(t *testing.T) {
	bar, err := Synthesize(r1.Interval{Lo: -1, Hi: 1}, Inferno, DefaultSwatches)
	require.NoError(t, err)
	primitives := bar.Primitives()
	require.Len(t, primitives, DefaultSwatches)
	for i, p := range primitives {
		assert.Equal(t, FilledPolygon, p.Kind)
		assert.Equal(t, bar.Swatches[i].Points(), p.Points)
		assert.Equal(t, bar.Swatches[i].Color, p.Color)
		require.Len(t, p.Points, 4)
		assert.Greater(t, SignedArea(p.Points...), 0.0)
	}
}
