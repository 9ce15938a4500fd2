package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeStack(t *testing.T) {
	var s edgeStack
	assert.True(t, s.Empty())
	s.Push(edgeRef{1, 2})
	assert.False(t, s.Empty())
	s.Push(edgeRef{3, 0})
	assert.Equal(t, edgeRef{3, 0}, s.Pop())
	assert.False(t, s.Empty())
	assert.Equal(t, edgeRef{1, 2}, s.Pop())
	assert.True(t, s.Empty())
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestBefore(t *testing.T) {
	assert.True(t, Before(Point{X: 0, Y: 5}, Point{X: 1, Y: 0}))
	assert.True(t, Before(Point{X: 1, Y: 0}, Point{X: 1, Y: 2}))
	assert.False(t, Before(Point{X: 1, Y: 2}, Point{X: 1, Y: 0}))
	assert.False(t, Before(Point{X: 1, Y: 2}, Point{X: 1, Y: 2}))
}

func TestOrient(t *testing.T) {
	a, b := Point{X: 0, Y: 0}, Point{X: 2, Y: 0}
	assert.InDelta(t, 4, Orient(a, b, Point{X: 1, Y: 2}), Epsilon)
	assert.InDelta(t, -4, Orient(a, b, Point{X: 1, Y: -2}), Epsilon)
	assert.Zero(t, Orient(a, b, Point{X: 5, Y: 0}))
}

func TestInCircle(t *testing.T) {
	// Unit circle, counterclockwise
	a, b, c := Point{X: 1, Y: 0}, Point{X: 0, Y: 1}, Point{X: -1, Y: 0}
	assert.Greater(t, InCircle(a, b, c, Point{X: 0, Y: 0}), 0.0)
	assert.Less(t, InCircle(a, b, c, Point{X: 2, Y: 2}), 0.0)
	assert.InDelta(t, 0, InCircle(a, b, c, Point{X: 0, Y: -1}), Epsilon)
}

func TestSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s polygons", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			square := []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
			// Clockwise polygons will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			if cwI == 1 {
				square[1], square[3] = square[3], square[1]
			}
			assert.InDelta(t, sign*4, SignedArea(square...), Epsilon)
			assert.Equal(t, cwI == 0, IsCCW(square...))
			assert.InDelta(t, sign*2, SignedArea(square[0], square[1], square[2]), Epsilon)
		})
	}
}
