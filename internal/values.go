package internal

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Every non-NaN value normalizes to this when the range has zero width.
const DegenerateValue = 0.5

// Mean of the values at the corners of tri. NaN if any of them is NaN.
func CellValue(tri Triangle, values []float64) float64 {
	return (values[tri.A] + values[tri.B] + values[tri.C]) / 3
}

func CellValues(t *Triangulation, values []float64) ([]float64, error) {
	if len(values) != len(t.Points) {
		return nil, errors.Wrapf(ErrValueCount, "%d values for %d points", len(values), len(t.Points))
	}
	cells := make([]float64, len(t.Triangles))
	for i, tri := range t.Triangles {
		cells[i] = CellValue(tri, values)
	}
	return cells, nil
}

// Smallest interval holding every finite value. NaN marks missing data and
// infinities would swallow the whole scale, so both are left out.
func ValueRange(values []float64) (r1.Interval, error) {
	rng := r1.EmptyInterval()
	for _, v := range values {
		if isFinite(v) {
			rng = rng.AddPoint(v)
		}
	}
	if rng.IsEmpty() {
		return rng, errors.Wrapf(ErrEmptyRange, "none of %d values is finite", len(values))
	}
	return rng, nil
}

func checkRange(rng r1.Interval) error {
	if !isFinite(rng.Lo) || !isFinite(rng.Hi) || rng.Lo > rng.Hi {
		return errors.Wrapf(ErrInvalidRange, "[%v, %v]", rng.Lo, rng.Hi)
	}
	return nil
}

// Map values onto the unit interval. The range is explicit when given, and
// otherwise computed with ValueRange. NaN stays NaN. Values outside an explicit
// range land outside [0, 1], which the color mapping clamps.
func Normalize(values []float64, explicit *r1.Interval) ([]float64, r1.Interval, error) {
	var rng r1.Interval
	if explicit != nil {
		if err := checkRange(*explicit); err != nil {
			return nil, rng, err
		}
		rng = *explicit
	} else {
		var err error
		if rng, err = ValueRange(values); err != nil {
			return nil, rng, err
		}
	}

	normalized := make([]float64, len(values))
	copy(normalized, values)

	if rng.Lo == rng.Hi {
		for i, v := range normalized {
			// Infinities keep their sign so they still clamp to the ends.
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				normalized[i] = DegenerateValue
			}
		}
		return normalized, rng, nil
	}

	floats.AddConst(-rng.Lo, normalized)
	floats.Scale(1/rng.Length(), normalized)
	return normalized, rng, nil
}

func countNaN(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
