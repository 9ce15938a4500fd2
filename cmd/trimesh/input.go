package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/trimesh"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Scattered points, one "x y" or "x y value" per line. Either every point has
// a value or none does.
type pointInput struct {
	points []trimesh.Point
	values []float64
}

func (in pointInput) hasValues() bool {
	return len(in.values) > 0
}

// Calls fn with the fields of every line that is not blank or a # comment.
func scanFields(r io.Reader, fn func(lineNo int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "reading input")
}

func readPoints(r io.Reader) (pointInput, error) {
	var in pointInput
	err := scanFields(r, func(lineNo int, fields []string) error {
		if len(fields) != 2 && len(fields) != 3 {
			return errors.Errorf("line %d: expected \"x y\" or \"x y value\", got %d fields", lineNo, len(fields))
		}
		if len(in.points) > 0 && (len(fields) == 3) != in.hasValues() {
			return errors.Errorf("line %d: either every point has a value or none does", lineNo)
		}
		numbers, err := parseFloats(lineNo, fields)
		if err != nil {
			return err
		}
		in.points = append(in.points, trimesh.Point{X: numbers[0], Y: numbers[1]})
		if len(numbers) == 3 {
			in.values = append(in.values, numbers[2])
		}
		return nil
	})
	return in, err
}

// Rows of values, the first line being row 0. Every row must be as long as
// the first.
func readGrid(r io.Reader) (*mat.Dense, error) {
	var data []float64
	cols := 0
	err := scanFields(r, func(lineNo int, fields []string) error {
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return errors.Errorf("line %d: expected %d values, got %d", lineNo, cols, len(fields))
		}
		row, err := parseFloats(lineNo, fields)
		if err != nil {
			return err
		}
		data = append(data, row...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("no grid rows in input")
	}
	return mat.NewDense(len(data)/cols, cols, data), nil
}

// "nan" is accepted (any case), for missing values.
func parseFloats(lineNo int, fields []string) ([]float64, error) {
	result := make([]float64, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("line %d: invalid number %q", lineNo, field)
		}
		result[i] = f
	}
	return result, nil
}
