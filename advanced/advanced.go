// Package advanced exposes the individual stages of the trimesh pipeline, for
// callers that want to run some of them on their own: reduce values they
// already triangulated, share one normalized scale between several plots,
// build a colorbar without a mesh, or define their own gradient.
//
// Unlike the top level package, these functions do not recover internal
// panics. Wrap calls with HandlePanicRecover if you need that.
package advanced

import "github.com/osuushi/trimesh/internal"

type Point = internal.Point
type Triangle = internal.Triangle
type Triangulation = internal.Triangulation
type Face = internal.Face
type Color = internal.Color
type Gradient = internal.Gradient
type GradientTable = internal.GradientTable
type Colorbar = internal.Colorbar
type Swatch = internal.Swatch
type MeshError = internal.MeshError

const (
	DegenerateValue = internal.DegenerateValue
	Tolerance       = internal.Tolerance
)

var (
	// Triangulation
	Build      = internal.Build
	Orient     = internal.Orient
	InCircle   = internal.InCircle
	SignedArea = internal.SignedArea

	// Values
	CellValue  = internal.CellValue
	CellValues = internal.CellValues
	ValueRange = internal.ValueRange
	Normalize  = internal.Normalize

	// Colors
	Continuous   = internal.Continuous
	Discrete     = internal.Discrete
	ColorOf      = internal.ColorOf
	MustParseHex = internal.MustParseHex
	Synthesize   = internal.Synthesize

	HandlePanicRecover = internal.HandlePanicRecover
)

// Color of cells with missing values
var Black = internal.Black
