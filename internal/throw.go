package internal

import "github.com/pkg/errors"

// Threading errors through every hull walk and edge flip during triangulation
// would add a ton of noise to the code. Broken invariants panic instead, and the
// public API recovers to convert to an error.

type MeshError error

// Panic with a MeshError.
func fatalf(format string, args ...interface{}) {
	panic(MeshError(errors.Errorf(format, args...)))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if meshError, ok := r.(MeshError); ok {
			return meshError
		}
		panic(r)
	}
	return nil
}

// Validation failures. These are returned (wrapped with context) rather than
// thrown, so callers can check for them with errors.Is and fall back to
// another rendering.
var (
	ErrDegenerateInput     = errors.New("degenerate input")
	ErrEmptyRange          = errors.New("no finite values in range")
	ErrDegenerateAxisRange = errors.New("degenerate axis range")
	ErrInvalidRange        = errors.New("invalid value range")
	ErrValueCount          = errors.New("value count mismatch")
	ErrSwatchCount         = errors.New("invalid swatch count")
	ErrUnknownGradient     = errors.New("unknown gradient")
)
