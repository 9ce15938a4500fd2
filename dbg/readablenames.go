package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Random readable names like "BriskOtter". Render calls are independent and may
// run concurrently, so each one gets a name to tell its log lines apart.

func init() {
	// The same name does not refer to the same thing between runs, and it should
	// not look like it does.
	petname.NonDeterministicMode()
}

func Name() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}
