package dbg

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	name := Name()
	assert.NotEmpty(t, name)
	assert.True(t, unicode.IsUpper([]rune(name)[0]), name)
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "-")
}
