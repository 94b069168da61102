package diffmatchpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Context: "delta", Detail: "invalid count in -x"}
	assert.Equal(t, "diffmatchpatch: invalid delta: invalid count in -x", err.Error())
}

func TestLengthMismatchErrorMessage(t *testing.T) {
	err := &LengthMismatchError{Want: 10, Got: 7}
	assert.Equal(t, "diffmatchpatch: delta length mismatch: source text has 10 runes, delta consumed 7", err.Error())
}

func TestInvalidInputErrorMessage(t *testing.T) {
	err := &InvalidInputError{Detail: "pattern exceeds MatchMaxBits"}
	assert.Equal(t, "diffmatchpatch: invalid input: pattern exceeds MatchMaxBits", err.Error())
}
