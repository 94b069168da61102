package diffmatchpatch

import "fmt"

// ParseError reports that a delta or patch text form could not be decoded:
// a malformed header, an unrecognized line prefix, or an invalid
// percent-escape sequence.
type ParseError struct {
	Context string // what was being parsed, e.g. "delta" or "patch header"
	Detail  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("diffmatchpatch: invalid %s: %s", e.Context, e.Detail)
}

// LengthMismatchError reports that DiffFromDelta consumed a number of
// runes from text1 different from len(text1).
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("diffmatchpatch: delta length mismatch: source text has %d runes, delta consumed %d", e.Want, e.Got)
}

// InvalidInputError reports a nil or otherwise unusable argument to
// DiffMain or MatchMain.
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("diffmatchpatch: invalid input: %s", e.Detail)
}
