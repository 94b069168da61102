// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

// Line-mode diffing hashes each unique line to a single rune so that
// DiffMainRunes can run its normal algorithm over a short hashed sequence
// instead of the full text. The hashed value must be a valid Unicode
// scalar value on its own, so the surrogate band (which cannot be encoded
// as a standalone UTF-8 rune) is skipped when assigning ids.

// index identifies one unique line within a single diffLineMode call.
type index int

const (
	runeSkipStart = 0xD800
	runeSkipEnd   = 0xE000
	// runeMax is one past the largest rune value. Since the surrogate band
	// is skipped, diffLineMode can hash at most
	// runeMax-(runeSkipEnd-runeSkipStart) unique lines in a single call.
	runeMax = 0x110000
)

// indexToRune maps a line index to a rune, skipping the surrogate band.
func indexToRune(idx index) rune {
	r := rune(idx)
	if r >= runeSkipStart {
		r += runeSkipEnd - runeSkipStart
	}
	return r
}

// runeToIndex inverts indexToRune.
func runeToIndex(r rune) index {
	if r >= runeSkipEnd {
		r -= runeSkipEnd - runeSkipStart
	}
	return index(r)
}

// indexesToString renders a sequence of line indexes as the hashed "line
// string" diffMainRunes will diff.
func indexesToString(indexes []index) string {
	runes := make([]rune, len(indexes))
	for i, idx := range indexes {
		runes[i] = indexToRune(idx)
	}
	return string(runes)
}

// stringToIndex inverts indexesToString.
func stringToIndex(s string) []index {
	runes := []rune(s)
	indexes := make([]index, len(runes))
	for i, r := range runes {
		indexes[i] = runeToIndex(r)
	}
	return indexes
}
