// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package diffmatchpatch computes, normalizes, serializes, searches for,
// and applies textual edits between two strings.
//
// It provides three coupled subsystems: a Myers-style diff engine with
// heuristic pre/post-processing, a Bitap fuzzy-match engine, and a
// context-bearing patch engine that can apply edits to drifted text.
//
// All positions and lengths are counted in Unicode scalar values (runes),
// not UTF-8 bytes, so that callers working with non-ASCII text see
// consistent offsets across Diff, Match, and Patch operations.
package diffmatchpatch

import "time"

// DiffMatchPatch holds the tunable parameters for diff, match, and patch
// operations. The zero value is not ready to use; call New for a value
// populated with sane defaults, or set every field explicitly.
//
// A DiffMatchPatch is safe to share across goroutines as long as callers
// treat it as read-only after construction; nothing in this package
// mutates it.
type DiffMatchPatch struct {
	// DiffTimeout bounds how long DiffMain may search for the best edit
	// script before it gives up and returns a trivial delete+insert diff.
	// Zero disables the timeout.
	DiffTimeout time.Duration
	// DiffEditCost is the cost, in characters, of a single edit operation;
	// DiffCleanupEfficiency uses it to decide whether merging two edits
	// across a short equality is worthwhile.
	DiffEditCost int
	// DiffDualThreshold is the combined input length at or below which the
	// bisection step uses a forward-only search instead of the bidirectional
	// DiffBisect.
	DiffDualThreshold int

	// MatchThreshold is the score ceiling, in [0,1], above which MatchBitap
	// refuses to report a match. 0.0 requires a perfect match; 1.0 accepts
	// anything.
	MatchThreshold float64
	// MatchDistance controls how quickly a match's score degrades with
	// distance from the expected location.
	MatchDistance int
	// MatchMaxBits is the longest pattern MatchBitap can search for; it is
	// bounded by the machine word size the bitmask state fits in.
	MatchMaxBits int

	// PatchMargin is the number of characters of context PatchMake adds
	// around a changed region, and the length of the padding PatchApply
	// adds at each end of the text.
	PatchMargin int
	// PatchDeleteThreshold is the maximum acceptable Levenshtein distance,
	// as a fraction of pattern length, between a hunk's expected and
	// located text before PatchApply gives up on content and falls back to
	// reporting failure for that hunk.
	PatchDeleteThreshold float64
}

// New returns a DiffMatchPatch populated with the library's defaults.
func New() *DiffMatchPatch {
	return &DiffMatchPatch{
		DiffTimeout:       time.Second,
		DiffEditCost:      4,
		DiffDualThreshold: 32,

		MatchThreshold: 0.5,
		MatchDistance:  1000,
		MatchMaxBits:   32,

		PatchMargin:          4,
		PatchDeleteThreshold: 0.5,
	}
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// runesEqual reports whether r1 and r2 hold the same sequence of runes.
func runesEqual(r1, r2 []rune) bool {
	if len(r1) != len(r2) {
		return false
	}
	for i, c := range r1 {
		if c != r2[i] {
			return false
		}
	}
	return true
}

// runesIndex is the rune-slice equivalent of strings.Index.
func runesIndex(text, pattern []rune) int {
	last := len(text) - len(pattern)
	for i := 0; i <= last; i++ {
		if runesEqual(text[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

// runesLastIndex is the rune-slice equivalent of strings.LastIndex.
func runesLastIndex(text, pattern []rune) int {
	for i := len(text) - len(pattern); i >= 0; i-- {
		if runesEqual(text[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

// runesIndexFrom returns the first index of pattern in text at or after i.
func runesIndexFrom(text, pattern []rune, i int) int {
	if i > len(text)-len(pattern) {
		if len(pattern) == 0 && i <= len(text) {
			return i
		}
		return -1
	}
	if i <= 0 {
		return runesIndex(text, pattern)
	}
	ind := runesIndex(text[i:], pattern)
	if ind == -1 {
		return -1
	}
	return ind + i
}

// runesLastIndexBefore returns the last index of pattern in text at or
// before i (i.e. pattern must end at or before i+len(pattern)).
func runesLastIndexBefore(text, pattern []rune, i int) int {
	end := min(i+len(pattern), len(text))
	if end < len(pattern) {
		return -1
	}
	return runesLastIndex(text[:end], pattern)
}
