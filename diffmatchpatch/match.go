// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import "math"

// MatchMain locates the best instance of pattern in text, starting near
// the beginning of text (rune offset 0; MatchMainAt takes another
// location). Returns -1 if no match scores within MatchThreshold.
func (dmp *DiffMatchPatch) MatchMain(text, pattern string) int {
	return dmp.MatchMainAt(text, pattern, 0)
}

// MatchMainAt is MatchMain with an explicit starting location.
func (dmp *DiffMatchPatch) MatchMainAt(text, pattern string, loc int) int {
	textR := []rune(text)
	patternR := []rune(pattern)

	loc = max(0, min(loc, len(textR)))
	if runesEqual(textR, patternR) {
		// Shortcut (potentially not guaranteed by the algorithm).
		return 0
	} else if len(patternR) == 0 {
		// Empty pattern, clamp to bounds.
		return loc
	} else if loc+len(patternR) <= len(textR) && runesEqual(textR[loc:loc+len(patternR)], patternR) {
		// Perfect match at the perfect spot.
		return loc
	}
	// Do a fuzzy compare.
	return dmp.MatchBitap(textR, patternR, loc)
}

// MatchBitap locates the best instance of pattern in text near loc using
// the Bitap algorithm. Returns -1 if nothing scores within MatchThreshold.
// len(pattern) must not exceed MatchMaxBits.
func (dmp *DiffMatchPatch) MatchBitap(text, pattern []rune, loc int) int {
	alphabet := dmp.MatchAlphabet(pattern)

	// Highest score beyond which we give up.
	scoreThreshold := dmp.MatchThreshold
	// Is there a nearby exact match? (speedup)
	bestLoc := runesIndexFrom(text, pattern, loc)
	if bestLoc != -1 {
		scoreThreshold = math.Min(dmp.matchBitapScore(0, bestLoc, loc, len(pattern)), scoreThreshold)
		// What about in the other direction? (speedup)
		bestLoc = runesLastIndexBefore(text, pattern, loc+len(pattern))
		if bestLoc != -1 {
			scoreThreshold = math.Min(dmp.matchBitapScore(0, bestLoc, loc, len(pattern)), scoreThreshold)
		}
	}

	matchmask := 1 << uint(len(pattern)-1)
	bestLoc = -1

	var binMin, binMid int
	binMax := len(pattern) + len(text)
	var lastRd []int
	for d := 0; d < len(pattern); d++ {
		// Scan for the best match; each iteration allows for one more error.
		// Run a binary search to determine how far from loc we can stray at
		// this error level.
		binMin = 0
		binMid = binMax
		for binMin < binMid {
			if dmp.matchBitapScore(d, loc+binMid, loc, len(pattern)) <= scoreThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		// Use the result from this iteration as the maximum for the next.
		binMax = binMid
		start := max(1, loc-binMid+1)
		finish := min(loc+binMid, len(text)) + len(pattern)

		rd := make([]int, finish+2)
		rd[finish+1] = (1 << uint(d)) - 1

		for j := finish; j >= start; j-- {
			var charMatch int
			if j-1 >= len(text) {
				charMatch = 0
			} else if m, ok := alphabet[text[j-1]]; ok {
				charMatch = m
			}

			if d == 0 {
				// First pass: exact match.
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				// Subsequent passes: fuzzy match.
				rd[j] = (((rd[j+1]<<1)|1)&charMatch | (((lastRd[j+1] | lastRd[j]) << 1) | 1) | lastRd[j+1])
			}
			if rd[j]&matchmask != 0 {
				score := dmp.matchBitapScore(d, j-1, loc, len(pattern))
				// This match will almost certainly be better than any existing
				// match, but check anyway.
				if score <= scoreThreshold {
					scoreThreshold = score
					bestLoc = j - 1
					if bestLoc > loc {
						// When passing loc, don't exceed our current distance from loc.
						start = max(1, 2*loc-bestLoc)
					} else {
						// Already passed loc, downhill from here on in.
						break
					}
				}
			}
		}
		if dmp.matchBitapScore(d+1, loc, loc, len(pattern)) > scoreThreshold {
			// No hope for a (better) match at a greater error level.
			break
		}
		lastRd = rd
	}
	return bestLoc
}

// matchBitapScore computes the score for a match with e errors at
// position x, given that loc was the expected position of a pattern of
// the given length.
func (dmp *DiffMatchPatch) matchBitapScore(e, x, loc, patternLen int) float64 {
	accuracy := float64(e) / float64(patternLen)
	proximity := math.Abs(float64(loc - x))
	if dmp.MatchDistance == 0 {
		// Dodge a divide-by-zero.
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + proximity/float64(dmp.MatchDistance)
}

// MatchAlphabet builds the per-rune bitmask Bitap scans with: for each
// position i in pattern, bit (len(pattern)-i-1) is set in mask[pattern[i]].
// A rune repeated in pattern has its bits OR'd together.
func (dmp *DiffMatchPatch) MatchAlphabet(pattern []rune) map[rune]int {
	s := map[rune]int{}
	for i, c := range pattern {
		s[c] |= 1 << uint(len(pattern)-i-1)
	}
	return s
}
