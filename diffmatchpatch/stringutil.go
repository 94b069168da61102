// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

// diffCommonPrefix returns the number of runes common to the start of
// text1 and text2.
func diffCommonPrefix(text1, text2 []rune) int {
	n := min(len(text1), len(text2))
	for i := 0; i < n; i++ {
		if text1[i] != text2[i] {
			return i
		}
	}
	return n
}

// diffCommonSuffix returns the number of runes common to the end of
// text1 and text2.
func diffCommonSuffix(text1, text2 []rune) int {
	n1, n2 := len(text1), len(text2)
	n := min(n1, n2)
	for i := 1; i <= n; i++ {
		if text1[n1-i] != text2[n2-i] {
			return i - 1
		}
	}
	return n
}

// diffCommonOverlap returns the length of the longest suffix of text1 that
// is also a prefix of text2. Accidental adjacent insert/delete pairs that
// actually represent one contiguous edit look like this.
func diffCommonOverlap(text1, text2 []rune) int {
	text1Length := len(text1)
	text2Length := len(text2)
	// Eliminate the null case.
	if text1Length == 0 || text2Length == 0 {
		return 0
	}
	// Truncate the longer string.
	if text1Length > text2Length {
		text1 = text1[text1Length-text2Length:]
	} else if text1Length < text2Length {
		text2 = text2[:text1Length]
	}
	textLength := min(text1Length, text2Length)
	// Quick check for the worst case.
	if runesEqual(text1, text2) {
		return textLength
	}

	// Start by looking for a single character match and increase length
	// until no match is found. Performance analysis: https://neil.fraser.name/news/2010/11/04/
	best := 0
	length := 1
	for {
		pattern := text1[textLength-length:]
		found := runesIndex(text2, pattern)
		if found == -1 {
			return best
		}
		length += found
		if found == 0 || runesEqual(text1[textLength-length:], text2[:length]) {
			best = length
			length++
		}
	}
}

// diffHalfMatchResult is the 5-tuple produced by diffHalfMatch.
type diffHalfMatchResult struct {
	text1Prefix string
	text1Suffix string
	text2Prefix string
	text2Suffix string
	midCommon   string
}

// diffHalfMatch checks whether the two texts share a substring at least
// half the length of the longer text. If so, it returns the pieces either
// side of that substring in each text, plus the shared substring itself.
// Disabled when DiffTimeout is zero (single-shot mode): the speedup isn't
// worth the extra work when there is no deadline to race against.
func (dmp *DiffMatchPatch) diffHalfMatch(text1, text2 []rune) *diffHalfMatchResult {
	if dmp.DiffTimeout <= 0 {
		// Don't waste time on halfmatch analysis when there is no timeout.
		return nil
	}
	var longtext, shorttext []rune
	if len(text1) > len(text2) {
		longtext, shorttext = text1, text2
	} else {
		longtext, shorttext = text2, text1
	}
	if len(longtext) < 10 || len(shorttext) < 4 || len(shorttext)*2 < len(longtext) {
		return nil // Pointless.
	}

	// First check if the second quarter is the seed for a half-match.
	hm1 := diffHalfMatchI(longtext, shorttext, (len(longtext)+3)/4)
	// Check again based on the third quarter.
	hm2 := diffHalfMatchI(longtext, shorttext, (len(longtext)+1)/2)

	var hm *[5][]rune
	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	default:
		// Both matched. Select the longest.
		if len(hm1[4]) > len(hm2[4]) {
			hm = hm1
		} else {
			hm = hm2
		}
	}

	// A half-match was found, sort out the return data.
	var result diffHalfMatchResult
	if len(text1) > len(text2) {
		result = diffHalfMatchResult{
			text1Prefix: string(hm[0]),
			text1Suffix: string(hm[1]),
			text2Prefix: string(hm[2]),
			text2Suffix: string(hm[3]),
			midCommon:   string(hm[4]),
		}
	} else {
		result = diffHalfMatchResult{
			text1Prefix: string(hm[2]),
			text1Suffix: string(hm[3]),
			text2Prefix: string(hm[0]),
			text2Suffix: string(hm[1]),
			midCommon:   string(hm[4]),
		}
	}
	return &result
}

// diffHalfMatchI, given longtext, shorttext, and an index i into longtext,
// looks for the longest substring shared by both texts that contains the
// len(longtext)/4-rune seed starting at i in longtext. Returns nil if that
// substring is shorter than half of longtext, else a 5-element slice of
// [longtextPrefix, longtextSuffix,
// shorttextPrefix, shorttextSuffix, commonMiddle].
func diffHalfMatchI(longtext, shorttext []rune, i int) *[5][]rune {
	seed := longtext[i : i+len(longtext)/4]
	j := -1
	var bestCommon []rune
	var bestLongtextA, bestLongtextB []rune
	var bestShorttextA, bestShorttextB []rune
	j = runesIndexFrom(shorttext, seed, j+1)
	for j != -1 {
		prefixLength := diffCommonPrefix(longtext[i:], shorttext[j:])
		suffixLength := diffCommonSuffix(longtext[:i], shorttext[:j])
		if len(bestCommon) < suffixLength+prefixLength {
			bestCommon = append(append([]rune{}, shorttext[j-suffixLength:j]...), shorttext[j:j+prefixLength]...)
			bestLongtextA = longtext[:i-suffixLength]
			bestLongtextB = longtext[i+prefixLength:]
			bestShorttextA = shorttext[:j-suffixLength]
			bestShorttextB = shorttext[j+prefixLength:]
		}
		j = runesIndexFrom(shorttext, seed, j+1)
	}

	if len(bestCommon)*2 < len(longtext) {
		return nil
	}

	return &[5][]rune{
		bestLongtextA,
		bestLongtextB,
		bestShorttextA,
		bestShorttextB,
		bestCommon,
	}
}
