// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"regexp"
	"unicode"
)

// DiffCleanupMerge reorders and merges an edit script: adjacent edits of
// the same type are coalesced, cross-prefix/suffix overlap between an
// adjacent delete+insert pair is detected and slid into neighboring
// equalities, and empty edits are dropped. It iterates to a fixed point:
// sliding a prefix/suffix can create a new same-type run or a new empty
// edit, so one pass is not always enough.
func (dmp *DiffMatchPatch) DiffCleanupMerge(diffs []Diff) []Diff {
	// Add a dummy entry at the end.
	diffs = append(diffs, Diff{DiffEqual, ""})
	pointer := 0
	countDelete := 0
	countInsert := 0
	textDelete := []rune(nil)
	textInsert := []rune(nil)
	commonlength := 0
	for pointer < len(diffs) {
		switch diffs[pointer].Type {
		case DiffInsert:
			countInsert++
			textInsert = append(textInsert, []rune(diffs[pointer].Text)...)
			pointer++
		case DiffDelete:
			countDelete++
			textDelete = append(textDelete, []rune(diffs[pointer].Text)...)
			pointer++
		case DiffEqual:
			// Upon reaching an equality, check for prior redundancies.
			if countDelete+countInsert > 1 {
				if countDelete != 0 && countInsert != 0 {
					// Factor out any common prefixes.
					commonlength = diffCommonPrefix(textInsert, textDelete)
					if commonlength != 0 {
						x := pointer - countDelete - countInsert
						if x > 0 && diffs[x-1].Type == DiffEqual {
							diffs[x-1].Text += string(textInsert[:commonlength])
						} else {
							diffs = append([]Diff{{DiffEqual, string(textInsert[:commonlength])}}, diffs...)
							pointer++
						}
						textInsert = textInsert[commonlength:]
						textDelete = textDelete[commonlength:]
					}
					// Factor out any common suffixes.
					commonlength = diffCommonSuffix(textInsert, textDelete)
					if commonlength != 0 {
						insertIdx := len(textInsert) - commonlength
						deleteIdx := len(textDelete) - commonlength
						diffs[pointer].Text = string(textInsert[insertIdx:]) + diffs[pointer].Text
						textInsert = textInsert[:insertIdx]
						textDelete = textDelete[:deleteIdx]
					}
				}
				// Delete the offending records and add the merged ones.
				newDiffs := make([]Diff, 0, 2)
				if len(textDelete) != 0 {
					newDiffs = append(newDiffs, Diff{DiffDelete, string(textDelete)})
				}
				if len(textInsert) != 0 {
					newDiffs = append(newDiffs, Diff{DiffInsert, string(textInsert)})
				}
				pointer -= countDelete + countInsert
				diffs = append(diffs[:pointer], append(newDiffs, diffs[pointer+countDelete+countInsert:]...)...)
				pointer = pointer - 1 + len(newDiffs) + 1
			} else if pointer != 0 && diffs[pointer-1].Type == DiffEqual {
				// Merge this equality with the previous one.
				diffs[pointer-1].Text += diffs[pointer].Text
				diffs = append(diffs[:pointer], diffs[pointer+1:]...)
			} else {
				pointer++
			}
			countInsert = 0
			countDelete = 0
			textDelete = nil
			textInsert = nil
		}
	}
	if len(diffs) != 0 && diffs[len(diffs)-1].Text == "" {
		diffs = diffs[:len(diffs)-1] // Remove the dummy entry at the end.
	}

	// Second pass: look for single edits surrounded on both sides by
	// equalities which can be shifted sideways to eliminate an equality.
	// e.g: A<ins>BA</ins>C -> <ins>AB</ins>AC
	changes := false
	pointer = 1
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].Type == DiffEqual && diffs[pointer+1].Type == DiffEqual {
			// This is a single edit surrounded by equalities.
			d := []rune(diffs[pointer].Text)
			prev := []rune(diffs[pointer-1].Text)
			next := []rune(diffs[pointer+1].Text)
			if hasRuneSuffix(d, prev) {
				// Shift the edit over the previous equality.
				d = append(append([]rune{}, prev...), d[:len(d)-len(prev)]...)
				diffs[pointer].Text = string(d)
				diffs[pointer+1].Text = string(prev) + string(next)
				diffs = append(diffs[:pointer-1], diffs[pointer:]...)
				changes = true
			} else if hasRunePrefix(d, next) {
				// Shift the edit over the next equality.
				diffs[pointer-1].Text = string(prev) + string(next)
				d = append(append([]rune{}, d[len(next):]...), next...)
				diffs[pointer].Text = string(d)
				diffs = append(diffs[:pointer+1], diffs[pointer+2:]...)
				changes = true
			}
		}
		pointer++
	}
	// If shifts were made, the diff needs reordering and another shift sweep.
	if changes {
		diffs = dmp.DiffCleanupMerge(diffs)
	}
	return diffs
}

func hasRuneSuffix(s, suffix []rune) bool {
	if len(suffix) == 0 {
		return false
	}
	if len(suffix) > len(s) {
		return false
	}
	return runesEqual(s[len(s)-len(suffix):], suffix)
}

func hasRunePrefix(s, prefix []rune) bool {
	if len(prefix) == 0 {
		return false
	}
	if len(prefix) > len(s) {
		return false
	}
	return runesEqual(s[:len(prefix)], prefix)
}

// DiffCleanupSemantic removes edits that don't improve human readability:
// an equality surrounded by larger edits on both sides is absorbed into
// them, since a reader gains nothing from seeing it called out separately.
// It makes a forward pass for eliminations visible directly, then a
// backward pass for eliminations the forward pass's own merging reveals,
// and finally looks for delete/insert pairs with overlapping content that
// should be re-expressed with an explicit shared equality.
func (dmp *DiffMatchPatch) DiffCleanupSemantic(diffs []Diff) []Diff {
	changes := false
	// Stack of indices where equalities are found.
	var equalities []int
	var lastEquality string // Always equal to diffs[equalities[len(equalities)-1]].Text
	pointer := 0             // Index of current position.
	// Number of characters that changed prior to the equality.
	lengthInsertions1, lengthDeletions1 := 0, 0
	// Number of characters that changed after the equality.
	lengthInsertions2, lengthDeletions2 := 0, 0
	for pointer < len(diffs) {
		if diffs[pointer].Type == DiffEqual {
			// Equality found.
			equalities = append(equalities, pointer)
			lengthInsertions1, lengthInsertions2 = lengthInsertions2, 0
			lengthDeletions1, lengthDeletions2 = lengthDeletions2, 0
			lastEquality = diffs[pointer].Text
		} else {
			// An insertion or deletion.
			if diffs[pointer].Type == DiffInsert {
				lengthInsertions2 += len([]rune(diffs[pointer].Text))
			} else {
				lengthDeletions2 += len([]rune(diffs[pointer].Text))
			}
			// Eliminate an equality that is smaller or equal to the edits on
			// both sides of it.
			if lastEquality != "" &&
				len([]rune(lastEquality)) <= max(lengthInsertions1, lengthDeletions1) &&
				len([]rune(lastEquality)) <= max(lengthInsertions2, lengthDeletions2) {
				insertPoint := equalities[len(equalities)-1]
				// Duplicate record.
				diffs = append(diffs[:insertPoint], append([]Diff{{DiffDelete, lastEquality}}, diffs[insertPoint:]...)...)
				// Change second copy to insert.
				diffs[insertPoint+1].Type = DiffInsert
				// Throw away the equality we just deleted.
				equalities = equalities[:len(equalities)-1]
				// Throw away the previous equality (it needs to be reevaluated).
				if len(equalities) > 0 {
					equalities = equalities[:len(equalities)-1]
				}
				pointer = -1
				if len(equalities) > 0 {
					pointer = equalities[len(equalities)-1]
				}
				lengthInsertions1, lengthDeletions1 = 0, 0
				lengthInsertions2, lengthDeletions2 = 0, 0
				lastEquality = ""
				changes = true
			}
		}
		pointer++
	}

	if changes {
		diffs = dmp.DiffCleanupMerge(diffs)
	}
	diffs = dmp.diffCleanupSemanticOverlap(diffs)
	return diffs
}

// diffCleanupSemanticOverlap finds adjacent delete/insert pairs where one's
// suffix overlaps the other's prefix by at least half of the shorter
// text, and splits out that overlap as an explicit equality.
func (dmp *DiffMatchPatch) diffCleanupSemanticOverlap(diffs []Diff) []Diff {
	pointer := 1
	for pointer < len(diffs) {
		if diffs[pointer-1].Type == DiffDelete && diffs[pointer].Type == DiffInsert {
			deletion := []rune(diffs[pointer-1].Text)
			insertion := []rune(diffs[pointer].Text)
			overlapLength1 := diffCommonOverlap(deletion, insertion)
			overlapLength2 := diffCommonOverlap(insertion, deletion)
			if overlapLength1 >= overlapLength2 {
				if float64(overlapLength1) >= float64(len(deletion))/2 ||
					float64(overlapLength1) >= float64(len(insertion))/2 {
					// Overlap found. Insert an equality and trim the surrounding edits.
					diffs = append(diffs[:pointer], append([]Diff{{DiffEqual, string(insertion[:overlapLength1])}}, diffs[pointer:]...)...)
					diffs[pointer-1].Text = string(deletion[:len(deletion)-overlapLength1])
					diffs[pointer+1].Text = string(insertion[overlapLength1:])
					pointer++
				}
			} else {
				if float64(overlapLength2) >= float64(len(deletion))/2 ||
					float64(overlapLength2) >= float64(len(insertion))/2 {
					// Reverse overlap found. Insert an equality and swap and trim
					// the surrounding edits.
					diffs = append(diffs[:pointer], append([]Diff{{DiffEqual, string(deletion[:overlapLength2])}}, diffs[pointer:]...)...)
					diffs[pointer-1] = Diff{DiffInsert, string(insertion[:len(insertion)-overlapLength2])}
					diffs[pointer+1] = Diff{DiffDelete, string(deletion[overlapLength2:])}
					pointer++
				}
			}
			pointer++
		}
		pointer++
	}
	return diffs
}

// diffCleanupSemanticScore scores the boundary between one and two: how
// good a place is it to break a diff? 6 is the best (an edge of the
// document); 0 is the worst (between two alphanumeric runes). Based on the
// composition of the characters either side of the boundary, not on the
// runes' identity.
func diffCleanupSemanticScore(one, two string) int {
	if one == "" || two == "" {
		// Edges of the document.
		return 6
	}

	oneRunes := []rune(one)
	twoRunes := []rune(two)
	char1 := oneRunes[len(oneRunes)-1]
	char2 := twoRunes[0]
	nonAlphaNumeric1 := !isAlphaNumericRune(char1)
	nonAlphaNumeric2 := !isAlphaNumericRune(char2)
	whitespace1 := nonAlphaNumeric1 && unicode.IsSpace(char1)
	whitespace2 := nonAlphaNumeric2 && unicode.IsSpace(char2)
	lineBreak1 := whitespace1 && (char1 == '\r' || char1 == '\n')
	lineBreak2 := whitespace2 && (char2 == '\r' || char2 == '\n')
	blankLine1 := lineBreak1 && blanklineEndRegex.MatchString(one)
	blankLine2 := lineBreak2 && blanklineStartRegex.MatchString(two)

	switch {
	case blankLine1 || blankLine2:
		// Five points for blank lines.
		return 5
	case lineBreak1 || lineBreak2:
		// Four points for line breaks.
		return 4
	case nonAlphaNumeric1 && !whitespace1 && whitespace2:
		// Three points for end of sentence.
		return 3
	case whitespace1 || whitespace2:
		// Two points for whitespace.
		return 2
	case nonAlphaNumeric1 || nonAlphaNumeric2:
		// One point for non-alphanumeric.
		return 1
	}
	return 0
}

func isAlphaNumericRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// blanklineEndRegex/blanklineStartRegex detect a blank line at the end (or
// start) of a string: two line breaks with an optional stray '\r' around
// them.
var (
	blanklineEndRegex   = regexp.MustCompile(`\n\r?\n$`)
	blanklineStartRegex = regexp.MustCompile(`^\r?\n\r?\n`)
)

// DiffCleanupSemanticLossless slides every equality flanked by non-equal
// edits to the boundary position that best aligns it with a linguistic
// seam (sentence, word, or line boundary) on both sides, per
// diffCleanupSemanticScore. It never changes the text either diff
// reconstructs to, only where the edit/equal boundary falls within a run
// of runes the shift is free to move across.
func (dmp *DiffMatchPatch) DiffCleanupSemanticLossless(diffs []Diff) []Diff {
	pointer := 1
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].Type == DiffEqual && diffs[pointer+1].Type == DiffEqual {
			// This is a single edit surrounded by equalities.
			equality1 := []rune(diffs[pointer-1].Text)
			edit := []rune(diffs[pointer].Text)
			equality2 := []rune(diffs[pointer+1].Text)

			// First, shift the edit as far left as possible.
			commonOffset := diffCommonSuffix(equality1, edit)
			if commonOffset > 0 {
				commonString := edit[len(edit)-commonOffset:]
				equality1 = equality1[:len(equality1)-commonOffset]
				edit = append(append([]rune{}, commonString...), edit[:len(edit)-commonOffset]...)
				equality2 = append(append([]rune{}, commonString...), equality2...)
			}

			// Second, step character by character right, looking for the best fit.
			bestEquality1 := append([]rune{}, equality1...)
			bestEdit := append([]rune{}, edit...)
			bestEquality2 := append([]rune{}, equality2...)
			bestScore := diffCleanupSemanticScore(string(equality1), string(edit)) +
				diffCleanupSemanticScore(string(edit), string(equality2))

			for len(edit) != 0 && len(equality2) != 0 && edit[0] == equality2[0] {
				equality1 = append(equality1, edit[0])
				edit = append(edit[1:], equality2[0])
				equality2 = equality2[1:]
				score := diffCleanupSemanticScore(string(equality1), string(edit)) +
					diffCleanupSemanticScore(string(edit), string(equality2))
				// The >= encourages trailing rather than leading whitespace on
				// edits.
				if score >= bestScore {
					bestScore = score
					bestEquality1 = append([]rune{}, equality1...)
					bestEdit = append([]rune{}, edit...)
					bestEquality2 = append([]rune{}, equality2...)
				}
			}

			if string(diffs[pointer-1].Text) != string(bestEquality1) {
				// We have an improvement, save it back to the diff.
				if len(bestEquality1) != 0 {
					diffs[pointer-1].Text = string(bestEquality1)
				} else {
					diffs = append(diffs[:pointer-1], diffs[pointer:]...)
					pointer--
				}
				diffs[pointer].Text = string(bestEdit)
				if len(bestEquality2) != 0 {
					diffs[pointer+1].Text = string(bestEquality2)
				} else {
					diffs = append(diffs[:pointer+1], diffs[pointer+2:]...)
					pointer--
				}
			}
		}
		pointer++
	}
	return diffs
}

// DiffCleanupEfficiency combines edits across short equalities when doing
// so saves operations overall: an equality shorter than DiffEditCost is
// folded into the surrounding edits when it has both an insertion and a
// deletion on each side, or when it is shorter than DiffEditCost/2 and has
// three of those four.
func (dmp *DiffMatchPatch) DiffCleanupEfficiency(diffs []Diff) []Diff {
	changes := false
	// Stack of indices where equalities are found.
	var equalities []int
	// Always equal to diffs[equalities[len(equalities)-1]].Text
	lastEquality := ""
	pointer := 0 // Index of current position.
	// Is there an insertion operation before the last equality.
	preIns := false
	// Is there a deletion operation before the last equality.
	preDel := false
	// Is there an insertion operation after the last equality.
	postIns := false
	// Is there a deletion operation after the last equality.
	postDel := false
	for pointer < len(diffs) {
		if diffs[pointer].Type == DiffEqual {
			// Equality found.
			if len([]rune(diffs[pointer].Text)) < dmp.DiffEditCost && (postIns || postDel) {
				// Candidate found.
				equalities = append(equalities, pointer)
				preIns = postIns
				preDel = postDel
				lastEquality = diffs[pointer].Text
			} else {
				// Not a candidate, and can never become one.
				equalities = nil
				lastEquality = ""
			}
			postIns = false
			postDel = false
		} else {
			// An insertion or deletion.
			if diffs[pointer].Type == DiffDelete {
				postDel = true
			} else {
				postIns = true
			}

			// Five types to be split:
			// <ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
			// <ins>A</ins>X<ins>C</ins><del>D</del>
			// <ins>A</ins><del>B</del>X<ins>C</ins>
			// <ins>A</del>X<del>B</del><ins>C</ins>
			// <del>A</del>X<del>C</del>
			var sumPres int
			if preIns {
				sumPres++
			}
			if preDel {
				sumPres++
			}
			if postIns {
				sumPres++
			}
			if postDel {
				sumPres++
			}
			if lastEquality != "" &&
				((preIns && preDel && postIns && postDel) ||
					((len([]rune(lastEquality)) < dmp.DiffEditCost/2) && sumPres == 3)) {
				insertPoint := equalities[len(equalities)-1]
				// Duplicate record.
				diffs = append(diffs[:insertPoint], append([]Diff{{DiffDelete, lastEquality}}, diffs[insertPoint:]...)...)
				// Change second copy to insert.
				diffs[insertPoint+1].Type = DiffInsert
				equalities = equalities[:len(equalities)-1] // Throw away the equality we just deleted.
				lastEquality = ""
				if preIns && preDel {
					// No changes made which could affect previous entry, keep going.
					postIns = true
					postDel = true
					equalities = nil
				} else {
					if len(equalities) > 0 {
						equalities = equalities[:len(equalities)-1]
					}
					pointer = -1
					if len(equalities) > 0 {
						pointer = equalities[len(equalities)-1]
					}
					postIns = false
					postDel = false
				}
				changes = true
			}
		}
		pointer++
	}

	if changes {
		diffs = dmp.DiffCleanupMerge(diffs)
	}
	return diffs
}
