// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"strconv"
	"strings"
	"time"
)

// Patch is one hunk of an edit script, with position/length metadata
// relative to the texts it was produced from and its own slice of Diffs
// whose DiffEqual runs supply surrounding context.
type Patch struct {
	Diffs   []Diff
	Start1  int
	Start2  int
	Length1 int
	Length2 int
}

// String renders p in the textual patch form: a "@@ -start1,length1
// +start2,length2 @@" header (1-indexed, comma omitted when the length is
// 1; an empty side is written as its 0-indexed start followed by ",0", so
// "0,0" at the start of the text) followed by one line per Diff, prefixed by
// ' '/'-'/'+' for equal/delete/insert, with the diff's text percent-encoded
// per the unreserved set in encode.go.
func (p *Patch) String() string {
	var coords1, coords2 string
	if p.Length1 == 0 {
		coords1 = strconv.Itoa(p.Start1) + ",0"
	} else if p.Length1 == 1 {
		coords1 = strconv.Itoa(p.Start1 + 1)
	} else {
		coords1 = strconv.Itoa(p.Start1+1) + "," + strconv.Itoa(p.Length1)
	}
	if p.Length2 == 0 {
		coords2 = strconv.Itoa(p.Start2) + ",0"
	} else if p.Length2 == 1 {
		coords2 = strconv.Itoa(p.Start2 + 1)
	} else {
		coords2 = strconv.Itoa(p.Start2+1) + "," + strconv.Itoa(p.Length2)
	}

	var text strings.Builder
	text.WriteString("@@ -" + coords1 + " +" + coords2 + " @@\n")
	for _, d := range p.Diffs {
		switch d.Type {
		case DiffInsert:
			text.WriteByte('+')
		case DiffDelete:
			text.WriteByte('-')
		case DiffEqual:
			text.WriteByte(' ')
		}
		text.WriteString(percentEncode(d.Text))
		text.WriteByte('\n')
	}
	return text.String()
}

// PatchDeepCopy returns a copy of patches that shares no backing storage
// with the originals; callers that retain their own patch slice across
// repeated PatchApply calls (which mutate a working copy) need this.
func (dmp *DiffMatchPatch) PatchDeepCopy(patches []Patch) []Patch {
	out := make([]Patch, len(patches))
	for i, p := range patches {
		cp := Patch{Start1: p.Start1, Start2: p.Start2, Length1: p.Length1, Length2: p.Length2}
		cp.Diffs = make([]Diff, len(p.Diffs))
		copy(cp.Diffs, p.Diffs)
		out[i] = cp
	}
	return out
}

// PatchMake computes the patches needed to turn the first argument into
// the second. It accepts the three call shapes the original library
// supports:
//
//	PatchMake(text1, text2 string)       - diffs text1 against text2 itself
//	PatchMake(diffs []Diff)              - text1 is recovered via DiffText1
//	PatchMake(text1 string, diffs []Diff) - diffs are taken as given
func (dmp *DiffMatchPatch) PatchMake(opt ...interface{}) []Patch {
	switch len(opt) {
	case 1:
		diffs, ok := opt[0].([]Diff)
		if !ok {
			return []Patch{}
		}
		text1 := DiffText1(diffs)
		return dmp.PatchMake(text1, diffs)
	case 2:
		text1, ok := opt[0].(string)
		if !ok {
			return []Patch{}
		}
		switch t := opt[1].(type) {
		case string:
			diffs := dmp.DiffMain(text1, t, true)
			if len(diffs) > 2 {
				diffs = dmp.DiffCleanupSemantic(diffs)
				diffs = dmp.DiffCleanupEfficiency(diffs)
			}
			return dmp.patchMakeFromDiffs(text1, diffs)
		case []Diff:
			return dmp.patchMakeFromDiffs(text1, t)
		}
	}
	return []Patch{}
}

// patchMakeFromDiffs builds one patch per run of non-equal edits, with
// PatchMargin runes of equal context on each side, by replaying diffs
// against text1 to track both the source and destination cursor.
func (dmp *DiffMatchPatch) patchMakeFromDiffs(text1 string, diffs []Diff) []Patch {
	var patches []Patch
	if len(diffs) == 0 {
		return patches
	}

	var patch Patch
	charCount1 := 0 // Into text1 (source).
	charCount2 := 0 // Into text2 (destination).
	prepatchText := []rune(text1)
	postpatchText := append([]rune{}, prepatchText...)
	for i, d := range diffs {
		if len(patch.Diffs) == 0 && d.Type != DiffEqual {
			// A new patch starts here.
			patch.Start1 = charCount1
			patch.Start2 = charCount2
		}

		dText := []rune(d.Text)
		switch d.Type {
		case DiffInsert:
			patch.Diffs = append(patch.Diffs, d)
			patch.Length2 += len(dText)
			postpatchText = append(postpatchText[:charCount2], append(append([]rune{}, dText...), postpatchText[charCount2:]...)...)
		case DiffDelete:
			patch.Length1 += len(dText)
			patch.Diffs = append(patch.Diffs, d)
			postpatchText = append(postpatchText[:charCount2], postpatchText[charCount2+len(dText):]...)
		case DiffEqual:
			if len(dText) <= 2*dmp.PatchMargin && len(patch.Diffs) != 0 && i != len(diffs)-1 {
				// Small equality inside a patch.
				patch.Diffs = append(patch.Diffs, d)
				patch.Length1 += len(dText)
				patch.Length2 += len(dText)
			}
			if len(dText) >= 2*dmp.PatchMargin && len(patch.Diffs) != 0 {
				// Time for a new patch.
				patch = dmp.patchAddContext(patch, string(prepatchText))
				patches = append(patches, patch)
				patch = Patch{}
				// Unlike Unidiff, our patch lists have a rolling context.
				prepatchText = append([]rune{}, postpatchText...)
				charCount1 = charCount2
			}
		}

		if d.Type != DiffInsert {
			charCount1 += len(dText)
		}
		if d.Type != DiffDelete {
			charCount2 += len(dText)
		}
	}
	// Pick up the leftover patch if not empty.
	if len(patch.Diffs) != 0 {
		patch = dmp.patchAddContext(patch, string(prepatchText))
		patches = append(patches, patch)
	}
	return patches
}

// patchAddContext extends a patch's surrounding equal context until its
// text1 span appears uniquely within source, doubling the window each
// step, up to MatchMaxBits-2*PatchMargin. Context is symmetric unless a
// document edge is reached, in which case the window is trimmed rather
// than extended past it.
func (dmp *DiffMatchPatch) patchAddContext(patch Patch, source string) Patch {
	sourceR := []rune(source)
	if len(sourceR) == 0 {
		return patch
	}
	pattern := sourceR[patch.Start2 : patch.Start2+patch.Length1]
	padding := 0

	// Look for the first and last matches of pattern in source. If two
	// different matches are found, increase the pattern length.
	for runesIndex(sourceR, pattern) != runesLastIndex(sourceR, pattern) &&
		len(pattern) < dmp.MatchMaxBits-2*dmp.PatchMargin {
		padding += dmp.PatchMargin
		maxStart := max(0, patch.Start2-padding)
		minEnd := min(len(sourceR), patch.Start2+patch.Length1+padding)
		pattern = sourceR[maxStart:minEnd]
	}
	// Add one chunk for good luck.
	padding += dmp.PatchMargin

	// Add the prefix.
	prefix := sourceR[max(0, patch.Start2-padding):patch.Start2]
	if len(prefix) != 0 {
		patch.Diffs = append([]Diff{{DiffEqual, string(prefix)}}, patch.Diffs...)
	}
	// Add the suffix.
	suffix := sourceR[patch.Start2+patch.Length1 : min(len(sourceR), patch.Start2+patch.Length1+padding)]
	if len(suffix) != 0 {
		patch.Diffs = append(patch.Diffs, Diff{DiffEqual, string(suffix)})
	}

	// Roll back the start points.
	patch.Start1 -= len(prefix)
	patch.Start2 -= len(prefix)
	// Extend the lengths.
	patch.Length1 += len(prefix) + len(suffix)
	patch.Length2 += len(prefix) + len(suffix)
	return patch
}

// PatchSplitMax splits any patch whose Length1 exceeds MatchMaxBits -
// 2*PatchMargin into consecutive smaller patches, recomputing each
// sub-patch's own context from its own neighborhood. Intended to be
// called from within PatchApply, before attempting to locate each hunk.
func (dmp *DiffMatchPatch) PatchSplitMax(patches []Patch) []Patch {
	patchSize := dmp.MatchMaxBits
	for x := 0; x < len(patches); x++ {
		if patches[x].Length1 <= patchSize-2*dmp.PatchMargin {
			continue
		}
		bigpatch := patches[x]
		// Remove the big old patch.
		patches = append(patches[:x], patches[x+1:]...)
		x--

		start1 := bigpatch.Start1
		start2 := bigpatch.Start2
		var precontext []rune
		for len(bigpatch.Diffs) != 0 {
			patch := Patch{}
			empty := true
			patch.Start1 = start1 - len(precontext)
			patch.Start2 = start2 - len(precontext)
			if len(precontext) != 0 {
				patch.Length1 = len(precontext)
				patch.Length2 = len(precontext)
				patch.Diffs = append(patch.Diffs, Diff{DiffEqual, string(precontext)})
			}
			for len(bigpatch.Diffs) != 0 && patch.Length1 < patchSize-dmp.PatchMargin {
				diffType := bigpatch.Diffs[0].Type
				diffText := []rune(bigpatch.Diffs[0].Text)
				if diffType == DiffInsert {
					// Insertions are harmless.
					patch.Length2 += len(diffText)
					start2 += len(diffText)
					patch.Diffs = append(patch.Diffs, bigpatch.Diffs[0])
					bigpatch.Diffs = bigpatch.Diffs[1:]
					empty = false
				} else if diffType == DiffDelete && len(patch.Diffs) == 1 &&
					patch.Diffs[0].Type == DiffEqual && len(diffText) > 2*patchSize {
					// This is a large deletion. Let it pass in one chunk.
					patch.Length1 += len(diffText)
					start1 += len(diffText)
					empty = false
					patch.Diffs = append(patch.Diffs, Diff{diffType, string(diffText)})
					bigpatch.Diffs = bigpatch.Diffs[1:]
				} else {
					// Deletion or equality. Only take as much as we can stomach.
					diffText = diffText[:min(len(diffText), patchSize-patch.Length1-dmp.PatchMargin)]
					patch.Length1 += len(diffText)
					start1 += len(diffText)
					if diffType == DiffEqual {
						patch.Length2 += len(diffText)
						start2 += len(diffText)
					} else {
						empty = false
					}
					patch.Diffs = append(patch.Diffs, Diff{diffType, string(diffText)})
					if string(diffText) == bigpatch.Diffs[0].Text {
						bigpatch.Diffs = bigpatch.Diffs[1:]
					} else {
						bigpatch.Diffs[0].Text = string([]rune(bigpatch.Diffs[0].Text)[len(diffText):])
					}
				}
			}
			// Compute the head context for the next patch.
			precontext = []rune(DiffText2(patch.Diffs))
			precontext = precontext[max(0, len(precontext)-dmp.PatchMargin):]

			// Append the end context for this patch.
			bigDiffText1 := []rune(DiffText1(bigpatch.Diffs))
			var postcontext []rune
			if len(bigDiffText1) > dmp.PatchMargin {
				postcontext = bigDiffText1[:dmp.PatchMargin]
			} else {
				postcontext = bigDiffText1
			}
			if len(postcontext) != 0 {
				patch.Length1 += len(postcontext)
				patch.Length2 += len(postcontext)
				if len(patch.Diffs) != 0 && patch.Diffs[len(patch.Diffs)-1].Type == DiffEqual {
					patch.Diffs[len(patch.Diffs)-1].Text += string(postcontext)
				} else {
					patch.Diffs = append(patch.Diffs, Diff{DiffEqual, string(postcontext)})
				}
			}
			if !empty {
				x++
				patches = append(patches[:x], append([]Patch{patch}, patches[x:]...)...)
			}
		}
	}
	return patches
}

// patchAddPadding prepends/appends PatchMargin runes drawn from the
// sentinel band U+0001..U+0004 around the whole patch list's context, so
// that an edit at a document edge still has something to anchor to.
// Callers applying these patches must pad the source text with the same
// sentinel string before searching it, and strip it afterward.
func (dmp *DiffMatchPatch) patchAddPadding(patches []Patch) string {
	paddingLength := dmp.PatchMargin
	nullPadding := ""
	for x := 1; x <= paddingLength; x++ {
		nullPadding += string(rune(x))
	}

	// Bump all the patches forward.
	for i := range patches {
		patches[i].Start1 += paddingLength
		patches[i].Start2 += paddingLength
	}

	// Add some padding on start of first diff.
	first := &patches[0]
	if len(first.Diffs) == 0 || first.Diffs[0].Type != DiffEqual {
		first.Diffs = append([]Diff{{DiffEqual, nullPadding}}, first.Diffs...)
		first.Start1 -= paddingLength
		first.Start2 -= paddingLength
		first.Length1 += paddingLength
		first.Length2 += paddingLength
	} else if paddingLength > len([]rune(first.Diffs[0].Text)) {
		extraLength := paddingLength - len([]rune(first.Diffs[0].Text))
		first.Diffs[0].Text = nullPadding[len([]rune(first.Diffs[0].Text)):] + first.Diffs[0].Text
		first.Start1 -= extraLength
		first.Start2 -= extraLength
		first.Length1 += extraLength
		first.Length2 += extraLength
	}

	// Add some padding on end of last diff.
	last := &patches[len(patches)-1]
	if len(last.Diffs) == 0 || last.Diffs[len(last.Diffs)-1].Type != DiffEqual {
		last.Diffs = append(last.Diffs, Diff{DiffEqual, nullPadding})
		last.Length1 += paddingLength
		last.Length2 += paddingLength
	} else if paddingLength > len([]rune(last.Diffs[len(last.Diffs)-1].Text)) {
		lastDiff := &last.Diffs[len(last.Diffs)-1]
		extraLength := paddingLength - len([]rune(lastDiff.Text))
		lastDiff.Text += nullPadding[:extraLength]
		last.Length1 += extraLength
		last.Length2 += extraLength
	}

	return nullPadding
}

// PatchApply relocates each patch against text via MatchMain to tolerate
// drift since the patch was made, reconstructs the modified span using
// the patch's own edit script (or, on drift, a fresh diff against the
// located text mapped through DiffXIndex), and returns the patched text
// plus one success flag per patch.
func (dmp *DiffMatchPatch) PatchApply(patches []Patch, text string) (string, []bool) {
	if len(patches) == 0 {
		return text, []bool{}
	}

	var deadline time.Time
	if dmp.DiffTimeout > 0 {
		deadline = time.Now().Add(dmp.DiffTimeout)
	}

	patches = dmp.PatchDeepCopy(patches)
	nullPadding := dmp.patchAddPadding(patches)
	textR := append(append([]rune{}, []rune(nullPadding)...), append([]rune(text), []rune(nullPadding)...)...)
	patches = dmp.PatchSplitMax(patches)

	// delta tracks the offset between a patch's expected and actual
	// location: if a patch expected at 10 is found at 12, delta is 2, and
	// the next patch's expected location shifts by 2 as well.
	delta := 0
	results := make([]bool, len(patches))
	for i, p := range patches {
		expectedLoc := p.Start2 + delta
		text1 := []rune(DiffText1(p.Diffs))

		var startLoc, endLoc int
		endLoc = -1
		if len(text1) > dmp.MatchMaxBits {
			// PatchSplitMax only produces an oversized pattern for a monster
			// delete; match on its head and tail separately.
			startLoc = dmp.MatchMainAt(string(textR), string(text1[:dmp.MatchMaxBits]), expectedLoc)
			if startLoc != -1 {
				endLoc = dmp.MatchMainAt(string(textR), string(text1[len(text1)-dmp.MatchMaxBits:]), expectedLoc+len(text1)-dmp.MatchMaxBits)
				if endLoc == -1 || startLoc >= endLoc {
					startLoc = -1
				}
			}
		} else {
			startLoc = dmp.MatchMainAt(string(textR), string(text1), expectedLoc)
		}

		if startLoc == -1 {
			results[i] = false
			delta -= p.Length2 - p.Length1
			continue
		}

		results[i] = true
		delta = startLoc - expectedLoc
		var text2 []rune
		if endLoc == -1 {
			text2 = textR[startLoc:min(startLoc+len(text1), len(textR))]
		} else {
			text2 = textR[startLoc:min(endLoc+dmp.MatchMaxBits, len(textR))]
		}

		if runesEqual(text1, text2) {
			// Perfect match, shove the replacement text straight in.
			textR = append(append(append([]rune{}, textR[:startLoc]...), []rune(DiffText2(p.Diffs))...), textR[startLoc+len(text1):]...)
			continue
		}

		// Imperfect match: diff the located text against the expected text1
		// to get a coordinate mapping, and give up on content that drifted
		// too far.
		diffs := dmp.diffMainRunes(text1, text2, false, deadline)
		if float64(dmp.DiffLevenshtein(diffs))/float64(len(text1)) > dmp.PatchDeleteThreshold {
			results[i] = false
			continue
		}
		diffs = dmp.DiffCleanupSemanticLossless(diffs)
		index1 := 0
		for _, d := range p.Diffs {
			if d.Type != DiffEqual {
				index2 := dmp.DiffXIndex(diffs, index1)
				switch d.Type {
				case DiffInsert:
					textR = append(append(append([]rune{}, textR[:startLoc+index2]...), []rune(d.Text)...), textR[startLoc+index2:]...)
				case DiffDelete:
					startIndex := startLoc + index2
					endIndex := startLoc + dmp.DiffXIndex(diffs, index1+len([]rune(d.Text)))
					textR = append(append([]rune{}, textR[:startIndex]...), textR[endIndex:]...)
				}
			}
			if d.Type != DiffDelete {
				index1 += len([]rune(d.Text))
			}
		}
	}

	// Strip padding.
	result := string(textR[len([]rune(nullPadding)) : len(textR)-len([]rune(nullPadding))])
	return result, results
}

// PatchToText serializes patches in the textual patch form (see Patch.String).
func (dmp *DiffMatchPatch) PatchToText(patches []Patch) string {
	var text strings.Builder
	for _, p := range patches {
		text.WriteString(p.String())
	}
	return text.String()
}

// PatchFromText parses a textual patch form produced by PatchToText. It
// returns a ParseError on a malformed header or an unrecognized line
// prefix.
func (dmp *DiffMatchPatch) PatchFromText(textline string) ([]Patch, error) {
	var patches []Patch
	if textline == "" {
		return patches, nil
	}
	lines := strings.Split(textline, "\n")
	i := 0
	for i < len(lines) {
		start1, length1, start2, length2, err := parsePatchHeader(lines[i])
		if err != nil {
			return nil, err
		}
		patch := Patch{Start1: start1, Length1: length1, Start2: start2, Length2: length2}
		i++

		for i < len(lines) {
			if lines[i] == "" {
				i++
				continue
			}
			sign := lines[i][0]
			if sign == '@' {
				break
			}
			line, err := percentDecode(lines[i][1:])
			if err != nil {
				return nil, err
			}
			switch sign {
			case '-':
				patch.Diffs = append(patch.Diffs, Diff{DiffDelete, line})
			case '+':
				patch.Diffs = append(patch.Diffs, Diff{DiffInsert, line})
			case ' ':
				patch.Diffs = append(patch.Diffs, Diff{DiffEqual, line})
			default:
				return nil, &ParseError{Context: "patch line", Detail: "unrecognized prefix " + string(sign)}
			}
			i++
		}
		patches = append(patches, patch)
	}
	return patches, nil
}

// parsePatchHeader parses a "@@ -start1,length1 +start2,length2 @@"
// header line into 0-indexed start positions and lengths.
func parsePatchHeader(line string) (start1, length1, start2, length2 int, err error) {
	const prefix, suffix = "@@ -", " @@"
	if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, suffix) {
		return 0, 0, 0, 0, &ParseError{Context: "patch header", Detail: "malformed header: " + line}
	}
	body := line[len(prefix) : len(line)-len(suffix)]
	parts := strings.SplitN(body, " +", 2)
	if len(parts) != 2 {
		return 0, 0, 0, 0, &ParseError{Context: "patch header", Detail: "malformed header: " + line}
	}
	start1, length1, err = parsePatchRange(parts[0])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	start2, length2, err = parsePatchRange(parts[1])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return start1, length1, start2, length2, nil
}

// parsePatchRange parses one "start[,length]" side of a patch header into
// a 0-indexed start and a length. A missing length means length 1; a
// length of literal "0" means an empty (zero-length) side.
func parsePatchRange(s string) (start, length int, err error) {
	parts := strings.SplitN(s, ",", 2)
	start, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, &ParseError{Context: "patch header", Detail: "invalid position in " + s}
	}
	if len(parts) == 1 {
		return start - 1, 1, nil
	}
	if parts[1] == "0" {
		return start, 0, nil
	}
	length, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, &ParseError{Context: "patch header", Detail: "invalid length in " + s}
	}
	return start - 1, length, nil
}
