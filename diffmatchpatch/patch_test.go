package diffmatchpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchStringEmptySides(t *testing.T) {
	p := Patch{
		Start1:  0,
		Start2:  0,
		Length1: 0,
		Length2: 4,
		Diffs:   []Diff{{DiffInsert, "test"}},
	}
	assert.Equal(t, "@@ -0,0 +1,4 @@\n+test\n", p.String())
}

func TestPatchStringSingleLineLength(t *testing.T) {
	p := Patch{
		Start1:  4,
		Start2:  4,
		Length1: 1,
		Length2: 1,
		Diffs:   []Diff{{DiffDelete, "a"}, {DiffInsert, "b"}},
	}
	assert.Equal(t, "@@ -5 +5 @@\n-a\n+b\n", p.String())
}

func TestPatchMakeFromTextPair(t *testing.T) {
	dmp := New()
	patches := dmp.PatchMake("The quick brown fox jumps over the lazy dog.", "The quick brown fox walks over the lazy dog.")
	if assert.Len(t, patches, 1) {
		text, ok := dmp.PatchApply(patches, "The quick brown fox jumps over the lazy dog.")
		assert.True(t, ok[0])
		assert.Equal(t, "The quick brown fox walks over the lazy dog.", text)
	}
}

func TestPatchMakeFromDiffsOnly(t *testing.T) {
	dmp := New()
	diffs := dmp.DiffMain("abc", "abXc", false)
	fromDiffs := dmp.PatchMake(diffs)
	fromPair := dmp.PatchMake("abc", "abXc")
	assert.Equal(t, dmp.PatchToText(fromPair), dmp.PatchToText(fromDiffs))
}

func TestPatchMakeFromText1AndDiffs(t *testing.T) {
	dmp := New()
	diffs := dmp.DiffMain("abc", "abXc", false)
	patches := dmp.PatchMake("abc", diffs)
	text, ok := dmp.PatchApply(patches, "abc")
	assert.True(t, ok[0])
	assert.Equal(t, "abXc", text)
}

func TestPatchToTextFromTextRoundtrip(t *testing.T) {
	dmp := New()
	patches := dmp.PatchMake("The quick brown fox jumps over the lazy dog.", "That quick brown fox jumped over a lazy dog.")
	textForm := dmp.PatchToText(patches)
	parsed, err := dmp.PatchFromText(textForm)
	assert.NoError(t, err)
	assert.Equal(t, patches, parsed)
}

func TestPatchFromTextEmpty(t *testing.T) {
	dmp := New()
	patches, err := dmp.PatchFromText("")
	assert.NoError(t, err)
	assert.Empty(t, patches)
}

func TestPatchFromTextMalformedHeader(t *testing.T) {
	dmp := New()
	_, err := dmp.PatchFromText("not a header\n")
	assert.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestPatchFromTextUnrecognizedLinePrefix(t *testing.T) {
	dmp := New()
	_, err := dmp.PatchFromText("@@ -1,3 +1,3 @@\n~oops\n")
	assert.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestPatchAddPaddingOnEmptySentinelExample(t *testing.T) {
	dmp := New()
	patches := dmp.PatchMake("", "test")
	dmp.patchAddPadding(patches)
	assert.Equal(t, "@@ -1,8 +1,12 @@\n \n+test\n \n", dmp.PatchToText(patches))
}

func TestPatchApplyWithDrift(t *testing.T) {
	dmp := New()
	patches := dmp.PatchMake("The quick brown fox jumps over the lazy dog.", "The quick brown fox walks over the lazy dog.")

	// Same text but with 32 extra characters prepended/appended: MatchMain
	// should still relocate the hunk via its surrounding context.
	drifted := "Big changes are coming! " + "The quick brown fox jumps over the lazy dog." + " Aren't you excited?"
	got, ok := dmp.PatchApply(patches, drifted)
	assert.True(t, ok[0])
	assert.Contains(t, got, "The quick brown fox walks over the lazy dog.")
}

func TestPatchApplyFailsOnUnrelatedText(t *testing.T) {
	dmp := New()
	patches := dmp.PatchMake("The quick brown fox jumps over the lazy dog.", "The quick brown fox walks over the lazy dog.")

	got, ok := dmp.PatchApply(patches, "Totally unrelated content with no overlap whatsoever here at all.")
	assert.False(t, ok[0])
	assert.Equal(t, "Totally unrelated content with no overlap whatsoever here at all.", got)
}

func TestPatchSplitMaxSplitsOversizedPatch(t *testing.T) {
	dmp := New()
	var long string
	for i := 0; i < 200; i++ {
		long += "0123456789"
	}
	text2 := long[:100] + "X" + long[100:]
	patches := dmp.PatchMake(long, text2)
	for _, p := range patches {
		assert.LessOrEqual(t, p.Length1, dmp.MatchMaxBits)
	}
	got, ok := dmp.PatchApply(patches, long)
	assert.True(t, ok[0])
	assert.Equal(t, text2, got)
}

func TestPatchDeepCopyIsIndependent(t *testing.T) {
	dmp := New()
	patches := dmp.PatchMake("abc", "abXc")
	cp := dmp.PatchDeepCopy(patches)
	cp[0].Diffs[0].Text = "mutated"
	assert.NotEqual(t, patches[0].Diffs[0].Text, cp[0].Diffs[0].Text)
}

func TestParsePatchRangeDefaultsLengthToOne(t *testing.T) {
	start, length, err := parsePatchRange("5")
	assert.NoError(t, err)
	assert.Equal(t, 4, start)
	assert.Equal(t, 1, length)
}

func TestParsePatchRangeZeroLength(t *testing.T) {
	start, length, err := parsePatchRange("3,0")
	assert.NoError(t, err)
	assert.Equal(t, 3, start)
	assert.Equal(t, 0, length)
}

func TestParsePatchRangeInvalidPosition(t *testing.T) {
	_, _, err := parsePatchRange("x,4")
	assert.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
