package diffmatchpatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffCommonPrefix(t *testing.T) {
	type testCase struct {
		text1, text2 string
		want         int
	}
	for i, tc := range []testCase{
		{"abc", "xyz", 0},
		{"1234abcdef", "1234xyz", 4},
		{"1234", "1234xyz", 4},
		{"", "abc", 0},
	} {
		got := diffCommonPrefix([]rune(tc.text1), []rune(tc.text2))
		assert.Equal(t, tc.want, got, fmt.Sprintf("case #%d", i))
	}
}

func TestDiffCommonSuffix(t *testing.T) {
	type testCase struct {
		text1, text2 string
		want         int
	}
	for i, tc := range []testCase{
		{"abc", "xyz", 0},
		{"abcdef1234", "xyz1234", 4},
		{"1234", "xyz1234", 4},
		{"abc", "", 0},
	} {
		got := diffCommonSuffix([]rune(tc.text1), []rune(tc.text2))
		assert.Equal(t, tc.want, got, fmt.Sprintf("case #%d", i))
	}
}

func TestDiffCommonOverlap(t *testing.T) {
	type testCase struct {
		text1, text2 string
		want         int
	}
	for i, tc := range []testCase{
		{"", "abcd", 0},
		{"abcd", "", 0},
		{"abc", "abcd", 3},
		{"123456", "abcd", 0},
		{"fi", "ifi", 1},
	} {
		got := diffCommonOverlap([]rune(tc.text1), []rune(tc.text2))
		assert.Equal(t, tc.want, got, fmt.Sprintf("case #%d", i))
	}
	// commonOverlap(x[0..k], x) == k
	x := []rune("abcdefghij")
	for k := 0; k <= len(x); k++ {
		got := diffCommonOverlap(x[:k], x)
		assert.Equal(t, k, got, fmt.Sprintf("prefix length %d", k))
	}
}

func TestDiffHalfMatchDisabledWithoutTimeout(t *testing.T) {
	dmp := New()
	dmp.DiffTimeout = 0
	assert.Nil(t, dmp.diffHalfMatch([]rune("1234567890"), []rune("abcdef1234567890abcdef")))
}

func TestDiffHalfMatchTooShort(t *testing.T) {
	dmp := New()
	// |shorter| < 4 is pointless.
	assert.Nil(t, dmp.diffHalfMatch([]rune("12345"), []rune("23")))
	// |longer| < 10 is pointless.
	assert.Nil(t, dmp.diffHalfMatch([]rune("12"), []rune("123")))
}

func TestDiffHalfMatchFirstQuarterSeed(t *testing.T) {
	dmp := New()
	hm := dmp.diffHalfMatch([]rune("1234567890"), []rune("a345678z"))
	if assert.NotNil(t, hm) {
		assert.Equal(t, "12", hm.text1Prefix)
		assert.Equal(t, "90", hm.text1Suffix)
		assert.Equal(t, "a", hm.text2Prefix)
		assert.Equal(t, "z", hm.text2Suffix)
		assert.Equal(t, "345678", hm.midCommon)
	}
}

func TestDiffHalfMatchMultipleMatches(t *testing.T) {
	dmp := New()
	hm := dmp.diffHalfMatch([]rune("121231234123451234123121"), []rune("a1234123451234z"))
	if assert.NotNil(t, hm) {
		assert.Equal(t, "12123", hm.text1Prefix)
		assert.Equal(t, "123121", hm.text1Suffix)
		assert.Equal(t, "a", hm.text2Prefix)
		assert.Equal(t, "z", hm.text2Suffix)
		assert.Equal(t, "1234123451234", hm.midCommon)
	}
}
