package diffmatchpatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchAlphabet(t *testing.T) {
	got := New().MatchAlphabet([]rune("abc"))
	assert.Equal(t, map[rune]int{'a': 4, 'b': 2, 'c': 1}, got)

	got = New().MatchAlphabet([]rune("abcaba"))
	assert.Equal(t, map[rune]int{'a': 37, 'b': 18, 'c': 8}, got)
}

func TestMatchBitapExact(t *testing.T) {
	dmp := New()
	dmp.MatchDistance = 100
	dmp.MatchThreshold = 0.5

	got := dmp.MatchBitap([]rune("abcdefghijk"), []rune("fgh"), 5)
	assert.Equal(t, 5, got)
}

func TestMatchBitapFuzzy(t *testing.T) {
	dmp := New()
	dmp.MatchDistance = 100
	dmp.MatchThreshold = 0.5

	// "fgh" sits at position 5; searching near 6 still finds it there.
	got := dmp.MatchBitap([]rune("abcdefghijk"), []rune("fgh"), 6)
	assert.Equal(t, 5, got)
}

func TestMatchBitapGivesUpBeyondThreshold(t *testing.T) {
	dmp := New()
	dmp.MatchDistance = 100
	dmp.MatchThreshold = 0.1

	got := dmp.MatchBitap([]rune("abcdefghijk"), []rune("xyz"), 0)
	assert.Equal(t, -1, got)
}

func TestMatchMainExactSubstring(t *testing.T) {
	dmp := New()
	assert.Equal(t, 5, dmp.MatchMainAt("abcdefghijk", "fgh", 0))
}

func TestMatchMainIdenticalStrings(t *testing.T) {
	dmp := New()
	assert.Equal(t, 0, dmp.MatchMain("abc", "abc"))
}

func TestMatchMainEmptyPatternClampsToBounds(t *testing.T) {
	dmp := New()
	assert.Equal(t, 3, dmp.MatchMainAt("abcdef", "", 3))
	assert.Equal(t, 6, dmp.MatchMainAt("abcdef", "", 100))
	assert.Equal(t, 0, dmp.MatchMainAt("abcdef", "", -5))
}

func TestMatchMainFuzzyNearLocation(t *testing.T) {
	dmp := New()
	dmp.MatchDistance = 1000
	dmp.MatchThreshold = 0.5

	got := dmp.MatchMainAt("I am the very model of a modern major general.", " that berry", 5)
	assert.Equal(t, 4, got)
}

func TestMatchMainNoMatch(t *testing.T) {
	dmp := New()
	dmp.MatchThreshold = 0.5
	dmp.MatchDistance = 100

	got := dmp.MatchMainAt("I am the very model of a modern major general.", "zzzzzzzzzzzzzzzzzzzzzzzzzz", 0)
	assert.Equal(t, -1, got)
}

func TestMatchBitapScore(t *testing.T) {
	dmp := New()
	dmp.MatchDistance = 100

	type testCase struct {
		e, x, loc, patternLen int
		want                  float64
	}
	for i, tc := range []testCase{
		{0, 0, 0, 4, 0},
		{0, 5, 5, 4, 0},
		{2, 0, 0, 4, 0.5},
		{0, 10, 0, 4, 0.1},
	} {
		got := dmp.matchBitapScore(tc.e, tc.x, tc.loc, tc.patternLen)
		assert.InDelta(t, tc.want, got, 1e-9, fmt.Sprintf("case #%d", i))
	}
}

func TestMatchBitapScoreZeroDistance(t *testing.T) {
	dmp := New()
	dmp.MatchDistance = 0

	assert.Equal(t, 0.0, dmp.matchBitapScore(0, 5, 5, 4))
	assert.Equal(t, 1.0, dmp.matchBitapScore(0, 6, 5, 4))
}
