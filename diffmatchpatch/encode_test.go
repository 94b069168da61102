package diffmatchpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentEncodeLeavesUnreservedLiteral(t *testing.T) {
	s := "ABCxyz019-_.!~*'();/?=@&+$,# "
	assert.Equal(t, s, percentEncode(s))
}

func TestPercentEncodeEscapesTabAndNewline(t *testing.T) {
	assert.Equal(t, "a%09b%0Ac", percentEncode("a\tb\nc"))
}

func TestPercentEncodeLeavesPaddingSentinelsLiteral(t *testing.T) {
	sentinels := "\x01\x02\x03\x04"
	assert.Equal(t, sentinels, percentEncode(sentinels))
}

func TestPercentEncodeDecodeRoundtrip(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		"a\tb\nc%d",
		"日本語 with 漢字",
		"\x01\x02\x03\x04 sentinel mix % and stuff",
	}
	for _, s := range cases {
		decoded, err := percentDecode(percentEncode(s))
		assert.NoError(t, err)
		assert.Equal(t, s, decoded)
	}
}

func TestPercentDecodeAcceptsLowercaseHex(t *testing.T) {
	got, err := percentDecode("a%0ab")
	assert.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestPercentDecodeTruncatedEscape(t *testing.T) {
	_, err := percentDecode("abc%0")
	assert.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestPercentDecodeInvalidHexDigits(t *testing.T) {
	_, err := percentDecode("abc%zz")
	assert.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
