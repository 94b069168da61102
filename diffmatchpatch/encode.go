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
)

// unreserved is the set of bytes the delta and patch text wire formats
// leave unescaped. It deliberately differs from net/url's query-escaping
// rules (which escape space as '+' and percent-encode several of these
// punctuation characters): the wire format here leaves a much larger set
// of ASCII punctuation literal, and leaves a literal space as a space, not
// '+'. Everything outside this set, including the tab and newline bytes
// that would otherwise be ambiguous with the delta/patch line structure,
// is percent-encoded.
//
// The four padding sentinels (U+0001..U+0004, see patchAddPadding) are
// included too: they are placeholder bytes by construction, never meant to
// collide with real content, so leaving them literal keeps patch text
// readable instead of spending four bytes of noise on each occurrence.
const unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~*'();/?=@&+$,# \x01\x02\x03\x04"

var unreservedTable [256]bool

func init() {
	for i := 0; i < len(unreserved); i++ {
		unreservedTable[unreserved[i]] = true
	}
}

// percentEncode percent-encodes the UTF-8 bytes of s that fall outside the
// unreserved set.
func percentEncode(s string) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		if !unreservedTable[s[i]] {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	const hex = "0123456789ABCDEF"
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedTable[c] {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
		}
	}
	return b.String()
}

// percentDecode reverses percentEncode. It accepts lowercase hex escapes
// (e.g. "%20") in addition to the uppercase form percentEncode produces,
// since decoders for this format have historically had to tolerate both.
// It returns a ParseError if it encounters a '%' not followed by two valid
// hex digits.
func percentDecode(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", &ParseError{Context: "percent-escape", Detail: "truncated escape at end of string"}
		}
		v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return "", &ParseError{Context: "percent-escape", Detail: "invalid hex digits in " + s[i:i+3]}
		}
		b.WriteByte(byte(v))
		i += 2
	}
	return b.String(), nil
}
