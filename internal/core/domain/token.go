package domain

import (
	"strconv"
	"strings"
)

// tokenDigits is the number of hex digits between the brackets of a token.
const tokenDigits = 8

// Token is a checksum token found in a file name.
type Token struct {
	// Value is the checksum the token encodes.
	Value Checksum
	// Start is the byte offset of the opening bracket.
	Start int
	// End is the byte offset just past the closing bracket.
	End int
}

// ExtractToken returns the rightmost well-formed token in name.
//
// The scan pairs the last ']' with the nearest '[' before it. If the text
// between them is not exactly 8 hex digits, the search continues in the text
// before that '['. Malformed candidates are ignored rather than reported.
func ExtractToken(name string) (Token, bool) {
	sub := name
	for {
		r := strings.LastIndexByte(sub, ']')
		if r < 0 {
			return Token{}, false
		}
		l := strings.LastIndexByte(sub[:r], '[')
		if l < 0 {
			return Token{}, false
		}

		if candidate := sub[l+1 : r]; isTokenHex(candidate) {
			v, err := strconv.ParseUint(candidate, 16, 32)
			if err == nil {
				return Token{Value: Checksum(v), Start: l, End: r + 1}, true
			}
		}
		sub = sub[:l]
	}
}

func isTokenHex(s string) bool {
	if len(s) != tokenDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
