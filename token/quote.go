package token

import (
	"unicode/utf8"
)

type QuoteFlags uint8

const (
	// EscapeUnicode writes every non ASCII rune as \uXXXX.
	EscapeUnicode QuoteFlags = 1 << iota
	// EscapeSlash writes '/' as \/.
	EscapeSlash
	// EscapeJSON restricts escapes to those JSON understands.
	EscapeJSON
)

const hexDigits = "0123456789abcdef"

// Quote returns s as a string literal delimited by q, which is '"' or '\''.
func Quote(s string, q byte, f QuoteFlags) string {
	d := make([]byte, 1, len(s)+2)
	d[0] = q
	for _, r := range s {
		switch r {
		case rune(q):
			d = append(d, '\\', q)
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '\v':
			if f&EscapeJSON != 0 {
				d = appendU(d, r)
			} else {
				d = append(d, '\\', 'v')
			}
		case '/':
			if f&EscapeSlash != 0 {
				d = append(d, '\\', '/')
			} else {
				d = append(d, '/')
			}
		case lineSep, paraSep:
			d = appendU(d, r)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				d = appendU(d, r)
			case r >= utf8.RuneSelf && f&EscapeUnicode != 0:
				if r > 0xffff {
					r -= 0x10000
					d = appendU(d, 0xd800+(r>>10)&0x3ff)
					d = appendU(d, 0xdc00+r&0x3ff)
				} else {
					d = appendU(d, r)
				}
			default:
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, q))
}

func appendU(d []byte, r rune) []byte {
	return append(d, '\\', 'u',
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf],
		hexDigits[r>>4&0xf], hexDigits[r&0xf])
}

// QuoteKey returns the key as written: bare when unquoted is requested
// and the key is an identifier, otherwise quoted with q.
func QuoteKey(k string, unquoted bool, q byte, f QuoteFlags) string {
	if unquoted && IsIdent(k) {
		return k
	}
	return Quote(k, q, f)
}
