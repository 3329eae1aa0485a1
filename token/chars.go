package token

import "unicode"

const (
	lineSep = '\u2028'
	paraSep = '\u2029'
	bom     = '\ufeff'
	nbsp    = '\u00a0'
)

// IsSpace reports whether r is JSON5 whitespace other than a line break.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', nbsp, bom:
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', lineSep, paraSep:
		return true
	}
	return false
}

func IsIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func IsIdentPart(r rune) bool {
	switch {
	case IsIdentStart(r), unicode.IsDigit(r):
		return true
	case r == '\u200c', r == '\u200d':
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc)
}

// IsIdent reports whether s can be written as an unquoted object key.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !IsIdentStart(r) {
			return false
		}
		if !IsIdentPart(r) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func hexVal(c byte) rune {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0')
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10
	default:
		return rune(c-'A') + 10
	}
}
