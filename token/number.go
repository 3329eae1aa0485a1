package token

import (
	"errors"
	"math"
	"strconv"
)

type NumberKind int

const (
	IntNumber NumberKind = iota
	UintNumber
	FloatNumber
)

// Number is a scanned numeric literal and the flags needed to write it
// back the way it was written.
type Number struct {
	Kind  NumberKind
	Int   int64
	Uint  uint64
	Float float64

	Plus          bool
	Hex           bool
	LeadingPoint  bool
	TrailingPoint bool
	Scientific    bool
	Precision     int
}

// ScanNumber consumes a number: decimal, hexadecimal, Infinity or NaN,
// each with an optional sign.
func (s *Scanner) ScanNumber() (*Number, error) {
	start := s.Pos()
	d := s.d
	j := s.i
	n := &Number{}
	neg := false
	if j < len(d) {
		switch d[j] {
		case '+':
			n.Plus = true
			j++
		case '-':
			neg = true
			j++
		}
	}
	switch {
	case s.wordAt(j, "Infinity"):
		n.Kind = FloatNumber
		n.Float = math.Inf(1)
		if neg {
			n.Float = math.Inf(-1)
		}
		s.skipTo(j + len("Infinity"))
		return n, nil
	case s.wordAt(j, "NaN"):
		n.Kind = FloatNumber
		n.Float = math.NaN()
		s.skipTo(j + len("NaN"))
		return n, nil
	case j+1 < len(d) && d[j] == '0' && (d[j+1] == 'x' || d[j+1] == 'X'):
		return n, s.hexNumber(n, start, j+2, neg)
	}
	k := j
	for k < len(d) && isDigit(d[k]) {
		k++
	}
	intDigits := k - j
	point := false
	fracDigits := 0
	if k < len(d) && d[k] == '.' {
		point = true
		k++
		f := k
		for k < len(d) && isDigit(d[k]) {
			k++
		}
		fracDigits = k - f
	}
	if intDigits+fracDigits == 0 {
		return nil, s.ErrorfAt(start, ErrNumber, "no digits")
	}
	if k < len(d) && (d[k] == 'e' || d[k] == 'E') {
		m := k + 1
		if m < len(d) && (d[m] == '+' || d[m] == '-') {
			m++
		}
		e := m
		for m < len(d) && isDigit(d[m]) {
			m++
		}
		if m == e {
			return nil, s.ErrorfAt(start, ErrNumber, "missing exponent digits")
		}
		n.Scientific = true
		k = m
	}
	text := string(d[s.i:k])
	if point || n.Scientific {
		n.Kind = FloatNumber
		n.LeadingPoint = point && intDigits == 0
		n.TrailingPoint = point && fracDigits == 0
		n.Precision = fracDigits
		f, err := strconv.ParseFloat(floatText(text, n), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, s.ErrorfAt(start, ErrNumber, "%s", text)
		}
		n.Float = f
		s.skipTo(k)
		return n, nil
	}
	if neg {
		if intDigits > 19 {
			return nil, s.ErrorfAt(start, ErrNumber, "%s overflows", text)
		}
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, s.ErrorfAt(start, ErrNumber, "%s overflows", text)
		}
		n.Int = i
		s.skipTo(k)
		return n, nil
	}
	if intDigits > 20 {
		return nil, s.ErrorfAt(start, ErrNumber, "%s overflows", text)
	}
	u, err := strconv.ParseUint(string(d[j:k]), 10, 64)
	if err != nil {
		return nil, s.ErrorfAt(start, ErrNumber, "%s overflows", text)
	}
	n.setUnsigned(u)
	s.skipTo(k)
	return n, nil
}

func (s *Scanner) hexNumber(n *Number, start Pos, j int, neg bool) error {
	d := s.d
	k := j
	for k < len(d) && isHex(d[k]) {
		k++
	}
	switch {
	case k == j:
		return s.ErrorfAt(start, ErrNumber, "missing hex digits")
	case k-j > 16:
		return s.ErrorfAt(start, ErrNumber, "more than 16 hex digits")
	}
	u, err := strconv.ParseUint(string(d[j:k]), 16, 64)
	if err != nil {
		return s.ErrorfAt(start, ErrNumber, "%s", d[s.i:k])
	}
	n.Hex = true
	if neg {
		if u > 1<<63 {
			return s.ErrorfAt(start, ErrNumber, "%s overflows", d[s.i:k])
		}
		n.Kind = IntNumber
		n.Int = -int64(u)
	} else {
		n.setUnsigned(u)
	}
	s.skipTo(k)
	return nil
}

func (n *Number) setUnsigned(u uint64) {
	if u <= math.MaxInt64 {
		n.Kind = IntNumber
		n.Int = int64(u)
		return
	}
	n.Kind = UintNumber
	n.Uint = u
}

// floatText fills in the digits a bare leading or trailing point omits.
func floatText(text string, n *Number) string {
	if !n.LeadingPoint && !n.TrailingPoint {
		return text
	}
	b := make([]byte, 0, len(text)+2)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '.' && n.LeadingPoint:
			b = append(b, '0', '.')
		case c == '.':
			b = append(b, '.', '0')
		default:
			b = append(b, c)
		}
	}
	return string(b)
}

func (s *Scanner) wordAt(j int, w string) bool {
	if len(s.d)-j < len(w) || string(s.d[j:j+len(w)]) != w {
		return false
	}
	if k := j + len(w); k < len(s.d) && s.d[k] < 0x80 && IsIdentPart(rune(s.d[k])) {
		return false
	}
	return true
}

func (s *Scanner) skipTo(k int) {
	s.col += k - s.i
	s.i = k
}
