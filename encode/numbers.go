package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/json5-format/go-json5/value"
)

// Scalar returns the literal text of a non container value. With json
// set, numbers are written in plain decimal and NaN and infinities as
// null.
func Scalar(v *value.Value, json bool) string {
	switch v.Type {
	case value.BoolType:
		return strconv.FormatBool(v.Bool)
	case value.IntType:
		neg := v.Int < 0
		u := uint64(v.Int)
		if neg {
			u = -u
		}
		return formatInteger(u, neg, v.Format, json)
	case value.UintType:
		return formatInteger(v.Uint, false, v.Format, json)
	case value.FloatType:
		return formatFloat(v.Float, v.Format, json)
	}
	return "null"
}

func formatInteger(u uint64, neg bool, nf value.NumberFormat, json bool) string {
	var s string
	if nf.Hex && !json {
		s = fmt.Sprintf("0x%0*X", hexWidth(u), u)
	} else {
		s = strconv.FormatUint(u, 10)
	}
	switch {
	case neg:
		return "-" + s
	case nf.Plus && !json:
		return "+" + s
	}
	return s
}

func hexWidth(u uint64) int {
	switch {
	case u <= 0xff:
		return 2
	case u <= 0xffff:
		return 4
	case u <= 0xffffffff:
		return 8
	default:
		return 16
	}
}

func formatFloat(f float64, nf value.NumberFormat, json bool) string {
	if json {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "null"
		}
		return naturalFloat(f)
	}
	var s string
	switch {
	case math.IsNaN(f):
		s = "NaN"
	case math.IsInf(f, 1):
		s = "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case nf.Scientific && nf.LeadingPoint:
		s = pointFirstScientific(f, nf.Precision)
	case nf.Scientific:
		mant, exp, _ := strings.Cut(fixedFloat(f, 'e', nf.Precision), "e")
		if nf.TrailingPoint && !strings.Contains(mant, ".") {
			mant += "."
		}
		s = mant + "e" + trimExponent(exp)
	case nf.Precision > 0:
		s = fixedFloat(f, 'f', nf.Precision)
		if nf.LeadingPoint {
			s = dropLeadingZero(s)
		}
	case nf.TrailingPoint:
		s = strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += "."
		}
	default:
		s = naturalFloat(f)
		if nf.LeadingPoint {
			s = dropLeadingZero(s)
		}
	}
	if nf.Plus && !math.Signbit(f) {
		return "+" + s
	}
	return s
}

// fixedFloat formats f with prec digits after the point, or with as many
// digits as needed when prec is 0.
func fixedFloat(f float64, verb byte, prec int) string {
	if prec > 0 {
		return strconv.FormatFloat(f, verb, prec, 64)
	}
	return strconv.FormatFloat(f, verb, -1, 64)
}

// pointFirstScientific writes f as a mantissa with no integer part, such
// as .5e1, keeping prec significant digits.
func pointFirstScientific(f float64, prec int) string {
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', prec-1, 64), "e")
	sign := ""
	if strings.HasPrefix(mant, "-") {
		sign, mant = "-", mant[1:]
	}
	n, _ := strconv.Atoi(exp)
	if f != 0 {
		n++
	}
	return sign + "." + strings.Replace(mant, ".", "", 1) + "e" + strconv.Itoa(n)
}

// naturalFloat writes f in the shortest form which reads back as a
// float.
func naturalFloat(f float64) string {
	var s string
	if a := math.Abs(f); a != 0 && (a < 1e-6 || a >= 1e21) {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		s = mant + "e" + trimExponent(exp)
	} else {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func trimExponent(exp string) string {
	sign := ""
	switch {
	case strings.HasPrefix(exp, "-"):
		sign = "-"
		exp = exp[1:]
	case strings.HasPrefix(exp, "+"):
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		return "0"
	}
	return sign + exp
}

func dropLeadingZero(s string) string {
	switch {
	case strings.HasPrefix(s, "0."):
		return s[1:]
	case strings.HasPrefix(s, "-0."):
		return "-" + s[2:]
	}
	return s
}
