package token

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanNumber(t *testing.T) {
	tests := []struct {
		input string
		want  Number
		rest  string
	}{
		{input: "0", want: Number{}},
		{input: "123", want: Number{Int: 123}},
		{input: "-17,", want: Number{Int: -17}, rest: ","},
		{input: "+456", want: Number{Int: 456, Plus: true}},
		{input: "0x123F", want: Number{Int: 0x123f, Hex: true}},
		{input: "-0XfF", want: Number{Int: -255, Hex: true}},
		{input: "0xFFFFFFFFFFFFFFFF", want: Number{Kind: UintNumber, Uint: math.MaxUint64, Hex: true}},
		{input: "-0x8000000000000000", want: Number{Int: math.MinInt64, Hex: true}},
		{input: "18446744073709551615", want: Number{Kind: UintNumber, Uint: math.MaxUint64}},
		{input: "9223372036854775807", want: Number{Int: math.MaxInt64}},
		{input: "-9223372036854775808", want: Number{Int: math.MinInt64}},
		{input: ".8675309", want: Number{Kind: FloatNumber, Float: 0.8675309, LeadingPoint: true, Precision: 7}},
		{input: "8675309.", want: Number{Kind: FloatNumber, Float: 8675309, TrailingPoint: true}},
		{input: "1.50", want: Number{Kind: FloatNumber, Float: 1.5, Precision: 2}},
		{input: "-2.5e-3]", want: Number{Kind: FloatNumber, Float: -0.0025, Precision: 1, Scientific: true}, rest: "]"},
		{input: "5.e3", want: Number{Kind: FloatNumber, Float: 5000, TrailingPoint: true, Scientific: true}},
		{input: "1E+2", want: Number{Kind: FloatNumber, Float: 100, Scientific: true}},
		{input: "+Infinity", want: Number{Kind: FloatNumber, Float: math.Inf(1), Plus: true}},
		{input: "-Infinity", want: Number{Kind: FloatNumber, Float: math.Inf(-1)}},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			s := NewScanner([]byte(tc.input))
			got, err := s.ScanNumber()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, *got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if rest := tc.input[s.Offset():]; rest != tc.rest {
				t.Errorf("rest: got %q, want %q", rest, tc.rest)
			}
		})
	}
}

func TestScanNaN(t *testing.T) {
	s := NewScanner([]byte("-NaN"))
	n, err := s.ScanNumber()
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != FloatNumber || !math.IsNaN(n.Float) {
		t.Errorf("expected NaN, got %+v", n)
	}
}

func TestScanNumberErrors(t *testing.T) {
	tests := []string{
		"0x",
		"0x12345678901234567",
		"123456789012345678901",
		"-12345678901234567890",
		"99999999999999999999",
		"-9223372036854775809",
		".",
		"-",
		"1e",
		"1e+",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := NewScanner([]byte(input)).ScanNumber()
			if !errors.Is(err, ErrNumber) {
				t.Fatalf("expected ErrNumber, got %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %T", err)
			}
			if pe.Pos.Offset != 0 || pe.Pos.Line != 1 || pe.Pos.Col != 1 {
				t.Errorf("bad position %+v", pe.Pos)
			}
		})
	}
}
