package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		quote byte
	}{
		{name: "double", input: `"abc"`, want: "abc", quote: '"'},
		{name: "single", input: `'a"b'`, want: `a"b`, quote: '\''},
		{name: "escapes", input: `"\"\'\\\/\b\f\n\r\t\v\0"`, want: "\"'\\/\b\f\n\r\t\v\x00", quote: '"'},
		{name: "unicode", input: `"\u00e9\u4E2D"`, want: "\u00e9\u4e2d", quote: '"'},
		{name: "surrogates", input: `"\ud83d\ude00"`, want: "\U0001F600", quote: '"'},
		{name: "other escape", input: `"\a\q"`, want: "aq", quote: '"'},
		{name: "continuation", input: "'a\\\nb'", want: "ab", quote: '\''},
		{name: "continuation crlf", input: "'a\\\r\nb'", want: "ab", quote: '\''},
		{name: "separators", input: "'a\u2028b'", want: "a\u2028b", quote: '\''},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScanner([]byte(tc.input))
			got, q, err := s.ScanString()
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if q != tc.quote {
				t.Errorf("quote: got %c, want %c", q, tc.quote)
			}
			if !s.EOF() {
				t.Errorf("input not consumed")
			}
		})
	}
}

func TestScanStringErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{input: `"abc`, err: ErrUnterminatedString},
		{input: "'ab\ncd'", err: ErrUnterminatedString},
		{input: `"\u12"`, err: ErrBadEscape},
		{input: `"\u12`, err: ErrBadEscape},
		{input: `"\`, err: ErrUnterminatedString},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, _, err := NewScanner([]byte(tc.input)).ScanString()
			if !errors.Is(err, tc.err) {
				t.Errorf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestScanComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Comment
		rest  string
	}{
		{name: "line", input: "// c\nx", want: Comment{Lines: []string{" c"}}, rest: "x"},
		{name: "line at end", input: "//c", want: Comment{Lines: []string{"c"}}},
		{name: "block", input: "/* c1 */x", want: Comment{Block: true, Lines: []string{" c1 "}}, rest: "x"},
		{name: "multi", input: "/* a\r\n  b */", want: Comment{Block: true, Lines: []string{" a", "  b "}}},
		{name: "nested", input: "/* a /* b */ c */", want: Comment{Block: true, Lines: []string{" a /* b */ c "}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScanner([]byte(tc.input))
			got, err := s.ScanComment()
			if err != nil {
				t.Fatal(err)
			}
			got.Pos = Pos{}
			if diff := cmp.Diff(tc.want, *got, cmp.AllowUnexported(Pos{})); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if rest := tc.input[s.Offset():]; rest != tc.rest {
				t.Errorf("rest: got %q, want %q", rest, tc.rest)
			}
		})
	}
}

func TestUnterminatedComment(t *testing.T) {
	for _, input := range []string{"/* a", "/* a /* b */"} {
		_, err := NewScanner([]byte(input)).ScanComment()
		if !errors.Is(err, ErrUnterminatedComment) {
			t.Errorf("%q: expected ErrUnterminatedComment, got %v", input, err)
		}
	}
}

func TestLineTracking(t *testing.T) {
	s := NewScanner([]byte("a\r\n\tb\rc  d/* x\ny */\ne"))
	want := []Pos{
		{Offset: 0, Line: 1, Col: 1},
		{Offset: 4, Line: 2, Col: 2},
		{Offset: 6, Line: 3, Col: 1},
		{Offset: 9, Line: 3, Col: 4},
	}
	var got []Pos
	for _, r := range "abcd" {
		s.SkipSpace()
		p := s.Pos()
		p.sample = ""
		got = append(got, p)
		if s.Next() != r {
			t.Fatalf("expected %c", r)
		}
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Pos{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n := s.NewLines(); n != 2 {
		t.Errorf("expected 2 structural line breaks, got %d", n)
	}
	if _, err := s.ScanComment(); err != nil {
		t.Fatal(err)
	}
	s.SkipSpace()
	if p := s.Pos(); p.Line != 5 || p.Col != 1 {
		t.Errorf("after comment: got line %d col %d", p.Line, p.Col)
	}
	if n := s.NewLines(); n != 3 {
		t.Errorf("expected 3 structural line breaks, got %d", n)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		q     byte
		flags QuoteFlags
		want  string
	}{
		{input: `a"b'c`, q: '"', want: `"a\"b'c"`},
		{input: `a"b'c`, q: '\'', want: `'a"b\'c'`},
		{input: "tab\there\v", q: '"', want: `"tab\there\v"`},
		{input: "v\v", q: '"', flags: EscapeJSON, want: `"v\u000b"`},
		{input: "a/b", q: '"', flags: EscapeSlash, want: `"a\/b"`},
		{input: "\u00e9\U0001F600", q: '"', flags: EscapeUnicode, want: `"\u00e9\ud83d\ude00"`},
		{input: "é", q: '"', want: `"é"`},
		{input: "\x01 ", q: '"', want: `"\u0001 "`},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := Quote(tc.input, tc.q, tc.flags)
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
			s := NewScanner([]byte(got))
			back, _, err := s.ScanString()
			if err != nil {
				t.Fatal(err)
			}
			if back != tc.input {
				t.Errorf("round trip: got %q, want %q", back, tc.input)
			}
		})
	}
}

func TestIsIdent(t *testing.T) {
	for s, want := range map[string]bool{
		"a":       true,
		"$type":   true,
		"_x1":     true,
		"\u00e9t": true,
		"":        false,
		"1a":      false,
		"a-b":     false,
		"a b":     false,
		"key.x":   false,
	} {
		if got := IsIdent(s); got != want {
			t.Errorf("IsIdent(%q) = %v, want %v", s, got, want)
		}
	}
}
