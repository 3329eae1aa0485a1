package token

import (
	"fmt"
	"strconv"
)

// Pos is a position in a source buffer. Offset is a 0 based byte offset,
// Line and Col are 1 based, Col counting runes.
type Pos struct {
	Offset int
	Line   int
	Col    int

	sample string
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

func (p Pos) String() string {
	sample := p.sample
	if sample == "" {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.Offset, p.Line, p.Col)
}

func sampleAt(d []byte, i int) string {
	return string(d[max(0, i-5):min(i+5, len(d))])
}
