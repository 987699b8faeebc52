package board

import (
	"fmt"
)

// A Square is an index into the 8x8 board. a1 is 0, b1 is 1, and h8 is 63.
type Square int8

const NumSquares = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square on the given 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int {
	return int(s) % 8
}

func (s Square) Rank() int {
	return int(s) / 8
}

// Light returns true for light squares. a1 is dark.
func (s Square) Light() bool {
	return (s.File()+s.Rank())%2 == 1
}

func (s Square) String() string {
	if s < 0 || s >= NumSquares {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(coords string) (Square, error) {
	if len(coords) != 2 {
		return 0, fmt.Errorf("bad square %q", coords)
	}
	file := int(coords[0]) - 'a'
	rank := int(coords[1]) - '1'
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("bad square %q", coords)
	}
	return NewSquare(file, rank), nil
}
