package board

import (
	"fmt"
	"strings"
)

// Color is a side. The zero value is NoColor.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposing side.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// ParseColor accepts "white", "black", "w" or "b".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}

// PieceKind is the type of a piece, independent of its color. The ordering
// follows the usual pawn-to-king convention.
type PieceKind int8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceKinds lists every real piece kind.
var PieceKinds = []PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "none"
	}
	return kindNames[k]
}

// letter is the lowercase letter used for promotions in UCI notation.
func (k PieceKind) letter() string {
	switch k {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	}
	return ""
}

type Piece struct {
	Kind  PieceKind
	Color Color
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}
