package board

// A Move is one legal transition. Moves are comparable values; the zero
// value is NoMove, which is never legal.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NoMove means "no move available".
var NoMove = Move{}

func (m Move) IsNone() bool {
	return m == NoMove
}

// String returns the move in UCI notation, e.g. e2e4 or e7e8q.
func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	return m.From.String() + m.To.String() + m.Promotion.letter()
}
