package eval

import "github.com/domino14/chessai/board"

// Piece-square tables from Tomasz Michniewski's Simplified Evaluation
// Function. They are written as a board diagram seen from White's side:
// the first row is rank 8, the last row is rank 1.
var (
	pawnDiagram = [64]Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightDiagram = [64]Score{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopDiagram = [64]Score{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookDiagram = [64]Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}
	queenDiagram = [64]Score{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingMiddlegameDiagram = [64]Score{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
	kingEndgameDiagram = [64]Score{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
)

// SquareTable holds one bonus per square, indexed by board.Square.
type SquareTable [board.NumSquares]Score

// colorTables are the square tables for one color. Non-king pieces have a
// single table; the king has one for each game phase.
type colorTables struct {
	pieces         [board.King + 1]SquareTable
	kingMiddlegame SquareTable
	kingEndgame    SquareTable
}

var tables [board.Black + 1]colorTables

func init() {
	diagrams := map[board.PieceKind]*[64]Score{
		board.Pawn:   &pawnDiagram,
		board.Knight: &knightDiagram,
		board.Bishop: &bishopDiagram,
		board.Rook:   &rookDiagram,
		board.Queen:  &queenDiagram,
	}
	for kind, d := range diagrams {
		tables[board.White].pieces[kind] = forWhite(d)
		tables[board.Black].pieces[kind] = forBlack(d)
	}
	tables[board.White].kingMiddlegame = forWhite(&kingMiddlegameDiagram)
	tables[board.Black].kingMiddlegame = forBlack(&kingMiddlegameDiagram)
	tables[board.White].kingEndgame = forWhite(&kingEndgameDiagram)
	tables[board.Black].kingEndgame = forBlack(&kingEndgameDiagram)
}

// forWhite turns a diagram into a square-indexed table. Diagram row 0 is
// rank 8.
func forWhite(d *[64]Score) SquareTable {
	var t SquareTable
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		t[sq] = d[(7-sq.Rank())*8+sq.File()]
	}
	return t
}

// forBlack mirrors the diagram vertically so that Black's home rank gets
// White's home-rank values.
func forBlack(d *[64]Score) SquareTable {
	var t SquareTable
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		t[sq] = d[sq.Rank()*8+sq.File()]
	}
	return t
}

// squareValue is the positional bonus for p standing on sq.
func squareValue(p board.Piece, sq board.Square, endgame bool) Score {
	t := &tables[p.Color]
	if p.Kind == board.King {
		if endgame {
			return t.kingEndgame[sq]
		}
		return t.kingMiddlegame[sq]
	}
	return t.pieces[p.Kind][sq]
}
