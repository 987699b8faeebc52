package eval

import "github.com/domino14/chessai/board"

// DrawPenalty discourages steering into a repetition or stalemate while the
// side that moved could still win.
const DrawPenalty = Score(-200)

var MichniewskiWeights = PieceWeights{
	board.Pawn:   100,
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   20000,
}

// WeightedEvaluator implements Michniewski's simplified evaluation function.
// https://www.chessprogramming.org/Simplified_Evaluation_Function
type WeightedEvaluator struct {
	perspective board.Color
}

func (e *WeightedEvaluator) Kind() Kind               { return Weighted }
func (e *WeightedEvaluator) Perspective() board.Color { return e.perspective }

// Evaluate adds material, piece-square bonuses and terminal adjustments.
// Terminal adjustments are relative to the side that just moved, not the
// side to move.
func (e *WeightedEvaluator) Evaluate(pos Position) Score {
	var score Score
	mover := pos.SideToMove().Other()

	if !pos.HasInsufficientMaterial(mover) {
		if pos.IsRepetition(3) || pos.IsStalemate() {
			score += DrawPenalty
		}
	}
	if pos.IsCheckmate() {
		if mover == e.perspective {
			score += PosInf
		} else {
			score += NegInf
		}
	}
	score += materialDiff(pos, e.perspective, &MichniewskiWeights)
	score += positionalScore(pos, e.perspective)
	return score
}

type occupancy struct {
	pieces [board.NumSquares]board.Piece
	filled [board.NumSquares]bool
}

func scan(pos Position) *occupancy {
	o := &occupancy{}
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		o.pieces[sq], o.filled[sq] = pos.PieceAt(sq)
	}
	return o
}

// endgame decides the game phase. Every piece that is neither a queen nor
// a king counts toward a side's "minor" total, pawns and rooks included.
func (o *occupancy) endgame() bool {
	var queens, minors [board.Black + 1]int
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		if !o.filled[sq] {
			continue
		}
		p := o.pieces[sq]
		switch p.Kind {
		case board.Queen:
			queens[p.Color]++
		case board.King:
		default:
			minors[p.Color]++
		}
	}
	whiteQueen, blackQueen := queens[board.White] > 0, queens[board.Black] > 0
	switch {
	case !whiteQueen && !blackQueen:
		return true
	case whiteQueen && !blackQueen && minors[board.White] <= 1:
		return true
	case !whiteQueen && blackQueen && minors[board.Black] <= 1:
		return true
	}
	return minors[board.White] <= 1 && minors[board.Black] <= 1
}

// IsEndgame reports whether pos is in the endgame phase, which switches the
// king to its endgame table.
func IsEndgame(pos Position) bool {
	return scan(pos).endgame()
}

// positionalScore is the perspective side's piece-square total minus the
// opponent's.
func positionalScore(pos Position, perspective board.Color) Score {
	o := scan(pos)
	endgame := o.endgame()
	var totals [board.Black + 1]Score
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		if !o.filled[sq] {
			continue
		}
		p := o.pieces[sq]
		totals[p.Color] += squareValue(p, sq, endgame)
	}
	return totals[perspective] - totals[perspective.Other()]
}
