package eval

import "github.com/domino14/chessai/board"

var SimpleWeights = PieceWeights{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   200,
}

// MaterialWeights is kept apart from SimpleWeights so the minimax baseline
// can be tuned without touching the alpha-beta evaluator.
var MaterialWeights = PieceWeights{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   200,
}

// SimpleEvaluator scores material only.
type SimpleEvaluator struct {
	perspective board.Color
}

func (e *SimpleEvaluator) Evaluate(pos Position) Score {
	return materialDiff(pos, e.perspective, &SimpleWeights)
}

func (e *SimpleEvaluator) Kind() Kind               { return Simple }
func (e *SimpleEvaluator) Perspective() board.Color { return e.perspective }

// MaterialEvaluator is the utility function of the plain minimax baseline.
type MaterialEvaluator struct {
	perspective board.Color
}

func (e *MaterialEvaluator) Evaluate(pos Position) Score {
	return materialDiff(pos, e.perspective, &MaterialWeights)
}

func (e *MaterialEvaluator) Kind() Kind               { return Material }
func (e *MaterialEvaluator) Perspective() board.Color { return e.perspective }
