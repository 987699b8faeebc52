package alphabeta

import (
	"sort"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/search"
)

type scoredMove struct {
	move  board.Move
	score eval.Score
}

// orderMoves scores every move with a one-ply Simple evaluation and sorts
// them best first for the node's side: descending at max nodes, ascending at
// min nodes. Ties keep the order the board generated them in.
func (sr *searcher) orderMoves(moves []board.Move, maximizing bool) []board.Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i].move = m
		search.WithMove(sr.pos, m, func() {
			scored[i].score = sr.order.Evaluate(sr.pos)
		})
	}
	sr.stats.OrderingEvals += len(moves)

	if maximizing {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score > scored[j].score
		})
	} else {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score < scored[j].score
		})
	}
	for i := range scored {
		moves[i] = scored[i].move
	}
	return moves
}
