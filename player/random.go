package player

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/search"
)

// Random plays a uniformly random legal move.
type Random struct {
	color board.Color
}

func NewRandom(color board.Color) *Random {
	return &Random{color: color}
}

func (r *Random) Name() string       { return "random" }
func (r *Random) Color() board.Color { return r.color }

func (r *Random) ChooseMove(b *board.Board) (board.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return board.NoMove, search.ErrNoMoveAvailable
	}
	m := moves[frand.Intn(len(moves))]
	log.Info().Str("player", r.Name()).Str("move", b.SAN(m)).Msg("recommending move")
	return m, nil
}
