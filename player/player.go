// Package player provides the move providers that can sit on either side of
// a game: a human at the keyboard, a random mover, and the search engines.
package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
)

var (
	ErrUnknownPlayer = errors.New("unknown player")
	ErrBadDepth      = errors.New("bad depth for player")
	ErrQuit          = errors.New("player quit")
)

// Player chooses a move for the side to move. The board must be left as it
// was found.
type Player interface {
	Name() string
	Color() board.Color
	ChooseMove(b *board.Board) (board.Move, error)
}

type Kind string

const (
	HumanKind     Kind = "human"
	RandomKind    Kind = "random"
	MinimaxKind   Kind = "minimax"
	AlphaBetaKind Kind = "alphabeta"
	IterativeKind Kind = "iterative"
)

// NoDepth is the depth given for players that do not search.
const NoDepth = -1

var Kinds = []Kind{HumanKind, RandomKind, MinimaxKind, AlphaBetaKind, IterativeKind}

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case HumanKind:
		return HumanKind, nil
	case RandomKind:
		return RandomKind, nil
	case MinimaxKind:
		return MinimaxKind, nil
	case AlphaBetaKind, "alpha-beta", "ab":
		return AlphaBetaKind, nil
	case IterativeKind, "iterativedeepening", "id":
		return IterativeKind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
}

// New builds a player of the given kind. Human and random players take
// NoDepth; the searching players need a depth of at least 1.
func New(kind Kind, depth int, color board.Color, evaluator eval.Kind) (Player, error) {
	switch kind {
	case HumanKind, RandomKind:
		if depth != NoDepth {
			return nil, fmt.Errorf("%w: %s takes depth %d, got %d", ErrBadDepth, kind, NoDepth, depth)
		}
	case MinimaxKind, AlphaBetaKind, IterativeKind:
		if depth < 1 {
			return nil, fmt.Errorf("%w: %s needs a depth greater than 0, got %d", ErrBadDepth, kind, depth)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, kind)
	}

	var s *Searcher
	var err error
	switch kind {
	case HumanKind:
		return NewHuman(color, nil, nil), nil
	case RandomKind:
		return NewRandom(color), nil
	case MinimaxKind:
		s, err = NewMinimax(depth, color)
	case AlphaBetaKind:
		s, err = NewAlphaBeta(depth, color, evaluator)
	default:
		s, err = NewIterativeDeepening(depth, color, evaluator)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
