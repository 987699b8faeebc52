// Package search holds what the alpha-beta and minimax solvers share: the
// position interface they consume, their configuration, and their results.
package search

import (
	"errors"
	"fmt"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
)

var (
	ErrInvalidDepth       = errors.New("search depth must not be negative")
	ErrInvalidPerspective = errors.New("search perspective must be white or black")
	ErrNoMoveAvailable    = errors.New("no move available")
)

// Position is a mutable game state the search walks with Apply and Undo.
// Every Apply must be matched by exactly one Undo before control returns to
// the caller.
type Position interface {
	eval.Position
	LegalMoves() []board.Move
	Apply(m board.Move)
	Undo()
	IsGameOver() bool
}

// WithMove applies m, runs fn, and takes m back, even if fn panics.
func WithMove(pos Position, m board.Move, fn func()) {
	pos.Apply(m)
	defer pos.Undo()
	fn()
}

// Config is the immutable configuration of one decision.
type Config struct {
	// Depth is the number of plies to search.
	Depth       int
	Perspective board.Color
	Evaluator   eval.Kind
}

func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, c.Depth)
	}
	if c.Perspective != board.White && c.Perspective != board.Black {
		return fmt.Errorf("%w: %v", ErrInvalidPerspective, c.Perspective)
	}
	return nil
}

// Stats are diagnostic counters for one decision.
type Stats struct {
	// Nodes counts calls to the recursive max/min procedures.
	Nodes int
	// LeafEvals counts static evaluations at cutoff nodes.
	LeafEvals int
	// OrderingEvals counts the evaluations done to order moves.
	OrderingEvals int
}

func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.LeafEvals += o.LeafEvals
	s.OrderingEvals += o.OrderingEvals
}

// Result is the outcome of one decision. Move is board.NoMove when the root
// is a cutoff node or no move improved on the initial window.
type Result struct {
	Value eval.Score
	Move  board.Move
	Stats Stats
}
