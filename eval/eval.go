// Package eval contains the static evaluation functions used at the leaves
// of the search tree. Every evaluator scores a position from a fixed
// perspective chosen at construction, regardless of whose turn it is.
package eval

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/domino14/chessai/board"
)

// Score is a position value. Forced wins and losses are infinite.
type Score float64

var (
	PosInf = Score(math.Inf(1))
	NegInf = Score(math.Inf(-1))
)

var ErrUnknownKind = errors.New("unknown evaluator")

// Position is the read-only view of a position an evaluator needs.
type Position interface {
	PieceAt(sq board.Square) (board.Piece, bool)
	PieceCount(kind board.PieceKind, c board.Color) int
	SideToMove() board.Color
	IsCheckmate() bool
	IsStalemate() bool
	IsRepetition(count int) bool
	HasInsufficientMaterial(c board.Color) bool
}

// Kind selects an evaluation strategy.
type Kind uint8

const (
	// Simple counts material with textbook weights.
	Simple Kind = iota
	// Weighted is Michniewski's simplified evaluation function: material,
	// piece-square tables, and terminal adjustments.
	Weighted
	// Material is the baseline minimax evaluator. Its weights match Simple.
	Material
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Weighted:
		return "weighted"
	case Material:
		return "material"
	}
	return "unknown"
}

// ParseKind parses an evaluator name from configuration.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "simple":
		return Simple, nil
	case "weighted", "michniewski":
		return Weighted, nil
	case "material":
		return Material, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

type Evaluator interface {
	Evaluate(pos Position) Score
	Kind() Kind
	Perspective() board.Color
}

// New returns an evaluator of the given kind for the perspective player.
func New(kind Kind, perspective board.Color) Evaluator {
	switch kind {
	case Weighted:
		return &WeightedEvaluator{perspective: perspective}
	case Material:
		return &MaterialEvaluator{perspective: perspective}
	}
	return &SimpleEvaluator{perspective: perspective}
}

// PieceWeights maps a piece kind to its material value.
type PieceWeights [board.King + 1]Score

func materialScore(pos Position, c board.Color, weights *PieceWeights) Score {
	var total Score
	for _, k := range board.PieceKinds {
		total += weights[k] * Score(pos.PieceCount(k, c))
	}
	return total
}

// materialDiff is the perspective side's material minus the opponent's.
func materialDiff(pos Position, perspective board.Color, weights *PieceWeights) Score {
	return materialScore(pos, perspective, weights) - materialScore(pos, perspective.Other(), weights)
}
