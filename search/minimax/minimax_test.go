package minimax

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/search"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func mustSolver(t *testing.T, depth int, c board.Color) *Solver {
	s, err := NewSolver(search.Config{Depth: depth, Perspective: c, Evaluator: eval.Weighted})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestUsesMaterialEvaluator(t *testing.T) {
	is := is.New(t)
	s := mustSolver(t, 2, board.White)
	is.Equal(s.Config().Evaluator, eval.Material)
}

func TestDepthZero(t *testing.T) {
	is := is.New(t)
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	is.NoErr(err)
	r, err := mustSolver(t, 0, board.White).Solve(b)
	is.NoErr(err)
	is.True(r.Move.IsNone())
	is.Equal(r.Value, eval.Score(9))
	is.Equal(r.Stats.Nodes, 0)
}

func TestNegativeDepth(t *testing.T) {
	is := is.New(t)
	_, err := NewSolver(search.Config{Depth: -2, Perspective: board.Black})
	is.True(errors.Is(err, search.ErrInvalidDepth))
}

func TestStartingPosition(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	r, err := mustSolver(t, 2, board.White).Solve(b)
	is.NoErr(err)
	// Nothing can be captured in two plies; the first move generated wins
	// the tie.
	is.Equal(r.Move, b.LegalMoves()[0])
	is.Equal(r.Value, eval.Score(0))
	// 20 replies to each of 20 moves, plus the 20 min nodes. The root is not
	// counted.
	is.Equal(r.Stats.Nodes, 20+400)
	is.Equal(r.Stats.LeafEvals, 400)
	is.Equal(b.Plies(), 0)
}

func TestCapturesHangingQueen(t *testing.T) {
	is := is.New(t)
	b, err := board.FromFEN("6k1/5ppp/8/3q4/8/8/5PPP/3R2K1 w - - 0 1")
	is.NoErr(err)
	r, err := mustSolver(t, 2, board.White).Solve(b)
	is.NoErr(err)
	is.Equal(r.Move.String(), "d1d5")
	is.Equal(r.Value, eval.Score(5))
}
