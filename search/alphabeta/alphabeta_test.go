package alphabeta

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/search"
	"github.com/domino14/chessai/search/minimax"
)

const (
	mateInOne    = "6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1"
	hangingQueen = "6k1/5ppp/8/3q4/8/8/5PPP/3R2K1 w - - 0 1"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func mustBoard(t *testing.T, fen string) *board.Board {
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func mustSolver(t *testing.T, depth int, c board.Color, k eval.Kind) *Solver {
	s, err := NewSolver(search.Config{Depth: depth, Perspective: c, Evaluator: k})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDepthZeroReturnsEvaluation(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, hangingQueen)
	for _, k := range []eval.Kind{eval.Simple, eval.Weighted} {
		s := mustSolver(t, 0, board.White, k)
		r, err := s.Solve(b)
		is.NoErr(err)
		is.True(r.Move.IsNone())
		is.Equal(r.Value, eval.New(k, board.White).Evaluate(b))
		is.Equal(r.Stats.Nodes, 1)
		is.Equal(r.Stats.LeafEvals, 1)
		is.Equal(r.Stats.OrderingEvals, 0)
	}
}

func TestNegativeDepth(t *testing.T) {
	is := is.New(t)
	_, err := NewSolver(search.Config{Depth: -1, Perspective: board.White})
	is.True(errors.Is(err, search.ErrInvalidDepth))
}

func TestMatchesMinimax(t *testing.T) {
	cases := []struct {
		fen      string
		maxDepth int
	}{
		{board.StartingFEN, 2},
		{"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4", 2},
		{hangingQueen, 3},
		{mateInOne, 3},
		{"8/8/4k3/3p4/3P4/4K3/8/8 b - - 0 1", 4},
	}
	for _, c := range cases {
		for depth := 1; depth <= c.maxDepth; depth++ {
			for _, color := range []board.Color{board.White, board.Black} {
				b := mustBoard(t, c.fen)
				ab := mustSolver(t, depth, color, eval.Simple)
				mm, err := minimax.NewSolver(search.Config{Depth: depth, Perspective: color})
				assert.NoError(t, err)

				abr, err := ab.Solve(b)
				assert.NoError(t, err)
				mmr, err := mm.Solve(b)
				assert.NoError(t, err)

				assert.Equal(t, mmr.Value, abr.Value, "%s depth %d %v", c.fen, depth, color)
				assert.LessOrEqual(t, abr.Stats.LeafEvals, mmr.Stats.LeafEvals)
			}
		}
	}
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, hangingQueen)
	m, err := b.ParseMove("Kf1")
	is.NoErr(err)
	b.Apply(m)
	fen := b.FEN()
	moves := b.Moves()

	s := mustSolver(t, 3, board.Black, eval.Weighted)
	_, err = s.Solve(b)
	is.NoErr(err)
	is.Equal(b.FEN(), fen)
	is.Equal(b.Moves(), moves)
	is.Equal(b.Plies(), 1)
	is.Equal(s.Config().Depth, 3)
}

func TestStartingPositionDepthOne(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	s := mustSolver(t, 1, board.White, eval.Simple)
	r, err := s.Solve(b)
	is.NoErr(err)
	is.True(b.IsLegal(r.Move))
	is.Equal(r.Value, eval.Score(0))
	// 1 root + 20 children.
	is.Equal(r.Stats.Nodes, 21)
	is.Equal(r.Stats.OrderingEvals, 20)
}

func TestFindsMateInOne(t *testing.T) {
	is := is.New(t)
	for depth := 1; depth <= 3; depth++ {
		b := mustBoard(t, mateInOne)
		s := mustSolver(t, depth, board.White, eval.Weighted)
		r, err := s.Solve(b)
		is.NoErr(err)
		is.Equal(r.Move.String(), "d1d8")
		is.Equal(r.Value, eval.PosInf)
	}
}

func TestCapturesHangingQueen(t *testing.T) {
	is := is.New(t)
	for _, k := range []eval.Kind{eval.Simple, eval.Weighted} {
		b := mustBoard(t, hangingQueen)
		s := mustSolver(t, 2, board.White, k)
		r, err := s.Solve(b)
		is.NoErr(err)
		is.Equal(r.Move.String(), "d1d5")
	}
}

func TestOrderingPutsBestFirst(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, hangingQueen)
	s := mustSolver(t, 1, board.White, eval.Simple)
	sr := s.newSearcher(b)

	moves := sr.orderMoves(b.LegalMoves(), true)
	is.Equal(moves[0].String(), "d1d5")
	is.Equal(sr.stats.OrderingEvals, len(moves))

	// At a min node the opponent's best reply comes first.
	b = mustBoard(t, "6k1/5ppp/8/3q4/8/8/5PPP/3R2K1 b - - 0 1")
	sr = s.newSearcher(b)
	moves = sr.orderMoves(b.LegalMoves(), false)
	is.Equal(moves[0].String(), "d5d1")
}

func TestOrderingIsStable(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	s := mustSolver(t, 1, board.White, eval.Simple)
	sr := s.newSearcher(b)
	// No capture is possible, so every move scores the same.
	is.Equal(sr.orderMoves(b.LegalMoves(), true), b.LegalMoves())
	is.Equal(sr.orderMoves(b.LegalMoves(), false), b.LegalMoves())
}

func TestDeepen(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, hangingQueen)
	s := mustSolver(t, 3, board.White, eval.Simple)
	r, iterations, err := s.Deepen(b)
	is.NoErr(err)
	is.Equal(len(iterations), 4)
	is.True(iterations[0].Result.Move.IsNone())
	for i, it := range iterations {
		is.Equal(it.Depth, i)
	}

	direct, err := s.Solve(b)
	is.NoErr(err)
	is.Equal(r.Move, direct.Move)
	is.Equal(r.Value, direct.Value)
	is.Equal(r.Move.String(), "d1d5")

	var nodes int
	for _, it := range iterations {
		nodes += it.Result.Stats.Nodes
	}
	is.Equal(r.Stats.Nodes, nodes)
	is.Equal(b.FEN(), hangingQueen)
}
