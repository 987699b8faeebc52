package player

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/search"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

type scriptedReader struct {
	lines  []string
	prompt string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	l := r.lines[0]
	r.lines = r.lines[1:]
	return l, nil
}

func (r *scriptedReader) SetPrompt(p string) { r.prompt = p }

func TestNewValidatesDepth(t *testing.T) {
	cases := []struct {
		kind  Kind
		depth int
		err   error
	}{
		{HumanKind, NoDepth, nil},
		{RandomKind, NoDepth, nil},
		{HumanKind, 2, ErrBadDepth},
		{RandomKind, 0, ErrBadDepth},
		{MinimaxKind, 3, nil},
		{MinimaxKind, NoDepth, ErrBadDepth},
		{AlphaBetaKind, 0, ErrBadDepth},
		{AlphaBetaKind, 5, nil},
		{IterativeKind, 4, nil},
		{Kind("stockfish"), 4, ErrUnknownPlayer},
	}
	for _, c := range cases {
		p, err := New(c.kind, c.depth, board.White, eval.Weighted)
		if c.err == nil {
			assert.NoError(t, err, c.kind)
			assert.Equal(t, board.White, p.Color())
		} else {
			assert.ErrorIs(t, err, c.err, c.kind)
		}
	}
}

func TestParseKind(t *testing.T) {
	is := is.New(t)
	k, err := ParseKind("AlphaBeta")
	is.NoErr(err)
	is.Equal(k, AlphaBetaKind)
	k, err = ParseKind("id")
	is.NoErr(err)
	is.Equal(k, IterativeKind)
	_, err = ParseKind("deep-blue")
	is.True(errors.Is(err, ErrUnknownPlayer))
}

func TestHumanCommands(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	r := &scriptedReader{lines: []string{"", "moves", "board", "e2e5", "Nf3"}}
	out := &bytes.Buffer{}
	h := NewHuman(board.White, r, out)

	m, err := h.ChooseMove(b)
	is.NoErr(err)
	is.Equal(m.String(), "g1f3")
	is.Equal(r.prompt, "white> ")
	is.True(bytes.Contains(out.Bytes(), []byte("Nc3")))
	is.True(bytes.Contains(out.Bytes(), []byte("Error:")))
	is.Equal(b.Plies(), 0)
}

func TestHumanEOF(t *testing.T) {
	is := is.New(t)
	h := NewHuman(board.Black, &scriptedReader{}, io.Discard)
	_, err := h.ChooseMove(board.NewBoard())
	is.True(errors.Is(err, ErrQuit))
}

func TestRandomPlaysLegalMoves(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	r := NewRandom(board.White)
	for i := 0; i < 40; i++ {
		if b.IsGameOver() {
			break
		}
		m, err := r.ChooseMove(b)
		is.NoErr(err)
		is.True(b.IsLegal(m))
		b.Apply(m)
	}
}

func TestNoMoveWhenGameIsOver(t *testing.T) {
	is := is.New(t)
	b, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	is.NoErr(err)
	for _, p := range []Player{NewRandom(board.Black), mustSearcher(t, AlphaBetaKind, 2)} {
		_, err := p.ChooseMove(b)
		is.True(errors.Is(err, search.ErrNoMoveAvailable))
	}
}

func mustSearcher(t *testing.T, kind Kind, depth int) *Searcher {
	p, err := New(kind, depth, board.Black, eval.Weighted)
	if err != nil {
		t.Fatal(err)
	}
	return p.(*Searcher)
}

func TestSearchersCaptureHangingQueen(t *testing.T) {
	is := is.New(t)
	for _, kind := range []Kind{MinimaxKind, AlphaBetaKind, IterativeKind} {
		b, err := board.FromFEN("3r2k1/5ppp/8/8/3Q4/8/5PPP/6K1 b - - 0 1")
		is.NoErr(err)
		p := mustSearcher(t, kind, 2)
		m, err := p.ChooseMove(b)
		is.NoErr(err)
		is.Equal(m.String(), "d8d4")
		is.Equal(p.NodeStats().Iterations(), 1)
		is.Equal(b.Plies(), 0)
	}
}

func TestSearcherFallsBackToFirstLegalMove(t *testing.T) {
	is := is.New(t)
	// Every black move allows Ra1 mate, so each line scores -inf and the
	// search never improves on its starting value.
	b, err := board.FromFEN("k7/2K4p/8/8/8/8/8/7R b - - 0 1")
	is.NoErr(err)
	p := mustSearcher(t, AlphaBetaKind, 2)
	m, err := p.ChooseMove(b)
	is.NoErr(err)
	is.Equal(m, b.LegalMoves()[0])
}
