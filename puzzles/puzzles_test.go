package puzzles

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestSuite(t *testing.T) {
	is := is.New(t)
	suite, err := LoadFile("testdata/puzzles.yaml")
	is.NoErr(err)
	is.Equal(len(suite.Puzzles), 4)

	reports, err := SolveAll(context.Background(), suite)
	is.NoErr(err)
	is.Equal(len(reports), 4)
	for i, r := range reports {
		assert.True(t, r.Passed, "%s: played %s", r.Name, r.SAN)
		assert.Len(t, r.Iterations, suite.Puzzles[i].Depth+1)
	}
}

func TestWrongAnswerFails(t *testing.T) {
	is := is.New(t)
	p := &Puzzle{
		Name:  "not the capture",
		FEN:   "6k1/5ppp/8/3q4/8/8/5PPP/3R2K1 w - - 0 1",
		Depth: 2,
		Best:  []string{"h2h3"},
	}
	r, err := Solve(p)
	is.NoErr(err)
	is.True(!r.Passed)
	is.Equal(r.Move.String(), "d1d5")
	is.Equal(r.SAN, "Rxd5")
}

func TestBadPuzzles(t *testing.T) {
	is := is.New(t)
	_, err := Solve(&Puzzle{Name: "empty", FEN: "6k1/8/8/8/8/8/8/6K1 w - - 0 1", Depth: 1})
	is.True(errors.Is(err, ErrNoSolution))

	_, err = Solve(&Puzzle{Name: "illegal answer", FEN: "6k1/8/8/8/8/8/8/6K1 w - - 0 1",
		Depth: 1, Best: []string{"e2e4"}})
	is.True(err != nil)

	_, err = Solve(&Puzzle{Name: "bad evaluator", FEN: "6k1/8/8/8/8/8/8/6K1 w - - 0 1",
		Depth: 1, Evaluator: "neural", Best: []string{"g1g2"}})
	is.True(err != nil)
}

func TestLoadRejectsGarbage(t *testing.T) {
	is := is.New(t)
	_, err := Load(strings.NewReader("puzzles: {name: [unterminated"))
	is.True(err != nil)
}

func TestSolveAllStopsOnCancel(t *testing.T) {
	is := is.New(t)
	suite, err := LoadFile("testdata/puzzles.yaml")
	is.NoErr(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reports, err := SolveAll(ctx, suite)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(len(reports), 0)
}
