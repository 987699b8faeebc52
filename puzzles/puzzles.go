// Package puzzles runs suites of tactical positions with known solutions
// against the iterative deepening searcher.
package puzzles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/search"
	"github.com/domino14/chessai/search/alphabeta"
)

var ErrNoSolution = errors.New("puzzle lists no solution")

// Puzzle is one position to solve. Best lists the accepted answers, in UCI
// or standard algebraic notation.
type Puzzle struct {
	Name      string   `yaml:"name"`
	FEN       string   `yaml:"fen"`
	Depth     int      `yaml:"depth"`
	Evaluator string   `yaml:"evaluator"`
	Best      []string `yaml:"best"`
}

type Suite struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

// Report is the outcome of one puzzle.
type Report struct {
	Name       string
	Move       board.Move
	SAN        string
	Value      eval.Score
	Passed     bool
	Stats      search.Stats
	Iterations []alphabeta.Iteration
}

func Load(r io.Reader) (*Suite, error) {
	s := &Suite{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Solve searches the puzzle position for the side to move.
func Solve(p *Puzzle) (*Report, error) {
	if len(p.Best) == 0 {
		return nil, fmt.Errorf("%s: %w", p.Name, ErrNoSolution)
	}
	b, err := board.FromFEN(p.FEN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	kind := eval.Weighted
	if p.Evaluator != "" {
		kind, err = eval.ParseKind(p.Evaluator)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
	}
	accepted := make([]board.Move, 0, len(p.Best))
	for _, s := range p.Best {
		m, err := b.ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("%s: answer %q: %w", p.Name, s, err)
		}
		accepted = append(accepted, m)
	}

	solver, err := alphabeta.NewSolver(search.Config{
		Depth: p.Depth, Perspective: b.SideToMove(), Evaluator: kind,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	r, iterations, err := solver.Deepen(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}

	rep := &Report{
		Name:       p.Name,
		Move:       r.Move,
		Value:      r.Value,
		Stats:      r.Stats,
		Iterations: iterations,
	}
	if !r.Move.IsNone() {
		rep.SAN = b.SAN(r.Move)
	}
	for _, m := range accepted {
		if m == r.Move {
			rep.Passed = true
		}
	}
	log.Debug().Str("puzzle", p.Name).Str("move", r.Move.String()).
		Bool("passed", rep.Passed).Int("nodes", r.Stats.Nodes).Msg("puzzle-solved")
	return rep, nil
}

// SolveAll runs every puzzle in the suite in order, stopping early if ctx
// is done.
func SolveAll(ctx context.Context, s *Suite) ([]*Report, error) {
	reports := make([]*Report, 0, len(s.Puzzles))
	for i := range s.Puzzles {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		rep, err := Solve(&s.Puzzles[i])
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
