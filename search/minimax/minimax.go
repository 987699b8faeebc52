// Package minimax is a plain depth-limited minimax search with no pruning
// and no move ordering. It is the baseline the alpha-beta solver is checked
// against.
package minimax

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/search"
)

type Solver struct {
	cfg search.Config
}

// NewSolver returns a minimax solver. The evaluator in cfg is ignored; the
// baseline always scores leaves with eval.Material.
func NewSolver(cfg search.Config) (*Solver, error) {
	cfg.Evaluator = eval.Material
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg}, nil
}

func (s *Solver) Config() search.Config {
	return s.cfg
}

type searcher struct {
	pos   search.Position
	leaf  eval.Evaluator
	stats search.Stats
}

// Solve searches every line to the configured depth. The root itself is not
// counted as a node.
func (s *Solver) Solve(pos search.Position) (search.Result, error) {
	tstart := time.Now()
	sr := &searcher{pos: pos, leaf: eval.New(eval.Material, s.cfg.Perspective)}
	depth := s.cfg.Depth

	if depth <= 0 || pos.IsGameOver() {
		return search.Result{Value: sr.evaluate(), Move: board.NoMove, Stats: sr.stats}, nil
	}

	best := board.NoMove
	bestValue := eval.NegInf
	for _, m := range pos.LegalMoves() {
		var v eval.Score
		search.WithMove(pos, m, func() {
			v = sr.minValue(depth - 1)
		})
		if v > bestValue {
			best = m
			bestValue = v
		}
	}

	log.Debug().
		Int("depth", depth).
		Str("move", best.String()).
		Float64("value", float64(bestValue)).
		Int("nodes", sr.stats.Nodes).
		Int("leaf-evals", sr.stats.LeafEvals).
		Dur("elapsed", time.Since(tstart)).
		Msg("minimax-solve")

	return search.Result{Value: bestValue, Move: best, Stats: sr.stats}, nil
}

func (sr *searcher) evaluate() eval.Score {
	sr.stats.LeafEvals++
	return sr.leaf.Evaluate(sr.pos)
}

func (sr *searcher) cutoff(depth int) bool {
	return depth == 0 || sr.pos.IsGameOver()
}

func (sr *searcher) maxValue(depth int) eval.Score {
	sr.stats.Nodes++
	if sr.cutoff(depth) {
		return sr.evaluate()
	}
	v := eval.NegInf
	for _, m := range sr.pos.LegalMoves() {
		search.WithMove(sr.pos, m, func() {
			v = max(v, sr.minValue(depth-1))
		})
	}
	return v
}

func (sr *searcher) minValue(depth int) eval.Score {
	sr.stats.Nodes++
	if sr.cutoff(depth) {
		return sr.evaluate()
	}
	v := eval.PosInf
	for _, m := range sr.pos.LegalMoves() {
		search.WithMove(sr.pos, m, func() {
			v = min(v, sr.maxValue(depth-1))
		})
	}
	return v
}
