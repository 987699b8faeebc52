// Package alphabeta implements depth-limited minimax with alpha-beta
// pruning, one-ply move ordering, and an iterative deepening driver.
package alphabeta

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/search"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            if value ≥ β then
                break (* β cut-off *)
            α := max(α, value)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            if value ≤ α then
                break (* α cut-off *)
            β := min(β, value)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

// Solver chooses moves for one player. It holds configuration only; all
// per-decision state lives in a searcher, so a Solver may be reused.
type Solver struct {
	cfg search.Config
}

// NewSolver validates cfg and returns a solver for it.
func NewSolver(cfg search.Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg}, nil
}

func (s *Solver) Config() search.Config {
	return s.cfg
}

// searcher carries the state of one decision.
type searcher struct {
	pos   search.Position
	leaf  eval.Evaluator
	order eval.Evaluator
	stats search.Stats
}

func (s *Solver) newSearcher(pos search.Position) *searcher {
	return &searcher{
		pos:   pos,
		leaf:  eval.New(s.cfg.Evaluator, s.cfg.Perspective),
		order: eval.New(eval.Simple, s.cfg.Perspective),
	}
}

// Solve searches pos to the configured depth. pos is mutated during the
// search and restored before Solve returns.
func (s *Solver) Solve(pos search.Position) (search.Result, error) {
	return s.solve(pos, s.cfg.Depth)
}

func (s *Solver) solve(pos search.Position, depth int) (search.Result, error) {
	if depth < 0 {
		return search.Result{}, search.ErrInvalidDepth
	}
	tstart := time.Now()
	sr := s.newSearcher(pos)
	v, m := sr.maxNode(depth, eval.NegInf, eval.PosInf)

	log.Debug().
		Int("depth", depth).
		Str("evaluator", s.cfg.Evaluator.String()).
		Str("perspective", s.cfg.Perspective.String()).
		Str("move", m.String()).
		Float64("value", float64(v)).
		Int("nodes", sr.stats.Nodes).
		Int("leaf-evals", sr.stats.LeafEvals).
		Int("ordering-evals", sr.stats.OrderingEvals).
		Dur("elapsed", time.Since(tstart)).
		Msg("alphabeta-solve")

	return search.Result{Value: v, Move: m, Stats: sr.stats}, nil
}

// cutoff returns true at nodes where the static evaluator takes over.
func (sr *searcher) cutoff(depth int) bool {
	return depth == 0 || sr.pos.IsGameOver()
}

func (sr *searcher) evaluate() eval.Score {
	sr.stats.LeafEvals++
	return sr.leaf.Evaluate(sr.pos)
}

func (sr *searcher) maxNode(depth int, α, β eval.Score) (eval.Score, board.Move) {
	sr.stats.Nodes++
	if sr.cutoff(depth) {
		return sr.evaluate(), board.NoMove
	}

	v := eval.NegInf
	best := board.NoMove
	for _, m := range sr.orderMoves(sr.pos.LegalMoves(), true) {
		var child eval.Score
		search.WithMove(sr.pos, m, func() {
			child, _ = sr.minNode(depth-1, α, β)
		})
		if child > v {
			v = child
			best = m
		}
		if v >= β {
			return v, m // β cut-off
		}
		α = max(α, v)
	}
	return v, best
}

func (sr *searcher) minNode(depth int, α, β eval.Score) (eval.Score, board.Move) {
	sr.stats.Nodes++
	if sr.cutoff(depth) {
		return sr.evaluate(), board.NoMove
	}

	v := eval.PosInf
	best := board.NoMove
	for _, m := range sr.orderMoves(sr.pos.LegalMoves(), false) {
		var child eval.Score
		search.WithMove(sr.pos, m, func() {
			child, _ = sr.maxNode(depth-1, α, β)
		})
		if child < v {
			v = child
			best = m
		}
		if v <= α {
			return v, m // α cut-off
		}
		β = min(β, v)
	}
	return v, best
}
