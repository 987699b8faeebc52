package player

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/search"
	"github.com/domino14/chessai/search/alphabeta"
	"github.com/domino14/chessai/search/minimax"
	"github.com/domino14/chessai/stats"
)

type decideFunc func(b *board.Board) (search.Result, error)

// Searcher is a player backed by one of the search engines. It keeps
// running statistics of the work done per decision.
type Searcher struct {
	name   string
	cfg    search.Config
	decide decideFunc

	nodes   stats.Statistic
	elapsed stats.Statistic
}

func NewMinimax(depth int, color board.Color) (*Searcher, error) {
	s, err := minimax.NewSolver(search.Config{Depth: depth, Perspective: color})
	if err != nil {
		return nil, err
	}
	return &Searcher{
		name: "minimax",
		cfg:  s.Config(),
		decide: func(b *board.Board) (search.Result, error) {
			return s.Solve(b)
		},
	}, nil
}

func NewAlphaBeta(depth int, color board.Color, evaluator eval.Kind) (*Searcher, error) {
	s, err := alphabeta.NewSolver(search.Config{Depth: depth, Perspective: color, Evaluator: evaluator})
	if err != nil {
		return nil, err
	}
	return &Searcher{
		name: "alphabeta",
		cfg:  s.Config(),
		decide: func(b *board.Board) (search.Result, error) {
			return s.Solve(b)
		},
	}, nil
}

func NewIterativeDeepening(depth int, color board.Color, evaluator eval.Kind) (*Searcher, error) {
	s, err := alphabeta.NewSolver(search.Config{Depth: depth, Perspective: color, Evaluator: evaluator})
	if err != nil {
		return nil, err
	}
	return &Searcher{
		name: "iterative",
		cfg:  s.Config(),
		decide: func(b *board.Board) (search.Result, error) {
			r, iterations, err := s.Deepen(b)
			if err != nil {
				return r, err
			}
			for _, it := range iterations {
				log.Debug().Int("depth", it.Depth).Str("move", it.Result.Move.String()).
					Msg("recommended by iterative deepening")
			}
			return r, nil
		},
	}, nil
}

func (p *Searcher) Name() string {
	return fmt.Sprintf("%s(%d,%s)", p.name, p.cfg.Depth, p.cfg.Evaluator)
}

func (p *Searcher) Color() board.Color          { return p.cfg.Perspective }
func (p *Searcher) Config() search.Config       { return p.cfg }
func (p *Searcher) NodeStats() *stats.Statistic { return &p.nodes }
func (p *Searcher) TimeStats() *stats.Statistic { return &p.elapsed }

// ChooseMove runs a full search. If the search comes back without a move
// while legal moves exist (every line scored -inf), the first legal move is
// played.
func (p *Searcher) ChooseMove(b *board.Board) (board.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return board.NoMove, search.ErrNoMoveAvailable
	}
	tstart := time.Now()
	r, err := p.decide(b)
	if err != nil {
		return board.NoMove, fmt.Errorf("%s: %w", p.name, err)
	}
	elapsed := time.Since(tstart)
	p.nodes.Push(float64(r.Stats.Nodes))
	p.elapsed.Push(elapsed.Seconds())

	m := r.Move
	if m.IsNone() {
		m = moves[0]
		log.Warn().Str("player", p.Name()).Str("fallback", m.String()).
			Msg("search returned no move")
	}

	log.Info().
		Str("player", p.Name()).
		Str("move", b.SAN(m)).
		Float64("value", float64(r.Value)).
		Int("depth", p.cfg.Depth).
		Int("nodes", r.Stats.Nodes).
		Int("leaf-evals", r.Stats.LeafEvals).
		Int("ordering-evals", r.Stats.OrderingEvals).
		Dur("elapsed", elapsed).
		Msg("recommending move")
	return m, nil
}
