package alphabeta

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/chessai/search"
)

// Iteration is the outcome of one pass of iterative deepening.
type Iteration struct {
	Depth  int
	Result search.Result
}

// Deepen runs a full alpha-beta search at every depth from 0 up to the
// configured depth and returns the deepest result. Nothing is carried from
// one pass to the next. The returned Stats are the sum over all passes.
func (s *Solver) Deepen(pos search.Position) (search.Result, []Iteration, error) {
	if s.cfg.Depth < 0 {
		return search.Result{}, nil, search.ErrInvalidDepth
	}
	var total search.Stats
	var last search.Result
	iterations := make([]Iteration, 0, s.cfg.Depth+1)

	for d := 0; d <= s.cfg.Depth; d++ {
		r, err := s.solve(pos, d)
		if err != nil {
			return search.Result{}, iterations, err
		}
		log.Debug().Int("depth", d).Str("move", r.Move.String()).
			Float64("value", float64(r.Value)).Msg("deepening-iteration")
		iterations = append(iterations, Iteration{Depth: d, Result: r})
		total.Add(r.Stats)
		last = r
	}
	last.Stats = total
	return last, iterations, nil
}
