package stats

import "gonum.org/v1/gonum/stat/distuv"

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

// MatchScore summarizes a series of games from one side's point of view.
// A win is worth 1, a draw 0.5 and a loss 0.
type MatchScore struct {
	Wins, Draws, Losses int
}

func (m MatchScore) Games() int {
	return m.Wins + m.Draws + m.Losses
}

// Score returns the fraction of available points scored.
func (m MatchScore) Score() float64 {
	if m.Games() == 0 {
		return 0
	}
	return (float64(m.Wins) + 0.5*float64(m.Draws)) / float64(m.Games())
}

// Interval returns the score and the half-width of its confidence interval
// at the given confidence (0 to 100 percent).
func (m MatchScore) Interval(confidence float64) (float64, float64) {
	var s Statistic
	for i := 0; i < m.Wins; i++ {
		s.Push(1)
	}
	for i := 0; i < m.Draws; i++ {
		s.Push(0.5)
	}
	for i := 0; i < m.Losses; i++ {
		s.Push(0)
	}
	return s.Mean(), ZVal(confidence) * s.StandardError()
}
