package stats

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
		min    float64
		max    float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 10, 23},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 10, 124},
		{[]int{1}, 1, 0, 1, 1},
		{[]int{}, 0, 0, 0, 0},
		{[]int{1, 1}, 1, 0, 1, 1},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Min(), c.min)
		is.Equal(s.Max(), c.max)
		is.Equal(s.Iterations(), len(c.scores))
	}
}

func TestZVal(t *testing.T) {
	assert.InDelta(t, 1.959964, ZVal(95), 1e-5)
	assert.InDelta(t, 2.575829, ZVal(99), 1e-5)
}

func TestMatchScore(t *testing.T) {
	is := is.New(t)
	m := MatchScore{Wins: 6, Draws: 2, Losses: 2}
	is.Equal(m.Games(), 10)
	is.True(FuzzyEqual(m.Score(), 0.7))

	score, ci := m.Interval(95)
	is.True(FuzzyEqual(score, 0.7))
	is.True(ci > 0 && ci < 0.5)

	is.Equal(MatchScore{}.Score(), 0.0)
	score, ci = MatchScore{Draws: 4}.Interval(95)
	is.True(FuzzyEqual(score, 0.5))
	is.Equal(ci, 0.0)
}
