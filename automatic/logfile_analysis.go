package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/domino14/chessai/stats"
)

var ErrEmptyLog = errors.New("game log has no games")

// AnalyzeLogFile analyzes the given game CSV file and spits out a bunch of
// statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return AnalyzeLog(file)
}

// AnalyzeLog reads rows written by StartCompVComp. Scores are given from the
// point of view of the player who had White in the first game.
func AnalyzeLog(in io.Reader) (string, error) {
	r := csv.NewReader(in)

	var p1Name, p2Name string
	var p1 stats.MatchScore
	var whiteScore stats.MatchScore
	var lengths []float64
	lengthStats := &stats.Statistic{}
	methods := map[string]int{}
	var methodOrder []string

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == "gameID" {
			// this is the header line
			continue
		}
		if len(record) != len(logHeader) {
			return "", fmt.Errorf("bad record %v", record)
		}
		white, black, result := record[1], record[2], record[3]
		plies, err := strconv.Atoi(record[4])
		if err != nil {
			return "", err
		}
		if p1Name == "" {
			p1Name, p2Name = white, black
		}
		p1White := white == p1Name

		switch result {
		case "1-0":
			whiteScore.Wins++
			if p1White {
				p1.Wins++
			} else {
				p1.Losses++
			}
		case "0-1":
			whiteScore.Losses++
			if p1White {
				p1.Losses++
			} else {
				p1.Wins++
			}
		default:
			whiteScore.Draws++
			p1.Draws++
		}
		if _, ok := methods[record[5]]; !ok {
			methodOrder = append(methodOrder, record[5])
		}
		methods[record[5]]++
		lengths = append(lengths, float64(plies))
		lengthStats.Push(float64(plies))
	}
	if p1.Games() == 0 {
		return "", ErrEmptyLog
	}

	score, ci := p1.Interval(95)
	var ss strings.Builder
	fmt.Fprintf(&ss, "Games played: %d\n", p1.Games())
	fmt.Fprintf(&ss, "%v vs %v: +%d =%d -%d\n", p1Name, p2Name, p1.Wins, p1.Draws, p1.Losses)
	fmt.Fprintf(&ss, "%v score: %.3f%% ± %.3f%% (95%% confidence)\n", p1Name, 100*score, 100*ci)
	fmt.Fprintf(&ss, "White score: %.3f%%\n", 100*whiteScore.Score())
	for _, m := range methodOrder {
		fmt.Fprintf(&ss, "Ended by %s: %d\n", m, methods[m])
	}
	fmt.Fprintf(&ss, "Game length (plies) Mean: %.2f  Stdev: %.2f  Min: %.0f  Max: %.0f\n",
		lengthStats.Mean(), lengthStats.Stdev(), lengthStats.Min(), lengthStats.Max())

	hist := histogram.Hist(min(10, len(lengths)), lengths)
	if err := histogram.Fprint(&ss, hist, histogram.Linear(40)); err != nil {
		return "", err
	}
	return ss.String(), nil
}
