package automatic

// Data collection for automatic games: computer vs computer batches.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/player"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

var logHeader = []string{"gameID", "white", "black", "result", "plies", "method"}

// PlayerSpec describes how to build one side's player for every game.
type PlayerSpec struct {
	Kind      player.Kind
	Depth     int
	Evaluator eval.Kind
}

func (s PlayerSpec) String() string {
	if s.Depth == player.NoDepth {
		return string(s.Kind)
	}
	return fmt.Sprintf("%s-%d-%s", s.Kind, s.Depth, s.Evaluator)
}

func (s PlayerSpec) build(c board.Color) (player.Player, error) {
	if s.Kind == player.HumanKind {
		return nil, fmt.Errorf("%w: no humans in automatic games", player.ErrUnknownPlayer)
	}
	return player.New(s.Kind, s.Depth, c, s.Evaluator)
}

// MatchOptions configure a batch of games.
type MatchOptions struct {
	NumGames int
	Threads  int
	FEN      string
	MaxPlies int
	// Alternate swaps colors every other game. Otherwise p1 is always White.
	Alternate bool
}

type gameRecord struct {
	id      int
	white   string
	black   string
	outcome Outcome
}

func (g gameRecord) row() []string {
	return []string{
		strconv.Itoa(g.id), g.white, g.black, g.outcome.Result,
		strconv.Itoa(g.outcome.Plies), g.outcome.Method,
	}
}

// PlayGame plays one game between freshly built players.
func PlayGame(ctx context.Context, white, black PlayerSpec, fen string, maxPlies int) (Outcome, error) {
	wp, err := white.build(board.White)
	if err != nil {
		return Outcome{}, err
	}
	bp, err := black.build(board.Black)
	if err != nil {
		return Outcome{}, err
	}
	r, err := NewGameRunner(wp, bp, fen, maxPlies)
	if err != nil {
		return Outcome{}, err
	}
	return r.Play(ctx)
}

// StartCompVComp plays opts.NumGames games between p1 and p2, opts.Threads
// at a time, and writes one CSV row per game to w. It returns when every
// game is done, ctx is cancelled, or a game fails.
func StartCompVComp(ctx context.Context, p1, p2 PlayerSpec, opts MatchOptions, w io.Writer) error {
	if IsPlaying.Value() > 0 {
		return ErrAlreadyPlaying
	}
	log.Debug().Msgf("Starting %v games, %v threads", opts.NumGames, opts.Threads)
	CVCCounter.Set(0)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	logChan := make(chan gameRecord, 100)
	writerDone := make(chan error, 1)
	go func() {
		cw := csv.NewWriter(w)
		err := cw.Write(logHeader)
		for rec := range logChan {
			if err == nil {
				err = cw.Write(rec.row())
			}
		}
		cw.Flush()
		if err == nil {
			err = cw.Error()
		}
		log.Info().Msg("Exiting game logger goroutine!")
		writerDone <- err
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Threads, 1))

gameLoop:
	for i := 1; i <= opts.NumGames; i++ {
		select {
		case <-gctx.Done():
			log.Info().Msg("Got stop signal, exiting soon...")
			break gameLoop
		default:
		}
		white, black := p1, p2
		if opts.Alternate && i%2 == 0 {
			white, black = p2, p1
		}
		id := i
		g.Go(func() error {
			o, err := PlayGame(gctx, white, black, opts.FEN, opts.MaxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", id, err)
			}
			CVCCounter.Add(1)
			logChan <- gameRecord{id: id, white: white.String(), black: black.String(), outcome: o}
			return nil
		})
	}
	err := g.Wait()
	close(logChan)
	log.Info().Int64("games", CVCCounter.Value()).Msg("All games finished.")
	if werr := <-writerDone; err == nil {
		err = werr
	}
	return err
}

// StartCompVCompFile is StartCompVComp writing to a newly created file.
func StartCompVCompFile(ctx context.Context, p1, p2 PlayerSpec, opts MatchOptions, outputFilename string) error {
	logfile, err := os.Create(outputFilename)
	if err != nil {
		return err
	}
	defer logfile.Close()
	return StartCompVComp(ctx, p1, p2, opts, logfile)
}
