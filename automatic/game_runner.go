// Package automatic plays games between players without anyone at the
// keyboard: a single game loop, batches of computer-vs-computer games, and
// analysis of the resulting logs.
package automatic

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/player"
)

const (
	// MethodAdjudicated marks a game stopped at the ply limit.
	MethodAdjudicated = "adjudicated"
	// MethodQuit marks a game a player walked away from.
	MethodQuit = "quit"
)

var ErrWrongSide = errors.New("player is seated on the wrong side")

// Outcome is how a finished game ended.
type Outcome struct {
	Result string
	Winner board.Color
	Plies  int
	Method string
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	board    *board.Board
	players  [2]player.Player
	out      io.Writer
	maxPlies int
}

// NewGameRunner seats white and black at a board set up from fen (the
// standard start if empty). maxPlies of 0 means no limit.
func NewGameRunner(white, black player.Player, fen string, maxPlies int) (*GameRunner, error) {
	if white.Color() != board.White || black.Color() != board.Black {
		return nil, ErrWrongSide
	}
	b := board.NewBoard()
	if fen != "" {
		var err error
		b, err = board.FromFEN(fen)
		if err != nil {
			return nil, err
		}
	}
	return &GameRunner{board: b, players: [2]player.Player{white, black}, maxPlies: maxPlies}, nil
}

// SetOutput makes the runner print the board before every turn.
func (r *GameRunner) SetOutput(w io.Writer) {
	r.out = w
}

func (r *GameRunner) Board() *board.Board {
	return r.board
}

func (r *GameRunner) playerOnTurn() player.Player {
	if r.board.SideToMove() == board.White {
		return r.players[0]
	}
	return r.players[1]
}

// PlayTurn asks the side to move for a move and plays it.
func (r *GameRunner) PlayTurn() (board.Move, error) {
	p := r.playerOnTurn()
	m, err := p.ChooseMove(r.board)
	if err != nil {
		return board.NoMove, err
	}
	if !r.board.IsLegal(m) {
		return board.NoMove, fmt.Errorf("%s chose %v: %w", p.Name(), m, board.ErrIllegalMove)
	}
	san := r.board.SAN(m)
	r.board.Apply(m)
	log.Debug().Str("player", p.Name()).Str("move", san).Int("ply", r.board.Plies()).Msg("played")
	if r.out != nil {
		fmt.Fprintf(r.out, "%s plays %s\n", p.Color(), san)
	}
	return m, nil
}

// Play runs the game to the end, the ply limit, or until ctx is done.
func (r *GameRunner) Play(ctx context.Context) (Outcome, error) {
	for !r.board.IsGameOver() {
		if r.maxPlies > 0 && r.board.Plies() >= r.maxPlies {
			return Outcome{Result: "1/2-1/2", Winner: board.NoColor,
				Plies: r.board.Plies(), Method: MethodAdjudicated}, nil
		}
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if r.out != nil {
			fmt.Fprintln(r.out, r.board.Draw())
		}
		if _, err := r.PlayTurn(); err != nil {
			if errors.Is(err, player.ErrQuit) {
				// The side that walked away loses.
				winner := r.board.SideToMove().Other()
				return Outcome{Result: resultFor(winner), Winner: winner,
					Plies: r.board.Plies(), Method: MethodQuit}, nil
			}
			return Outcome{}, err
		}
	}
	o := Outcome{
		Result: r.board.Result(),
		Winner: r.board.Winner(),
		Plies:  r.board.Plies(),
		Method: r.board.Termination().String(),
	}
	if r.out != nil {
		fmt.Fprintln(r.out, r.board.Draw())
		fmt.Fprintf(r.out, "Game over by %s. Result: %s\n", o.Method, o.Result)
	}
	return o, nil
}

func resultFor(winner board.Color) string {
	switch winner {
	case board.White:
		return "1-0"
	case board.Black:
		return "0-1"
	}
	return "1/2-1/2"
}
