package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/chessai/board"
)

// LineReader is the part of *readline.Instance the human player needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewReadline opens a terminal line reader. historyFile may be empty.
func NewReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "\033[31mchessai>\033[0m ",
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
}

// Human asks someone at the keyboard for a move. It accepts UCI (e2e4) or
// SAN (Nf3), and the commands "moves", "board" and "quit".
type Human struct {
	color board.Color
	in    LineReader
	out   io.Writer
}

// NewHuman returns a human player. A nil reader opens a terminal line reader
// on first use; a nil writer means stdout.
func NewHuman(color board.Color, in LineReader, out io.Writer) *Human {
	if out == nil {
		out = os.Stdout
	}
	return &Human{color: color, in: in, out: out}
}

func (h *Human) Name() string       { return "human" }
func (h *Human) Color() board.Color { return h.color }

func (h *Human) showMessage(msg string) {
	io.WriteString(h.out, msg)
	io.WriteString(h.out, "\n")
}

func (h *Human) ChooseMove(b *board.Board) (board.Move, error) {
	if h.in == nil {
		rl, err := NewReadline("")
		if err != nil {
			return board.NoMove, err
		}
		h.in = rl
	}
	h.in.SetPrompt(fmt.Sprintf("%s> ", h.color))

	for {
		line, err := h.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return board.NoMove, ErrQuit
		} else if err != nil {
			return board.NoMove, err
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			h.showMessage("Error: " + err.Error())
			continue
		}
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "resign":
			return board.NoMove, ErrQuit
		case "moves":
			h.showMessage(strings.Join(lo.Map(b.LegalMoves(), func(m board.Move, _ int) string {
				return b.SAN(m)
			}), " "))
		case "board":
			h.showMessage(b.Draw())
		case "help":
			h.showMessage("Enter a move (e2e4 or Nf3), or one of: moves, board, quit")
		default:
			m, err := b.ParseMove(fields[0])
			if err != nil {
				h.showMessage("Error: " + err.Error())
				continue
			}
			return m, nil
		}
	}
}
