package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/chessai/automatic"
	"github.com/domino14/chessai/board"
	"github.com/domino14/chessai/config"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/player"
)

const usage = `Usage: chessai [flags] [player1] [depth1] [player2] [depth2]
player1 plays White. 'human' and 'random' take depth -1;
'minimax', 'alphabeta' and 'iterative' take a depth greater than 0.`

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func makePlayer(cfg *config.Config, name, depthArg string, c board.Color, ev eval.Kind) (player.Player, error) {
	depth, err := strconv.Atoi(depthArg)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", player.ErrBadDepth, depthArg)
	}
	kind, err := player.ParseKind(name)
	if err != nil {
		return nil, err
	}
	if kind == player.HumanKind && depth == player.NoDepth {
		rl, err := player.NewReadline(cfg.GetString(config.ConfigHistoryFile))
		if err != nil {
			return nil, err
		}
		return player.NewHuman(c, rl, os.Stdout), nil
	}
	return player.New(kind, depth, c, ev)
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	setupLogging(cfg)
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	args := cfg.Args()
	if len(args) != 4 {
		fmt.Fprintf(os.Stderr, "expected 4 args; received %d\n%s\n", len(args), usage)
		os.Exit(2)
	}
	ev, err := eval.ParseKind(cfg.GetString(config.ConfigEvaluator))
	if err != nil {
		log.Fatal().Err(err).Msg("bad evaluator")
	}
	white, err := makePlayer(cfg, args[0], args[1], board.White, ev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		os.Exit(2)
	}
	black, err := makePlayer(cfg, args[2], args[3], board.Black, ev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		os.Exit(2)
	}

	runner, err := automatic.NewGameRunner(white, black, cfg.GetString(config.ConfigFEN), 0)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up game")
	}
	runner.SetOutput(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	outcome, err := runner.Play(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("got quit signal...")
		return
	} else if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	log.Info().Str("result", outcome.Result).Str("method", outcome.Method).
		Int("plies", outcome.Plies).Msg("game over")
}
