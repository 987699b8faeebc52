package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/chessai/config"
	"github.com/domino14/chessai/puzzles"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	path := cfg.GetString(config.ConfigPuzzleFile)
	if args := cfg.Args(); len(args) > 0 {
		path = args[0]
	}
	suite, err := puzzles.LoadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("could not load puzzles")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reports, err := puzzles.SolveAll(ctx, suite)
	passed := 0
	for _, r := range reports {
		status := "FAIL"
		if r.Passed {
			status = "ok"
			passed++
		}
		moves := make([]string, len(r.Iterations))
		for i, it := range r.Iterations {
			moves[i] = it.Result.Move.String()
		}
		fmt.Printf("%-4s %-30s %-8s nodes=%-8d by depth: %s\n", status, r.Name, r.SAN,
			r.Stats.Nodes, strings.Join(moves, " "))
	}
	fmt.Printf("%d/%d passed\n", passed, len(suite.Puzzles))
	if err != nil {
		log.Fatal().Err(err).Msg("puzzle run stopped")
	}
	if passed != len(suite.Puzzles) {
		os.Exit(1)
	}
}
