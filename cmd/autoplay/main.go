package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/chessai/automatic"
	"github.com/domino14/chessai/config"
	"github.com/domino14/chessai/eval"
	"github.com/domino14/chessai/player"
)

const usage = `Usage: autoplay [flags] [player1] [depth1] [player2] [depth2]
Plays --games games between two computer players, alternating colors, and
writes one CSV row per game to --game-log. With a single argument 'analyze'
it summarizes an existing --game-log instead.`

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

func parseSpec(name, depthArg string, ev eval.Kind) (automatic.PlayerSpec, error) {
	kind, err := player.ParseKind(name)
	if err != nil {
		return automatic.PlayerSpec{}, err
	}
	depth, err := strconv.Atoi(depthArg)
	if err != nil {
		return automatic.PlayerSpec{}, fmt.Errorf("%w: %q", player.ErrBadDepth, depthArg)
	}
	return automatic.PlayerSpec{Kind: kind, Depth: depth, Evaluator: ev}, nil
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		os.Exit(2)
	}
	setupLogging(cfg)
	logPath := cfg.GetString(config.ConfigGameLog)

	args := cfg.Args()
	if len(args) == 1 && args[0] == "analyze" {
		summary, err := automatic.AnalyzeLogFile(logPath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not analyze log")
		}
		fmt.Println(summary)
		return
	}
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ev, err := eval.ParseKind(cfg.GetString(config.ConfigEvaluator))
	if err != nil {
		log.Fatal().Err(err).Msg("bad evaluator")
	}
	p1, err := parseSpec(args[0], args[1], ev)
	if err != nil {
		log.Fatal().Err(err).Msg("bad player 1")
	}
	p2, err := parseSpec(args[2], args[3], ev)
	if err != nil {
		log.Fatal().Err(err).Msg("bad player 2")
	}

	if path := cfg.GetString(config.ConfigCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = automatic.StartCompVCompFile(ctx, p1, p2, automatic.MatchOptions{
		NumGames:  cfg.GetInt(config.ConfigGames),
		Threads:   cfg.GetInt(config.ConfigThreads),
		FEN:       cfg.GetString(config.ConfigFEN),
		MaxPlies:  cfg.GetInt(config.ConfigMaxPlies),
		Alternate: true,
	}, logPath)
	if err != nil {
		log.Error().Err(err).Msg("autoplay stopped")
	}
	summary, aerr := automatic.AnalyzeLogFile(logPath)
	if aerr != nil {
		log.Fatal().Err(aerr).Msg("could not analyze log")
	}
	fmt.Println(summary)
}
