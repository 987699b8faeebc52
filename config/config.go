// Package config loads settings from flags, CHESSAI_* environment variables
// and an optional YAML config file, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigConfigFile  = "config"
	ConfigDepth       = "depth"
	ConfigEvaluator   = "evaluator"
	ConfigFEN         = "fen"
	ConfigGames       = "games"
	ConfigThreads     = "threads"
	ConfigGameLog     = "game-log"
	ConfigMaxPlies    = "max-plies"
	ConfigPuzzleFile  = "puzzle-file"
	ConfigHistoryFile = "history-file"
	ConfigCPUProfile  = "cpu-profile"
)

type Config struct {
	*viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigDepth, 3)
	v.SetDefault(ConfigEvaluator, "weighted")
	v.SetDefault(ConfigFEN, "")
	v.SetDefault(ConfigGames, 10)
	v.SetDefault(ConfigThreads, 4)
	v.SetDefault(ConfigGameLog, "/tmp/chessai-games.csv")
	v.SetDefault(ConfigMaxPlies, 300)
	v.SetDefault(ConfigPuzzleFile, "./puzzles/testdata/puzzles.yaml")
	v.SetDefault(ConfigHistoryFile, "/tmp/chessai-readline.tmp")
	v.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig returns a config holding only default values.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

// Load parses command-line args. Positional arguments are kept and can be
// fetched with Args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("chessai", pflag.ContinueOnError)
	// Flags come first; a depth of -1 among the positional args must not be
	// taken for a shorthand flag.
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigConfigFile, "", "path to a YAML config file")
	fs.Int(ConfigDepth, 3, "search depth in plies")
	fs.String(ConfigEvaluator, "weighted", "evaluator for alpha-beta players: simple or weighted")
	fs.String(ConfigFEN, "", "starting position in FEN; the standard start if empty")
	fs.Int(ConfigGames, 10, "number of games to play in autoplay")
	fs.Int(ConfigThreads, 4, "number of games to play at once in autoplay")
	fs.String(ConfigGameLog, "/tmp/chessai-games.csv", "CSV file autoplay writes one row per game to")
	fs.Int(ConfigMaxPlies, 300, "autoplay adjudicates a game as a draw after this many plies")
	fs.String(ConfigPuzzleFile, "./puzzles/testdata/puzzles.yaml", "YAML file of puzzles")
	fs.String(ConfigHistoryFile, "/tmp/chessai-readline.tmp", "readline history file for human players")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("chessai")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigConfigFile); path != "" {
		c.SetConfigFile(path)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings that are safe to log.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
