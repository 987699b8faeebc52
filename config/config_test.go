package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigDepth), 3)
	is.Equal(cfg.GetString(ConfigEvaluator), "weighted")
	is.Equal(cfg.GetBool(ConfigDebug), false)
}

func TestLoadFlagsAndArgs(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--depth", "5", "--debug", "alphabeta", "4", "human", "-1"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigDepth), 5)
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.Args(), []string{"alphabeta", "4", "human", "-1"})
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("CHESSAI_MAX_PLIES", "42")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigMaxPlies), 42)
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "chessai.yaml")
	is.NoErr(os.WriteFile(path, []byte("evaluator: simple\ngames: 7\n"), 0o644))

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config", path, "--games", "9"}))
	is.Equal(cfg.GetString(ConfigEvaluator), "simple")
	// Flags set on the command line win over the file.
	is.Equal(cfg.GetInt(ConfigGames), 9)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"--no-such-flag"}) != nil)
}
